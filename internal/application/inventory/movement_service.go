package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// MovementService records stock entries and exits. Each registration adjusts
// the product's stock and appends a ledger entry in one transaction.
type MovementService struct {
	movements inventory.StockMovementRepository
	scope     TransactionScope
}

// NewMovementService creates a new MovementService
func NewMovementService(movements inventory.StockMovementRepository, scope TransactionScope) *MovementService {
	return &MovementService{movements: movements, scope: scope}
}

// RegisterEntry increases a product's stock and records the movement
func (s *MovementService) RegisterEntry(ctx context.Context, input RegisterMovementInput) (*StockMovementDTO, error) {
	return s.register(ctx, input, inventory.MovementTypeIncrease)
}

// RegisterExit decreases a product's stock and records the movement.
// Exits do not check stock sufficiency, so manual corrections can drive the
// level negative; only sale registration enforces availability.
func (s *MovementService) RegisterExit(ctx context.Context, input RegisterMovementInput) (*StockMovementDTO, error) {
	return s.register(ctx, input, inventory.MovementTypeDecrease)
}

func (s *MovementService) register(ctx context.Context, input RegisterMovementInput, movementType inventory.MovementType) (*StockMovementDTO, error) {
	var dto *StockMovementDTO

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, input.ProductID)
		if err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(product.ID, movementType, input.Quantity)
		if err != nil {
			return err
		}

		if movementType == inventory.MovementTypeIncrease {
			err = product.IncreaseStock(input.Quantity)
		} else {
			err = product.DecreaseStock(input.Quantity)
		}
		if err != nil {
			return err
		}

		if err := repos.Products().Save(ctx, product); err != nil {
			return err
		}
		if err := repos.Movements().Create(ctx, movement); err != nil {
			return err
		}

		movement.Product = product
		dto = NewStockMovementDTO(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// GetByID returns a movement by its ID
func (s *MovementService) GetByID(ctx context.Context, id uuid.UUID) (*StockMovementDTO, error) {
	movement, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewStockMovementDTO(movement), nil
}

// List returns a page of movements matching the query. The text search
// matches the referenced product's name.
func (s *MovementService) List(ctx context.Context, query shared.ListQuery) ([]StockMovementDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	movements, err := s.movements.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.movements.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]StockMovementDTO, len(movements))
	for i := range movements {
		dtos[i] = *NewStockMovementDTO(&movements[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}
