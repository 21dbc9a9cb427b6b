package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/sales"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// SaleService registers and reads sales. Registration runs the whole flow
// in one transaction: validate every line, snapshot unit prices, decrement
// stock and append one decrease movement per line. A failure on any line
// rolls everything back.
type SaleService struct {
	sales sales.SaleRepository
	scope TransactionScope
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo sales.SaleRepository, scope TransactionScope) *SaleService {
	return &SaleService{sales: saleRepo, scope: scope}
}

// Register registers a sale
func (s *SaleService) Register(ctx context.Context, input RegisterSaleInput) (*SaleDTO, error) {
	if len(input.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "A sale must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
	}

	var dto *SaleDTO

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Load each distinct product once; quantities of repeated lines are
		// validated cumulatively against the same stock level.
		products := make(map[uuid.UUID]*catalog.Product)
		requested := make(map[uuid.UUID]int)
		for _, item := range input.Items {
			if _, ok := products[item.ProductID]; !ok {
				product, err := repos.Products().FindByID(ctx, item.ProductID)
				if err != nil {
					if errors.Is(err, shared.ErrNotFound) {
						return shared.NewDomainErrorf("PRODUCT_NOT_FOUND", "Product %s does not exist", item.ProductID)
					}
					return err
				}
				products[item.ProductID] = product
			}
			requested[item.ProductID] += item.Quantity
		}

		for id, quantity := range requested {
			product := products[id]
			if !product.HasStock(quantity) {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for product %q: have %d, need %d", product.Name, product.Stock, quantity))
			}
		}

		sale := sales.NewSale()
		for _, item := range input.Items {
			product := products[item.ProductID]
			if err := sale.AddItem(product.ID, product.SellingPrice, item.Quantity); err != nil {
				return err
			}
		}
		if err := sale.Validate(); err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		// One decrease ledger entry per sale line
		for _, item := range input.Items {
			movement, err := inventory.NewStockMovement(item.ProductID, inventory.MovementTypeDecrease, item.Quantity)
			if err != nil {
				return err
			}
			if err := repos.Movements().Create(ctx, movement); err != nil {
				return err
			}
		}

		for id, quantity := range requested {
			product := products[id]
			if err := product.DecreaseStock(quantity); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}

		for i := range sale.Items {
			sale.Items[i].Product = products[sale.Items[i].ProductID]
		}
		dto = NewSaleDTO(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// GetByID returns a sale by its ID
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleDTO, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSaleDTO(sale), nil
}

// List returns a page of sales matching the query
func (s *SaleService) List(ctx context.Context, query shared.ListQuery) ([]SaleDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	results, err := s.sales.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.sales.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]SaleDTO, len(results))
	for i := range results {
		dtos[i] = *NewSaleDTO(&results[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}
