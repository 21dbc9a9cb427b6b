package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// StockMovementRepository is an append-only repository for the movement
// ledger. Movements are immutable: there is no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *StockMovement) error
	FindByID(ctx context.Context, id uuid.UUID) (*StockMovement, error)
	// FindAll lists movements with the product preloaded. The text clause of
	// the criteria matches the referenced product's name.
	FindAll(ctx context.Context, criteria shared.Criteria) ([]StockMovement, error)
	Count(ctx context.Context, criteria shared.Criteria) (int64, error)
}
