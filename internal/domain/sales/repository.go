package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// SaleRepository persists sale aggregates. Sales are immutable once
// created: there is no update or delete.
type SaleRepository interface {
	// Create persists the sale together with its items
	Create(ctx context.Context, sale *Sale) error
	// FindByID loads a sale with its items and their products
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, criteria shared.Criteria) ([]Sale, error)
	Count(ctx context.Context, criteria shared.Criteria) (int64, error)
}
