package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
	// FindByIDWithDeleted resolves a product even after soft deletion.
	// Historical records (sales, movements) reference products that may no
	// longer be live.
	FindByIDWithDeleted(ctx context.Context, id uuid.UUID) (*Product, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	shared.Repository[Category]
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
	ExistsByName(ctx context.Context, name string) (bool, error)
}
