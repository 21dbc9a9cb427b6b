package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductQuantity pairs a product with the total quantity sold
type ProductQuantity struct {
	ProductID uuid.UUID
	Quantity  int64
}

// SalesReportRepository exposes the read queries backing sales reports
type SalesReportRepository interface {
	// SaleCreationTimes returns the creation timestamp of every sale,
	// ordered by created_at descending
	SaleCreationTimes(ctx context.Context) ([]time.Time, error)
	// TopSoldProducts returns product IDs with their summed sold quantity,
	// ordered by quantity descending, limited to the given count
	TopSoldProducts(ctx context.Context, limit int) ([]ProductQuantity, error)
}
