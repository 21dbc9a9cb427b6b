package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stockdesk/backend/internal/domain/report"
	"github.com/stockdesk/backend/internal/domain/sales"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// SaleCreationTimes returns every sale's creation timestamp, newest first
func (r *GormSalesReportRepository) SaleCreationTimes(ctx context.Context) ([]time.Time, error) {
	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Order("created_at DESC").
		Pluck("created_at", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// TopSoldProducts sums sold quantities per product across all sale items
func (r *GormSalesReportRepository) TopSoldProducts(ctx context.Context, limit int) ([]report.ProductQuantity, error) {
	var results []report.ProductQuantity
	if err := r.db.WithContext(ctx).
		Model(&sales.SaleItem{}).
		Select("product_id, SUM(quantity) AS quantity").
		Group("product_id").
		Order("quantity DESC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Ensure GormSalesReportRepository implements SalesReportRepository
var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
