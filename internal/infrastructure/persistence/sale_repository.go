package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockdesk/backend/internal/domain/sales"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// GormSaleRepository implements SaleRepository using GORM. Sales are
// immutable once created.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create persists the sale together with its items
func (r *GormSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// FindByID loads a sale with its items and their products
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product", withDeletedProducts).
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds all sales matching the criteria, newest first
func (r *GormSaleRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]sales.Sale, error) {
	var results []sales.Sale
	query := r.db.WithContext(ctx).Model(&sales.Sale{})
	query = applyDateRange(query, "created_at", criteria.CreatedAt)
	query = applyPagination(query, criteria).
		Order("created_at DESC").
		Preload("Items").
		Preload("Items.Product", withDeletedProducts)

	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Count counts sales matching the criteria
func (r *GormSaleRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Sale{})
	query = applyDateRange(query, "created_at", criteria.CreatedAt)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ sales.SaleRepository = (*GormSaleRepository)(nil)
