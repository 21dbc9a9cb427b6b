package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The ledger is append-only: rows are never updated or deleted.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a movement to the ledger
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByID finds a movement by ID with its product preloaded
func (r *GormStockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockMovement, error) {
	var movement inventory.StockMovement
	if err := r.db.WithContext(ctx).
		Preload("Product", withDeletedProducts).
		First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAll finds all movements matching the criteria, products preloaded
func (r *GormStockMovementRepository) FindAll(ctx context.Context, criteria shared.Criteria) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := applyPagination(r.applyCriteria(r.db.WithContext(ctx), criteria), criteria).
		Order("stock_movements.created_at DESC").
		Preload("Product", withDeletedProducts)

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Count counts movements matching the criteria
func (r *GormStockMovementRepository) Count(ctx context.Context, criteria shared.Criteria) (int64, error) {
	var count int64
	if err := r.applyCriteria(r.db.WithContext(ctx), criteria).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyCriteria builds the filtered movement query. The text clause matches
// the referenced product's name, so the join is unscoped to keep movements of
// soft-deleted products findable.
func (r *GormStockMovementRepository) applyCriteria(db *gorm.DB, c shared.Criteria) *gorm.DB {
	query := db.Model(&inventory.StockMovement{})
	query = applyDateRange(query, "stock_movements.created_at", c.CreatedAt)
	if c.Search != "" {
		query = query.
			Joins("JOIN products ON products.id = stock_movements.product_id").
			Where(
				"LOWER(products.name) LIKE LOWER(?) OR LOWER(products.name_unaccented) LIKE LOWER(?)",
				"%"+c.Search+"%", "%"+c.SearchUnaccented+"%",
			)
	}
	return query
}

// withDeletedProducts lifts the soft-delete scope on a product preload
func withDeletedProducts(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
