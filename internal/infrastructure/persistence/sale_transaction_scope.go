package persistence

import (
	"context"

	"gorm.io/gorm"

	appsales "github.com/stockdesk/backend/internal/application/sales"
	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/sales"
)

// GormSaleTransactionScope implements the sales TransactionScope using GORM
// transactions.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSaleRepositories{tx: tx})
	})
}

// gormSaleRepositories binds the repositories to one transaction
type gormSaleRepositories struct {
	tx *gorm.DB
}

// Products returns the product repository scoped to the current transaction
func (r *gormSaleRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Movements returns the movement repository scoped to the current transaction
func (r *gormSaleRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Sales returns the sale repository scoped to the current transaction
func (r *gormSaleRepositories) Sales() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSaleTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSaleRepositories)(nil)
