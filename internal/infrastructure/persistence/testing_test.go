package persistence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/identity"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/sales"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&identity.Role{},
		&identity.User{},
		&catalog.Category{},
		&catalog.Supplier{},
		&catalog.Product{},
		&inventory.StockMovement{},
		&sales.Sale{},
		&sales.SaleItem{},
	)
	require.NoError(t, err)

	return db
}

// mustProduct creates and persists a product for tests
func mustProduct(t *testing.T, db *gorm.DB, name string, sellingPrice string, stock int) *catalog.Product {
	t.Helper()

	price, err := decimal.NewFromString(sellingPrice)
	require.NoError(t, err)

	product, err := catalog.NewProduct(name, "", price, price, stock, nil, nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}
