package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsales "github.com/stockdesk/backend/internal/application/sales"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/sales"
	"github.com/stockdesk/backend/internal/domain/shared"
)

func TestGormSaleTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormSaleTransactionScope(db)
	ctx := context.Background()

	product := mustProduct(t, db, "Caderno", "7.50", 10)

	err := scope.Execute(ctx, func(repos appsales.TransactionalRepositories) error {
		sale := sales.NewSale()
		if err := sale.AddItem(product.ID, product.SellingPrice, 2); err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(product.ID, inventory.MovementTypeDecrease, 2)
		if err != nil {
			return err
		}
		if err := repos.Movements().Create(ctx, movement); err != nil {
			return err
		}

		if err := product.DecreaseStock(2); err != nil {
			return err
		}
		return repos.Products().Save(ctx, product)
	})
	require.NoError(t, err)

	count, err := NewGormSaleRepository(db).Count(ctx, shared.Criteria{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.Stock)
}

func TestGormSaleTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormSaleTransactionScope(db)
	ctx := context.Background()

	product := mustProduct(t, db, "Caneta", "2.50", 10)
	boom := errors.New("validation failed mid-flight")

	err := scope.Execute(ctx, func(repos appsales.TransactionalRepositories) error {
		sale := sales.NewSale()
		if err := sale.AddItem(product.ID, product.SellingPrice, 3); err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		if err := product.DecreaseStock(3); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, product); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Nothing from the failed execution is visible
	count, err := NewGormSaleRepository(db).Count(ctx, shared.Criteria{})
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.Stock)
}
