package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/inventory"
	"github.com/stockdesk/backend/internal/domain/shared"
)

func newSaleService() (*SaleService, *MockProductRepository, *MockStockMovementRepository, *MockSaleRepository) {
	products := new(MockProductRepository)
	movements := new(MockStockMovementRepository)
	saleRepo := new(MockSaleRepository)
	scope := NewNoOpTransactionScope(products, movements, saleRepo)
	return NewSaleService(saleRepo, scope), products, movements, saleRepo
}

func testProduct(t *testing.T, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.NewFromInt(price), decimal.NewFromInt(price), stock, nil, nil)
	require.NoError(t, err)
	return product
}

func TestSaleService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a multi-line sale", func(t *testing.T) {
		svc, products, movements, saleRepo := newSaleService()
		keyboard := testProduct(t, "Teclado", 90, 10)
		mouse := testProduct(t, "Mouse", 40, 5)

		products.On("FindByID", ctx, keyboard.ID).Return(keyboard, nil).Once()
		products.On("FindByID", ctx, mouse.ID).Return(mouse, nil).Once()
		saleRepo.On("Create", ctx, mock.AnythingOfType("*sales.Sale")).Return(nil)
		movements.On("Create", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil).Times(2)
		products.On("Save", ctx, keyboard).Return(nil)
		products.On("Save", ctx, mouse).Return(nil)

		dto, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 1},
		}})
		require.NoError(t, err)
		require.Len(t, dto.Items, 2)
		assert.True(t, dto.Total.Equal(decimal.NewFromInt(220)))
		assert.Equal(t, 8, keyboard.Stock)
		assert.Equal(t, 4, mouse.Stock)

		// Every line is mirrored by one decrease ledger entry
		for _, call := range movements.Calls {
			movement := call.Arguments.Get(1).(*inventory.StockMovement)
			assert.Equal(t, inventory.MovementTypeDecrease, movement.Type)
		}
		saleRepo.AssertExpectations(t)
		movements.AssertExpectations(t)
	})

	t.Run("snapshots the selling price", func(t *testing.T) {
		svc, products, movements, saleRepo := newSaleService()
		product := testProduct(t, "Monitor", 700, 3)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		saleRepo.On("Create", ctx, mock.AnythingOfType("*sales.Sale")).Return(nil)
		movements.On("Create", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		products.On("Save", ctx, product).Return(nil)

		dto, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: product.ID, Quantity: 1},
		}})
		require.NoError(t, err)
		assert.True(t, dto.Items[0].UnitPrice.Equal(decimal.NewFromInt(700)))
		assert.True(t, dto.Items[0].Subtotal.Equal(decimal.NewFromInt(700)))
	})

	t.Run("rejects empty sale", func(t *testing.T) {
		svc, _, _, _ := newSaleService()

		_, err := svc.Register(ctx, RegisterSaleInput{})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_SALE", domainErr.Code)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		svc, products, _, _ := newSaleService()
		id := uuid.New()

		products.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: id, Quantity: 1},
		}})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
	})

	t.Run("rejects insufficient stock before writing anything", func(t *testing.T) {
		svc, products, movements, saleRepo := newSaleService()
		product := testProduct(t, "Cabo", 25, 2)

		products.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: product.ID, Quantity: 3},
		}})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Equal(t, 2, product.Stock)
		saleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validates repeated lines cumulatively", func(t *testing.T) {
		svc, products, _, _ := newSaleService()
		product := testProduct(t, "Caneta", 3, 5)

		products.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		// 3 + 3 exceeds the 5 in stock even though each line alone fits
		_, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: product.ID, Quantity: 3},
			{ProductID: product.ID, Quantity: 3},
		}})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, _, _, _ := newSaleService()

		_, err := svc.Register(ctx, RegisterSaleInput{Items: []RegisterSaleItemInput{
			{ProductID: uuid.New(), Quantity: 0},
		}})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})
}

func TestSaleService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _, _, saleRepo := newSaleService()
	id := uuid.New()

	saleRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
