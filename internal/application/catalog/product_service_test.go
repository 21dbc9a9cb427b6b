package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

func newProductService() (*ProductService, *MockProductRepository, *MockCategoryRepository, *MockSupplierRepository) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	suppliers := new(MockSupplierRepository)
	return NewProductService(products, categories, suppliers), products, categories, suppliers
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product without references", func(t *testing.T) {
		svc, products, _, _ := newProductService()
		products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		dto, err := svc.Create(ctx, CreateProductInput{
			Name:          "Teclado",
			PurchasePrice: decimal.NewFromInt(50),
			SellingPrice:  decimal.NewFromInt(90),
			Stock:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, "Teclado", dto.Name)
		assert.Equal(t, 10, dto.Stock)
		products.AssertExpectations(t)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc, _, categories, _ := newProductService()
		categoryID := uuid.New()
		categories.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateProductInput{
			Name:       "Teclado",
			CategoryID: &categoryID,
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
	})

	t.Run("rejects unknown supplier", func(t *testing.T) {
		svc, _, _, suppliers := newProductService()
		supplierID := uuid.New()
		suppliers.On("FindByID", ctx, supplierID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateProductInput{
			Name:       "Teclado",
			SupplierID: &supplierID,
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SUPPLIER_NOT_FOUND", domainErr.Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		svc, _, _, _ := newProductService()

		_, err := svc.Create(ctx, CreateProductInput{
			Name:         "Teclado",
			SellingPrice: decimal.NewFromInt(-1),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRICE", domainErr.Code)
	})
}

func TestProductService_Update_DoesNotTouchStock(t *testing.T) {
	ctx := context.Background()
	svc, products, _, _ := newProductService()

	product, err := catalog.NewProduct("Antigo", "", decimal.NewFromInt(10), decimal.NewFromInt(20), 7, nil, nil)
	require.NoError(t, err)

	products.On("FindByID", ctx, product.ID).Return(product, nil)
	products.On("Save", ctx, product).Return(nil)

	dto, err := svc.Update(ctx, product.ID, UpdateProductInput{
		Name:          "Novo",
		PurchasePrice: decimal.NewFromInt(15),
		SellingPrice:  decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "Novo", dto.Name)
	assert.Equal(t, 7, dto.Stock)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	svc, products, _, _ := newProductService()

	stored, err := catalog.NewProduct("Mouse", "", decimal.NewFromInt(10), decimal.NewFromInt(20), 3, nil, nil)
	require.NoError(t, err)

	products.On("FindAll", ctx, mock.AnythingOfType("shared.Criteria")).Return([]catalog.Product{*stored}, nil)
	products.On("Count", ctx, mock.AnythingOfType("shared.Criteria")).Return(int64(41), nil)

	dtos, pagination, err := svc.List(ctx, shared.ListQuery{Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Mouse", dtos[0].Name)
	assert.EqualValues(t, 41, pagination.TotalItems)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	require.NotNil(t, pagination.PrevPage)
	assert.Equal(t, 1, *pagination.PrevPage)
	require.NotNil(t, pagination.NextPage)
	assert.Equal(t, 3, *pagination.NextPage)
}

func TestProductService_List_InvalidDate(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newProductService()

	_, _, err := svc.List(ctx, shared.ListQuery{StartDate: "2024-01-01"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATE", domainErr.Code)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, products, _, _ := newProductService()
	id := uuid.New()

	products.On("Delete", ctx, id).Return(shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), shared.ErrNotFound)
}
