package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// ProductService handles catalog operations on products
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	suppliers  catalog.SupplierRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	suppliers catalog.SupplierRepository,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		suppliers:  suppliers,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := s.checkReferences(ctx, input.CategoryID, input.SupplierID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(
		input.Name,
		input.Description,
		input.PurchasePrice,
		input.SellingPrice,
		input.Stock,
		input.CategoryID,
		input.SupplierID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

// GetByID returns a product by its ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

// List returns a page of products matching the query
func (s *ProductService) List(ctx context.Context, query shared.ListQuery) ([]ProductDTO, *shared.Pagination, error) {
	criteria, err := shared.BuildCriteria(query)
	if err != nil {
		return nil, nil, err
	}

	products, err := s.products.FindAll(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.products.Count(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]ProductDTO, len(products))
	for i := range products {
		dtos[i] = *NewProductDTO(&products[i])
	}
	pagination := shared.NewPagination(total, criteria.Page, criteria.PageSize)
	return dtos, &pagination, nil
}

// Update updates a product's catalog data. Stock is never touched here.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, input.CategoryID, input.SupplierID); err != nil {
		return nil, err
	}

	if err := product.Update(
		input.Name,
		input.Description,
		input.PurchasePrice,
		input.SellingPrice,
		input.CategoryID,
		input.SupplierID,
	); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

// Delete soft-deletes a product. Its sales and movement history stay intact.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// checkReferences verifies that the referenced category and supplier exist
func (s *ProductService) checkReferences(ctx context.Context, categoryID, supplierID *uuid.UUID) error {
	if categoryID != nil {
		if _, err := s.categories.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("CATEGORY_NOT_FOUND", "Referenced category does not exist")
			}
			return err
		}
	}
	if supplierID != nil {
		if _, err := s.suppliers.FindByID(ctx, *supplierID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("SUPPLIER_NOT_FOUND", "Referenced supplier does not exist")
			}
			return err
		}
	}
	return nil
}
