package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockdesk/backend/internal/domain/catalog"
)

// CreateProductInput carries the data to create a product
type CreateProductInput struct {
	Name          string          `json:"name" binding:"required,max=200"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int             `json:"stock" binding:"gte=0"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
}

// UpdateProductInput carries the data to update a product.
// Stock is absent on purpose: it only changes through movements and sales.
type UpdateProductInput struct {
	Name          string          `json:"name" binding:"required,max=200"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
}

// ProductDTO is the product representation returned to clients
type ProductDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int             `json:"stock"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	Category      *CategoryDTO    `json:"category,omitempty"`
	SupplierID    *uuid.UUID      `json:"supplier_id,omitempty"`
	Supplier      *SupplierDTO    `json:"supplier,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProductDTO maps a product entity to its DTO
func NewProductDTO(p *catalog.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Category != nil {
		dto.Category = NewCategoryDTO(p.Category)
	}
	if p.Supplier != nil {
		dto.Supplier = NewSupplierDTO(p.Supplier)
	}
	return dto
}

// CreateCategoryInput carries the data to create a category
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryInput carries the data to update a category
type UpdateCategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CategoryDTO is the category representation returned to clients
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryDTO maps a category entity to its DTO
func NewCategoryDTO(c *catalog.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateSupplierInput carries the data to create a supplier
type CreateSupplierInput struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=30"`
}

// UpdateSupplierInput carries the data to update a supplier
type UpdateSupplierInput struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=30"`
}

// SupplierDTO is the supplier representation returned to clients
type SupplierDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupplierDTO maps a supplier entity to its DTO
func NewSupplierDTO(s *catalog.Supplier) *SupplierDTO {
	return &SupplierDTO{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
