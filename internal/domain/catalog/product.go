package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog.
// It is the aggregate root for catalog operations. Stock is mutated only
// through the inventory ledger (movement and sale registration); catalog
// updates never touch it.
type Product struct {
	shared.BaseEntity
	Name           string          `gorm:"type:varchar(200);not null"`
	NameUnaccented string          `gorm:"type:varchar(200);not null;index"`
	Description    string          `gorm:"type:text"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SellingPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock          int             `gorm:"not null;default:0"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierID     *uuid.UUID      `gorm:"type:uuid;index"`
	Category       *Category       `gorm:"foreignKey:CategoryID"`
	Supplier       *Supplier       `gorm:"foreignKey:SupplierID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, purchasePrice, sellingPrice decimal.Decimal, stock int, categoryID, supplierID *uuid.UUID) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if purchasePrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Initial stock cannot be negative")
	}

	return &Product{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		NameUnaccented: shared.Unaccent(name),
		Description:    description,
		PurchasePrice:  purchasePrice,
		SellingPrice:   sellingPrice,
		Stock:          stock,
		CategoryID:     categoryID,
		SupplierID:     supplierID,
	}, nil
}

// Update updates the product's catalog information
func (p *Product) Update(name, description string, purchasePrice, sellingPrice decimal.Decimal, categoryID, supplierID *uuid.UUID) error {
	if err := validateName(name); err != nil {
		return err
	}
	if purchasePrice.IsNegative() || sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	p.Name = name
	p.NameUnaccented = shared.Unaccent(name)
	p.Description = description
	p.PurchasePrice = purchasePrice
	p.SellingPrice = sellingPrice
	p.CategoryID = categoryID
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	return nil
}

// HasStock reports whether the current stock covers the requested quantity
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// IncreaseStock raises the stock level by quantity
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// DecreaseStock lowers the stock level by quantity. Sufficiency is checked
// by callers that require it (sale registration); a manual stock exit does
// not re-check here.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
