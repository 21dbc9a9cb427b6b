package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// Sale is the aggregate root for a registered sale. A sale and its items
// are created once, atomically, and never updated or deleted; the total is
// always the sum of the item subtotals.
type Sale struct {
	shared.BaseEntity
	Total decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Items []SaleItem      `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. UnitPrice snapshots the product's selling
// price at sale time, so later price changes do not alter past sales.
type SaleItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
	Quantity  int              `gorm:"not null"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Subtotal  decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSale creates an empty sale. Items are added with AddItem and the sale
// must contain at least one item before it is persisted.
func NewSale() *Sale {
	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		Total:      decimal.Zero,
		Items:      make([]SaleItem, 0),
	}
}

// AddItem appends a line to the sale, computing its subtotal and
// accumulating the sale total.
func (s *Sale) AddItem(productID uuid.UUID, unitPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	s.Items = append(s.Items, SaleItem{
		BaseEntity: shared.NewBaseEntity(),
		SaleID:     s.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Subtotal:   subtotal,
	})
	s.Total = s.Total.Add(subtotal)
	return nil
}

// Validate checks the aggregate's invariants before persistence
func (s *Sale) Validate() error {
	if len(s.Items) == 0 {
		return shared.NewDomainError("EMPTY_SALE", "A sale must contain at least one item")
	}
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.Subtotal)
	}
	if !sum.Equal(s.Total) {
		return shared.NewDomainError("INVALID_TOTAL", "Sale total must equal the sum of item subtotals")
	}
	return nil
}
