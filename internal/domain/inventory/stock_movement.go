package inventory

import (
	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeIncrease MovementType = "increase"
	MovementTypeDecrease MovementType = "decrease"
)

// IsValid reports whether the movement type is known
func (t MovementType) IsValid() bool {
	return t == MovementTypeIncrease || t == MovementTypeDecrease
}

// StockMovement is an immutable ledger entry recording one increase or
// decrease of a product's on-hand quantity. Movements are created once and
// never updated or deleted.
type StockMovement struct {
	shared.BaseEntity
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
	Type      MovementType     `gorm:"type:varchar(10);not null"`
	Quantity  int              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new stock movement
func NewStockMovement(productID uuid.UUID, movementType MovementType, quantity int) (*StockMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Movement type must be increase or decrease")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return &StockMovement{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Type:       movementType,
		Quantity:   quantity,
	}, nil
}
