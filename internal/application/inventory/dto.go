package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/inventory"
)

// RegisterMovementInput carries the data to register a stock entry or exit
type RegisterMovementInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// StockMovementDTO is the ledger entry representation returned to clients
type StockMovementDTO struct {
	ID          uuid.UUID              `json:"id"`
	ProductID   uuid.UUID              `json:"product_id"`
	ProductName string                 `json:"product_name,omitempty"`
	Type        inventory.MovementType `json:"type"`
	Quantity    int                    `json:"quantity"`
	CreatedAt   time.Time              `json:"created_at"`
}

// NewStockMovementDTO maps a movement entity to its DTO
func NewStockMovementDTO(m *inventory.StockMovement) *StockMovementDTO {
	dto := &StockMovementDTO{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
	if m.Product != nil {
		dto.ProductName = m.Product.Name
	}
	return dto
}
