package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockdesk/backend/internal/domain/sales"
)

// RegisterSaleInput carries the lines of a sale to register
type RegisterSaleInput struct {
	Items []RegisterSaleItemInput `json:"items" binding:"required,min=1,dive"`
}

// RegisterSaleItemInput is one requested sale line
type RegisterSaleItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// SaleDTO is the sale representation returned to clients
type SaleDTO struct {
	ID        uuid.UUID       `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Items     []SaleItemDTO   `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaleItemDTO is one line of a sale as returned to clients
type SaleItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewSaleDTO maps a sale aggregate to its DTO
func NewSaleDTO(s *sales.Sale) *SaleDTO {
	dto := &SaleDTO{
		ID:        s.ID,
		Total:     s.Total,
		Items:     make([]SaleItemDTO, len(s.Items)),
		CreatedAt: s.CreatedAt,
	}
	for i, item := range s.Items {
		dto.Items[i] = SaleItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if item.Product != nil {
			dto.Items[i].ProductName = item.Product.Name
		}
	}
	return dto
}
