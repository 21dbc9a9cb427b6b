package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/stockdesk/backend/internal/application/sales"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	BaseHandler
	saleService *salesapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *salesapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Register)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
	}
}

// Register atomically records a sale: validates stock across all lines,
// snapshots prices, writes one exit movement per line and decrements the
// product levels.
func (h *SaleHandler) Register(c *gin.Context) {
	var input salesapp.RegisterSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	sale, err := h.saleService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List returns a paginated sale listing with DD/MM/YYYY date filters
func (h *SaleHandler) List(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	sales, meta, err := h.saleService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, sales, meta)
}

// GetByID returns a single sale with its lines
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}
