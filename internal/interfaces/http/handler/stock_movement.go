package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/stockdesk/backend/internal/application/inventory"
)

// StockMovementHandler handles the inventory ledger endpoints
type StockMovementHandler struct {
	BaseHandler
	movementService *inventoryapp.MovementService
}

// NewStockMovementHandler creates a new StockMovementHandler
func NewStockMovementHandler(movementService *inventoryapp.MovementService) *StockMovementHandler {
	return &StockMovementHandler{movementService: movementService}
}

// RegisterRoutes registers stock movement routes
func (h *StockMovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movements := rg.Group("/stock-movements")
	{
		movements.POST("/entries", h.RegisterEntry)
		movements.POST("/exits", h.RegisterExit)
		movements.GET("", h.List)
		movements.GET("/:id", h.GetByID)
	}
}

// RegisterEntry records a stock increase and updates the product's level
func (h *StockMovementHandler) RegisterEntry(c *gin.Context) {
	var input inventoryapp.RegisterMovementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.movementService.RegisterEntry(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// RegisterExit records a stock decrease and updates the product's level
func (h *StockMovementHandler) RegisterExit(c *gin.Context) {
	var input inventoryapp.RegisterMovementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.movementService.RegisterExit(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// List returns the paginated movement ledger. Name search matches the
// product of each movement, including soft deleted products.
func (h *StockMovementHandler) List(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	movements, meta, err := h.movementService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, movements, meta)
}

// GetByID returns a single ledger entry
func (h *StockMovementHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID format")
		return
	}

	movement, err := h.movementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movement)
}
