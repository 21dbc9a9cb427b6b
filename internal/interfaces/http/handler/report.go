package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	reportapp "github.com/stockdesk/backend/internal/application/report"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales-by-month", h.SalesByMonth)
		reports.GET("/top-products", h.TopProducts)
	}
}

// SalesByMonth returns sale counts grouped by MM/YYYY month
func (h *ReportHandler) SalesByMonth(c *gin.Context) {
	result, err := h.reportService.SalesByMonth(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// TopProducts returns the best selling products by total quantity sold
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	result, err := h.reportService.TopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
