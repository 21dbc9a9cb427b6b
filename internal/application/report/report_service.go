package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockdesk/backend/internal/domain/catalog"
	"github.com/stockdesk/backend/internal/domain/report"
	"github.com/stockdesk/backend/internal/domain/shared"
)

// DefaultTopProductsLimit bounds the top-selling listing when the caller
// does not specify one.
const DefaultTopProductsLimit = 10

// MonthCount is the number of sales registered in one month
type MonthCount struct {
	Month string `json:"month"` // MM/YYYY
	Count int    `json:"count"`
}

// TopProductDTO is one entry of the top-selling products report
type TopProductDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	QuantitySold int64     `json:"quantity_sold"`
}

// ReportService aggregates sales data for reporting
type ReportService struct {
	reports  report.SalesReportRepository
	products catalog.ProductRepository
}

// NewReportService creates a new ReportService
func NewReportService(reports report.SalesReportRepository, products catalog.ProductRepository) *ReportService {
	return &ReportService{reports: reports, products: products}
}

// SalesByMonth groups all sales by UTC calendar month. Months appear in
// the order they are first seen while scanning sales newest-first. With no
// sales registered the report does not exist.
func (s *ReportService) SalesByMonth(ctx context.Context) ([]MonthCount, error) {
	times, err := s.reports.SaleCreationTimes(ctx)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, shared.ErrNotFound
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range times {
		// Timestamps scanned from timestamptz may carry a local offset
		t = t.UTC()
		month := fmt.Sprintf("%02d/%04d", t.Month(), t.Year())
		if _, seen := counts[month]; !seen {
			order = append(order, month)
		}
		counts[month]++
	}

	result := make([]MonthCount, len(order))
	for i, month := range order {
		result[i] = MonthCount{Month: month, Count: counts[month]}
	}
	return result, nil
}

// TopSellingProducts lists the products with the highest sold quantities.
// Products deleted after being sold are still reported; an empty report is
// a valid result.
func (s *ReportService) TopSellingProducts(ctx context.Context, limit int) ([]TopProductDTO, error) {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	quantities, err := s.reports.TopSoldProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]TopProductDTO, 0, len(quantities))
	for _, q := range quantities {
		product, err := s.products.FindByIDWithDeleted(ctx, q.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Hard-deleted rows cannot be resolved; skip them
				continue
			}
			return nil, err
		}
		result = append(result, TopProductDTO{
			ProductID:    product.ID,
			Name:         product.Name,
			QuantitySold: q.Quantity,
		})
	}
	return result, nil
}
