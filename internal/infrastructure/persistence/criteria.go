package persistence

import (
	"gorm.io/gorm"

	"github.com/stockdesk/backend/internal/domain/shared"
)

// applyCriteria applies criteria clauses to a query over a table that carries
// name and name_unaccented columns. Listings are newest-first.
func applyCriteria(query *gorm.DB, c shared.Criteria) *gorm.DB {
	query = applyCriteriaWithoutPagination(query, c)
	return applyPagination(query, c).Order("created_at DESC")
}

// applyCriteriaWithoutPagination applies only the filtering clauses, for
// counting matched rows.
func applyCriteriaWithoutPagination(query *gorm.DB, c shared.Criteria) *gorm.DB {
	query = applyDateRange(query, "created_at", c.CreatedAt)
	if c.Search != "" {
		// The raw query is matched against the stored name and its
		// diacritics-stripped form against the unaccented mirror, so both
		// "Café" and "cafe" find the same row.
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(name_unaccented) LIKE LOWER(?)",
			"%"+c.Search+"%", "%"+c.SearchUnaccented+"%",
		)
	}
	return query
}

func applyDateRange(query *gorm.DB, column string, r shared.DateRange) *gorm.DB {
	if r.GTE != nil {
		query = query.Where(column+" >= ?", *r.GTE)
	}
	if r.LTE != nil {
		query = query.Where(column+" <= ?", *r.LTE)
	}
	return query
}

func applyPagination(query *gorm.DB, c shared.Criteria) *gorm.DB {
	if c.Page > 0 && c.PageSize > 0 {
		offset := (c.Page - 1) * c.PageSize
		query = query.Offset(offset).Limit(c.PageSize)
	}
	return query
}
