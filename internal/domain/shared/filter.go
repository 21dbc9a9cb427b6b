package shared

import (
	"time"
)

// DisplayDateLayout is the DD/MM/YYYY format used by listing endpoints.
const DisplayDateLayout = "02/01/2006"

// ListQuery carries the raw, optional listing parameters as received from
// the HTTP layer. Dates are DD/MM/YYYY display strings.
type ListQuery struct {
	Page      int
	PageSize  int
	StartDate string
	EndDate   string
	ExactDate string
	Search    string
}

// DateRange bounds the created_at column. A nil side is unbounded.
type DateRange struct {
	GTE *time.Time
	LTE *time.Time
}

// IsZero reports whether no bound is set
func (r DateRange) IsZero() bool {
	return r.GTE == nil && r.LTE == nil
}

// Criteria is the structured predicate repositories consume. Clauses are
// combined with logical AND; zero values mean "no constraint".
type Criteria struct {
	Page      int
	PageSize  int
	CreatedAt DateRange
	// Search matches the raw name column as a case-insensitive substring;
	// SearchUnaccented is the same query with diacritics stripped, matched
	// against the unaccented mirror column. The two are OR-ed.
	Search           string
	SearchUnaccented string
}

// BuildCriteria converts raw listing parameters into a Criteria.
//
// An exact date seeds both bounds to that day; explicit start/end dates are
// applied afterwards and override whichever bound they touch, so the
// last-applied bound wins when both are given.
func BuildCriteria(q ListQuery) (Criteria, error) {
	c := Criteria{Page: q.Page, PageSize: q.PageSize}
	if c.Page <= 0 {
		c.Page = 1
	}
	if c.PageSize <= 0 {
		c.PageSize = 20
	}

	if q.ExactDate != "" {
		day, err := ParseDisplayDate(q.ExactDate)
		if err != nil {
			return Criteria{}, err
		}
		gte := StartOfDayUTC(day)
		lte := EndOfDayUTC(day)
		c.CreatedAt.GTE = &gte
		c.CreatedAt.LTE = &lte
	}
	if q.StartDate != "" {
		day, err := ParseDisplayDate(q.StartDate)
		if err != nil {
			return Criteria{}, err
		}
		gte := StartOfDayUTC(day)
		c.CreatedAt.GTE = &gte
	}
	if q.EndDate != "" {
		day, err := ParseDisplayDate(q.EndDate)
		if err != nil {
			return Criteria{}, err
		}
		lte := EndOfDayUTC(day)
		c.CreatedAt.LTE = &lte
	}

	if q.Search != "" {
		c.Search = q.Search
		c.SearchUnaccented = Unaccent(q.Search)
	}

	return c, nil
}

// ParseDisplayDate parses a DD/MM/YYYY string into a UTC date. Components
// that do not form a real calendar day (e.g. 31/02/2024) are rejected.
func ParseDisplayDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DisplayDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, NewDomainErrorf("INVALID_DATE", "invalid date %q, expected DD/MM/YYYY", value)
	}
	return t, nil
}

// StartOfDayUTC returns the absolute start of the given day in UTC
func StartOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns the last representable millisecond of the day in UTC
func EndOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
