package shared

// Pagination describes the position of a page within a listing
type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	LimitPerPage int   `json:"limit_per_page"`
	CurrentPage  int   `json:"current_page"`
	PrevPage     *int  `json:"prev_page"`
	NextPage     *int  `json:"next_page"`
	TotalPages   int   `json:"total_pages"`
}

// NewPagination computes pagination metadata for a listing
func NewPagination(totalItems int64, page, limit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	totalPages := int(totalItems) / limit
	if int(totalItems)%limit > 0 {
		totalPages++
	}

	p := Pagination{
		TotalItems:   totalItems,
		LimitPerPage: limit,
		CurrentPage:  page,
		TotalPages:   totalPages,
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
