package domain

// PaginationParams carries page/limit values from the HTTP layer to the service.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil pointers fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Window returns the [start, end) slice bounds of this page within a
// collection of total items. Pages past the end yield an empty window.
func (p PaginationParams) Window(total int) (start, end int) {
	start = min((p.Page-1)*p.Limit, total)
	end = min(start+p.Limit, total)
	return start, end
}
