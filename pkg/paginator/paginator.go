package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces maximum limit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset calculates the database offset for the current page.
func (p *PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// TotalPages calculates the total number of pages based on total items and
// items per page. Zero items means zero pages, not one.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	if p.TotalPages() == 0 {
		return false
	}
	return p.CurrentPage > 1
}

// NextPage returns the next page number, or nil when on the last page.
func (p Paginator) NextPage() *int {
	if !p.HasNextPage() {
		return nil
	}
	next := p.CurrentPage + 1
	return &next
}

// PrevPage returns the previous page number, or nil when on the first page.
func (p Paginator) PrevPage() *int {
	if !p.HasPreviousPage() {
		return nil
	}
	prev := p.CurrentPage - 1
	return &prev
}

// ToResponse converts the paginator to a response format with additional calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
		NextPage:    p.NextPage(),
		PrevPage:    p.PrevPage(),
	}
}
