package dto

// PaginationRequest carries common paging parameters.
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage returns the page number with its default applied.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the page size with its default applied.
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// Offset returns the row offset for the current page.
func (p *PaginationRequest) Offset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// PeriodRequest selects a reporting month. Zero values mean the current
// month; range validation is the engine's responsibility so that an
// out-of-range month surfaces as its error, not as a binding failure.
type PeriodRequest struct {
	Year  int `form:"year"  json:"year"`
	Month int `form:"month" json:"month"`
}
