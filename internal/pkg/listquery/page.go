package listquery

// Page selects a 1-based slice of a result set.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"limit"`
}

// Normalize raises a page number or size below 1 to 1.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = 1
	}
	return p
}

// Result is one page of matched records.
type Result[R Record] struct {
	Items        []R `json:"items"`
	TotalMatched int `json:"total_matched"`
	TotalPages   int `json:"total_pages"`
	// Page and PageSize are the values actually used, after normalization and
	// clamping.
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// TotalPagesFor returns ceil(total/size), but never less than 1 so that
// pagination controls always have a page to show.
func TotalPagesFor(total, size int) int {
	if size < 1 {
		size = 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate cuts records into the requested page. A page number past the last
// page is clamped to the last page.
func Paginate[R Record](records []R, page Page) Result[R] {
	page = page.Normalize()
	total := len(records)
	totalPages := TotalPagesFor(total, page.Size)
	if page.Number > totalPages {
		page.Number = totalPages
	}

	start := (page.Number - 1) * page.Size
	end := start + page.Size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]R, end-start)
	copy(items, records[start:end])

	return Result[R]{
		Items:        items,
		TotalMatched: total,
		TotalPages:   totalPages,
		Page:         page.Number,
		PageSize:     page.Size,
	}
}

// Meta is the pagination block list responses carry next to their items.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Meta returns the pagination metadata of r.
func (r Result[R]) Meta() Meta {
	return Meta{
		Page:       r.Page,
		Limit:      r.PageSize,
		TotalItems: r.TotalMatched,
		TotalPages: r.TotalPages,
	}
}
