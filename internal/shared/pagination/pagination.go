// Package pagination carries caller-supplied paging parameters down to the
// storage layer, which is the paging authority.
package pagination

// Request is a sanitized page request. Page is zero-based.
type Request struct {
	Page       int
	Size       int
	Sort       string
	Descending bool
}

func (r Request) Limit() int {
	return r.Size
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is one page of results plus the totals clients need to paginate.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, req Request, totalItems int64) Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((totalItems + int64(req.Size) - 1) / int64(req.Size))
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
