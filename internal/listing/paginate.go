package listing

import "github.com/pkg/errors"

// Gap marks an elided run of page numbers in Meta.Window.
const Gap = 0

const maxWindow = 5

type Pagination struct {
	page    int
	perPage int
}

// NewPagination fails fast on a non-positive page size. Any page number is
// accepted; pages outside 1..TotalPages simply come back empty.
func NewPagination(page, perPage int) (Pagination, error) {
	if perPage <= 0 {
		return Pagination{}, errors.Wrapf(ErrInvalidPageSize, "got %d", perPage)
	}
	return Pagination{page: page, perPage: perPage}, nil
}

func (p Pagination) Page() int    { return p.page }
func (p Pagination) PerPage() int { return p.perPage }

type Meta struct {
	TotalItems   int   `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	From         int   `json:"from"`
	To           int   `json:"to"`
	Window       []int `json:"window"`
}

type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

func paginate[T any](items []T, p Pagination) Page[T] {
	total := len(items)
	totalPages := total / p.perPage
	if total%p.perPage != 0 {
		totalPages++
	}
	meta := Meta{
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  p.page,
		ItemsPerPage: p.perPage,
	}
	meta.Window = window(meta.CurrentPage, meta.TotalPages)

	out := []T{}
	if p.page >= 1 && p.page <= meta.TotalPages {
		// page <= TotalPages bounds (page-1)*perPage by total, so neither side overflows.
		start := (p.page - 1) * p.perPage
		end := start + min(p.perPage, total-start)
		out = append(out, items[start:end]...)
		meta.From = start + 1
		meta.To = end
	}
	return Page[T]{Items: out, Meta: meta}
}

// window returns the page-number strip: every page when there are at most five,
// otherwise the first and last page around up to three neighbours of current,
// with Gap where numbers are skipped. An out-of-range current is clamped.
func window(current, totalPages int) []int {
	pages := []int{}
	if totalPages <= maxWindow {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	current = min(max(current, 1), totalPages)
	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	if start == 2 {
		end = min(totalPages-1, start+2)
	}
	if end == totalPages-1 {
		start = max(2, end-2)
	}

	pages = append(pages, 1)
	if start > 2 {
		pages = append(pages, Gap)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages-1 {
		pages = append(pages, Gap)
	}
	return append(pages, totalPages)
}
