package ledger

import (
	"errors"
	"slices"
)

// AllowedPageSizes are the page sizes a viewer may choose from.
var AllowedPageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is the page size of a new session.
const DefaultPageSize = 10

var ErrInvalidPageSize = errors.New("page size is not one of the allowed sizes")

// Page is a position in a paginated sequence.
type Page struct {
	Index int
	Size  int
}

// PageCount returns the number of pages needed for total items.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// clampIndex keeps index inside [0, last page].
func clampIndex(index, total, size int) int {
	last := PageCount(total, size) - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	return index
}

// VisibleSlice returns the part of records shown on page p. An index past the
// end is clamped to the last page so a shrunken sequence never renders empty by accident.
func VisibleSlice(records []Record, p Page) []Record {
	if p.Size <= 0 || len(records) == 0 {
		return []Record{}
	}
	start := clampIndex(p.Index, len(records), p.Size) * p.Size
	end := min(start+p.Size, len(records))
	return records[start:end:end]
}

// Pager holds the pagination state of a session.
type Pager struct {
	page Page
}

// NewPager starts on the first page with the default size.
func NewPager() Pager {
	return Pager{page: Page{Index: 0, Size: DefaultPageSize}}
}

// Page returns the current position.
func (p *Pager) Page() Page {
	return p.page
}

// SetPage moves to page n, clamped to the pages available for total items.
func (p *Pager) SetPage(n, total int) {
	p.page.Index = clampIndex(n, total, p.page.Size)
}

// SetPageSize changes the page size and returns to the first page.
func (p *Pager) SetPageSize(size int) error {
	if !slices.Contains(AllowedPageSizes, size) {
		return ErrInvalidPageSize
	}
	p.page = Page{Index: 0, Size: size}
	return nil
}

// Reset returns to the first page, keeping the size.
func (p *Pager) Reset() {
	p.page.Index = 0
}
