package pagination

import "strconv"

// Number parses a page number from its query representation. An absent or
// malformed value means the first page, never an error.
func Number(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// Page is one slice of an ordered collection plus the metadata list views
// need to render a pager.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices items into pages of the given size and returns the
// requested page. A number below 1 defaults to the first page; a number past
// the end clamps to the last page, so callers never get an empty page out of
// a non-empty collection. size must be positive.
func Paginate[T any](items []T, size, number int) Page[T] {
	total := (len(items) + size - 1) / size
	if total == 0 {
		// An empty collection still has one (empty) page.
		total = 1
	}

	if number < 1 {
		number = 1
	}

	if number > total {
		number = total
	}

	start := (number - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      number,
		TotalPages:  total,
		TotalItems:  len(items),
		HasNext:     number < total,
		HasPrevious: number > 1,
	}
}
