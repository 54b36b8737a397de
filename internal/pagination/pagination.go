// Package pagination turns an already-filtered, already-sorted result
// set into a bounded page. Ordering is the repositories' job; this
// package only computes the slice and the page metadata.
package pagination

// DefaultPageSize is applied when a request carries no pageSize.
const DefaultPageSize = 10

// Options carries pagination and sorting parameters for a query.
// SortBy and SortDirection are passed through to the repository, which
// performs the ordering.
type Options struct {
	Page          int
	PageSize      int
	SortBy        string
	SortDirection string
}

// NewOptions normalizes pagination parameters: a page below 1 becomes 1
// and a page size below 1 becomes DefaultPageSize.
func NewOptions(page, pageSize int, sortBy, sortDirection string) Options {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Options{
		Page:          page,
		PageSize:      pageSize,
		SortBy:        sortBy,
		SortDirection: sortDirection,
	}
}

// Page is one bounded slice of an ordered result set plus counts.
// TotalPages is always ceil(TotalItems / PageSize).
type Page[T any] struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// Paginate slices items according to opts. An out-of-range page yields
// an empty Items with the totals untouched; it is not an error.
func Paginate[T any](items []T, opts Options) Page[T] {
	total := len(items)

	// Integer ceiling; opts.PageSize is never below 1 after NewOptions.
	totalPages := (total + opts.PageSize - 1) / opts.PageSize

	// The offset multiplication is only safe for pages within range; a
	// huge page number would overflow it into a negative slice bound.
	sliced := []T{}
	if opts.Page <= totalPages {
		offset := (opts.Page - 1) * opts.PageSize
		end := offset + opts.PageSize
		if end > total {
			end = total
		}
		sliced = items[offset:end]
	}

	return Page[T]{
		PageNumber: opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
		TotalItems: total,
		Items:      sliced,
	}
}
