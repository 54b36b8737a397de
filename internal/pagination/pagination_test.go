package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chefbook/internal/pagination"
)

func TestNewOptions_Normalization(t *testing.T) {
	opts := pagination.NewOptions(0, 0, "name", "asc")
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, pagination.DefaultPageSize, opts.PageSize)

	opts = pagination.NewOptions(-3, -1, "name", "desc")
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, pagination.DefaultPageSize, opts.PageSize)

	opts = pagination.NewOptions(2, 5, "id", "asc")
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 5, opts.PageSize)
}

func TestPaginate_SliceAndCounts(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := pagination.Paginate(items, pagination.NewOptions(1, 3, "", ""))
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, []int{1, 2, 3}, page.Items)

	page = pagination.Paginate(items, pagination.NewOptions(3, 3, "", ""))
	assert.Equal(t, []int{7}, page.Items)
}

func TestPaginate_PagesPartitionResultSet(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}
	const pageSize = 5

	seen := make(map[int]int)
	total := 0
	page := pagination.Paginate(items, pagination.NewOptions(1, pageSize, "", ""))
	for p := 1; p <= page.TotalPages; p++ {
		page = pagination.Paginate(items, pagination.NewOptions(p, pageSize, "", ""))
		assert.LessOrEqual(t, len(page.Items), pageSize)
		for _, item := range page.Items {
			seen[item]++
		}
		total += len(page.Items)
	}

	assert.Equal(t, len(items), total)
	for item, count := range seen {
		assert.Equal(t, 1, count, "item %d appeared on more than one page", item)
	}
}

func TestPaginate_OutOfRangePageIsEmpty(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := pagination.Paginate(items, pagination.NewOptions(2, 10, "", ""))
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.PageNumber)
}

func TestPaginate_HugePageNumber(t *testing.T) {
	items := []int{1, 2, 3}

	// A page number large enough to overflow the offset multiplication
	// is still just an out-of-range page, not a panic.
	page := pagination.Paginate(items, pagination.NewOptions(math.MaxInt, 10, "", ""))
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, math.MaxInt, page.PageNumber)

	// Largest page number whose offset still multiplies out of range
	// without overflowing.
	page = pagination.Paginate(items, pagination.NewOptions(math.MaxInt/10, 10, "", ""))
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalItems)
}

func TestPaginate_EmptyInput(t *testing.T) {
	page := pagination.Paginate([]string{}, pagination.NewOptions(1, 10, "", ""))
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	page := pagination.Paginate(items, pagination.NewOptions(1, 3, "", ""))
	assert.Equal(t, 2, page.TotalPages)

	page = pagination.Paginate(items, pagination.NewOptions(2, 3, "", ""))
	assert.Equal(t, []int{4, 5, 6}, page.Items)

	// One past the last page: empty items, totals unchanged.
	page = pagination.Paginate(items, pagination.NewOptions(3, 3, "", ""))
	assert.Empty(t, page.Items)
	assert.Equal(t, 6, page.TotalItems)
}
