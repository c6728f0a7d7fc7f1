package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 1},
		{raw: "1", want: 1},
		{raw: "7", want: 7},
		{raw: "0", want: 1},
		{raw: "-2", want: 1},
		{raw: "abc", want: 1},
		{raw: "2x", want: 1},
		{raw: "1.5", want: 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Number(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPaginateFullAndPartialPages(t *testing.T) {
	// 17 items with size 10 gives a full first page and 7 on the second.
	items := makeItems(17)

	page1 := Paginate(items, 10, 1)
	require.Len(t, page1.Items, 10)
	require.Equal(t, 1, page1.Number)
	require.Equal(t, 2, page1.TotalPages)
	require.True(t, page1.HasNext)
	require.False(t, page1.HasPrevious)

	page2 := Paginate(items, 10, 2)
	require.Len(t, page2.Items, 7)
	require.Equal(t, 2, page2.Number)
	require.False(t, page2.HasNext)
	require.True(t, page2.HasPrevious)
	require.Equal(t, 10, page2.Items[0])
}

func TestPaginatePageCount(t *testing.T) {
	tests := []struct {
		n          int
		size       int
		totalPages int
		lastLen    int
	}{
		{n: 0, size: 10, totalPages: 1, lastLen: 0},
		{n: 1, size: 10, totalPages: 1, lastLen: 1},
		{n: 10, size: 10, totalPages: 1, lastLen: 10},
		{n: 11, size: 10, totalPages: 2, lastLen: 1},
		{n: 30, size: 10, totalPages: 3, lastLen: 10},
		{n: 7, size: 3, totalPages: 3, lastLen: 1},
	}

	for _, tt := range tests {
		items := makeItems(tt.n)
		last := Paginate(items, tt.size, tt.totalPages)
		require.Equal(t, tt.totalPages, last.TotalPages, "n=%d size=%d", tt.n, tt.size)
		require.Len(t, last.Items, tt.lastLen, "n=%d size=%d", tt.n, tt.size)

		// Every page except the last is full.
		for number := 1; number < tt.totalPages; number++ {
			page := Paginate(items, tt.size, number)
			require.Len(t, page.Items, tt.size)
		}
	}
}

func TestPaginateDefaultsAndClamping(t *testing.T) {
	items := makeItems(25)

	// Invalid numbers default to the first page.
	require.Equal(t, 1, Paginate(items, 10, 0).Number)
	require.Equal(t, 1, Paginate(items, 10, -3).Number)

	// Past-the-end numbers clamp to the last page instead of erroring.
	page := Paginate(items, 10, 99)
	require.Equal(t, 3, page.Number)
	require.Len(t, page.Items, 5)
	require.Equal(t, 20, page.Items[0])
}

func TestPaginatePreservesOrder(t *testing.T) {
	items := makeItems(12)
	page := Paginate(items, 5, 2)
	require.Equal(t, []int{5, 6, 7, 8, 9}, page.Items)
}
