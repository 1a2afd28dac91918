package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_SmallTotals(t *testing.T) {
	for total := 0; total <= 3; total++ {
		for current := -1; current <= 5; current++ {
			expected := []int{}
			for i := 1; i <= total; i++ {
				expected = append(expected, i)
			}
			assert.Equal(t, expected, Window(current, total), "current=%d total=%d", current, total)
		}
	}
}

func TestWindow_EmptyWhenNoPages(t *testing.T) {
	assert.Empty(t, Window(1, 0))
	assert.Equal(t, []int{1}, Window(1, 1))
}

func TestWindow_PinnedToStart(t *testing.T) {
	for total := 4; total <= 20; total++ {
		assert.Equal(t, []int{1, 2, 3}, Window(1, total))
		assert.Equal(t, []int{1, 2, 3}, Window(2, total))
	}
}

func TestWindow_PinnedToEnd(t *testing.T) {
	for total := 4; total <= 20; total++ {
		expected := []int{total - 2, total - 1, total}
		assert.Equal(t, expected, Window(total-1, total))
		assert.Equal(t, expected, Window(total, total))
	}
}

func TestWindow_Centred(t *testing.T) {
	for total := 5; total <= 20; total++ {
		for current := 3; current < total-1; current++ {
			got := Window(current, total)
			assert.Equal(t, []int{current - 1, current, current + 1}, got)
			assert.Contains(t, got, current)
		}
	}
}

func TestWindow_Examples(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{"first of four", 1, 4, []int{1, 2, 3}},
		{"third of four", 3, 4, []int{2, 3, 4}},
		{"middle of ten", 5, 10, []int{4, 5, 6}},
		{"second last of ten", 9, 10, []int{8, 9, 10}},
		{"beyond last", 12, 10, []int{8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Window(tt.current, tt.total))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 0, TotalPages(25, 0))
}

func TestTotalPages_LargeLimits(t *testing.T) {
	assert.Equal(t, 1, TotalPages(25, math.MaxInt))
	assert.Equal(t, 1, TotalPages(math.MaxInt64, math.MaxInt))
	assert.Equal(t, 0, TotalPages(0, math.MaxInt))
	assert.Equal(t, 2, TotalPages(math.MaxInt64, math.MaxInt64/2+1))
}
