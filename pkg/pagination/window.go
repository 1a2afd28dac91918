package pagination

// WindowSize is the number of page links rendered between the
// previous and next controls.
const WindowSize = 3

// Window returns the page numbers to render as direct links for the
// given current page and total page count.
//
// Near either end the window is pinned to the first or last three
// pages; elsewhere it is centred on current. current is not clamped to
// [1, total].
func Window(current, total int) []int {
	if total <= WindowSize {
		pages := make([]int, 0, max(total, 0))
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	if current <= 2 {
		return []int{1, 2, 3}
	}

	if current >= total-1 {
		return []int{total - 2, total - 1, total}
	}

	return []int{current - 1, current, current + 1}
}

// TotalPages returns ceil(total / limit). It is 0 when total is 0 and
// when limit is not positive.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	if total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
