package querystate

import "strconv"

// Query keys shared by list views and list endpoints.
const (
	KeyPage   = "page"
	KeyLimit  = "limit"
	KeyColumn = "column"
	KeySort   = "sort"
	KeySearch = "search"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit is the largest page size served; larger limits are capped.
	MaxLimit = 200
)

// PageLengths are the page sizes offered by list views.
var PageLengths = []int{10, 25, 50, 100, 200}

// SortIndicator describes how a column header is currently sorted.
type SortIndicator int

const (
	Unsorted SortIndicator = iota
	Ascending
	Descending
)

// CurrentPage returns the page in s, or DefaultPage.
func CurrentPage(s Snapshot) int {
	return positiveInt(s, KeyPage, DefaultPage)
}

// PerPage returns the limit in s capped at MaxLimit, or DefaultLimit.
func PerPage(s Snapshot) int {
	return min(positiveInt(s, KeyLimit, DefaultLimit), MaxLimit)
}

func positiveInt(s Snapshot, key string, fallback int) int {
	n, err := strconv.Atoi(s.Value(key, ""))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// SortState reports the indicator for column.
func SortState(s Snapshot, column string) SortIndicator {
	current, _ := s.Get(KeyColumn)
	if current != column {
		return Unsorted
	}
	switch v, _ := s.Get(KeySort); v {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	}
	return Unsorted
}

// NextSort returns the sort direction a click on a header produces.
func NextSort(s Snapshot) string {
	if v, _ := s.Get(KeySort); v == "asc" {
		return "desc"
	}
	return "asc"
}

// PageUpdate is the update for jumping to page.
func PageUpdate(page int) map[string]string {
	return map[string]string{KeyPage: strconv.Itoa(page)}
}

// LimitUpdate changes the page size and returns to the first page.
func LimitUpdate(limit int) map[string]string {
	return map[string]string{KeyLimit: strconv.Itoa(limit), KeyPage: "1"}
}

// SortUpdate is the update for clicking the header of column.
func SortUpdate(s Snapshot, column string) map[string]string {
	return map[string]string{KeyColumn: column, KeySort: NextSort(s)}
}

// GoToPage navigates to page.
func (m *Manager) GoToPage(page int) error {
	return m.SetMany(PageUpdate(page))
}

// ChangeLimit navigates to the first page with the new page size.
func (m *Manager) ChangeLimit(limit int) error {
	return m.SetMany(LimitUpdate(limit))
}

// Search applies term and returns to the first page. An empty term
// clears the search instead.
func (m *Manager) Search(term string) error {
	if term == "" {
		return m.Remove(KeySearch)
	}
	return m.SetMany(map[string]string{KeySearch: term, KeyPage: "1"})
}

// ToggleSort sorts by column, flipping the direction on each call.
func (m *Manager) ToggleSort(column string) error {
	return m.SetMany(SortUpdate(m.Read(), column))
}
