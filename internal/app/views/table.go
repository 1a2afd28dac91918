package views

import (
	"html/template"

	"github.com/safatanc/admin-console/pkg/querystate"
)

const DefaultEmptyMessage = "No data found."

// Column describes one column of a Table. Key is the field the column
// sorts by; Value reads the cell text and Render, when set, replaces it
// with custom markup.
type Column[T any] struct {
	Label  string
	Key    string
	Value  func(T) string
	Render func(T) template.HTML
}

// Table renders any record type through its column descriptors.
type Table[T any] struct {
	Columns      []Column[T]
	Rows         []T
	Loading      bool
	EmptyMessage string
}

// HeaderCell is a sortable column header.
type HeaderCell struct {
	Label string
	Href  string
	Icon  string
}

// TableView is the template data of a Table.
type TableView struct {
	Headers      []HeaderCell
	Rows         [][]template.HTML
	Loading      bool
	EmptyMessage string
}

func (v TableView) Empty() bool {
	return len(v.Rows) == 0
}

// View resolves headers and cells. Header links toggle the sort of
// their column in the query state of m.
func (t Table[T]) View(m *querystate.Manager) TableView {
	state := m.Read()

	view := TableView{
		Headers:      make([]HeaderCell, 0, len(t.Columns)),
		Rows:         make([][]template.HTML, 0, len(t.Rows)),
		Loading:      t.Loading,
		EmptyMessage: t.EmptyMessage,
	}
	if view.EmptyMessage == "" {
		view.EmptyMessage = DefaultEmptyMessage
	}

	for _, col := range t.Columns {
		view.Headers = append(view.Headers, HeaderCell{
			Label: col.Label,
			Href:  m.Href(querystate.SortUpdate(state, col.Key)),
			Icon:  SortIcon(querystate.SortState(state, col.Key)),
		})
	}

	for _, row := range t.Rows {
		cells := make([]template.HTML, 0, len(t.Columns))
		for _, col := range t.Columns {
			cells = append(cells, col.cell(row))
		}
		view.Rows = append(view.Rows, cells)
	}

	return view
}

func (c Column[T]) cell(row T) template.HTML {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value != nil {
		return template.HTML(template.HTMLEscapeString(c.Value(row)))
	}
	return ""
}

// SortIcon is the glyph shown next to a header.
func SortIcon(indicator querystate.SortIndicator) string {
	switch indicator {
	case querystate.Ascending:
		return "↑"
	case querystate.Descending:
		return "↓"
	default:
		return "–"
	}
}
