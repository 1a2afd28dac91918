package views

import (
	"github.com/safatanc/admin-console/pkg/pagination"
	"github.com/safatanc/admin-console/pkg/querystate"
)

type PageLink struct {
	Number int
	Href   string
	Active bool
}

type LimitOption struct {
	Value    int
	Href     string
	Selected bool
}

// PaginationView is the template data of the pagination control. An
// empty PrevHref or NextHref disables that control.
type PaginationView struct {
	Current  int
	PrevHref string
	NextHref string
	Pages    []PageLink
	Limits   []LimitOption
}

// NewPaginationView builds the pagination control for totalPages pages.
// A totalPages below 1 is shown as a single page.
func NewPaginationView(m *querystate.Manager, totalPages int) PaginationView {
	state := m.Read()
	current := querystate.CurrentPage(state)
	perPage := querystate.PerPage(state)
	if totalPages < 1 {
		totalPages = 1
	}

	view := PaginationView{Current: current}

	if current > 1 {
		view.PrevHref = m.Href(querystate.PageUpdate(current - 1))
	}
	if current < totalPages {
		view.NextHref = m.Href(querystate.PageUpdate(current + 1))
	}

	for _, page := range pagination.Window(current, totalPages) {
		view.Pages = append(view.Pages, PageLink{
			Number: page,
			Href:   m.Href(querystate.PageUpdate(page)),
			Active: page == current,
		})
	}

	for _, limit := range querystate.PageLengths {
		view.Limits = append(view.Limits, LimitOption{
			Value:    limit,
			Href:     m.Href(querystate.LimitUpdate(limit)),
			Selected: limit == perPage,
		})
	}

	return view
}

// SearchView is the template data of the search box.
type SearchView struct {
	Value     string
	ClearHref string
}

func NewSearchView(m *querystate.Manager) SearchView {
	return SearchView{
		Value:     m.Read().Value(querystate.KeySearch, ""),
		ClearHref: m.HrefWithout(querystate.KeySearch),
	}
}
