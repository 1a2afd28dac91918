package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/safatanc/admin-console/internal/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"users.html",
	"user_detail.html",
	"groups.html",
	"group_detail.html",
	"error.html",
}

// Renderer executes the dashboard templates. Each page is parsed
// together with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Flash is a one-shot message shown at the top of a page.
type Flash struct {
	Notice string
	Error  string
}

// ListPage is the data of the users and groups list pages.
type ListPage struct {
	Title      string
	Action     string
	Flash      Flash
	Search     SearchView
	Table      TableView
	Pagination PaginationView
}

// UserDetailPage is the data of the user detail page.
type UserDetailPage struct {
	Title  string
	Flash  Flash
	User   *models.User
	Action string
}

// GroupDetailPage is the data of the group detail page.
type GroupDetailPage struct {
	Title       string
	Flash       Flash
	Group       *models.Group
	Action      string
	Permissions []models.Permission
}

// ErrorPage is the data of the error page.
type ErrorPage struct {
	Title   string
	Flash   Flash
	Status  int
	Message string
}
