package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/safatanc/admin-console/internal/app/errors"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/pkg/pagination"
	"github.com/safatanc/admin-console/pkg/querystate"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultSortColumn = "name"

// Resource describes how the records of one table are searched and
// sorted by the list engine.
type Resource struct {
	Name string
	// SearchFields are matched against the search term as a
	// case-insensitive substring; a record matches if any field does.
	SearchFields []string
	// SortableFields is the allow-list for the sort column.
	SortableFields []string
}

var (
	UserResource = Resource{
		Name:           "users",
		SearchFields:   []string{"username", "name"},
		SortableFields: []string{"name", "username"},
	}

	GroupResource = Resource{
		Name:           "groups",
		SearchFields:   []string{"name"},
		SortableFields: []string{"name", "created_at", "updated_at"},
	}
)

// NewListQuery normalizes raw list parameters. Missing, unparseable or
// non-positive page and limit fall back to their defaults, limit is
// capped at querystate.MaxLimit and any sort other than "desc" becomes
// "asc".
func NewListQuery(page, limit, column, sort, search string) models.ListQuery {
	q := models.ListQuery{
		Search: strings.ToLower(strings.TrimSpace(search)),
		Column: column,
		Sort:   models.SortAsc,
		Page:   parsePositive(page, querystate.DefaultPage),
		Limit:  parsePositive(limit, querystate.DefaultLimit),
	}
	if q.Limit > querystate.MaxLimit {
		q.Limit = querystate.MaxLimit
	}
	if q.Column == "" {
		q.Column = DefaultSortColumn
	}
	if sort == models.SortDesc {
		q.Sort = models.SortDesc
	}
	return q
}

// ListQueryFromSnapshot reads list parameters from a URL query snapshot.
func ListQueryFromSnapshot(s querystate.Snapshot) models.ListQuery {
	get := func(key string) string {
		v, _ := s.Get(key)
		return v
	}
	return NewListQuery(
		get(querystate.KeyPage),
		get(querystate.KeyLimit),
		get(querystate.KeyColumn),
		get(querystate.KeySort),
		get(querystate.KeySearch),
	)
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Sortable reports whether column is in the allow-list.
func (r Resource) Sortable(column string) bool {
	for _, f := range r.SortableFields {
		if f == column {
			return true
		}
	}
	return false
}

func (r Resource) validate(q models.ListQuery) error {
	if !r.Sortable(q.Column) {
		return errors.NewBadRequestError(fmt.Sprintf("Invalid sort column %q for %s", q.Column, r.Name))
	}
	if q.Page < 1 || q.Limit < 1 {
		return errors.NewBadRequestError("Page and limit must be positive")
	}
	if q.Limit > querystate.MaxLimit {
		return errors.NewBadRequestError(fmt.Sprintf("Limit must be at most %d", querystate.MaxLimit))
	}
	return nil
}

// filter restricts tx to the records matching q.Search.
func (r Resource) filter(tx *gorm.DB, q models.ListQuery) *gorm.DB {
	if q.Search == "" {
		return tx
	}

	pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
	conditions := make([]clause.Expression, 0, len(r.SearchFields))
	for _, field := range r.SearchFields {
		conditions = append(conditions, clause.Expr{
			SQL:  "LOWER(?) LIKE ? ESCAPE ?",
			Vars: []interface{}{clause.Column{Name: field}, pattern, `\`},
		})
	}
	return tx.Where(clause.Or(conditions...))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// List returns one page of T matching q together with the total number
// of matches. The page and the count are fetched concurrently and both
// must succeed.
func List[T any](ctx context.Context, db *gorm.DB, resource Resource, q models.ListQuery) (*models.ListResponse[T], error) {
	if err := resource.validate(q); err != nil {
		return nil, err
	}

	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return resource.filter(db.WithContext(gctx).Model(new(T)), q).
			Order(clause.OrderByColumn{Column: clause.Column{Name: q.Column}, Desc: q.Descending()}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
			Offset(q.Offset()).
			Limit(q.Limit).
			Find(&items).Error
	})

	g.Go(func() error {
		return resource.filter(db.WithContext(gctx).Model(new(T)), q).
			Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewInternalServerError(err, fmt.Sprintf("Failed to list %s", resource.Name))
	}

	if items == nil {
		items = []T{}
	}

	return &models.ListResponse[T]{
		Data:       items,
		Total:      total,
		Page:       q.Page,
		TotalPages: pagination.TotalPages(total, q.Limit),
	}, nil
}
