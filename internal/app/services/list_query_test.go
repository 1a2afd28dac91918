package services

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/safatanc/admin-console/internal/app/errors"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/pkg/querystate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListQuery(t *testing.T) {
	tests := []struct {
		name                             string
		page, limit, column, sort, query string
		expected                         models.ListQuery
	}{
		{
			name:     "defaults",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 10},
		},
		{
			name: "explicit values",
			page: "3", limit: "25", column: "username", sort: "desc", query: "  Adm ",
			expected: models.ListQuery{Search: "adm", Column: "username", Sort: "desc", Page: 3, Limit: 25},
		},
		{
			name: "unparseable numbers and unknown sort",
			page: "abc", limit: "-5", sort: "sideways",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 10},
		},
		{
			name: "zero page",
			page: "0",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 10},
		},
		{
			name: "negative page",
			page: "-3",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 10},
		},
		{
			name: "limit at the cap",
			limit: "200",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 200},
		},
		{
			name: "limit above the cap",
			limit: "201",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 200},
		},
		{
			name: "max int limit",
			limit: "9223372036854775807",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 200},
		},
		{
			name: "numbers that do not fit an int",
			page: "99999999999999999999", limit: "99999999999999999999",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: 10},
		},
		{
			name: "huge page is kept",
			page: "4611686018427387904", limit: "4",
			expected: models.ListQuery{Column: "name", Sort: "asc", Page: 4611686018427387904, Limit: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewListQuery(tt.page, tt.limit, tt.column, tt.sort, tt.query)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestListQueryFromSnapshot(t *testing.T) {
	q := ListQueryFromSnapshot(querystate.Parse("page=2&limit=50&column=username&sort=desc&search=bob"))
	assert.Equal(t, models.ListQuery{Search: "bob", Column: "username", Sort: "desc", Page: 2, Limit: 50}, q)
	assert.Equal(t, 50, q.Offset())
}

func TestListQuery_OffsetSaturates(t *testing.T) {
	q := models.ListQuery{Page: 4611686018427387904, Limit: 4}
	assert.Equal(t, math.MaxInt, q.Offset())

	q = models.ListQuery{Page: math.MaxInt, Limit: querystate.MaxLimit}
	assert.Equal(t, math.MaxInt, q.Offset())

	q = models.ListQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Offset())

	assert.Zero(t, models.ListQuery{}.Offset())
}

func TestList_HugeLimitIsCapped(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(25)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("1", "9223372036854775807", "", "", ""))
	require.NoError(t, err)

	assert.Len(t, result.Data, 25)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestList_UnaddressablePageIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(25)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("4611686018427387904", "4", "", "", ""))
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 7, result.TotalPages)
	assert.Equal(t, 4611686018427387904, result.Page)
}

func TestList_RejectsLimitAboveCap(t *testing.T) {
	db := setupTestDB(t)

	_, err := List[models.User](context.Background(), db, UserResource, models.ListQuery{Column: "name", Sort: "asc", Page: 1, Limit: querystate.MaxLimit + 1})
	assert.True(t, errors.IsStatus(err, http.StatusBadRequest))
}

func TestList_FirstPage(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(25)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("1", "10", "name", "asc", ""))
	require.NoError(t, err)

	assert.Len(t, result.Data, 10)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, "User 01", result.Data[0].Name)
	assert.Equal(t, "User 10", result.Data[9].Name)
}

func TestList_LastPage(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(25)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("3", "10", "", "", ""))
	require.NoError(t, err)

	assert.Len(t, result.Data, 5)
	assert.Equal(t, "User 21", result.Data[0].Name)
	assert.Equal(t, 3, result.TotalPages)
}

func TestList_PageBeyondEnd(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(5)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("4", "10", "", "", ""))
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestList_Descending(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db, numberedUsers(12)...)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("1", "5", "username", "desc", ""))
	require.NoError(t, err)

	require.Len(t, result.Data, 5)
	assert.Equal(t, "user12", result.Data[0].Username)
	assert.Equal(t, "user08", result.Data[4].Username)
}

func TestList_Search(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db,
		models.User{Username: "admin", Name: "Admin User"},
		models.User{Username: "bob", Name: "Bob"},
	)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "", "", "adm"))
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "admin", result.Data[0].Username)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestList_SearchMatchesAnyFieldCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db,
		models.User{Username: "jdoe", Name: "Jane DOE"},
		models.User{Username: "doe.john", Name: "John"},
		models.User{Username: "alice", Name: "Alice"},
	)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "", "", "Doe"))
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	names := []string{result.Data[0].Name, result.Data[1].Name}
	assert.ElementsMatch(t, []string{"Jane DOE", "John"}, names)
}

func TestList_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	seedUsers(t, db,
		models.User{Username: "a_b", Name: "Underscore"},
		models.User{Username: "axb", Name: "Plain"},
		models.User{Username: "100%", Name: "Percent"},
	)

	result, err := List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "", "", "a_b"))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "a_b", result.Data[0].Username)

	result, err = List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "", "", "0%"))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "100%", result.Data[0].Username)
}

func TestList_Empty(t *testing.T) {
	db := setupTestDB(t)

	result, err := List[models.Group](context.Background(), db, GroupResource, NewListQuery("", "", "", "", ""))
	require.NoError(t, err)

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 0, result.TotalPages)
}

func TestList_RejectsUnknownColumn(t *testing.T) {
	db := setupTestDB(t)

	_, err := List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "password", "", ""))
	require.Error(t, err)
	assert.True(t, errors.IsStatus(err, http.StatusBadRequest))

	_, err = List[models.Group](context.Background(), db, GroupResource, NewListQuery("", "", "username", "", ""))
	require.Error(t, err)
	assert.True(t, errors.IsStatus(err, http.StatusBadRequest))
}

func TestList_StoreFailure(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = List[models.User](context.Background(), db, UserResource, NewListQuery("", "", "", "", ""))
	require.Error(t, err)
	assert.True(t, errors.IsStatus(err, http.StatusInternalServerError))
}

func TestList_GroupsByCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ops", "Admins", "Support"} {
		group := models.Group{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, db.Create(&group).Error)
	}

	result, err := List[models.Group](context.Background(), db, GroupResource, NewListQuery("", "", "created_at", "desc", ""))
	require.NoError(t, err)

	require.Len(t, result.Data, 3)
	assert.Equal(t, "Support", result.Data[0].Name)
	assert.Equal(t, "Ops", result.Data[2].Name)
}
