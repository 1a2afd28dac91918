package deliveries

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (a *testApp) createGroup(t *testing.T, name string) *models.Group {
	t.Helper()
	group, err := a.groupService.CreateGroup(context.Background(), &models.GroupCreateRequest{Name: name})
	require.NoError(t, err)
	return group
}

func TestGroupHandler_ListGroups(t *testing.T) {
	a := newTestApp(t)
	a.createGroup(t, "Editors")
	a.createGroup(t, "Admins")
	a.createGroup(t, "Viewers")

	resp := a.do(t, http.MethodGet, "/api/groups?column=name&sort=desc&limit=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ListResponse[models.Group]
	decode(t, resp, &body)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Viewers", body.Data[0].Name)
	assert.Equal(t, "Editors", body.Data[1].Name)
	assert.Equal(t, int64(3), body.Total)
	assert.Equal(t, 2, body.TotalPages)
}

func TestGroupHandler_ListGroupsSearch(t *testing.T) {
	a := newTestApp(t)
	a.createGroup(t, "Admins")
	a.createGroup(t, "Viewers")

	resp := a.do(t, http.MethodGet, "/api/groups?search=view", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ListResponse[models.Group]
	decode(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Viewers", body.Data[0].Name)
}

func TestGroupHandler_CreateGroup(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodPost, "/api/groups", `{"name":"Admins"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body models.Group
	decode(t, resp, &body)
	assert.Equal(t, "Admins", body.Name)
	assert.NotEqual(t, uuid.Nil, body.ID)

	resp = a.do(t, http.MethodPost, "/api/groups", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGroupHandler_GetUpdateDeleteGroup(t *testing.T) {
	a := newTestApp(t)
	group := a.createGroup(t, "Admins")
	path := "/api/groups/" + group.ID.String()

	resp := a.do(t, http.MethodPut, path, `{"name":"Operators"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body models.Group
	decode(t, resp, &body)
	assert.Equal(t, "Operators", body.Name)

	resp = a.do(t, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Deleted"}`, readBody(t, resp))

	resp = a.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGroupHandler_DeleteGroupLeavesUsers(t *testing.T) {
	a := newTestApp(t)
	user := a.createUser(t, "admin", "Admin User")

	resp := a.do(t, http.MethodDelete, "/api/groups/"+user.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/users/"+user.ID.String(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
