package deliveries

import (
	stderrors "errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/admin-console/internal/app/errors"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/app/services"
	"github.com/safatanc/admin-console/internal/app/views"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"github.com/safatanc/admin-console/pkg/querystate"
	"github.com/sirupsen/logrus"
)

// Query keys carrying the one-shot message of a page.
const (
	flashNotice = "notice"
	flashError  = "error"
)

// Values of the hidden _action field of list page forms.
const (
	actionSearch = "search"
	actionCreate = "create"
)

// listForm is the part of a list page form shared by every action. It
// is read from the body only, since the page URL carries its own search.
type listForm struct {
	Action string `form:"_action"`
	Search string `form:"search"`
}

type DashboardHandler struct {
	userService  *services.UserService
	groupService *services.GroupService
	validator    *infrastructures.Validator
	renderer     *views.Renderer
}

func NewDashboardHandler(
	userService *services.UserService,
	groupService *services.GroupService,
	validator *infrastructures.Validator,
	renderer *views.Renderer,
) *DashboardHandler {
	return &DashboardHandler{
		userService:  userService,
		groupService: groupService,
		validator:    validator,
		renderer:     renderer,
	}
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard")

	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	})

	dashboard.Get("/users", h.ListUsers)
	dashboard.Post("/users", h.PostUsers)
	dashboard.Get("/users/:id", h.ShowUser)
	dashboard.Post("/users/:id", h.UpdateUser)
	dashboard.Post("/users/:id/password", h.ChangePassword)

	dashboard.Get("/groups", h.ListGroups)
	dashboard.Post("/groups", h.PostGroups)
	dashboard.Get("/groups/:id", h.ShowGroup)
	dashboard.Post("/groups/:id", h.UpdateGroup)
}

var userColumns = []views.Column[models.User]{
	{
		Label: "Name",
		Key:   "name",
		Render: func(u models.User) template.HTML {
			return link("/dashboard/users/"+u.ID.String(), u.Name)
		},
	},
	{
		Label: "Username",
		Key:   "username",
		Value: func(u models.User) string { return u.Username },
	},
}

var groupColumns = []views.Column[models.Group]{
	{
		Label: "Name",
		Key:   "name",
		Render: func(g models.Group) template.HTML {
			return link("/dashboard/groups/"+g.ID.String(), g.Name)
		},
	},
	{
		Label: "Created",
		Key:   "created_at",
		Value: func(g models.Group) string { return g.CreatedAt.Format(time.DateTime) },
	},
	{
		Label: "Updated",
		Key:   "updated_at",
		Value: func(g models.Group) string { return g.UpdatedAt.Format(time.DateTime) },
	},
}

func link(href, text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`,
		template.HTMLEscapeString(href), template.HTMLEscapeString(text)))
}

func (h *DashboardHandler) ListUsers(c *fiber.Ctx) error {
	location, flash := requestLocation(c)
	m := querystate.NewManager(querystate.StaticLocation{URL: location}, nil)

	result, err := h.userService.ListUsers(c.UserContext(), services.ListQueryFromSnapshot(m.Read()))
	if err != nil {
		return h.renderError(c, err)
	}

	table := views.Table[models.User]{Columns: userColumns, Rows: result.Data}
	return h.render(c, fiber.StatusOK, "users.html", views.ListPage{
		Title:      "Users",
		Action:     location.String(),
		Flash:      flash,
		Search:     views.NewSearchView(m),
		Table:      table.View(m),
		Pagination: views.NewPaginationView(m, result.TotalPages),
	})
}

func (h *DashboardHandler) PostUsers(c *fiber.Ctx) error {
	location, _ := requestLocation(c)
	m := querystate.NewManager(querystate.StaticLocation{URL: location}, redirectNavigator{c: c})

	var form listForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderError(c, errors.NewBadRequestError("Invalid form"))
	}

	switch form.Action {
	case actionSearch:
		return m.Search(strings.TrimSpace(form.Search))
	case actionCreate:
		var user models.UserForm
		if err := c.BodyParser(&user); err != nil {
			return m.Set(flashError, "Invalid form")
		}
		if err := h.validator.Validate(&user); err != nil {
			return m.Set(flashError, err.Error())
		}

		_, err := h.userService.CreateUser(c.UserContext(), &models.UserCreateRequest{
			Username: user.Username,
			Password: user.Password,
			Name:     user.Name,
		})
		if err != nil {
			return m.Set(flashError, err.Error())
		}
		return m.Set(flashNotice, "User created")
	default:
		return h.renderError(c, errors.NewBadRequestError("Unknown action"))
	}
}

func (h *DashboardHandler) ShowUser(c *fiber.Ctx) error {
	_, flash := requestLocation(c)

	user, err := h.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "user_detail.html", views.UserDetailPage{
		Title:  user.Name,
		Flash:  flash,
		User:   user,
		Action: "/dashboard/users/" + user.ID.String(),
	})
}

func (h *DashboardHandler) UpdateUser(c *fiber.Ctx) error {
	m := detailManager(c, "/dashboard/users/"+c.Params("id"))

	var form models.UserInfoForm
	if err := c.BodyParser(&form); err != nil {
		return m.Set(flashError, "Invalid form")
	}
	if err := h.validator.Validate(&form); err != nil {
		return m.Set(flashError, err.Error())
	}

	_, err := h.userService.UpdateUser(c.UserContext(), c.Params("id"), &models.UserUpdateRequest{
		Username: &form.Username,
		Name:     &form.Name,
	})
	if err != nil {
		if errors.IsStatus(err, fiber.StatusNotFound) {
			return h.renderError(c, err)
		}
		return m.Set(flashError, err.Error())
	}
	return m.Set(flashNotice, "User updated")
}

func (h *DashboardHandler) ChangePassword(c *fiber.Ctx) error {
	m := detailManager(c, "/dashboard/users/"+c.Params("id"))

	var form models.PasswordForm
	if err := c.BodyParser(&form); err != nil {
		return m.Set(flashError, "Invalid form")
	}
	if err := h.validator.Validate(&form); err != nil {
		return m.Set(flashError, err.Error())
	}

	err := h.userService.ChangePassword(c.UserContext(), c.Params("id"), &models.PasswordChangeRequest{
		Password: form.Password,
	})
	if err != nil {
		if errors.IsStatus(err, fiber.StatusNotFound) {
			return h.renderError(c, err)
		}
		return m.Set(flashError, err.Error())
	}
	return m.Set(flashNotice, "Password changed")
}

func (h *DashboardHandler) ListGroups(c *fiber.Ctx) error {
	location, flash := requestLocation(c)
	m := querystate.NewManager(querystate.StaticLocation{URL: location}, nil)

	result, err := h.groupService.ListGroups(c.UserContext(), services.ListQueryFromSnapshot(m.Read()))
	if err != nil {
		return h.renderError(c, err)
	}

	table := views.Table[models.Group]{Columns: groupColumns, Rows: result.Data}
	return h.render(c, fiber.StatusOK, "groups.html", views.ListPage{
		Title:      "Groups",
		Action:     location.String(),
		Flash:      flash,
		Search:     views.NewSearchView(m),
		Table:      table.View(m),
		Pagination: views.NewPaginationView(m, result.TotalPages),
	})
}

func (h *DashboardHandler) PostGroups(c *fiber.Ctx) error {
	location, _ := requestLocation(c)
	m := querystate.NewManager(querystate.StaticLocation{URL: location}, redirectNavigator{c: c})

	var form listForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderError(c, errors.NewBadRequestError("Invalid form"))
	}

	switch form.Action {
	case actionSearch:
		return m.Search(strings.TrimSpace(form.Search))
	case actionCreate:
		var group models.GroupForm
		if err := c.BodyParser(&group); err != nil {
			return m.Set(flashError, "Invalid form")
		}
		if err := h.validator.Validate(&group); err != nil {
			return m.Set(flashError, err.Error())
		}

		_, err := h.groupService.CreateGroup(c.UserContext(), &models.GroupCreateRequest{Name: group.Name})
		if err != nil {
			return m.Set(flashError, err.Error())
		}
		return m.Set(flashNotice, "Group created")
	default:
		return h.renderError(c, errors.NewBadRequestError("Unknown action"))
	}
}

func (h *DashboardHandler) ShowGroup(c *fiber.Ctx) error {
	_, flash := requestLocation(c)

	group, err := h.groupService.GetGroup(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, fiber.StatusOK, "group_detail.html", views.GroupDetailPage{
		Title:       group.Name,
		Flash:       flash,
		Group:       group,
		Action:      "/dashboard/groups/" + group.ID.String(),
		Permissions: models.GroupPermissions,
	})
}

func (h *DashboardHandler) UpdateGroup(c *fiber.Ctx) error {
	m := detailManager(c, "/dashboard/groups/"+c.Params("id"))

	var form models.GroupForm
	if err := c.BodyParser(&form); err != nil {
		return m.Set(flashError, "Invalid form")
	}
	if err := h.validator.Validate(&form); err != nil {
		return m.Set(flashError, err.Error())
	}

	_, err := h.groupService.UpdateGroup(c.UserContext(), c.Params("id"), &models.GroupUpdateRequest{Name: &form.Name})
	if err != nil {
		if errors.IsStatus(err, fiber.StatusNotFound) {
			return h.renderError(c, err)
		}
		return m.Set(flashError, err.Error())
	}
	return m.Set(flashNotice, "Group updated")
}

func (h *DashboardHandler) render(c *fiber.Ctx, status int, page string, data interface{}) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return h.renderer.Render(c, page, data)
}

func (h *DashboardHandler) renderError(c *fiber.Ctx, err error) error {
	page := views.ErrorPage{
		Title:   "Error",
		Status:  fiber.StatusInternalServerError,
		Message: "Internal Server Error",
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		page.Status = appErr.StatusCode
		page.Message = appErr.Message
	} else {
		logrus.WithError(err).Error("dashboard request failed")
	}

	return h.render(c, page.Status, "error.html", page)
}

// requestLocation returns the URL of the request without its flash
// parameters, together with the flash they carried.
func requestLocation(c *fiber.Ctx) (*url.URL, views.Flash) {
	u, err := url.ParseRequestURI(c.OriginalURL())
	if err != nil {
		u = &url.URL{Path: c.Path()}
	}

	state := querystate.Parse(u.RawQuery)
	flash := views.Flash{
		Notice: state.Value(flashNotice, ""),
		Error:  state.Value(flashError, ""),
	}
	u.RawQuery = state.Remove(flashNotice).Remove(flashError).Encode()
	return u, flash
}

// detailManager manages the query state of the detail page at path;
// navigations redirect the current request there.
func detailManager(c *fiber.Ctx, path string) *querystate.Manager {
	return querystate.NewManager(
		querystate.StaticLocation{URL: &url.URL{Path: path}},
		redirectNavigator{c: c},
	)
}

// redirectNavigator answers a form post with a 303 to the target, which
// the browser loads in place of the post.
type redirectNavigator struct {
	c *fiber.Ctx
}

func (n redirectNavigator) Replace(target string, _ querystate.Options) error {
	return n.c.Redirect(target, fiber.StatusSeeOther)
}
