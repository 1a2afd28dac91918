package deliveries

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safatanc/admin-console/internal/app/pkg"
	"github.com/safatanc/admin-console/internal/app/services"
	"github.com/safatanc/admin-console/internal/app/views"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	app          *fiber.App
	db           *gorm.DB
	userService  *services.UserService
	groupService *services.GroupService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, infrastructures.Migrate(db))

	validator := infrastructures.NewValidator()
	userService := services.NewUserService(db, validator)
	groupService := services.NewGroupService(db, validator)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: pkg.ErrorHandler})
	NewHealthHandler().RegisterRoutes(app)
	api := app.Group("/api")
	NewUserHandler(userService).RegisterRoutes(api)
	NewGroupHandler(groupService).RegisterRoutes(api)
	NewDashboardHandler(userService, groupService, validator, renderer).RegisterRoutes(app)

	return &testApp{
		app:          app,
		db:           db,
		userService:  userService,
		groupService: groupService,
	}
}

func (a *testApp) do(t *testing.T, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a *testApp) postForm(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
