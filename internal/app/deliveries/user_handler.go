package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/app/pkg"
	"github.com/safatanc/admin-console/internal/app/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userGroup := router.Group("/users")

	userGroup.Get("/", h.ListUsers)
	userGroup.Post("/", h.CreateUser)
	userGroup.Get("/:id", h.GetUser)
	userGroup.Put("/:id", h.UpdateUser)
	userGroup.Delete("/:id", h.DeleteUser)
	userGroup.Put("/:id/password", h.ChangePassword)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext(), listQuery(c))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, users)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.UserCreateRequest
	if err := pkg.ParseJSON(c, &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.CreatedResponse(c, user)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req models.UserUpdateRequest
	if err := pkg.ParseJSON(c, &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.MessageResponse{Message: "Deleted"})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req models.PasswordChangeRequest
	if err := pkg.ParseJSON(c, &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.userService.ChangePassword(c.UserContext(), c.Params("id"), &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.SuccessResponse{Success: true})
}

// listQuery reads the list parameters from the request query string.
func listQuery(c *fiber.Ctx) models.ListQuery {
	return services.NewListQuery(
		c.Query("page"),
		c.Query("limit"),
		c.Query("column"),
		c.Query("sort"),
		c.Query("search"),
	)
}
