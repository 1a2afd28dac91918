package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/app/pkg"
	"github.com/safatanc/admin-console/internal/app/services"
)

type GroupHandler struct {
	groupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) RegisterRoutes(router fiber.Router) {
	groupGroup := router.Group("/groups")

	groupGroup.Get("/", h.ListGroups)
	groupGroup.Post("/", h.CreateGroup)
	groupGroup.Get("/:id", h.GetGroup)
	groupGroup.Put("/:id", h.UpdateGroup)
	groupGroup.Delete("/:id", h.DeleteGroup)
}

func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.groupService.ListGroups(c.UserContext(), listQuery(c))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, groups)
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var req models.GroupCreateRequest
	if err := pkg.ParseJSON(c, &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	group, err := h.groupService.CreateGroup(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.CreatedResponse(c, group)
}

func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	group, err := h.groupService.GetGroup(c.UserContext(), c.Params("id"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, group)
}

func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	var req models.GroupUpdateRequest
	if err := pkg.ParseJSON(c, &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	group, err := h.groupService.UpdateGroup(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, group)
}

func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.groupService.DeleteGroup(c.UserContext(), c.Params("id")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.MessageResponse{Message: "Deleted"})
}
