package controller

import (
	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetOverview(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error

	GetNotifications(ctx *fiber.Ctx) error
	MarkNotificationRead(ctx *fiber.Ctx) error
	MarkAllNotificationsRead(ctx *fiber.Ctx) error

	GetUsers(ctx *fiber.Ctx) error
	CreateUser(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
}

type adminController struct {
	service       service.IAdminService
	notifications service.INotificationService
	auth          fiber.Handler
}

func NewAdminController(service service.IAdminService, notifications service.INotificationService, auth fiber.Handler) IAdminController {
	return &adminController{
		service:       service,
		notifications: notifications,
		auth:          auth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", c.auth, serverutils.StaffMiddleware)

	h.Get("/overview", c.GetOverview)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)

	h.Get("/notifications", c.GetNotifications)
	h.Patch("/notifications/:id/read", c.MarkNotificationRead)
	h.Post("/notifications/read-all", c.MarkAllNotificationsRead)

	h.Get("/users", c.GetUsers)
	h.Post("/users", c.CreateUser)
	h.Put("/users/:id", c.UpdateUser)
	h.Delete("/users/:id", c.DeleteUser)
}

func (c *adminController) GetOverview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.Context())
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Overview", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.LogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	res, err := c.service.GetSystemLogs(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

// GetLogDetail takes the log's content hash, not a uuid.
func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", res))
}

func (c *adminController) GetNotifications(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.notifications.List(ctx.Context(), userId, ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Notifications", res))
}

func (c *adminController) MarkNotificationRead(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.notifications.MarkAsRead(ctx.Context(), userId, id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (c *adminController) MarkAllNotificationsRead(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	if err := c.notifications.MarkAllAsRead(ctx.Context(), userId); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("All notifications marked as read", nil))
}

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	var req dto.AdminUserListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	res, err := c.service.ListUsers(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Users", res))
}

func (c *adminController) CreateUser(ctx *fiber.Ctx) error {
	var req dto.AdminCreateUserRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateUser(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.AdminUserResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "User created",
		Data:    res,
	})
}

func (c *adminController) UpdateUser(ctx *fiber.Ctx) error {
	actorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AdminUpdateUserRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateUser(ctx.Context(), actorId, id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	actorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteUser(ctx.Context(), actorId, id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}
