package controller

import (
	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	ListArticles(ctx *fiber.Ctx) error
	GetArticle(ctx *fiber.Ctx) error
	EmergencyContacts(ctx *fiber.Ctx) error
	GetArticleById(ctx *fiber.Ctx) error
	CreateArticle(ctx *fiber.Ctx) error
	UpdateArticle(ctx *fiber.Ctx) error
	DeleteArticle(ctx *fiber.Ctx) error
}

type resourceController struct {
	service service.IResourceService
	auth    fiber.Handler
}

func NewResourceController(service service.IResourceService, auth fiber.Handler) IResourceController {
	return &resourceController{service: service, auth: auth}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resources")
	h.Get("/", c.ListArticles)
	h.Get("/article/:slug", c.GetArticle)
	h.Get("/emergency-contacts", c.EmergencyContacts)

	staff := h.Group("/articles", c.auth, serverutils.StaffMiddleware)
	staff.Post("/", c.CreateArticle)
	staff.Get("/:id", c.GetArticleById)
	staff.Put("/:id", c.UpdateArticle)
	staff.Delete("/:id", c.DeleteArticle)
}

func (c *resourceController) ListArticles(ctx *fiber.Ctx) error {
	var req dto.ArticleListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	res, err := c.service.ListArticles(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Articles", res))
}

func (c *resourceController) GetArticle(ctx *fiber.Ctx) error {
	res, err := c.service.GetArticle(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Article", res))
}

func (c *resourceController) EmergencyContacts(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Emergency contacts", c.service.EmergencyContacts(ctx.Context())))
}

func (c *resourceController) GetArticleById(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetArticleById(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Article", res))
}

func (c *resourceController) CreateArticle(ctx *fiber.Ctx) error {
	var req dto.ArticleRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateArticle(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.ArticleResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Article created",
		Data:    res,
	})
}

func (c *resourceController) UpdateArticle(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ArticleRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateArticle(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Article updated", res))
}

func (c *resourceController) DeleteArticle(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteArticle(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Article deleted", nil))
}
