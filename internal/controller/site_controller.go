package controller

import (
	"eveshield-be/internal/config"
	"eveshield-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ISiteController interface {
	RegisterRoutes(r fiber.Router)
	GetSite(ctx *fiber.Ctx) error
}

type siteController struct {
	site config.SiteConfig
}

func NewSiteController(site config.SiteConfig) ISiteController {
	return &siteController{site: site}
}

func (c *siteController) RegisterRoutes(r fiber.Router) {
	r.Get("/site", c.GetSite)
}

func (c *siteController) GetSite(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Site configuration", c.site))
}
