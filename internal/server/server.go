package server

import (
	"context"
	"errors"

	"eveshield-be/internal/bootstrap"
	"eveshield-be/internal/config"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// multipart framing and the text fields ride on top of the evidence file
const bodySlack = 1 << 20

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.Limits.MaxUploadBytes) + bodySlack,
		ErrorHandler: errorHandler(container.Logger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	}))
	app.Use(otelfiber.Middleware())

	// evidence files are deliberately not served statically; staff fetch
	// them through /api/reports/admin/report/:id/evidence
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// errorHandler records unexpected failures before rendering them.
func errorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		var verr *serverutils.ValidationError
		if !errors.As(err, &ferr) && !errors.As(err, &verr) {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		return serverutils.ErrorHandler(ctx, err)
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("HTTP", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.SiteController.RegisterRoutes(api)
	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)

	c.ReportController.RegisterRoutes(api)
	c.DirectoryController.RegisterRoutes(api)
	c.ChatbotController.RegisterRoutes(api)
	c.ResourceController.RegisterRoutes(api)

	c.AdminController.RegisterRoutes(api)
}
