package controller

import (
	"errors"
	"mime/multipart"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	DownloadEvidence(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
	auth    fiber.Handler
}

func NewReportController(service service.IReportService, auth fiber.Handler) IReportController {
	return &reportController{service: service, auth: auth}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports")
	h.Post("/submit", c.Submit)

	staff := h.Group("/admin", c.auth, serverutils.StaffMiddleware)
	staff.Get("/dashboard", c.Dashboard)
	staff.Get("/report/:id", c.Detail)
	staff.Put("/report/:id/status", c.UpdateStatus)
	staff.Get("/report/:id/evidence", c.DownloadEvidence)
}

// Submit accepts multipart or JSON. No user is attached to the report even
// when the caller is logged in.
func (c *reportController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	var file *multipart.FileHeader
	fh, err := ctx.FormFile("file_upload")
	switch {
	case err == nil:
		file = fh
	case errors.Is(err, fasthttp.ErrMissingFile), errors.Is(err, fasthttp.ErrNoMultipartForm):
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file upload")
	}

	res, err := c.service.Submit(ctx.Context(), &req, file, ctx.IP())
	if err != nil {
		return httpError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.SubmitReportResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: res.Message,
		Data:    res,
	})
}

func (c *reportController) Dashboard(ctx *fiber.Ctx) error {
	var req dto.ReportDashboardRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	res, err := c.service.Dashboard(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reports", res))
}

func (c *reportController) Detail(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Detail(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Report detail", res))
}

func (c *reportController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateReportStatusRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Report status updated to "+res.StatusLabel+".", res))
}

func (c *reportController) DownloadEvidence(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	path, err := c.service.EvidencePath(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.Download(path)
}
