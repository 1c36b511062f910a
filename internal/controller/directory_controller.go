package controller

import (
	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IDirectoryController serves the lawyer directory under /lawyers and the
// therapist directory under /mental-health/therapists.
type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)

	ListLawyers(ctx *fiber.Ctx) error
	GetLawyer(ctx *fiber.Ctx) error
	CreateLawyer(ctx *fiber.Ctx) error
	UpdateLawyer(ctx *fiber.Ctx) error
	SetLawyerActive(ctx *fiber.Ctx) error
	DeleteLawyer(ctx *fiber.Ctx) error

	ListTherapists(ctx *fiber.Ctx) error
	GetTherapist(ctx *fiber.Ctx) error
	CreateTherapist(ctx *fiber.Ctx) error
	UpdateTherapist(ctx *fiber.Ctx) error
	SetTherapistActive(ctx *fiber.Ctx) error
	DeleteTherapist(ctx *fiber.Ctx) error
}

type directoryController struct {
	service service.IDirectoryService
	auth    fiber.Handler
}

func NewDirectoryController(service service.IDirectoryService, auth fiber.Handler) IDirectoryController {
	return &directoryController{service: service, auth: auth}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	staff := []fiber.Handler{c.auth, serverutils.StaffMiddleware}

	lawyers := r.Group("/lawyers")
	lawyers.Get("/", c.ListLawyers)
	lawyers.Post("/", append(staff, c.CreateLawyer)...)
	lawyers.Get("/:id", append(staff, c.GetLawyer)...)
	lawyers.Put("/:id", append(staff, c.UpdateLawyer)...)
	lawyers.Patch("/:id/active", append(staff, c.SetLawyerActive)...)
	lawyers.Delete("/:id", append(staff, c.DeleteLawyer)...)

	therapists := r.Group("/mental-health/therapists")
	therapists.Get("/", c.ListTherapists)
	therapists.Post("/", append(staff, c.CreateTherapist)...)
	therapists.Get("/:id", append(staff, c.GetTherapist)...)
	therapists.Put("/:id", append(staff, c.UpdateTherapist)...)
	therapists.Patch("/:id/active", append(staff, c.SetTherapistActive)...)
	therapists.Delete("/:id", append(staff, c.DeleteTherapist)...)
}

func parseDirectoryQuery(ctx *fiber.Ctx) (dto.DirectoryListRequest, error) {
	var req dto.DirectoryListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	return req, nil
}

func parseSetActive(ctx *fiber.Ctx) (bool, error) {
	var req dto.SetActiveRequest
	if err := parseBody(ctx, &req); err != nil {
		return false, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return false, err
	}
	return *req.IsActive, nil
}

func (c *directoryController) ListLawyers(ctx *fiber.Ctx) error {
	req, err := parseDirectoryQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListLawyers(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyers", res))
}

func (c *directoryController) GetLawyer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetLawyer(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyer detail", res))
}

func (c *directoryController) CreateLawyer(ctx *fiber.Ctx) error {
	var req dto.LawyerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateLawyer(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.LawyerResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Lawyer created",
		Data:    res,
	})
}

func (c *directoryController) UpdateLawyer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.LawyerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateLawyer(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyer updated", res))
}

func (c *directoryController) SetLawyerActive(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	active, err := parseSetActive(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SetLawyerActive(ctx.Context(), id, active)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyer updated", res))
}

func (c *directoryController) DeleteLawyer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteLawyer(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Lawyer deleted", nil))
}

func (c *directoryController) ListTherapists(ctx *fiber.Ctx) error {
	req, err := parseDirectoryQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListTherapists(ctx.Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Therapists", res))
}

func (c *directoryController) GetTherapist(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetTherapist(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Therapist detail", res))
}

func (c *directoryController) CreateTherapist(ctx *fiber.Ctx) error {
	var req dto.TherapistRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTherapist(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.TherapistResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Therapist created",
		Data:    res,
	})
}

func (c *directoryController) UpdateTherapist(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.TherapistRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTherapist(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Therapist updated", res))
}

func (c *directoryController) SetTherapistActive(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	active, err := parseSetActive(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SetTherapistActive(ctx.Context(), id, active)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Therapist updated", res))
}

func (c *directoryController) DeleteTherapist(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteTherapist(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Therapist deleted", nil))
}
