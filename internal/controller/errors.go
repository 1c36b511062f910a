package controller

import (
	"errors"

	"eveshield-be/internal/pkg/evidence"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var statusBySentinel = []struct {
	err  error
	code int
}{
	{service.ErrReportNotFound, fiber.StatusNotFound},
	{service.ErrEvidenceNotFound, fiber.StatusNotFound},
	{service.ErrLawyerNotFound, fiber.StatusNotFound},
	{service.ErrTherapistNotFound, fiber.StatusNotFound},
	{service.ErrArticleNotFound, fiber.StatusNotFound},
	{service.ErrUserNotFound, fiber.StatusNotFound},
	{service.ErrNotificationNotFound, fiber.StatusNotFound},
	{service.ErrLogNotFound, fiber.StatusNotFound},
	{service.ErrInvalidStatus, fiber.StatusBadRequest},
	{service.ErrInvalidIncidentDate, fiber.StatusBadRequest},
	{service.ErrArticleSlugEmpty, fiber.StatusBadRequest},
	{evidence.ErrTooLarge, fiber.StatusBadRequest},
	{evidence.ErrUnsupportedType, fiber.StatusBadRequest},
	{service.ErrSlugTaken, fiber.StatusConflict},
	{service.ErrUsernameTaken, fiber.StatusConflict},
	{service.ErrEmailTaken, fiber.StatusConflict},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{service.ErrSelfLockout, fiber.StatusForbidden},
	{service.ErrRateLimited, fiber.StatusTooManyRequests},
}

// httpError turns a known service error into a *fiber.Error carrying its
// message. Anything else is returned untouched and ends up as a 500.
func httpError(err error) error {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return fiber.NewError(s.code, s.err.Error())
		}
	}
	return err
}

func paramID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
