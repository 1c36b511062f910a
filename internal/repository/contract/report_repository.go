package contract

import (
	"context"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	Update(ctx context.Context, report *entity.Report) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Report, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.ReportStatus]int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReportStatus, adminNotes *string) error
}
