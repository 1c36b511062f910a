package contract

import (
	"context"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	Update(ctx context.Context, lawyer *entity.Lawyer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DistinctActiveCounties returns the sorted counties of active entries.
	DistinctActiveCounties(ctx context.Context) ([]string, error)
}

type TherapistRepository interface {
	Create(ctx context.Context, therapist *entity.Therapist) error
	Update(ctx context.Context, therapist *entity.Therapist) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Therapist, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Therapist, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctActiveCounties(ctx context.Context) ([]string, error)
}
