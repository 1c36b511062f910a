package contract

import (
	"context"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateProfile(ctx context.Context, profile *entity.UserProfile) error
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
	FindProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}
