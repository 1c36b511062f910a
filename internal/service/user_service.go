package service

import (
	"context"
	"time"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{uowFactory: uowFactory, logger: log}
}

// GetProfile creates an empty profile on first access for accounts made
// without one (seeded staff).
func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, profile, err := s.loadProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toProfileResponse(user, profile), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, profile, err := s.loadProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		profile.Phone = optionalString(*req.Phone)
	}
	if req.County != nil {
		profile.County = optionalString(*req.County)
	}
	profile.UpdatedAt = time.Now()

	if err := uow.UserRepository().UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("USER", "Profile updated", map[string]interface{}{"user_id": userId.String()})
	return toProfileResponse(user, profile), nil
}

func (s *userService) loadProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, *entity.UserProfile, error) {
	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	profile, err := repo.FindProfileByUserId(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		now := time.Now()
		profile = &entity.UserProfile{Id: uuid.New(), UserId: userId, CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateProfile(ctx, profile); err != nil {
			return nil, nil, err
		}
	}
	return user, profile, nil
}

func toProfileResponse(u *entity.User, p *entity.UserProfile) *dto.ProfileResponse {
	res := &dto.ProfileResponse{User: toUserResponse(u), CreatedAt: p.CreatedAt}
	if p.Phone != nil {
		res.Phone = *p.Phone
	}
	if p.County != nil {
		res.County = *p.County
	}
	return res
}
