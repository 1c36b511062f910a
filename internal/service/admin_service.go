package service

import (
	"context"
	"errors"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/unitofwork"
	"eveshield-be/pkg/admin/dashboard"
	adminUser "eveshield-be/pkg/admin/user"

	"github.com/google/uuid"
)

const usersPerPage = 25

type IAdminService interface {
	// Dashboard
	Overview(ctx context.Context) (*dto.AdminOverviewResponse, error)

	// Logs
	GetSystemLogs(ctx context.Context, req dto.LogListRequest) ([]dto.LogResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogResponse, error)

	// Accounts
	ListUsers(ctx context.Context, req dto.AdminUserListRequest) (*dto.AdminUserListResponse, error)
	CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error)
	UpdateUser(ctx context.Context, actorId, userId uuid.UUID, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, actorId, userId uuid.UUID) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	dashboardAggregator *dashboard.Aggregator
	userManager         *adminUser.Manager
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	dashboardAggregator *dashboard.Aggregator,
	userManager *adminUser.Manager,
) IAdminService {
	return &adminService{
		uowFactory:          uowFactory,
		logger:              logger,
		dashboardAggregator: dashboardAggregator,
		userManager:         userManager,
	}
}

func (s *adminService) Overview(ctx context.Context) (*dto.AdminOverviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow)
}

func (s *adminService) GetSystemLogs(ctx context.Context, req dto.LogListRequest) ([]dto.LogResponse, error) {
	return s.dashboardAggregator.GetSystemLogs(ctx, s.logger, req)
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.LogResponse, error) {
	res, err := s.dashboardAggregator.GetLogDetail(ctx, s.logger, logId)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *adminService) ListUsers(ctx context.Context, req dto.AdminUserListRequest) (*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := s.userManager.Count(ctx, uow, req.Role, req.Search)
	if err != nil {
		return nil, err
	}
	page := clampPage(req.Page, usersPerPage, total)

	users, err := s.userManager.FindAll(ctx, uow, req.Role, req.Search, page.Page, usersPerPage)
	if err != nil {
		return nil, err
	}

	res := &dto.AdminUserListResponse{Users: make([]dto.AdminUserResponse, len(users)), Page: page}
	for i, u := range users {
		res.Users[i] = toAdminUserResponse(u)
	}
	return res, nil
}

func (s *adminService) CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := s.userManager.Create(ctx, uow, req)
	if err != nil {
		return nil, mapAccountError(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.userManager.Announce(ctx, user)
	res := toAdminUserResponse(user)
	return &res, nil
}

// UpdateUser refuses changes that would lock the acting staff member out.
func (s *adminService) UpdateUser(ctx context.Context, actorId, userId uuid.UUID, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	if actorId == userId {
		if req.Role != nil && entity.UserRole(*req.Role) != entity.UserRoleStaff {
			return nil, ErrSelfLockout
		}
		if req.IsActive != nil && !*req.IsActive {
			return nil, ErrSelfLockout
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := s.userManager.Update(ctx, uow, userId, req)
	if err != nil {
		return nil, mapAccountError(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toAdminUserResponse(user)
	return &res, nil
}

func (s *adminService) DeleteUser(ctx context.Context, actorId, userId uuid.UUID) error {
	if actorId == userId {
		return ErrSelfLockout
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return mapAccountError(s.userManager.Delete(ctx, uow, userId))
}

func mapAccountError(err error) error {
	switch {
	case errors.Is(err, adminUser.ErrUsernameExists):
		return ErrUsernameTaken
	case errors.Is(err, adminUser.ErrEmailExists):
		return ErrEmailTaken
	case errors.Is(err, adminUser.ErrUserNotFound):
		return ErrUserNotFound
	}
	return err
}

func toAdminUserResponse(u *entity.User) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		UserResponse: toUserResponse(u),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}
