package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/eventbus"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/scope"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// Manager handles staff-side account operations
type Manager struct {
	logger    logger.ILogger
	publisher eventbus.Publisher
}

func NewManager(logger logger.ILogger, publisher eventbus.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// Create adds an active account with an empty profile. The caller owns the
// transaction; USER_REGISTERED is only emitted by the caller after commit.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminCreateUserRequest) (*entity.User, error) {
	repo := uow.UserRepository()
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	existing, err := repo.FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}
	existing, err = repo.FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if role != entity.UserRoleStaff {
		role = entity.UserRoleUser
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	profile := &entity.UserProfile{Id: uuid.New(), UserId: user.Id, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Created user", map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
	})
	return user, nil
}

// Announce emits USER_REGISTERED for an account created through Create.
func (m *Manager) Announce(ctx context.Context, user *entity.User) {
	m.publisher.PublishUserRegistered(ctx, user)
}

// Update applies the present fields of req.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req dto.AdminUpdateUserRequest) (*entity.User, error) {
	user, err := m.FindOne(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	m.logger.Info("ADMIN", "Updated user", map[string]interface{}{
		"user_id":   userId.String(),
		"role":      string(user.Role),
		"is_active": user.IsActive,
	})
	return user, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	m.logger.Info("ADMIN", "Deleted user", map[string]interface{}{
		"user_id": userId.String(),
	})
	return nil
}

func userFilters(role, search string) []specification.Specification {
	var filters []specification.Specification
	if role != "" {
		filters = append(filters, specification.ByRole{Role: role})
	}
	if search = strings.TrimSpace(search); search != "" {
		filters = append(filters, specification.ILikeAny{
			Fields: []string{"username", "email", "first_name", "last_name"},
			Query:  search,
		})
	}
	return filters
}

func (m *Manager) Count(ctx context.Context, uow unitofwork.UnitOfWork, role, search string) (int64, error) {
	return uow.UserRepository().Count(ctx, userFilters(role, search)...)
}

// FindAll returns one page of users, newest first.
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, role, search string, page, limit int) ([]*entity.User, error) {
	return uow.UserRepository().FindAll(ctx, append(userFilters(role, search),
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Page(page, limit),
	)...)
}

// FindOne retrieves a single user by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
