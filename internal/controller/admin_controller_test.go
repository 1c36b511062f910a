package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdmin struct {
	service.IAdminService

	actor   uuid.UUID
	target  uuid.UUID
	userReq dto.AdminUserListRequest
}

func (s *stubAdmin) Overview(ctx context.Context) (*dto.AdminOverviewResponse, error) {
	return &dto.AdminOverviewResponse{Reports: dto.ReportStats{Total: 4, Pending: 3, Reviewed: 1}, Users: 2}, nil
}

func (s *stubAdmin) GetLogDetail(ctx context.Context, logId string) (*dto.LogResponse, error) {
	return nil, service.ErrLogNotFound
}

func (s *stubAdmin) ListUsers(ctx context.Context, req dto.AdminUserListRequest) (*dto.AdminUserListResponse, error) {
	s.userReq = req
	return &dto.AdminUserListResponse{}, nil
}

func (s *stubAdmin) DeleteUser(ctx context.Context, actorId, userId uuid.UUID) error {
	s.actor, s.target = actorId, userId
	if actorId == userId {
		return service.ErrSelfLockout
	}
	return nil
}

type stubNotifications struct {
	service.INotificationService

	owner         uuid.UUID
	limit, offset int
	readAll       bool
}

func (s *stubNotifications) List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	s.owner, s.limit, s.offset = userId, limit, offset
	return &dto.NotificationListResponse{Unread: 1, Total: 1}, nil
}

func (s *stubNotifications) MarkAsRead(ctx context.Context, userId, id uuid.UUID) error {
	return service.ErrNotificationNotFound
}

func (s *stubNotifications) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	s.owner, s.readAll = userId, true
	return nil
}

func TestAdminRoutesAreStaffOnly(t *testing.T) {
	app := newTestApp(NewAdminController(&stubAdmin{}, &stubNotifications{}, testAuth()))

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", bearer(t, userId, false))
	code, res := do(t, app, req)

	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Access denied: staff only", res.Message)
}

func TestAdminOverview(t *testing.T) {
	app := newTestApp(NewAdminController(&stubAdmin{}, &stubNotifications{}, testAuth()))

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)
	require.Equal(t, fiber.StatusOK, code)

	var overview dto.AdminOverviewResponse
	require.NoError(t, json.Unmarshal(res.Data, &overview))
	assert.Equal(t, int64(3), overview.Reports.Pending)
}

func TestAdminLogDetailNotFound(t *testing.T) {
	app := newTestApp(NewAdminController(&stubAdmin{}, &stubNotifications{}, testAuth()))

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/logs/5d41402abc4b2a76b9719d911017c592", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)

	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAdminNotificationsAreScopedToCaller(t *testing.T) {
	notifications := &stubNotifications{}
	app := newTestApp(NewAdminController(&stubAdmin{}, notifications, testAuth()))

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/notifications?limit=5&offset=10", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, staffId, notifications.owner)
	assert.Equal(t, 5, notifications.limit)
	assert.Equal(t, 10, notifications.offset)

	req = httptest.NewRequest(fiber.MethodPost, "/api/admin/notifications/read-all", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ = do(t, app, req)
	require.Equal(t, fiber.StatusOK, code)
	assert.True(t, notifications.readAll)

	req = httptest.NewRequest(fiber.MethodPatch, "/api/admin/notifications/"+uuid.NewString()+"/read", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAdminListUsersQuery(t *testing.T) {
	admin := &stubAdmin{}
	app := newTestApp(NewAdminController(admin, &stubNotifications{}, testAuth()))

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/users?role=staff&search=ann&page=2", nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, dto.AdminUserListRequest{Search: "ann", Role: "staff", Page: 2}, admin.userReq)
}

func TestAdminDeleteUser(t *testing.T) {
	admin := &stubAdmin{}
	app := newTestApp(NewAdminController(admin, &stubNotifications{}, testAuth()))

	req := httptest.NewRequest(fiber.MethodDelete, "/api/admin/users/"+userId.String(), nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, staffId, admin.actor)
	assert.Equal(t, userId, admin.target)

	req = httptest.NewRequest(fiber.MethodDelete, "/api/admin/users/"+staffId.String(), nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, service.ErrSelfLockout.Error(), res.Message)
}

func TestAdminCreateUserValidatesRole(t *testing.T) {
	app := newTestApp(NewAdminController(&stubAdmin{}, &stubNotifications{}, testAuth()))

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/users", dto.AdminCreateUserRequest{
		Username: "newstaff",
		Email:    "newstaff@example.org",
		Password: "long-enough-pass",
		Role:     "superuser",
	})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)

	assert.Equal(t, fiber.StatusBadRequest, code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(res.Data, &fields))
	assert.Contains(t, fields, "role")
}
