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

type stubDirectory struct {
	service.IDirectoryService

	listReq   dto.DirectoryListRequest
	activeSet *bool
	deleted   uuid.UUID
}

func (s *stubDirectory) ListLawyers(ctx context.Context, req dto.DirectoryListRequest) (*dto.LawyerListResponse, error) {
	s.listReq = req
	return &dto.LawyerListResponse{
		Lawyers:      []dto.LawyerResponse{{Name: "Grace Wanjiku", County: "Nairobi"}},
		Counties:     []string{"Mombasa", "Nairobi"},
		CountyFilter: req.County,
		SearchQuery:  req.Search,
	}, nil
}

func (s *stubDirectory) ListTherapists(ctx context.Context, req dto.DirectoryListRequest) (*dto.TherapistListResponse, error) {
	s.listReq = req
	return &dto.TherapistListResponse{CountyFilter: req.County}, nil
}

func (s *stubDirectory) CreateLawyer(ctx context.Context, req *dto.LawyerRequest) (*dto.LawyerResponse, error) {
	return &dto.LawyerResponse{Id: uuid.New(), Name: req.Name, IsActive: true}, nil
}

func (s *stubDirectory) SetTherapistActive(ctx context.Context, id uuid.UUID, active bool) (*dto.TherapistResponse, error) {
	s.activeSet = &active
	return &dto.TherapistResponse{Id: id, IsActive: active}, nil
}

func (s *stubDirectory) DeleteLawyer(ctx context.Context, id uuid.UUID) error {
	return service.ErrLawyerNotFound
}

func (s *stubDirectory) DeleteTherapist(ctx context.Context, id uuid.UUID) error {
	s.deleted = id
	return nil
}

func TestListLawyersIsPublic(t *testing.T) {
	dir := &stubDirectory{}
	app := newTestApp(NewDirectoryController(dir, testAuth()))

	code, res := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/lawyers?county=nai&search=family&page=3", nil))

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, dto.DirectoryListRequest{County: "nai", Search: "family", Page: 3}, dir.listReq)

	var list dto.LawyerListResponse
	require.NoError(t, json.Unmarshal(res.Data, &list))
	assert.Equal(t, []string{"Mombasa", "Nairobi"}, list.Counties)
	assert.Equal(t, "nai", list.CountyFilter)
}

func TestListTherapistsIsPublic(t *testing.T) {
	dir := &stubDirectory{}
	app := newTestApp(NewDirectoryController(dir, testAuth()))

	code, _ := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/mental-health/therapists?county=Kisumu", nil))

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Kisumu", dir.listReq.County)
}

func TestCreateLawyerRequiresStaff(t *testing.T) {
	app := newTestApp(NewDirectoryController(&stubDirectory{}, testAuth()))
	body := dto.LawyerRequest{Name: "Amina Hassan", Phone: "+254700000001", County: "Mombasa", Specialization: "Family law"}

	req := jsonRequest(t, fiber.MethodPost, "/api/lawyers", body)
	req.Header.Set("Authorization", bearer(t, userId, false))
	code, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusForbidden, code)

	req = jsonRequest(t, fiber.MethodPost, "/api/lawyers", body)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)
	assert.Equal(t, fiber.StatusCreated, code)

	var lawyer dto.LawyerResponse
	require.NoError(t, json.Unmarshal(res.Data, &lawyer))
	assert.Equal(t, "Amina Hassan", lawyer.Name)
}

func TestCreateLawyerValidation(t *testing.T) {
	app := newTestApp(NewDirectoryController(&stubDirectory{}, testAuth()))

	req := jsonRequest(t, fiber.MethodPost, "/api/lawyers", dto.LawyerRequest{Name: "No Phone"})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)

	assert.Equal(t, fiber.StatusBadRequest, code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(res.Data, &fields))
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "county")
}

func TestSetTherapistActive(t *testing.T) {
	dir := &stubDirectory{}
	app := newTestApp(NewDirectoryController(dir, testAuth()))
	off := false

	req := jsonRequest(t, fiber.MethodPatch, "/api/mental-health/therapists/"+uuid.NewString()+"/active", dto.SetActiveRequest{IsActive: &off})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)

	require.Equal(t, fiber.StatusOK, code)
	require.NotNil(t, dir.activeSet)
	assert.False(t, *dir.activeSet)
}

func TestSetActiveRequiresFlag(t *testing.T) {
	dir := &stubDirectory{}
	app := newTestApp(NewDirectoryController(dir, testAuth()))

	req := jsonRequest(t, fiber.MethodPatch, "/api/mental-health/therapists/"+uuid.NewString()+"/active", map[string]string{})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Nil(t, dir.activeSet)
}

func TestDeleteDirectoryEntries(t *testing.T) {
	dir := &stubDirectory{}
	app := newTestApp(NewDirectoryController(dir, testAuth()))
	id := uuid.New()

	req := httptest.NewRequest(fiber.MethodDelete, "/api/mental-health/therapists/"+id.String(), nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, id, dir.deleted)

	req = httptest.NewRequest(fiber.MethodDelete, "/api/lawyers/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Lawyer not found", res.Message)
}
