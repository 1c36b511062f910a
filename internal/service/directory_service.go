package service

import (
	"context"
	"errors"
	"strings"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/memory"
	"eveshield-be/internal/repository/scope"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	lawyerCountiesKey    = "lawyers"
	therapistCountiesKey = "therapists"
)

type IDirectoryService interface {
	ListLawyers(ctx context.Context, req dto.DirectoryListRequest) (*dto.LawyerListResponse, error)
	GetLawyer(ctx context.Context, id uuid.UUID) (*dto.LawyerResponse, error)
	CreateLawyer(ctx context.Context, req *dto.LawyerRequest) (*dto.LawyerResponse, error)
	UpdateLawyer(ctx context.Context, id uuid.UUID, req *dto.LawyerRequest) (*dto.LawyerResponse, error)
	SetLawyerActive(ctx context.Context, id uuid.UUID, active bool) (*dto.LawyerResponse, error)
	DeleteLawyer(ctx context.Context, id uuid.UUID) error

	ListTherapists(ctx context.Context, req dto.DirectoryListRequest) (*dto.TherapistListResponse, error)
	GetTherapist(ctx context.Context, id uuid.UUID) (*dto.TherapistResponse, error)
	CreateTherapist(ctx context.Context, req *dto.TherapistRequest) (*dto.TherapistResponse, error)
	UpdateTherapist(ctx context.Context, id uuid.UUID, req *dto.TherapistRequest) (*dto.TherapistResponse, error)
	SetTherapistActive(ctx context.Context, id uuid.UUID, active bool) (*dto.TherapistResponse, error)
	DeleteTherapist(ctx context.Context, id uuid.UUID) error
}

type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
	counties   *memory.CountyCache
	logger     logger.ILogger
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory, counties *memory.CountyCache, log logger.ILogger) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
		counties:   counties,
		logger:     log,
	}
}

// directoryFilters is the public listing filter shared by both directories.
func directoryFilters(req dto.DirectoryListRequest, searchFields ...string) ([]specification.Specification, string, string) {
	specs := []specification.Specification{specification.ActiveOnly{}}

	county := strings.TrimSpace(req.County)
	if county != "" {
		specs = append(specs, specification.ILike{Field: "county", Value: county})
	}
	search := strings.TrimSpace(req.Search)
	if search != "" {
		specs = append(specs, specification.ILikeAny{Fields: searchFields, Query: search})
	}
	return specs, county, search
}

func (s *directoryService) ListLawyers(ctx context.Context, req dto.DirectoryListRequest) (*dto.LawyerListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LawyerRepository()

	filters, county, search := directoryFilters(req, "name", "specialization")

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page := clampPage(req.Page, directoryPerPage, total)

	lawyers, err := repo.FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCountyName),
		specification.Page(page.Page, directoryPerPage),
	)...)
	if err != nil {
		return nil, err
	}

	counties, err := s.counties.Get(ctx, lawyerCountiesKey, repo.DistinctActiveCounties)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LawyerResponse, len(lawyers))
	for i, l := range lawyers {
		items[i] = toLawyerResponse(l)
	}

	return &dto.LawyerListResponse{
		Lawyers:      items,
		Counties:     counties,
		CountyFilter: county,
		SearchQuery:  search,
		Page:         page,
	}, nil
}

func (s *directoryService) findLawyer(ctx context.Context, repo contract.LawyerRepository, id uuid.UUID) (*entity.Lawyer, error) {
	lawyer, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	return lawyer, nil
}

func (s *directoryService) GetLawyer(ctx context.Context, id uuid.UUID) (*dto.LawyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := s.findLawyer(ctx, uow.LawyerRepository(), id)
	if err != nil {
		return nil, err
	}
	res := toLawyerResponse(lawyer)
	return &res, nil
}

func (s *directoryService) CreateLawyer(ctx context.Context, req *dto.LawyerRequest) (*dto.LawyerResponse, error) {
	lawyer := &entity.Lawyer{Id: uuid.New(), IsActive: true}
	applyLawyerRequest(lawyer, req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LawyerRepository().Create(ctx, lawyer); err != nil {
		return nil, err
	}
	s.counties.Invalidate(lawyerCountiesKey)

	s.logger.Info("DIRECTORY", "Lawyer created", map[string]interface{}{"lawyer_id": lawyer.Id.String()})
	res := toLawyerResponse(lawyer)
	return &res, nil
}

func (s *directoryService) UpdateLawyer(ctx context.Context, id uuid.UUID, req *dto.LawyerRequest) (*dto.LawyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LawyerRepository()

	lawyer, err := s.findLawyer(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	applyLawyerRequest(lawyer, req)

	if err := repo.Update(ctx, lawyer); err != nil {
		return nil, err
	}
	s.counties.Invalidate(lawyerCountiesKey)

	res := toLawyerResponse(lawyer)
	return &res, nil
}

func (s *directoryService) SetLawyerActive(ctx context.Context, id uuid.UUID, active bool) (*dto.LawyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LawyerRepository()

	lawyer, err := s.findLawyer(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	lawyer.IsActive = active

	if err := repo.Update(ctx, lawyer); err != nil {
		return nil, err
	}
	s.counties.Invalidate(lawyerCountiesKey)

	res := toLawyerResponse(lawyer)
	return &res, nil
}

func (s *directoryService) DeleteLawyer(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LawyerRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrLawyerNotFound
		}
		return err
	}
	s.counties.Invalidate(lawyerCountiesKey)
	s.logger.Info("DIRECTORY", "Lawyer deleted", map[string]interface{}{"lawyer_id": id.String()})
	return nil
}

func (s *directoryService) ListTherapists(ctx context.Context, req dto.DirectoryListRequest) (*dto.TherapistListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TherapistRepository()

	filters, county, search := directoryFilters(req, "name", "specialty")

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page := clampPage(req.Page, directoryPerPage, total)

	therapists, err := repo.FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCountyName),
		specification.Page(page.Page, directoryPerPage),
	)...)
	if err != nil {
		return nil, err
	}

	counties, err := s.counties.Get(ctx, therapistCountiesKey, repo.DistinctActiveCounties)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TherapistResponse, len(therapists))
	for i, t := range therapists {
		items[i] = toTherapistResponse(t)
	}

	return &dto.TherapistListResponse{
		Therapists:   items,
		Counties:     counties,
		CountyFilter: county,
		SearchQuery:  search,
		Page:         page,
	}, nil
}

func (s *directoryService) findTherapist(ctx context.Context, repo contract.TherapistRepository, id uuid.UUID) (*entity.Therapist, error) {
	therapist, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}
	return therapist, nil
}

func (s *directoryService) GetTherapist(ctx context.Context, id uuid.UUID) (*dto.TherapistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	therapist, err := s.findTherapist(ctx, uow.TherapistRepository(), id)
	if err != nil {
		return nil, err
	}
	res := toTherapistResponse(therapist)
	return &res, nil
}

func (s *directoryService) CreateTherapist(ctx context.Context, req *dto.TherapistRequest) (*dto.TherapistResponse, error) {
	therapist := &entity.Therapist{Id: uuid.New(), IsActive: true}
	applyTherapistRequest(therapist, req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TherapistRepository().Create(ctx, therapist); err != nil {
		return nil, err
	}
	s.counties.Invalidate(therapistCountiesKey)

	s.logger.Info("DIRECTORY", "Therapist created", map[string]interface{}{"therapist_id": therapist.Id.String()})
	res := toTherapistResponse(therapist)
	return &res, nil
}

func (s *directoryService) UpdateTherapist(ctx context.Context, id uuid.UUID, req *dto.TherapistRequest) (*dto.TherapistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TherapistRepository()

	therapist, err := s.findTherapist(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	applyTherapistRequest(therapist, req)

	if err := repo.Update(ctx, therapist); err != nil {
		return nil, err
	}
	s.counties.Invalidate(therapistCountiesKey)

	res := toTherapistResponse(therapist)
	return &res, nil
}

func (s *directoryService) SetTherapistActive(ctx context.Context, id uuid.UUID, active bool) (*dto.TherapistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TherapistRepository()

	therapist, err := s.findTherapist(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	therapist.IsActive = active

	if err := repo.Update(ctx, therapist); err != nil {
		return nil, err
	}
	s.counties.Invalidate(therapistCountiesKey)

	res := toTherapistResponse(therapist)
	return &res, nil
}

func (s *directoryService) DeleteTherapist(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TherapistRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrTherapistNotFound
		}
		return err
	}
	s.counties.Invalidate(therapistCountiesKey)
	s.logger.Info("DIRECTORY", "Therapist deleted", map[string]interface{}{"therapist_id": id.String()})
	return nil
}

func applyLawyerRequest(l *entity.Lawyer, req *dto.LawyerRequest) {
	l.Name = strings.TrimSpace(req.Name)
	l.Phone = strings.TrimSpace(req.Phone)
	l.Whatsapp = req.Whatsapp
	l.Email = req.Email
	l.County = strings.TrimSpace(req.County)
	l.Specialization = req.Specialization
	l.Address = req.Address
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
}

func applyTherapistRequest(t *entity.Therapist, req *dto.TherapistRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.Specialty = req.Specialty
	t.Phone = strings.TrimSpace(req.Phone)
	t.Email = req.Email
	t.County = strings.TrimSpace(req.County)
	t.Address = req.Address
	t.Qualifications = req.Qualifications
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
}

func toLawyerResponse(l *entity.Lawyer) dto.LawyerResponse {
	return dto.LawyerResponse{
		Id:             l.Id,
		Name:           l.Name,
		Phone:          l.Phone,
		Whatsapp:       l.Whatsapp,
		Email:          l.Email,
		County:         l.County,
		Specialization: l.Specialization,
		Address:        l.Address,
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
	}
}

func toTherapistResponse(t *entity.Therapist) dto.TherapistResponse {
	return dto.TherapistResponse{
		Id:             t.Id,
		Name:           t.Name,
		Specialty:      t.Specialty,
		Phone:          t.Phone,
		Email:          t.Email,
		County:         t.County,
		Address:        t.Address,
		Qualifications: t.Qualifications,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
	}
}
