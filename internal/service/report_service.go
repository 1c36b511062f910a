package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/eventbus"
	"eveshield-be/internal/pkg/evidence"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/scope"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"
	"eveshield-be/pkg/admin/dashboard"
	"eveshield-be/pkg/ratelimit"

	"github.com/google/uuid"
)

const ReportThankYouMessage = "Thank you for your report. Your submission has been received and will be reviewed. Your identity remains anonymous."

type IReportService interface {
	Submit(ctx context.Context, req *dto.SubmitReportRequest, file *multipart.FileHeader, clientKey string) (*dto.SubmitReportResponse, error)
	Dashboard(ctx context.Context, req dto.ReportDashboardRequest) (*dto.ReportDashboardResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*dto.ReportDetailResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportDetailResponse, error)
	EvidencePath(ctx context.Context, id uuid.UUID) (string, error)
}

// EvidenceStore persists uploaded evidence files. *evidence.Store satisfies it.
type EvidenceStore interface {
	Validate(fh *multipart.FileHeader) error
	Save(fh *multipart.FileHeader) (string, error)
	Path(rel string) (string, error)
	Remove(rel string) error
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	evidence   EvidenceStore
	limiter    ratelimit.Limiter
	alerts     IPublisherService
	events     eventbus.Publisher
	logger     logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	evidenceStore EvidenceStore,
	limiter ratelimit.Limiter,
	alerts IPublisherService,
	events eventbus.Publisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		evidence:   evidenceStore,
		limiter:    limiter,
		alerts:     alerts,
		events:     events,
		logger:     log,
	}
}

func (s *reportService) Submit(ctx context.Context, req *dto.SubmitReportRequest, file *multipart.FileHeader, clientKey string) (*dto.SubmitReportResponse, error) {
	var incidentDate *time.Time
	if req.IncidentDate != "" {
		d, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			return nil, ErrInvalidIncidentDate
		}
		incidentDate = &d
	}
	if file != nil {
		if err := s.evidence.Validate(file); err != nil {
			return nil, err
		}
	}

	// rejected submissions above do not consume quota
	allowed, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		s.logger.Warn("REPORT", "Rate limiter unavailable, allowing submission", map[string]interface{}{"error": err.Error()})
	}
	if !allowed {
		return nil, ErrRateLimited
	}

	violenceType := entity.ViolenceType(req.TypeOfViolence)
	if !violenceType.Valid() {
		violenceType = entity.ViolenceTypeOther
	}

	var fileUpload *string
	if file != nil {
		rel, err := s.evidence.Save(file)
		if err != nil {
			return nil, err
		}
		fileUpload = &rel
	}

	report := &entity.Report{
		Id:             uuid.New(),
		TypeOfViolence: violenceType,
		Location:       strings.TrimSpace(req.Location),
		Details:        req.Details,
		IncidentDate:   incidentDate,
		FileUpload:     fileUpload,
		Status:         entity.ReportStatusPending,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReportRepository().Create(ctx, report); err != nil {
		if fileUpload != nil {
			_ = s.evidence.Remove(*fileUpload)
		}
		return nil, err
	}

	s.logger.Info("REPORT", "Report submitted", map[string]interface{}{
		"report_id": report.Id.String(),
		"type":      string(report.TypeOfViolence),
		"has_file":  fileUpload != nil,
	})

	s.publishAlert(ctx, report)
	s.events.PublishReportSubmitted(ctx, report)

	return &dto.SubmitReportResponse{Message: ReportThankYouMessage}, nil
}

func (s *reportService) publishAlert(ctx context.Context, report *entity.Report) {
	payload, err := json.Marshal(dto.ReportSubmittedMessage{
		ReportId: report.Id,
		Type:     string(report.TypeOfViolence),
		Status:   string(report.Status),
	})
	if err != nil {
		s.logger.Error("REPORT", "Failed to encode report alert", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.alerts.Publish(ctx, payload); err != nil {
		s.logger.Error("REPORT", "Failed to publish report alert", map[string]interface{}{"error": err.Error()})
	}
}

func (s *reportService) Dashboard(ctx context.Context, req dto.ReportDashboardRequest) (*dto.ReportDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReportRepository()

	var filters []specification.Specification
	if req.Status != "" {
		filters = append(filters, specification.Filter("status", req.Status))
	}
	search := strings.TrimSpace(req.Search)
	if search != "" {
		filters = append(filters, specification.ILikeAny{Fields: []string{"location", "details"}, Query: search})
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page := clampPage(req.Page, reportsPerPage, total)

	specs := append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Page(page.Page, reportsPerPage),
	)
	reports, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	stats, _, err := dashboard.ReportStats(ctx, repo)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReportListItem, len(reports))
	for i, r := range reports {
		items[i] = toReportListItem(r)
	}

	statuses := make([]dto.ChoiceResponse, 0, len(entity.ReportStatuses()))
	for _, st := range entity.ReportStatuses() {
		statuses = append(statuses, dto.ChoiceResponse{Value: string(st), Label: st.Label()})
	}

	return &dto.ReportDashboardResponse{
		Reports:      items,
		Stats:        stats,
		StatusFilter: req.Status,
		SearchQuery:  search,
		Statuses:     statuses,
		Page:         page,
	}, nil
}

func (s *reportService) find(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := uow.ReportRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *reportService) Detail(ctx context.Context, id uuid.UUID) (*dto.ReportDetailResponse, error) {
	report, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReportDetail(report), nil
}

func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportDetailResponse, error) {
	status := entity.ReportStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ReportRepository()
	report, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	previous := report.Status

	notes := req.AdminNotes
	if err := repo.UpdateStatus(ctx, id, status, &notes); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	report.Status = status
	report.AdminNotes = &notes
	report.UpdatedAt = time.Now()

	s.logger.Info("REPORT", "Report status updated", map[string]interface{}{
		"report_id": id.String(),
		"from":      string(previous),
		"to":        string(status),
	})
	s.events.PublishReportStatusUpdated(ctx, id, previous, status)

	return toReportDetail(report), nil
}

func (s *reportService) EvidencePath(ctx context.Context, id uuid.UUID) (string, error) {
	report, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	if report.FileUpload == nil || *report.FileUpload == "" {
		return "", ErrEvidenceNotFound
	}

	p, err := s.evidence.Path(*report.FileUpload)
	if err != nil {
		if errors.Is(err, evidence.ErrNotFound) {
			return "", ErrEvidenceNotFound
		}
		return "", err
	}
	return p, nil
}

func toReportListItem(r *entity.Report) dto.ReportListItem {
	return dto.ReportListItem{
		Id:             r.Id,
		TypeOfViolence: string(r.TypeOfViolence),
		TypeLabel:      r.TypeOfViolence.Label(),
		Location:       r.Location,
		Status:         string(r.Status),
		StatusLabel:    r.Status.Label(),
		CreatedAt:      r.CreatedAt,
	}
}

func toReportDetail(r *entity.Report) *dto.ReportDetailResponse {
	var incidentDate *string
	if r.IncidentDate != nil {
		d := r.IncidentDate.Format("2006-01-02")
		incidentDate = &d
	}
	return &dto.ReportDetailResponse{
		ReportListItem: toReportListItem(r),
		Details:        r.Details,
		IncidentDate:   incidentDate,
		HasEvidence:    r.FileUpload != nil && *r.FileUpload != "",
		AdminNotes:     r.AdminNotes,
		UpdatedAt:      r.UpdatedAt,
	}
}
