package dashboard

import (
	"context"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// Aggregator handles staff overview statistics and the log reader.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// ReportStats always covers every report, regardless of any dashboard filter.
func ReportStats(ctx context.Context, repo contract.ReportRepository) (dto.ReportStats, map[string]int64, error) {
	byStatus, err := repo.CountByStatus(ctx)
	if err != nil {
		return dto.ReportStats{}, nil, err
	}

	perStatus := make(map[string]int64, len(entity.ReportStatuses()))
	var total int64
	for _, st := range entity.ReportStatuses() {
		perStatus[string(st)] = byStatus[st]
	}
	for _, n := range byStatus {
		total += n
	}
	return dto.ReportStats{
		Total:    total,
		Pending:  byStatus[entity.ReportStatusPending],
		Reviewed: byStatus[entity.ReportStatusReviewed],
	}, perStatus, nil
}

// GetStats retrieves the staff overview.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminOverviewResponse, error) {
	stats, perStatus, err := ReportStats(ctx, uow.ReportRepository())
	if err != nil {
		return nil, err
	}

	lawyers, err := uow.LawyerRepository().Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	therapists, err := uow.TherapistRepository().Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	articles, err := uow.ArticleRepository().Count(ctx, specification.PublishedOnly{})
	if err != nil {
		return nil, err
	}
	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminOverviewResponse{
		Reports:           stats,
		ReportsByState:    perStatus,
		ActiveLawyers:     lawyers,
		ActiveTherapists:  therapists,
		PublishedArticles: articles,
		Users:             users,
	}, nil
}

// GetSystemLogs reads the structured log file, newest first.
func (a *Aggregator) GetSystemLogs(ctx context.Context, loggerSvc logger.ILogger, req dto.LogListRequest) ([]dto.LogResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	logs, err := loggerSvc.GetLogs(req.Level, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	res := make([]dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, toLogResponse(l))
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(ctx context.Context, loggerSvc logger.ILogger, logId string) (*dto.LogResponse, error) {
	l, err := loggerSvc.GetLogById(logId)
	if err != nil {
		return nil, err
	}
	res := toLogResponse(*l)
	return &res, nil
}

func toLogResponse(l logger.LogEntry) dto.LogResponse {
	return dto.LogResponse{
		Id:        l.Id,
		Timestamp: l.Timestamp,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   l.Details,
	}
}
