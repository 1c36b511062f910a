package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReportRequest struct {
	TypeOfViolence string `json:"type_of_violence" form:"type_of_violence" validate:"required,oneof=physical sexual emotional economic digital other"`
	Location       string `json:"location" form:"location" validate:"required,max=255"`
	Details        string `json:"details" form:"details" validate:"required"`
	IncidentDate   string `json:"incident_date" form:"incident_date" validate:"omitempty,datetime=2006-01-02"`
}

type SubmitReportResponse struct {
	Message string `json:"message"`
}

type UpdateReportStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes"`
}

type ReportListItem struct {
	Id             uuid.UUID `json:"id"`
	TypeOfViolence string    `json:"type_of_violence"`
	TypeLabel      string    `json:"type_label"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReportDetailResponse struct {
	ReportListItem
	Details      string    `json:"details"`
	IncidentDate *string   `json:"incident_date"`
	HasEvidence  bool      `json:"has_evidence"`
	AdminNotes   *string   `json:"admin_notes"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReportStats struct {
	Total    int64 `json:"total_reports"`
	Pending  int64 `json:"pending_reports"`
	Reviewed int64 `json:"reviewed_reports"`
}

type ReportDashboardRequest struct {
	Status string `query:"status"`
	Search string `query:"search"`
	Page   int    `query:"page"`
}

type ReportDashboardResponse struct {
	Reports      []ReportListItem `json:"reports"`
	Stats        ReportStats      `json:"stats"`
	StatusFilter string           `json:"status_filter"`
	SearchQuery  string           `json:"search_query"`
	Statuses     []ChoiceResponse `json:"statuses"`
	Page         PageResponse     `json:"page"`
}

// ChoiceResponse is a value and its display label.
type ChoiceResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type PageResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ReportSubmittedMessage travels on the in-process alert topic.
type ReportSubmittedMessage struct {
	ReportId uuid.UUID `json:"report_id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
}
