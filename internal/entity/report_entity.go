package entity

import (
	"time"

	"github.com/google/uuid"
)

type ViolenceType string

const (
	ViolenceTypePhysical  ViolenceType = "physical"
	ViolenceTypeSexual    ViolenceType = "sexual"
	ViolenceTypeEmotional ViolenceType = "emotional"
	ViolenceTypeEconomic  ViolenceType = "economic"
	ViolenceTypeDigital   ViolenceType = "digital"
	ViolenceTypeOther     ViolenceType = "other"
)

var violenceTypeLabels = map[ViolenceType]string{
	ViolenceTypePhysical:  "Physical Violence",
	ViolenceTypeSexual:    "Sexual Violence",
	ViolenceTypeEmotional: "Emotional/Psychological Violence",
	ViolenceTypeEconomic:  "Economic Violence",
	ViolenceTypeDigital:   "Digital/Online Violence",
	ViolenceTypeOther:     "Other",
}

// ViolenceTypes lists every type in display order.
func ViolenceTypes() []ViolenceType {
	return []ViolenceType{
		ViolenceTypePhysical,
		ViolenceTypeSexual,
		ViolenceTypeEmotional,
		ViolenceTypeEconomic,
		ViolenceTypeDigital,
		ViolenceTypeOther,
	}
}

func (v ViolenceType) Valid() bool {
	_, ok := violenceTypeLabels[v]
	return ok
}

func (v ViolenceType) Label() string {
	if l, ok := violenceTypeLabels[v]; ok {
		return l
	}
	return string(v)
}

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusReviewed   ReportStatus = "reviewed"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

var reportStatusLabels = map[ReportStatus]string{
	ReportStatusPending:    "Pending",
	ReportStatusReviewed:   "Reviewed",
	ReportStatusInProgress: "In Progress",
	ReportStatusResolved:   "Resolved",
}

func ReportStatuses() []ReportStatus {
	return []ReportStatus{ReportStatusPending, ReportStatusReviewed, ReportStatusInProgress, ReportStatusResolved}
}

func (s ReportStatus) Valid() bool {
	_, ok := reportStatusLabels[s]
	return ok
}

func (s ReportStatus) Label() string {
	if l, ok := reportStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Report is an anonymous incident report. It is never linked to a user.
type Report struct {
	Id             uuid.UUID
	TypeOfViolence ViolenceType
	Location       string
	Details        string
	IncidentDate   *time.Time
	FileUpload     *string
	Status         ReportStatus
	AdminNotes     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
