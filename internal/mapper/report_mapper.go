package mapper

import (
	"eveshield-be/internal/entity"
	"eveshield-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}
	return &entity.Report{
		Id:             r.Id,
		TypeOfViolence: entity.ViolenceType(r.TypeOfViolence),
		Location:       r.Location,
		Details:        r.Details,
		IncidentDate:   r.IncidentDate,
		FileUpload:     r.FileUpload,
		Status:         entity.ReportStatus(r.Status),
		AdminNotes:     r.AdminNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}
	return &model.Report{
		Id:             r.Id,
		TypeOfViolence: string(r.TypeOfViolence),
		Location:       r.Location,
		Details:        r.Details,
		IncidentDate:   r.IncidentDate,
		FileUpload:     r.FileUpload,
		Status:         string(r.Status),
		AdminNotes:     r.AdminNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *ReportMapper) ToEntities(reports []*model.Report) []*entity.Report {
	entities := make([]*entity.Report, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
