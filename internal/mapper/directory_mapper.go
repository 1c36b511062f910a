package mapper

import (
	"eveshield-be/internal/entity"
	"eveshield-be/internal/model"
)

type DirectoryMapper struct{}

func NewDirectoryMapper() *DirectoryMapper {
	return &DirectoryMapper{}
}

func (m *DirectoryMapper) LawyerToEntity(l *model.Lawyer) *entity.Lawyer {
	if l == nil {
		return nil
	}
	return &entity.Lawyer{
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
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *DirectoryMapper) LawyerToModel(l *entity.Lawyer) *model.Lawyer {
	if l == nil {
		return nil
	}
	return &model.Lawyer{
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
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *DirectoryMapper) LawyersToEntities(lawyers []*model.Lawyer) []*entity.Lawyer {
	entities := make([]*entity.Lawyer, len(lawyers))
	for i, l := range lawyers {
		entities[i] = m.LawyerToEntity(l)
	}
	return entities
}

func (m *DirectoryMapper) TherapistToEntity(t *model.Therapist) *entity.Therapist {
	if t == nil {
		return nil
	}
	return &entity.Therapist{
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
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *DirectoryMapper) TherapistToModel(t *entity.Therapist) *model.Therapist {
	if t == nil {
		return nil
	}
	return &model.Therapist{
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
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *DirectoryMapper) TherapistsToEntities(therapists []*model.Therapist) []*entity.Therapist {
	entities := make([]*entity.Therapist, len(therapists))
	for i, t := range therapists {
		entities[i] = m.TherapistToEntity(t)
	}
	return entities
}
