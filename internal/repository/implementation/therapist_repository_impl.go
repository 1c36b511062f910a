package implementation

import (
	"context"
	"errors"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/mapper"
	"eveshield-be/internal/model"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TherapistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewTherapistRepository(db *gorm.DB) contract.TherapistRepository {
	return &TherapistRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *TherapistRepositoryImpl) Create(ctx context.Context, therapist *entity.Therapist) error {
	m := r.mapper.TherapistToModel(therapist)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*therapist = *r.mapper.TherapistToEntity(m)
	return nil
}

func (r *TherapistRepositoryImpl) Update(ctx context.Context, therapist *entity.Therapist) error {
	m := r.mapper.TherapistToModel(therapist)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*therapist = *r.mapper.TherapistToEntity(m)
	return nil
}

func (r *TherapistRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Therapist{}))
}

func (r *TherapistRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Therapist, error) {
	var m model.Therapist
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TherapistToEntity(&m), nil
}

func (r *TherapistRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Therapist, error) {
	var models []*model.Therapist
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TherapistsToEntities(models), nil
}

func (r *TherapistRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Therapist{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TherapistRepositoryImpl) DistinctActiveCounties(ctx context.Context) ([]string, error) {
	return distinctActiveCounties(r.db.WithContext(ctx).Model(&model.Therapist{}))
}
