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

type LawyerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewLawyerRepository(db *gorm.DB) contract.LawyerRepository {
	return &LawyerRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *LawyerRepositoryImpl) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	m := r.mapper.LawyerToModel(lawyer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lawyer = *r.mapper.LawyerToEntity(m)
	return nil
}

func (r *LawyerRepositoryImpl) Update(ctx context.Context, lawyer *entity.Lawyer) error {
	m := r.mapper.LawyerToModel(lawyer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*lawyer = *r.mapper.LawyerToEntity(m)
	return nil
}

func (r *LawyerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Lawyer{}))
}

func (r *LawyerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error) {
	var m model.Lawyer
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LawyerToEntity(&m), nil
}

func (r *LawyerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error) {
	var models []*model.Lawyer
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.LawyersToEntities(models), nil
}

func (r *LawyerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Lawyer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LawyerRepositoryImpl) DistinctActiveCounties(ctx context.Context) ([]string, error) {
	return distinctActiveCounties(r.db.WithContext(ctx).Model(&model.Lawyer{}))
}

func distinctActiveCounties(db *gorm.DB) ([]string, error) {
	var counties []string
	err := db.Where("is_active = ?", true).
		Distinct("county").
		Order("county ASC").
		Pluck("county", &counties).Error
	return counties, err
}
