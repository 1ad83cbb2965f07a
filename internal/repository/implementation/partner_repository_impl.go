package implementation

import (
	"context"
	"errors"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/mapper"
	"packaging-catalog-be/internal/model"
	"packaging-catalog-be/internal/repository/contract"
	"packaging-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PartnerMapper
}

func NewPartnerRepository(db *gorm.DB) contract.PartnerRepository {
	return &PartnerRepositoryImpl{
		db:     db,
		mapper: mapper.NewPartnerMapper(),
	}
}

func (r *PartnerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PartnerRepositoryImpl) Create(ctx context.Context, partner *entity.Partner) error {
	m := r.mapper.ToModel(partner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*partner = *r.mapper.ToEntity(m)
	return nil
}

func (r *PartnerRepositoryImpl) Update(ctx context.Context, partner *entity.Partner) error {
	m := r.mapper.ToModel(partner)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*partner = *r.mapper.ToEntity(m)
	return nil
}

func (r *PartnerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Partner{}, id).Error
}

func (r *PartnerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Partner, error) {
	var m model.Partner
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PartnerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Partner, error) {
	var models []*model.Partner
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PartnerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Partner{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
