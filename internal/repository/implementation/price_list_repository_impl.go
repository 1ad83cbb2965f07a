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

type PriceListRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PriceListMapper
}

func NewPriceListRepository(db *gorm.DB) contract.PriceListRepository {
	return &PriceListRepositoryImpl{
		db:     db,
		mapper: mapper.NewPriceListMapper(),
	}
}

func (r *PriceListRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PriceListRepositoryImpl) Create(ctx context.Context, priceList *entity.PriceList) error {
	m := r.mapper.ToModel(priceList)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*priceList = *r.mapper.ToEntity(m)
	return nil
}

func (r *PriceListRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PriceList{}, id).Error
}

func (r *PriceListRepositoryImpl) DeleteAll(ctx context.Context) error {
	// Uploading a new price list replaces every previous record.
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.PriceList{}).Error
}

func (r *PriceListRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PriceList, error) {
	var m model.PriceList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PriceListRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PriceList, error) {
	var models []*model.PriceList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PriceList, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
