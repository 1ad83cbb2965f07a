package mapper

import (
	"time"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var categoryName string
	if p.Category != nil {
		categoryName = p.Category.Name
	}

	return &entity.Product{
		Id:               p.Id,
		SKU:              p.SKU,
		Name:             p.Name,
		Price:            p.Price,
		Unit:             p.Unit,
		CategoryId:       p.CategoryId,
		CategoryName:     categoryName,
		Description:      p.Description,
		Images:           []string(p.Images),
		WholesalePrice:   p.WholesalePrice,
		WholesaleAmount:  p.WholesaleAmount,
		HeatProduct:      p.HeatProduct,
		LinkedProductIds: []uuid.UUID(p.LinkedProductIds),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        p.DeletedAt.Valid,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:               p.Id,
		SKU:              p.SKU,
		Name:             p.Name,
		Price:            p.Price,
		Unit:             p.Unit,
		CategoryId:       p.CategoryId,
		Description:      p.Description,
		Images:           datatypes.JSONSlice[string](p.Images),
		WholesalePrice:   p.WholesalePrice,
		WholesaleAmount:  p.WholesaleAmount,
		HeatProduct:      p.HeatProduct,
		LinkedProductIds: datatypes.JSONSlice[uuid.UUID](p.LinkedProductIds),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
