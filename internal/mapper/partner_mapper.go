package mapper

import (
	"time"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/model"
)

type PartnerMapper struct{}

func NewPartnerMapper() *PartnerMapper {
	return &PartnerMapper{}
}

func (m *PartnerMapper) ToEntity(p *model.Partner) *entity.Partner {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Partner{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PartnerMapper) ToModel(p *entity.Partner) *model.Partner {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Partner{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PartnerMapper) ToEntities(partners []*model.Partner) []*entity.Partner {
	entities := make([]*entity.Partner, len(partners))
	for i, p := range partners {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
