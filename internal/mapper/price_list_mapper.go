package mapper

import (
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/model"
)

type PriceListMapper struct{}

func NewPriceListMapper() *PriceListMapper {
	return &PriceListMapper{}
}

func (m *PriceListMapper) ToEntity(p *model.PriceList) *entity.PriceList {
	if p == nil {
		return nil
	}
	return &entity.PriceList{
		Id:         p.Id,
		Filename:   p.Filename,
		Path:       p.Path,
		UploadedAt: p.UploadedAt,
	}
}

func (m *PriceListMapper) ToModel(p *entity.PriceList) *model.PriceList {
	if p == nil {
		return nil
	}
	return &model.PriceList{
		Id:         p.Id,
		Filename:   p.Filename,
		Path:       p.Path,
		UploadedAt: p.UploadedAt,
	}
}
