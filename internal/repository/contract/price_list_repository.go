package contract

import (
	"context"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PriceListRepository interface {
	Create(ctx context.Context, priceList *entity.PriceList) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PriceList, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PriceList, error)
}
