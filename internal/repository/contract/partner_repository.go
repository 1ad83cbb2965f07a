package contract

import (
	"context"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	Update(ctx context.Context, partner *entity.Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Partner, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Partner, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
