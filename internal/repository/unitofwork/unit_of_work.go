package unitofwork

import (
	"context"

	"packaging-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	CategoryRepository() contract.CategoryRepository
	PartnerRepository() contract.PartnerRepository
	PriceListRepository() contract.PriceListRepository
	UserRepository() contract.UserRepository
}
