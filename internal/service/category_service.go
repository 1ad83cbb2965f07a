package service

import (
	"context"
	"errors"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/memory"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has products")
)

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	uowFactory   unitofwork.RepositoryFactory
	listingCache *memory.SearchCache
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory, listingCache *memory.SearchCache) ICategoryService {
	return &categoryService{
		uowFactory:   uowFactory,
		listingCache: listingCache,
	}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := &entity.Category{
		Id:   uuid.New(),
		Name: req.Name,
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}

	s.listingCache.Flush()
	return toCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = req.Name
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	s.listingCache.Flush()
	return toCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Refuse while products still point at the category; surfacing a clear
	// conflict beats a bare FK violation from the database.
	count, err := uow.ProductRepository().Count(ctx, specification.ByCategoryID{CategoryID: id})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.listingCache.Flush()
	return nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = *toCategoryResponse(c)
	}
	return responses, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
