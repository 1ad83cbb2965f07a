package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/pkg/logger"
	"packaging-catalog-be/internal/repository/memory"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"
	"packaging-catalog-be/pkg/search"

	"github.com/google/uuid"
)

const (
	productImageDir = "products"

	// DefaultPageSize matches the storefront grid.
	DefaultPageSize = 12

	// DefaultFeaturedLimit caps the landing-page carousel.
	DefaultFeaturedLimit = 3

	// DefaultQuickSearchLimit caps the admin picker dropdown.
	DefaultQuickSearchLimit = 50
)

var ErrProductNotFound = errors.New("product not found")

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest, images []*multipart.FileHeader) (*dto.ProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest, images []*multipart.FileHeader) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	RemoveImage(ctx context.Context, req *dto.RemoveProductImageRequest) error
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, query, categoryId string, page, pageSize int) (*dto.ProductListResponse, error)
	Featured(ctx context.Context, limit int) ([]dto.ProductResponse, error)
	Linked(ctx context.Context, ids []uuid.UUID) ([]dto.ProductResponse, error)
	QuickSearch(ctx context.Context, term string, excludeId *uuid.UUID, limit int) ([]dto.QuickSearchItem, error)
}

type productService struct {
	uowFactory    unitofwork.RepositoryFactory
	uploadService IUploadService
	listingCache  *memory.SearchCache
	logger        logger.ILogger
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	uploadService IUploadService,
	listingCache *memory.SearchCache,
	sysLogger logger.ILogger,
) IProductService {
	return &productService{
		uowFactory:    uowFactory,
		uploadService: uploadService,
		listingCache:  listingCache,
		logger:        sysLogger,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest, images []*multipart.FileHeader) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paths, err := s.saveImages(images)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Id:               uuid.New(),
		SKU:              req.SKU,
		Name:             req.Name,
		Price:            req.Price,
		Unit:             req.Unit,
		CategoryId:       req.CategoryId,
		Description:      req.Description,
		Images:           paths,
		WholesalePrice:   req.WholesalePrice,
		WholesaleAmount:  req.WholesaleAmount,
		HeatProduct:      req.HeatProduct,
		LinkedProductIds: req.LinkedProductIds,
		CreatedAt:        time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	s.listingCache.Flush()
	s.logger.Info("product", "product created", map[string]interface{}{
		"id":  product.Id.String(),
		"sku": product.SKU,
	})
	return s.toResponse(ctx, uow, product)
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest, images []*multipart.FileHeader) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	// New uploads append to the existing gallery, they never replace it.
	paths, err := s.saveImages(images)
	if err != nil {
		return nil, err
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Price = req.Price
	product.Unit = req.Unit
	product.CategoryId = req.CategoryId
	product.Description = req.Description
	product.Images = append(product.Images, paths...)
	product.WholesalePrice = req.WholesalePrice
	product.WholesaleAmount = req.WholesaleAmount
	product.HeatProduct = req.HeatProduct
	product.LinkedProductIds = req.LinkedProductIds

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	s.listingCache.Flush()
	return s.toResponse(ctx, uow, product)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	for _, image := range product.Images {
		s.uploadService.DeleteFile(image)
	}

	s.listingCache.Flush()
	s.logger.Info("product", "product deleted", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *productService) BulkDelete(ctx context.Context, ids []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, product := range products {
		if err := uow.ProductRepository().Delete(ctx, product.Id); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// Files go after the records: a failed transaction must not orphan rows
	// pointing at deleted images.
	for _, product := range products {
		for _, image := range product.Images {
			s.uploadService.DeleteFile(image)
		}
	}

	s.listingCache.Flush()
	return nil
}

func (s *productService) RemoveImage(ctx context.Context, req *dto.RemoveProductImageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	kept := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		if image != req.Image {
			kept = append(kept, image)
		}
	}
	product.Images = kept

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return err
	}

	s.uploadService.DeleteFile(req.Image)
	s.listingCache.Flush()
	return nil
}

func (s *productService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id}, specification.WithCategory{})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List serves both catalog paths behind one response shape: a blank query
// pages straight in the database, a non-blank query pulls every candidate in
// the category and runs the fuzzy ranking pipeline over it. Results are
// memoized per (query, page, pageSize, category) until the next mutation.
func (s *productService) List(ctx context.Context, query, categoryId string, page, pageSize int) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	cacheKey := memory.ListingKey(query, page, pageSize, categoryId)
	if cached, found := s.listingCache.Get(cacheKey); found {
		return cached.(*dto.ProductListResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	categorySpecs := []specification.Specification{}
	if categoryId != "" {
		catId, err := uuid.Parse(categoryId)
		if err != nil {
			return nil, errors.New("invalid category id")
		}
		categorySpecs = append(categorySpecs, specification.ByCategoryID{CategoryID: catId})
	}

	var resp *dto.ProductListResponse

	if strings.TrimSpace(query) == "" {
		// Plain pagination path: newest first, LIMIT/OFFSET in the database.
		total, err := uow.ProductRepository().Count(ctx, categorySpecs...)
		if err != nil {
			return nil, err
		}

		specs := append([]specification.Specification{}, categorySpecs...)
		specs = append(specs,
			specification.WithCategory{},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
		)
		products, err := uow.ProductRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}

		resp = &dto.ProductListResponse{
			Items:       toProductResponses(products),
			TotalCount:  int(total),
			TotalPages:  (int(total) + pageSize - 1) / pageSize,
			CurrentPage: page,
		}
	} else {
		// Fuzzy path: the candidate set is bounded by the category filter and
		// scored in full, because exact pagination metadata needs the whole
		// post-filter count.
		specs := append([]specification.Specification{}, categorySpecs...)
		specs = append(specs,
			specification.WithCategory{},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		candidates, err := uow.ProductRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}

		ranked := search.Paginate(candidates, func(p *entity.Product) (string, string) {
			return p.Name, p.SKU
		}, search.Params{
			Query:    query,
			Page:     page,
			PageSize: pageSize,
		})

		resp = &dto.ProductListResponse{
			Items:       toProductResponses(ranked.Items),
			TotalCount:  ranked.TotalCount,
			TotalPages:  ranked.TotalPages,
			CurrentPage: ranked.CurrentPage,
		}
	}

	s.listingCache.Set(cacheKey, resp)
	return resp, nil
}

func (s *productService) Featured(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.HeatProducts{},
		specification.WithCategory{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) Linked(ctx context.Context, ids []uuid.UUID) ([]dto.ProductResponse, error) {
	if len(ids) == 0 {
		return []dto.ProductResponse{}, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.WithCategory{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// QuickSearch is the admin picker lookup: plain ILIKE, name ascending. The
// fuzzy ranker is deliberately not involved here.
func (s *productService) QuickSearch(ctx context.Context, term string, excludeId *uuid.UUID, limit int) ([]dto.QuickSearchItem, error) {
	if limit < 1 {
		limit = DefaultQuickSearchLimit
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if strings.TrimSpace(term) != "" {
		specs = append(specs, specification.NameOrSKULike{Term: strings.TrimSpace(term)})
	}
	if excludeId != nil {
		specs = append(specs, specification.ExcludeID{ID: *excludeId})
	}
	specs = append(specs,
		specification.OrderBy{Field: "name", Desc: false},
		specification.Limit{Limit: limit},
	)

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuickSearchItem, len(products))
	for i, p := range products {
		items[i] = dto.QuickSearchItem{
			Id:     p.Id,
			Name:   p.Name,
			SKU:    p.SKU,
			Images: emptyIfNil(p.Images),
		}
	}
	return items, nil
}

func (s *productService) saveImages(images []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(images))
	for _, file := range images {
		if file == nil || file.Size == 0 {
			continue
		}
		path, err := s.uploadService.SaveFile(file, productImageDir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *productService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, product *entity.Product) (*dto.ProductResponse, error) {
	if product.CategoryName == "" {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: product.CategoryId})
		if err != nil {
			return nil, err
		}
		if category != nil {
			product.CategoryName = category.Name
		}
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Id:    p.Id,
		SKU:   p.SKU,
		Name:  p.Name,
		Price: p.Price,
		Unit:  p.Unit,
		Category: dto.CategoryRef{
			Id:   p.CategoryId,
			Name: p.CategoryName,
		},
		Description:      p.Description,
		Images:           emptyIfNil(p.Images),
		WholesalePrice:   p.WholesalePrice,
		WholesaleAmount:  p.WholesaleAmount,
		HeatProduct:      p.HeatProduct,
		LinkedProductIds: p.LinkedProductIds,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
