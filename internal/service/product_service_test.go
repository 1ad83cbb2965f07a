package service

import (
	"context"
	"testing"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/pkg/logger"
	"packaging-catalog-be/internal/repository/contract"
	"packaging-catalog-be/internal/repository/memory"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductRepository serves a fixed product set and counts reads, so tests
// can tell a cache hit from a repository round trip. Specifications are
// ignored; the fixtures are small enough to rank in full.
type stubProductRepository struct {
	products []*entity.Product
	findAlls int
}

func (r *stubProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *stubProductRepository) Update(ctx context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.Id == product.Id {
			r.products[i] = product
		}
	}
	return nil
}

func (r *stubProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.products[:0]
	for _, p := range r.products {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

func (r *stubProductRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, p := range r.products {
				if p.Id == byID.ID {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *stubProductRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.findAlls++
	return r.products, nil
}

func (r *stubProductRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.products)), nil
}

type stubCategoryRepository struct{}

func (r *stubCategoryRepository) Create(ctx context.Context, category *entity.Category) error { return nil }
func (r *stubCategoryRepository) Update(ctx context.Context, category *entity.Category) error { return nil }
func (r *stubCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *stubCategoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	return &entity.Category{Id: uuid.New(), Name: "Картонная упаковка"}, nil
}
func (r *stubCategoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	return nil, nil
}
func (r *stubCategoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubUnitOfWork struct {
	products   *stubProductRepository
	categories contract.CategoryRepository
	users      contract.UserRepository
	priceLists contract.PriceListRepository
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error                   { return nil }
func (u *stubUnitOfWork) Rollback() error                 { return nil }

func (u *stubUnitOfWork) ProductRepository() contract.ProductRepository     { return u.products }
func (u *stubUnitOfWork) CategoryRepository() contract.CategoryRepository   { return u.categories }
func (u *stubUnitOfWork) PartnerRepository() contract.PartnerRepository     { return nil }
func (u *stubUnitOfWork) PriceListRepository() contract.PriceListRepository { return u.priceLists }
func (u *stubUnitOfWork) UserRepository() contract.UserRepository           { return u.users }

type stubUowFactory struct {
	uow *stubUnitOfWork
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func newTestProductService(products []*entity.Product) (IProductService, *stubProductRepository, *memory.SearchCache) {
	repo := &stubProductRepository{products: products}
	factory := &stubUowFactory{uow: &stubUnitOfWork{
		products:   repo,
		categories: &stubCategoryRepository{},
	}}
	cache := memory.NewSearchCache()
	svc := NewProductService(factory, NewUploadService("testdata-uploads", noopLogger{}), cache, noopLogger{})
	return svc, repo, cache
}

func fixtureProducts() []*entity.Product {
	return []*entity.Product{
		{Id: uuid.New(), Name: "Стрейч-пленка 500 мм", SKU: "STR-001"},
		{Id: uuid.New(), Name: "Гофрокороб 300x200x200 мм", SKU: "BOX-001"},
		{Id: uuid.New(), Name: "Стакан бумажный", SKU: "КОРОБ-77"},
		{Id: uuid.New(), Name: "Гофрокороб 400x300x300 мм", SKU: "BOX-002"},
	}
}

func TestProductListFuzzyRanking(t *testing.T) {
	svc, _, _ := newTestProductService(fixtureProducts())

	resp, err := svc.List(context.Background(), "короб", "", 1, 12)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Items, 3)

	// Both name hits score 1 and keep their input order; the SKU hit is
	// discounted below them.
	assert.Equal(t, "BOX-001", resp.Items[0].SKU)
	assert.Equal(t, "BOX-002", resp.Items[1].SKU)
	assert.Equal(t, "КОРОБ-77", resp.Items[2].SKU)
}

func TestProductListMemoizesPerKey(t *testing.T) {
	svc, repo, _ := newTestProductService(fixtureProducts())
	ctx := context.Background()

	_, err := svc.List(ctx, "короб", "", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAlls)

	// Same key: served from cache, no repository read.
	_, err = svc.List(ctx, "короб", "", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAlls)

	// Different page is a different key.
	_, err = svc.List(ctx, "короб", "", 2, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.findAlls)
}

func TestProductListCacheFlushedOnDelete(t *testing.T) {
	products := fixtureProducts()
	svc, repo, _ := newTestProductService(products)
	ctx := context.Background()

	_, err := svc.List(ctx, "короб", "", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAlls)

	require.NoError(t, svc.Delete(ctx, products[1].Id))

	resp, err := svc.List(ctx, "короб", "", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.findAlls, "mutation must invalidate the cached listing")
	assert.Equal(t, 2, resp.TotalCount)
}

func TestProductListRejectsBadCategoryId(t *testing.T) {
	svc, _, _ := newTestProductService(nil)

	_, err := svc.List(context.Background(), "", "not-a-uuid", 1, 12)
	assert.Error(t, err)
}

func TestProductDeleteNotFound(t *testing.T) {
	svc, _, _ := newTestProductService(nil)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductShowNotFound(t *testing.T) {
	svc, _, _ := newTestProductService(nil)

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRemoveImage(t *testing.T) {
	products := []*entity.Product{
		{Id: uuid.New(), Name: "Гофрокороб", SKU: "BOX-001", Images: []string{"/uploads/products/a.jpg", "/uploads/products/b.jpg"}},
	}
	svc, repo, _ := newTestProductService(products)

	err := svc.RemoveImage(context.Background(), &dto.RemoveProductImageRequest{
		Id:    products[0].Id,
		Image: "/uploads/products/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/products/b.jpg"}, repo.products[0].Images)
}

func TestProductLinkedEmptyIds(t *testing.T) {
	svc, repo, _ := newTestProductService(fixtureProducts())

	resp, err := svc.Linked(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.Equal(t, 0, repo.findAlls, "no ids means no lookup")
}
