package mapper

import (
	"testing"
	"time"

	"packaging-catalog-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestProductMapperToEntity(t *testing.T) {
	m := NewProductMapper()

	categoryId := uuid.New()
	linked := uuid.New()
	price := 42.0
	amount := 100

	p := &model.Product{
		Id:               uuid.New(),
		SKU:              "BOX-001",
		Name:             "Гофрокороб 300x200x200 мм",
		Price:            45.5,
		Unit:             "шт",
		CategoryId:       categoryId,
		Category:         &model.Category{Id: categoryId, Name: "Картонная упаковка"},
		Description:      "Трехслойный гофрокороб",
		Images:           datatypes.JSONSlice[string]{"/uploads/products/a.jpg"},
		WholesalePrice:   &price,
		WholesaleAmount:  &amount,
		HeatProduct:      true,
		LinkedProductIds: datatypes.JSONSlice[uuid.UUID]{linked},
		CreatedAt:        time.Now(),
	}

	e := m.ToEntity(p)
	require.NotNil(t, e)

	assert.Equal(t, p.Id, e.Id)
	assert.Equal(t, "BOX-001", e.SKU)
	assert.Equal(t, "Картонная упаковка", e.CategoryName)
	assert.Equal(t, []string{"/uploads/products/a.jpg"}, e.Images)
	assert.Equal(t, []uuid.UUID{linked}, e.LinkedProductIds)
	assert.Equal(t, &price, e.WholesalePrice)
	assert.False(t, e.IsDeleted)
	assert.Nil(t, e.DeletedAt)
	assert.Nil(t, e.UpdatedAt, "zero model timestamp maps to no timestamp")
}

func TestProductMapperSoftDelete(t *testing.T) {
	m := NewProductMapper()
	deletedAt := time.Now()

	e := m.ToEntity(&model.Product{
		Id:        uuid.New(),
		DeletedAt: gorm.DeletedAt{Time: deletedAt, Valid: true},
	})

	assert.True(t, e.IsDeleted)
	require.NotNil(t, e.DeletedAt)
	assert.Equal(t, deletedAt, *e.DeletedAt)

	back := m.ToModel(e)
	assert.True(t, back.DeletedAt.Valid)
}

func TestProductMapperNilSafe(t *testing.T) {
	m := NewProductMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))

	entities := m.ToEntities([]*model.Product{nil})
	require.Len(t, entities, 1)
	assert.Nil(t, entities[0])
}

func TestProductMapperMissingCategoryPreload(t *testing.T) {
	m := NewProductMapper()

	e := m.ToEntity(&model.Product{Id: uuid.New(), CategoryId: uuid.New()})
	assert.Empty(t, e.CategoryName, "unloaded association must not panic")
}
