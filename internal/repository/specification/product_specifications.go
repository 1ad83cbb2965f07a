package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// HeatProducts narrows to products flagged for the landing-page carousel.
type HeatProducts struct{}

func (s HeatProducts) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("heat_product = ?", true)
}

// NameOrSKULike is the cheap ILIKE path used by the admin quick-search
// (linked-products picker), not by the fuzzy ranking pipeline.
type NameOrSKULike struct {
	Term string
}

func (s NameOrSKULike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
}

type ExcludeID struct {
	ID uuid.UUID
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}

// WithCategory preloads the owning category for list/detail responses.
type WithCategory struct{}

func (s WithCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Category")
}
