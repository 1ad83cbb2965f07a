package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id               uuid.UUID
	SKU              string
	Name             string
	Price            float64
	Unit             string
	CategoryId       uuid.UUID
	CategoryName     string
	Description      string
	Images           []string
	WholesalePrice   *float64
	WholesaleAmount  *int
	HeatProduct      bool
	LinkedProductIds []uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}
