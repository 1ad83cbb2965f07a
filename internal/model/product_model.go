package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id               uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU              string                         `gorm:"column:sku;type:varchar(64);not null;index"`
	Name             string                         `gorm:"type:varchar(255);not null;index"`
	Price            float64                        `gorm:"not null"`
	Unit             string                         `gorm:"type:varchar(32);not null"`
	CategoryId       uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Category         *Category                      `gorm:"foreignKey:CategoryId"`
	Description      string                         `gorm:"type:text"`
	Images           datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	WholesalePrice   *float64
	WholesaleAmount  *int
	HeatProduct      bool                           `gorm:"not null;default:false;index"`
	LinkedProductIds datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	CreatedAt        time.Time                      `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time                      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt                 `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
