package model

import (
	"time"

	"github.com/google/uuid"
)

type PriceList struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	Path       string    `gorm:"type:varchar(512);not null"`
	UploadedAt time.Time `gorm:"autoCreateTime;index"`
}

func (PriceList) TableName() string {
	return "price_lists"
}
