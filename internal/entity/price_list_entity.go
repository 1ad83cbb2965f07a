package entity

import (
	"time"

	"github.com/google/uuid"
)

type PriceList struct {
	Id         uuid.UUID
	Filename   string
	Path       string
	UploadedAt time.Time
}
