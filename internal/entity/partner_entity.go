package entity

import (
	"time"

	"github.com/google/uuid"
)

type Partner struct {
	Id          uuid.UUID
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
