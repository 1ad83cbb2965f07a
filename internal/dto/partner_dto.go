package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdatePartnerRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type PartnerResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
