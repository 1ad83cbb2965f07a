package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProductRequest is assembled by the controller from the multipart
// form; image files travel separately as file headers.
type CreateProductRequest struct {
	SKU              string      `json:"sku" validate:"required"`
	Name             string      `json:"name" validate:"required"`
	Price            float64     `json:"price" validate:"gte=0"`
	Unit             string      `json:"unit" validate:"required"`
	CategoryId       uuid.UUID   `json:"category_id" validate:"required"`
	Description      string      `json:"description"`
	WholesalePrice   *float64    `json:"wholesale_price"`
	WholesaleAmount  *int        `json:"wholesale_amount"`
	HeatProduct      bool        `json:"heat_product"`
	LinkedProductIds []uuid.UUID `json:"linked_product_ids"`
}

type UpdateProductRequest struct {
	Id               uuid.UUID
	SKU              string      `json:"sku" validate:"required"`
	Name             string      `json:"name" validate:"required"`
	Price            float64     `json:"price" validate:"gte=0"`
	Unit             string      `json:"unit" validate:"required"`
	CategoryId       uuid.UUID   `json:"category_id" validate:"required"`
	Description      string      `json:"description"`
	WholesalePrice   *float64    `json:"wholesale_price"`
	WholesaleAmount  *int        `json:"wholesale_amount"`
	HeatProduct      bool        `json:"heat_product"`
	LinkedProductIds []uuid.UUID `json:"linked_product_ids"`
}

type CategoryRef struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProductResponse struct {
	Id               uuid.UUID   `json:"id"`
	SKU              string      `json:"sku"`
	Name             string      `json:"name"`
	Price            float64     `json:"price"`
	Unit             string      `json:"unit"`
	Category         CategoryRef `json:"category"`
	Description      string      `json:"description"`
	Images           []string    `json:"images"`
	WholesalePrice   *float64    `json:"wholesale_price"`
	WholesaleAmount  *int        `json:"wholesale_amount"`
	HeatProduct      bool        `json:"heat_product"`
	LinkedProductIds []uuid.UUID `json:"linked_product_ids"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        *time.Time  `json:"updated_at"`
}

// ProductListResponse has the same shape whether the request went through
// fuzzy ranking or plain database pagination.
type ProductListResponse struct {
	Items       []ProductResponse `json:"items"`
	TotalCount  int               `json:"total_count"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}

// QuickSearchItem is the slim row the linked-products picker needs.
type QuickSearchItem struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	SKU    string    `json:"sku"`
	Images []string  `json:"images"`
}

type RemoveProductImageRequest struct {
	Id    uuid.UUID
	Image string `json:"image" validate:"required"`
}

type BulkDeleteRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}
