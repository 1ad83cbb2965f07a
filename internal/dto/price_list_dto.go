package dto

import (
	"time"

	"packaging-catalog-be/pkg/fileio"

	"github.com/google/uuid"
)

type PriceListResponse struct {
	Id         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PriceTableResponse is the parsed spreadsheet for the public price-list
// page. Table is nil when the stored file cannot be rendered; ParseError
// then explains why and the client falls back to a download link.
type PriceTableResponse struct {
	PriceList  PriceListResponse `json:"price_list"`
	Table      *fileio.PriceTable `json:"table,omitempty"`
	ParseError string            `json:"parse_error,omitempty"`
}
