package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAdRequest entrada para crear un anuncio. Price llega como texto
// crudo (formulario) y se valida/coacciona en el caso de uso; el status del
// caller se ignora siempre: todo anuncio nuevo nace pending.
type CreateAdRequest struct {
	ProductName string `json:"product_name" form:"product_name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Category    string `json:"category" form:"category"`
	ImageURL    string `json:"image_url" form:"image_url"`
}

// AdResponse salida de un anuncio. VendorName solo en listados con JOIN.
type AdResponse struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendor_id"`
	VendorName  string          `json:"vendor_name,omitempty"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Status      string          `json:"status"`
	Active      bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
