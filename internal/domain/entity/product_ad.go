package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de moderación para anuncios y solicitudes de partnership.
// Transiciones: pending→approved, pending→rejected, approved↔rejected
// (la re-moderación sobreescribe sin mirar el estado anterior).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ModerationStatuses conjunto cerrado aceptado por los filtros por estado.
var ModerationStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// ProductAd es el anuncio de producto de un vendedor.
// Solo es visible públicamente cuando Status == approved.
type ProductAd struct {
	ID          string
	VendorID    string
	ProductName string
	Description string
	Price       decimal.Decimal // NUMERIC en DB, nunca float64
	Category    string
	ImageURL    string // ruta relativa; la subida del archivo es externa
	Status      string // pending, approved, rejected
	Active      bool
	CreatedAt   time.Time
}
