package dto

import "time"

// CreatePartnershipRequest entrada del dueño de café; su propio id sale del
// actor autenticado, nunca del cuerpo.
type CreatePartnershipRequest struct {
	VendorID      string `json:"vendor_id" form:"vendor_id"`
	Message       string `json:"message" form:"message"`
	ProposedTerms string `json:"proposed_terms" form:"proposed_terms"`
}

// PartnershipResponse salida de una solicitud. Los nombres solo en listados con JOIN.
type PartnershipResponse struct {
	ID            string    `json:"id"`
	VendorID      string    `json:"vendor_id"`
	CafeOwnerID   string    `json:"cafe_owner_id"`
	VendorName    string    `json:"vendor_name,omitempty"`
	CafeName      string    `json:"cafe_name,omitempty"`
	Message       string    `json:"message"`
	ProposedTerms string    `json:"proposed_terms"`
	Status        string    `json:"status"`
	Active        bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
