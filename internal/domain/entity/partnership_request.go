package entity

import "time"

// PartnershipRequest es la propuesta de un dueño de café hacia un vendedor.
// Invariante: un par (vendor, cafe_owner) no puede tener dos solicitudes
// pendientes a la vez (índice único parcial en DB).
type PartnershipRequest struct {
	ID            string
	VendorID      string
	CafeOwnerID   string
	Message       string
	ProposedTerms string
	Status        string // pending, approved, rejected
	Active        bool
	CreatedAt     time.Time
}
