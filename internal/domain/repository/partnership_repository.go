package repository

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

// PartnershipRow solicitud con los nombres visibles de ambas partes.
type PartnershipRow struct {
	entity.PartnershipRequest
	VendorName string
	CafeName   string
}

// PartnershipRepository define el puerto de persistencia para PartnershipRequest.
type PartnershipRepository interface {
	Crud[entity.PartnershipRequest]

	ListByVendor(ctx context.Context, vendorID string) ([]*entity.PartnershipRequest, error)
	ListByOwner(ctx context.Context, cafeOwnerID string) ([]*entity.PartnershipRequest, error)
	ListByStatus(ctx context.Context, status string) ([]PartnershipRow, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	// ExistsPendingBetween true si el par ya tiene una solicitud pendiente.
	// Un par rechazado puede volver a solicitar.
	ExistsPendingBetween(ctx context.Context, vendorID, cafeOwnerID string) (bool, error)
}
