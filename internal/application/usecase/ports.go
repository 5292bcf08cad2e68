package usecase

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

// PartnershipTxRunner ejecuta el chequeo de duplicado y el insert de la
// solicitud dentro de una misma transacción (respaldada por el índice único
// parcial del par pendiente).
type PartnershipTxRunner interface {
	RunPartnerships(ctx context.Context, fn func(partnerships repository.PartnershipRepository) error) error
}

// CatalogPDFGenerator produce el catálogo PDF de anuncios aprobados.
// Lo implementa infrastructure/pdf; la interfaz evita que el caso de uso
// dependa del motor de PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, ads []repository.ProductAdRow) ([]byte, error)
}
