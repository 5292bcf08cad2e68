package repository

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

// ProductAdRow anuncio con el nombre visible del vendedor (JOIN con users).
type ProductAdRow struct {
	entity.ProductAd
	VendorName string
}

// ProductRepository define el puerto de persistencia para ProductAd.
type ProductRepository interface {
	Crud[entity.ProductAd]

	ListByVendor(ctx context.Context, vendorID string) ([]*entity.ProductAd, error)
	// ListApproved solo anuncios approved, con nombre del vendedor,
	// ordenados por product_name ascendente.
	ListApproved(ctx context.Context) ([]ProductAdRow, error)
	ListByStatus(ctx context.Context, status string) ([]ProductAdRow, error)
	ListByCategory(ctx context.Context, category string) ([]ProductAdRow, error)
	// UpdateStatus sobreescribe el estado sin mirar el anterior.
	// Devuelve false si el anuncio no existe.
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	// Categories categorías distintas, recortadas y no vacías de anuncios
	// approved, ascendente.
	Categories(ctx context.Context) ([]string, error)
}
