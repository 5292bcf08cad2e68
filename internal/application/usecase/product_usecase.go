package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
	"github.com/jhoicas/cafes-platform-api/pkg/validator"
	"github.com/shopspring/decimal"
)

// adInput entrada interna del flujo genérico: la petición más el vendedor
// resuelto del actor (nunca del cuerpo).
type adInput struct {
	dto.CreateAdRequest
	vendorID string
}

// ProductUseCase casos de uso de anuncios de producto: creación del
// vendedor, moderación del admin y listados públicos.
type ProductUseCase struct {
	repo repository.ProductRepository
	crud *CrudService[adInput, entity.ProductAd]
	pdf  CatalogPDFGenerator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pdf CatalogPDFGenerator) *ProductUseCase {
	uc := &ProductUseCase{repo: repo, pdf: pdf}
	uc.crud = &CrudService[adInput, entity.ProductAd]{
		Repo:     repo,
		Validate: validateAd,
		Sanitize: sanitizeAd,
		Build:    buildAd,
		Apply:    applyAd,
	}
	return uc
}

func validateAd(v *validator.Validator, in adInput) {
	if v.Required(in.ProductName, "El nombre del producto") {
		v.MaxLength(in.ProductName, 200, "El nombre del producto")
	}
	if v.Numeric(in.Price, "El precio") {
		if p, err := decimal.NewFromString(strings.TrimSpace(in.Price)); err == nil && p.IsNegative() {
			v.Add("El precio no puede ser negativo")
		}
	}
	v.MaxLength(in.Category, 100, "La categoría")
}

func sanitizeAd(in adInput) adInput {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Price = strings.TrimSpace(in.Price)
	return in
}

// buildAd materializa el anuncio; el status del caller se ignora y todo
// anuncio nuevo entra a la cola de moderación como pending.
func buildAd(in adInput) *entity.ProductAd {
	price, _ := decimal.NewFromString(in.Price) // ya validado
	return &entity.ProductAd{
		ID:          uuid.New().String(),
		VendorID:    in.vendorID,
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Status:      entity.StatusPending,
		Active:      true,
		CreatedAt:   time.Now(),
	}
}

func applyAd(in adInput, ad *entity.ProductAd) {
	ad.ProductName = in.ProductName
	ad.Description = in.Description
	if price, err := decimal.NewFromString(in.Price); err == nil {
		ad.Price = price
	}
	ad.Category = in.Category
	if in.ImageURL != "" {
		ad.ImageURL = in.ImageURL
	}
}

// CreateAd crea un anuncio para el vendedor autenticado.
func (uc *ProductUseCase) CreateAd(ctx context.Context, vendorID string, in dto.CreateAdRequest) (*dto.AdResponse, error) {
	ad, err := uc.crud.Create(ctx, adInput{CreateAdRequest: in, vendorID: vendorID})
	if err != nil {
		return nil, err
	}
	return toAdResponse(ad), nil
}

// GetAd devuelve un anuncio si el solicitante puede verlo: los approved son
// públicos; pending/rejected solo para el vendedor dueño o un admin.
func (uc *ProductUseCase) GetAd(ctx context.Context, id string, viewerID string, viewerIsAdmin bool) (*dto.AdResponse, error) {
	ad, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, domain.ErrNotFound
	}
	if ad.Status != entity.StatusApproved && !viewerIsAdmin && ad.VendorID != viewerID {
		return nil, domain.ErrNotFound
	}
	return toAdResponse(ad), nil
}

// UpdateAd reemplaza los campos editables de un anuncio del vendedor
// autenticado. El estado de moderación no se toca aquí.
func (uc *ProductUseCase) UpdateAd(ctx context.Context, vendorID, id string, in dto.CreateAdRequest) (*dto.AdResponse, error) {
	ad, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil || ad.VendorID != vendorID {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.crud.Update(ctx, id, adInput{CreateAdRequest: in, vendorID: vendorID})
	if err != nil {
		return nil, err
	}
	return toAdResponse(updated), nil
}

// DeleteAd elimina un anuncio del vendedor autenticado.
func (uc *ProductUseCase) DeleteAd(ctx context.Context, vendorID, id string) error {
	ad, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil || ad.VendorID != vendorID {
		return domain.ErrNotFound
	}
	_, err = uc.crud.Delete(ctx, id)
	return err
}

// ApprovedAds listado público: solo approved, con nombre del vendedor,
// ordenado por nombre de producto.
func (uc *ProductUseCase) ApprovedAds(ctx context.Context) ([]dto.AdResponse, error) {
	rows, err := uc.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return toAdResponses(rows), nil
}

// AdsByStatus listado de moderación; un estado fuera del conjunto cerrado
// devuelve error de validación sin tocar el store.
func (uc *ProductUseCase) AdsByStatus(ctx context.Context, status string) ([]dto.AdResponse, error) {
	v := validator.New()
	if !v.InArray(status, entity.ModerationStatuses, "El estado") {
		return nil, domain.NewValidationError(v.Errors()...)
	}
	rows, err := uc.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toAdResponses(rows), nil
}

// AdsByCategory anuncios approved de una categoría.
func (uc *ProductUseCase) AdsByCategory(ctx context.Context, category string) ([]dto.AdResponse, error) {
	rows, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toAdResponses(rows), nil
}

// VendorAds anuncios del vendedor autenticado, en cualquier estado.
func (uc *ProductUseCase) VendorAds(ctx context.Context, vendorID string) ([]dto.AdResponse, error) {
	ads, err := uc.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, *toAdResponse(ad))
	}
	return out, nil
}

// Approve transición de moderación a approved. Sobreescritura incondicional:
// re-aprobar un anuncio ya aprobado o rechazado es idempotente y permitido.
func (uc *ProductUseCase) Approve(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusApproved)
}

// Reject transición de moderación a rejected.
func (uc *ProductUseCase) Reject(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusRejected)
}

func (uc *ProductUseCase) setStatus(ctx context.Context, id, status string) error {
	ok, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Categories categorías públicas: distintas, recortadas, no vacías, de
// anuncios approved, ascendente.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	cats, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// CatalogPDF genera el catálogo PDF de los anuncios aprobados.
func (uc *ProductUseCase) CatalogPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, rows)
}

func toAdResponse(ad *entity.ProductAd) *dto.AdResponse {
	if ad == nil {
		return nil
	}
	return &dto.AdResponse{
		ID:          ad.ID,
		VendorID:    ad.VendorID,
		ProductName: ad.ProductName,
		Description: ad.Description,
		Price:       ad.Price,
		Category:    ad.Category,
		ImageURL:    ad.ImageURL,
		Status:      ad.Status,
		Active:      ad.Active,
		CreatedAt:   ad.CreatedAt,
	}
}

func toAdResponses(rows []repository.ProductAdRow) []dto.AdResponse {
	out := make([]dto.AdResponse, 0, len(rows))
	for _, row := range rows {
		resp := toAdResponse(&row.ProductAd)
		resp.VendorName = row.VendorName
		out = append(out, *resp)
	}
	return out
}
