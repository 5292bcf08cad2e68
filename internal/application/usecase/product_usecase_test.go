package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

const (
	testVendorID  = "00000000-0000-0000-0000-000000000001"
	otherVendorID = "00000000-0000-0000-0000-000000000002"
)

// stubPDF evita depender del generador real en tests de lógica.
type stubPDF struct{ called bool }

func (s *stubPDF) GenerateCatalogPDF(_ context.Context, ads []repository.ProductAdRow) ([]byte, error) {
	s.called = true
	return []byte("%PDF-stub"), nil
}

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *stubPDF) {
	repo := newFakeProductRepo()
	pdf := &stubPDF{}
	return usecase.NewProductUseCase(repo, pdf), repo, pdf
}

func validAdRequest() dto.CreateAdRequest {
	return dto.CreateAdRequest{
		ProductName: "Latte",
		Description: "Espresso con leche vaporizada",
		Price:       "4.5",
		Category:    "Beverage",
		ImageURL:    "https://cdn.example.com/latte.jpg",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

// Todo anuncio nuevo nace pending aunque el caller no lo pida.
func TestCreateAd_NacePendiente(t *testing.T) {
	uc, _, _ := newProductUC()

	ad, err := uc.CreateAd(context.Background(), testVendorID, validAdRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, ad.Status, "un anuncio nuevo debe quedar pending")
	assert.Equal(t, testVendorID, ad.VendorID, "el vendedor sale del actor, no del cuerpo")
	assert.True(t, ad.Price.Equal(decimal.RequireFromString("4.5")))

	// Round trip: el dueño puede leer su anuncio pendiente.
	got, err := uc.GetAd(context.Background(), ad.ID, testVendorID, false)
	require.NoError(t, err)
	assert.Equal(t, "Latte", got.ProductName)
	assert.Equal(t, "Beverage", got.Category)
}

func TestCreateAd_NombreVacio_ErrorDeValidacion(t *testing.T) {
	uc, repo, _ := newProductUC()

	in := validAdRequest()
	in.ProductName = "   "
	_, err := uc.CreateAd(context.Background(), testVendorID, in)

	v, ok := domain.AsValidation(err)
	require.True(t, ok, "debe ser error de validación, no de infraestructura")
	assert.NotEmpty(t, v.Details)
	assert.Empty(t, repo.ads, "nada debe persistirse ante una entrada inválida")
}

func TestCreateAd_PrecioNoNumericoONegativo_ErrorDeValidacion(t *testing.T) {
	uc, _, _ := newProductUC()

	in := validAdRequest()
	in.Price = "gratis"
	_, err := uc.CreateAd(context.Background(), testVendorID, in)
	_, ok := domain.AsValidation(err)
	assert.True(t, ok, "precio no numérico debe fallar la validación")

	in.Price = "-3.50"
	_, err = uc.CreateAd(context.Background(), testVendorID, in)
	v, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, v.Details, "El precio no puede ser negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad
// ──────────────────────────────────────────────────────────────────────────────

// Un anuncio pending es invisible para terceros: 404, no 403, para no
// revelar su existencia.
func TestGetAd_PendienteInvisibleParaTerceros(t *testing.T) {
	uc, _, _ := newProductUC()
	ad, err := uc.CreateAd(context.Background(), testVendorID, validAdRequest())
	require.NoError(t, err)

	_, err = uc.GetAd(context.Background(), ad.ID, otherVendorID, false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "otro vendedor no debe ver un pending ajeno")

	_, err = uc.GetAd(context.Background(), ad.ID, "", false)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un anónimo no debe ver un pending")

	// El admin sí lo ve.
	got, err := uc.GetAd(context.Background(), ad.ID, "", true)
	require.NoError(t, err)
	assert.Equal(t, ad.ID, got.ID)
}

func TestGetAd_AprobadoEsPublico(t *testing.T) {
	uc, _, _ := newProductUC()
	ad, err := uc.CreateAd(context.Background(), testVendorID, validAdRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Approve(context.Background(), ad.ID))

	got, err := uc.GetAd(context.Background(), ad.ID, "", false)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Moderación
// ──────────────────────────────────────────────────────────────────────────────

// La moderación sobreescribe sin mirar el estado anterior: re-aprobar es
// idempotente y un rechazado puede aprobarse después.
func TestModeracion_SobreescrituraIncondicional(t *testing.T) {
	uc, _, _ := newProductUC()
	ad, err := uc.CreateAd(context.Background(), testVendorID, validAdRequest())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, uc.Approve(ctx, ad.ID))
	require.NoError(t, uc.Approve(ctx, ad.ID), "re-aprobar debe ser idempotente")
	require.NoError(t, uc.Reject(ctx, ad.ID), "un aprobado puede rechazarse")
	require.NoError(t, uc.Approve(ctx, ad.ID), "un rechazado puede aprobarse")

	got, err := uc.GetAd(ctx, ad.ID, "", true)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestModeracion_AnuncioInexistente_NotFound(t *testing.T) {
	uc, _, _ := newProductUC()
	err := uc.Approve(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdsByStatus_EstadoInvalido_ErrorDeValidacion(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.AdsByStatus(context.Background(), "archivado")
	_, ok := domain.AsValidation(err)
	assert.True(t, ok, "un estado fuera del conjunto cerrado no debe llegar al store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados públicos
// ──────────────────────────────────────────────────────────────────────────────

func TestApprovedAds_SoloAprobadosConNombreDeVendedor(t *testing.T) {
	uc, repo, _ := newProductUC()
	repo.vendorNames[testVendorID] = "Granos del Valle"
	ctx := context.Background()

	aprobado, err := uc.CreateAd(ctx, testVendorID, validAdRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Approve(ctx, aprobado.ID))

	pendiente := validAdRequest()
	pendiente.ProductName = "Mocha"
	_, err = uc.CreateAd(ctx, testVendorID, pendiente)
	require.NoError(t, err)

	ads, err := uc.ApprovedAds(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1, "el escaparate solo muestra aprobados")
	assert.Equal(t, "Latte", ads[0].ProductName)
	assert.Equal(t, "Granos del Valle", ads[0].VendorName)
}

func TestCategories_SinAnuncios_ListaVaciaNoNil(t *testing.T) {
	uc, _, _ := newProductUC()
	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestCategories_SoloDeAprobados(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()

	ad, err := uc.CreateAd(ctx, testVendorID, validAdRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Approve(ctx, ad.ID))

	otro := validAdRequest()
	otro.ProductName = "Molinillo"
	otro.Category = "Equipment"
	_, err = uc.CreateAd(ctx, testVendorID, otro) // queda pending
	require.NoError(t, err)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beverage"}, cats)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y borrado del vendedor
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateAd_SoloElDueno(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()
	ad, err := uc.CreateAd(ctx, testVendorID, validAdRequest())
	require.NoError(t, err)

	in := validAdRequest()
	in.Price = "5.25"
	_, err = uc.UpdateAd(ctx, otherVendorID, ad.ID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "editar un anuncio ajeno debe fallar como not found")

	updated, err := uc.UpdateAd(ctx, testVendorID, ad.ID, in)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("5.25")))
	assert.Equal(t, entity.StatusPending, updated.Status, "la edición no toca el estado de moderación")
}

func TestDeleteAd_SoloElDueno(t *testing.T) {
	uc, repo, _ := newProductUC()
	ctx := context.Background()
	ad, err := uc.CreateAd(ctx, testVendorID, validAdRequest())
	require.NoError(t, err)

	err = uc.DeleteAd(ctx, otherVendorID, ad.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.ads, 1, "el anuncio debe seguir existiendo")

	require.NoError(t, uc.DeleteAd(ctx, testVendorID, ad.ID))
	assert.Empty(t, repo.ads)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogPDF_UsaSoloAprobados(t *testing.T) {
	uc, _, pdf := newProductUC()
	ctx := context.Background()
	ad, err := uc.CreateAd(ctx, testVendorID, validAdRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Approve(ctx, ad.ID))

	out, err := uc.CatalogPDF(ctx)
	require.NoError(t, err)
	assert.True(t, pdf.called)
	assert.NotEmpty(t, out)
}
