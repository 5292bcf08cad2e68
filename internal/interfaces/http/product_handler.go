package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
)

// ProductHandler maneja el escaparate público y la gestión de anuncios del
// vendedor.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListApproved godoc
// @Summary      Escaparate público de anuncios aprobados
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "filtrar por categoría"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListApproved(c *fiber.Ctx) error {
	category := c.Query("category")
	var (
		ads []dto.AdResponse
		err error
	)
	if category != "" {
		ads, err = h.uc.AdsByCategory(c.Context(), category)
	} else {
		ads, err = h.uc.ApprovedAds(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncios publicados", ads)
}

// Categories godoc
// @Summary      Categorías con anuncios aprobados
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.uc.Categories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "categorías disponibles", categories)
}

// CatalogPDF godoc
// @Summary      Catálogo de anuncios aprobados en PDF
// @Tags         products
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/products/catalog.pdf [get]
func (h *ProductHandler) CatalogPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CatalogPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(pdfBytes)
}

// Get godoc
// @Summary      Detalle de un anuncio
// @Description  Los anuncios no aprobados solo son visibles para su dueño o un admin.
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "id del anuncio"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	actor := GetActor(c)
	ad, err := h.uc.GetAd(c.Context(), c.Params("id"), actor.ID, actor.IsAdmin())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncio", ad)
}

// Create godoc
// @Summary      Publicar anuncio (queda pendiente de moderación)
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdRequest  true  "datos del anuncio"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/vendor/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ad, err := h.uc.CreateAd(c.Context(), GetActor(c).ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "anuncio enviado a moderación", ad)
}

// Update godoc
// @Summary      Editar un anuncio propio
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id del anuncio"
// @Param        body  body  dto.CreateAdRequest  true  "datos del anuncio"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/vendor/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateAdRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ad, err := h.uc.UpdateAd(c.Context(), GetActor(c).ID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncio actualizado", ad)
}

// Delete godoc
// @Summary      Eliminar un anuncio propio
// @Tags         vendor
// @Produce      json
// @Param        id  path  string  true  "id del anuncio"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/vendor/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteAd(c.Context(), GetActor(c).ID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncio eliminado", nil)
}

// OwnAds godoc
// @Summary      Anuncios del vendedor autenticado (todos los estados)
// @Tags         vendor
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/vendor/products [get]
func (h *ProductHandler) OwnAds(c *fiber.Ctx) error {
	ads, err := h.uc.VendorAds(c.Context(), GetActor(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "mis anuncios", ads)
}
