package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
)

// PartnershipHandler maneja las solicitudes de alianza entre dueños de
// cafetería y vendedores.
type PartnershipHandler struct {
	uc    *usecase.PartnershipUseCase
	users *usecase.UserUseCase
}

// NewPartnershipHandler construye el handler de alianzas.
func NewPartnershipHandler(uc *usecase.PartnershipUseCase, users *usecase.UserUseCase) *PartnershipHandler {
	return &PartnershipHandler{uc: uc, users: users}
}

// Create godoc
// @Summary      Enviar solicitud de alianza a un vendedor
// @Tags         cafe
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnershipRequest  true  "vendor_id, message, proposed_terms"
// @Success      201   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/cafe/partnerships [post]
func (h *PartnershipHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnershipRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, err := h.uc.CreateRequest(c.Context(), GetActor(c).ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "solicitud enviada", req)
}

// Vendors godoc
// @Summary      Vendedores activos disponibles para alianza
// @Tags         cafe
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/cafe/vendors [get]
func (h *PartnershipHandler) Vendors(c *fiber.Ctx) error {
	vendors, err := h.users.ActiveVendors(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "vendedores activos", vendors)
}

// OwnerRequests godoc
// @Summary      Solicitudes enviadas por el dueño de cafetería autenticado
// @Tags         cafe
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/cafe/partnerships [get]
func (h *PartnershipHandler) OwnerRequests(c *fiber.Ctx) error {
	reqs, err := h.uc.OwnerRequests(c.Context(), GetActor(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "mis solicitudes", reqs)
}

// VendorRequests godoc
// @Summary      Solicitudes recibidas por el vendedor autenticado
// @Tags         vendor
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/vendor/partnerships [get]
func (h *PartnershipHandler) VendorRequests(c *fiber.Ctx) error {
	reqs, err := h.uc.VendorRequests(c.Context(), GetActor(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "solicitudes recibidas", reqs)
}
