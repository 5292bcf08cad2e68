package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

// AdminHandler maneja la gestión de cuentas y las colas de moderación.
type AdminHandler struct {
	users        *usecase.UserUseCase
	products     *usecase.ProductUseCase
	partnerships *usecase.PartnershipUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(users *usecase.UserUseCase, products *usecase.ProductUseCase, partnerships *usecase.PartnershipUseCase) *AdminHandler {
	return &AdminHandler{users: users, products: products, partnerships: partnerships}
}

// Users godoc
// @Summary      Listado de cuentas
// @Tags         admin
// @Produce      json
// @Param        role  query  string  false  "filtrar por rol (vendor, cafe_owner, admin)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context(), c.Query("role"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "cuentas registradas", users)
}

// ToggleUserStatus godoc
// @Summary      Alternar suspensión de una cuenta
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "id de la cuenta"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admin/users/{id}/toggle-status [patch]
func (h *AdminHandler) ToggleUserStatus(c *fiber.Ctx) error {
	out, err := h.users.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "estado de la cuenta actualizado", out)
}

// Products godoc
// @Summary      Cola de moderación de anuncios
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "pending (por defecto), approved o rejected"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/products [get]
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	status := c.Query("status", entity.StatusPending)
	ads, err := h.products.AdsByStatus(c.Context(), status)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncios por estado", ads)
}

// ApproveProduct godoc
// @Summary      Aprobar un anuncio
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "id del anuncio"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admin/products/{id}/approve [patch]
func (h *AdminHandler) ApproveProduct(c *fiber.Ctx) error {
	if err := h.products.Approve(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncio aprobado", nil)
}

// RejectProduct godoc
// @Summary      Rechazar un anuncio
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "id del anuncio"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admin/products/{id}/reject [patch]
func (h *AdminHandler) RejectProduct(c *fiber.Ctx) error {
	if err := h.products.Reject(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "anuncio rechazado", nil)
}

// Partnerships godoc
// @Summary      Cola de solicitudes de alianza
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "pending (por defecto), approved o rejected"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/partnerships [get]
func (h *AdminHandler) Partnerships(c *fiber.Ctx) error {
	status := c.Query("status", entity.StatusPending)
	reqs, err := h.partnerships.RequestsByStatus(c.Context(), status)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "solicitudes por estado", reqs)
}

// ApprovePartnership godoc
// @Summary      Aprobar una solicitud de alianza
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "id de la solicitud"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admin/partnerships/{id}/approve [patch]
func (h *AdminHandler) ApprovePartnership(c *fiber.Ctx) error {
	if err := h.partnerships.Approve(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "solicitud aprobada", nil)
}

// RejectPartnership godoc
// @Summary      Rechazar una solicitud de alianza
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "id de la solicitud"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admin/partnerships/{id}/reject [patch]
func (h *AdminHandler) RejectPartnership(c *fiber.Ctx) error {
	if err := h.partnerships.Reject(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "solicitud rechazada", nil)
}
