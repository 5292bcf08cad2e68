package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafes-platform-api/internal/application/analytics"
)

// DashboardHandler sirve los paneles de admin y de vendedor.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler de paneles.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin godoc
// @Summary      Panel de administración (contadores y pendientes recientes)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.AdminDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "panel de administración", out)
}

// Vendor godoc
// @Summary      Panel del vendedor autenticado
// @Tags         vendor
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/vendor/dashboard [get]
func (h *DashboardHandler) Vendor(c *fiber.Ctx) error {
	out, err := h.uc.VendorDashboard(c.Context(), GetActor(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "panel del vendedor", out)
}
