package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafes-platform-api/internal/application/auth"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
)

// AuthHandler maneja registro, login, logout y la cuenta actual.
type AuthHandler struct {
	uc    *auth.UseCase
	store *session.Store
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Register godoc
// @Summary      Registrar cuenta (vendedor o dueño de cafetería)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "business_name, email, password, confirm_password, role"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "cuenta registrada", user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Crea la sesión de cookie para el navegador y devuelve además un JWT para clientes de API.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return respondError(c, err)
	}
	// La sesión se regenera en cada login para no reutilizar el ID previo.
	if err := sess.Regenerate(); err != nil {
		return respondError(c, err)
	}
	sess.Set(sessionUserID, out.User.ID)
	sess.Set(sessionEmail, out.User.Email)
	sess.Set(sessionRole, out.User.Role)
	if err := sess.Save(); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, "sesión iniciada", out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return respondOK(c, fiber.StatusOK, "sesión cerrada", nil)
}

// Me godoc
// @Summary      Cuenta del actor autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := GetActor(c)
	user, err := h.uc.Me(c.Context(), actor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "cuenta actual", user)
}
