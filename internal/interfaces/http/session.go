package http

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafes-platform-api/pkg/config"
)

// Claves guardadas en la sesión del servidor tras un login exitoso.
const (
	sessionUserID = "user_id"
	sessionEmail  = "email"
	sessionRole   = "role"
)

// NewSessionStore construye el almacén de sesiones con cookie HttpOnly.
// El estado vive en el servidor; la cookie solo transporta el identificador.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.ExpiryHours) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})
}
