package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafes-platform-api/internal/application/auth"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/pkg/jwt"
)

// LocalActor clave de c.Locals donde AuthMiddleware deja el actor resuelto.
const LocalActor = "actor"

// AuthMiddleware resuelve la identidad de la petición y la deja en c.Locals.
// Intenta primero la sesión de cookie (flujo del navegador) y si no hay
// sesión acepta un Bearer Token JWT (clientes de API). Nunca rechaza por sí
// mismo: las rutas protegidas se cierran con RequireLogin / RequireRole.
func AuthMiddleware(store *session.Store, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if actor, ok := actorFromSession(c, store); ok {
			c.Locals(LocalActor, actor)
			return c.Next()
		}
		if actor, ok := actorFromBearer(c, jwtSecret); ok {
			c.Locals(LocalActor, actor)
			return c.Next()
		}
		c.Locals(LocalActor, auth.Actor{})
		return c.Next()
	}
}

func actorFromSession(c *fiber.Ctx, store *session.Store) (auth.Actor, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return auth.Actor{}, false
	}
	id, _ := sess.Get(sessionUserID).(string)
	email, _ := sess.Get(sessionEmail).(string)
	role, _ := sess.Get(sessionRole).(string)
	if id == "" || role == "" {
		return auth.Actor{}, false
	}
	return auth.Actor{ID: id, Email: email, Role: role}, true
}

func actorFromBearer(c *fiber.Ctx, jwtSecret string) (auth.Actor, bool) {
	header := c.Get("Authorization")
	if header == "" {
		return auth.Actor{}, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return auth.Actor{}, false
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return auth.Actor{}, false
	}
	userID, email, role, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return auth.Actor{}, false
	}
	return auth.Actor{ID: userID, Email: email, Role: role}, true
}

// GetActor devuelve el actor de la petición (después de AuthMiddleware).
func GetActor(c *fiber.Ctx) auth.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return auth.Actor{}
	}
	a, _ := v.(auth.Actor)
	return a
}

// RequireLogin responde 401 si la petición no tiene identidad resuelta.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetActor(c).Anonymous() {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("UNAUTHORIZED", "inicie sesión para continuar"))
		}
		return c.Next()
	}
}

// RequireRole responde 401 sin identidad y 403 cuando el rol del actor no
// está entre los permitidos. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.Anonymous() {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("UNAUTHORIZED", "inicie sesión para continuar"))
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).
			JSON(dto.Fail("FORBIDDEN", "su rol no permite esta operación"))
	}
}
