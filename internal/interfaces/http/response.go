package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
)

// respondError traduce errores de dominio al par (status HTTP, envoltura).
// Los errores no reconocidos responden 500 con mensaje genérico: el detalle
// queda en los logs, nunca en el cliente.
func respondError(c *fiber.Ctx, err error) error {
	if v, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.Fail("VALIDATION", "datos inválidos", v.Details...))
	}
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.Fail("UNAUTHORIZED", domain.ErrUserNotFound.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.Fail("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrAccountSuspended):
		return c.Status(fiber.StatusForbidden).
			JSON(dto.Fail("SUSPENDED", domain.ErrAccountSuspended.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).
			JSON(dto.Fail("FORBIDDEN", "no tiene permisos para esta operación"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.Fail("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).
			JSON(dto.Fail("EMAIL_EXISTS", domain.ErrEmailAlreadyExists.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).
			JSON(dto.Fail("DUPLICATE", "ya existe una solicitud pendiente"))
	}
	// Error no reconocido (infraestructura): el detalle completo va al log,
	// el cliente solo recibe el 500 genérico.
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno procesando la petición")
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.Fail("INTERNAL", "error interno del servidor"))
}

func respondOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.Fail("INVALID_BODY", "cuerpo de la petición inválido"))
}
