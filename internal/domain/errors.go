package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAccountSuspended   = errors.New("cuenta suspendida")
)

// ValidationError agrupa los mensajes acumulados por el validador.
// Los servicios lo devuelven sin tocar el almacenamiento.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validación fallida"
	}
	return "validación fallida: " + strings.Join(e.Details, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput) sobre cualquier error de
// validación sin conocer el tipo concreto.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError construye un ValidationError con los detalles dados.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// AsValidation devuelve el *ValidationError si err lo es (directo o envuelto).
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
