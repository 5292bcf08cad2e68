// Package validator implementa chequeos de campo sin estado compartido:
// cada chequeo acumula un mensaje legible y devuelve un bool. El llamador
// combina y reenvía los errores; el validador no tiene otros efectos.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// local@dominio con dominio separado por puntos.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)

// Validator acumula mensajes de error por petición. No es seguro para uso
// concurrente; crear uno por llamada.
type Validator struct {
	errors []string
}

// New crea un validador vacío.
func New() *Validator {
	return &Validator{}
}

// Email válido solo si cumple la gramática local@dominio.punto.
func (v *Validator) Email(value string) bool {
	if !emailRe.MatchString(value) {
		v.errors = append(v.errors, "El formato del email es inválido")
		return false
	}
	return true
}

// Password exige longitud ≥ 8, una mayúscula, una minúscula y un dígito.
// Registra solo la primera regla que falla.
func (v *Validator) Password(value string) bool {
	if len(value) < 8 {
		v.errors = append(v.errors, "La contraseña debe tener al menos 8 caracteres")
		return false
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		v.errors = append(v.errors, "La contraseña debe contener mayúsculas")
		return false
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		v.errors = append(v.errors, "La contraseña debe contener minúsculas")
		return false
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		v.errors = append(v.errors, "La contraseña debe contener números")
		return false
	}
	return true
}

// Required válido solo si el valor recortado no está vacío.
func (v *Validator) Required(value, fieldName string) bool {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, fmt.Sprintf("%s es requerido", fieldName))
		return false
	}
	return true
}

// MaxLength válido solo si el valor no excede max caracteres (runas, no
// bytes: los nombres con acentos no se penalizan).
func (v *Validator) MaxLength(value string, max int, fieldName string) bool {
	if utf8.RuneCountInString(value) > max {
		v.errors = append(v.errors, fmt.Sprintf("%s no puede exceder %d caracteres", fieldName, max))
		return false
	}
	return true
}

// Numeric válido solo si el valor es numérico (entero o decimal, sin símbolos
// de moneda).
func (v *Validator) Numeric(value, fieldName string) bool {
	if _, err := decimal.NewFromString(strings.TrimSpace(value)); err != nil {
		v.errors = append(v.errors, fmt.Sprintf("%s debe ser numérico", fieldName))
		return false
	}
	return true
}

// InArray válido solo si el valor pertenece al conjunto permitido.
func (v *Validator) InArray(value string, allowed []string, fieldName string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	v.errors = append(v.errors, fmt.Sprintf("%s tiene un valor inválido", fieldName))
	return false
}

// Add registra un mensaje construido por el llamador (reglas compuestas que
// el validador no cubre, ej. rangos).
func (v *Validator) Add(message string) {
	v.errors = append(v.errors, message)
}

// IsValid true si no hay errores acumulados.
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors devuelve los mensajes acumulados.
func (v *Validator) Errors() []string {
	return v.errors
}

// Clear descarta los errores acumulados.
func (v *Validator) Clear() {
	v.errors = nil
}
