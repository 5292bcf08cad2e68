package entity

import "time"

// Roles válidos para User.
const (
	RoleVendor    = "vendor"
	RoleCafeOwner = "cafe_owner"
	RoleAdmin     = "admin"
)

// Roles permitidos en el registro público (admin se crea por seed, nunca por formulario).
var RegistrableRoles = []string{RoleVendor, RoleCafeOwner}

// User representa una cuenta de la plataforma: vendedor, dueño de café o admin.
// El rol es inmutable después de la creación.
type User struct {
	ID           string
	Username     string // nombre del negocio / nombre visible
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // vendor, cafe_owner, admin
	Active       bool   // false = suspendida
	CreatedAt    time.Time
}

// StatusLabel devuelve el estado de activación como texto para las respuestas.
func (u *User) StatusLabel() string {
	if u.Active {
		return "active"
	}
	return "suspended"
}
