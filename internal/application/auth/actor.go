package auth

import "github.com/jhoicas/cafes-platform-api/internal/domain/entity"

// Actor es la identidad resuelta de la petición actual (desde la sesión o el
// token Bearer). Se construye en el middleware y se pasa explícitamente a los
// casos de uso; no hay estado de sesión ambiente.
type Actor struct {
	ID    string
	Email string
	Role  string
}

// Anonymous true si ningún dato de sesión/token identificó a la petición.
func (a Actor) Anonymous() bool {
	return a.ID == "" || a.Role == ""
}

func (a Actor) IsAdmin() bool     { return a.Role == entity.RoleAdmin }
func (a Actor) IsVendor() bool    { return a.Role == entity.RoleVendor }
func (a Actor) IsCafeOwner() bool { return a.Role == entity.RoleCafeOwner }
