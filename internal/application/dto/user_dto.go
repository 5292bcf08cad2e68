package dto

import "time"

// RegisterRequest entrada del registro público (vendor o cafe_owner).
// El password se hashea en el caso de uso, nunca se persiste plano.
type RegisterRequest struct {
	BusinessName    string `json:"business_name" form:"business_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"` // vendor | cafe_owner
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserResponse salida de un usuario; el hash del password nunca viaja aquí.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"` // active | suspended
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse usuario autenticado más el token para clientes de API;
// el navegador usa la cookie de sesión que abre el handler.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VendorOption entrada del selector de vendedores del formulario de partnership.
type VendorOption struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ToggleStatusResponse nuevo estado tras el flip calculado por el store.
type ToggleStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"` // active | suspended
}
