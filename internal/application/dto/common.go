package dto

// APIResponse envoltura uniforme de todos los endpoints:
// {success, message, data|errors}. Code es el identificador de máquina del
// error (VALIDATION, UNAUTHORIZED, ...); vacío en respuestas exitosas.
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK construye la envoltura de éxito.
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail construye la envoltura de error.
func Fail(code, message string, errs ...string) APIResponse {
	return APIResponse{Success: false, Code: code, Message: message, Errors: errs}
}
