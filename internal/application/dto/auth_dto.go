package dto

import "time"

// RegisterRequest entrada de registro: datos del usuario + datos del business.
// El primer registrante de un business siempre queda como admin; cualquier rol
// solicitado en el body se ignora.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	FirstName       string `json:"first_name" validate:"omitempty,max=100"`
	LastName        string `json:"last_name" validate:"omitempty,max=100"`
	CompanyName     string `json:"company_name" validate:"required,max=200"`
	Industry        string `json:"industry" validate:"required,max=100"`
	CompanySize     string `json:"company_size" validate:"required,max=50"`
}

// RegisterResponse ids creados por el registro (usuario, business y perfil).
type RegisterResponse struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	ProfileID  string `json:"profile_id"`
	Role       string `json:"role"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + resumen del perfil autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PermissionsResponse predicados de permiso derivados del rol (no se almacenan).
type PermissionsResponse struct {
	CanCreateProduct bool `json:"can_create_product"`
	CanApproveProduct bool `json:"can_approve_product"`
	CanManageUsers   bool `json:"can_manage_users"`
}

// BusinessResponse salida de un business.
type BusinessResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	CompanySize string    `json:"company_size"`
	CreatedAt   time.Time `json:"created_at"`
}
