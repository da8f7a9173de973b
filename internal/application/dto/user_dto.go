package dto

import "time"

// UserResponse salida de un usuario (sin password) con su perfil resuelto.
type UserResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Role        string              `json:"role"`
	Business    *BusinessResponse   `json:"business,omitempty"`
	Permissions PermissionsResponse `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreateUserRequest entrada admin para crear un usuario en el business del admin
// (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=admin editor approver viewer"`
}

// UpdateUserRequest entrada admin para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin editor approver viewer"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
