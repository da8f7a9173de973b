package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrProfileMissing     = errors.New("usuario sin perfil aprovisionado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrAdminUndeletable   = errors.New("no se puede eliminar un usuario admin")
)
