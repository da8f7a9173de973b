package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// UserWithProfile resultado de lectura usuario + perfil (para administración).
type UserWithProfile struct {
	User    entity.User
	Profile entity.Profile
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListByBusiness lista usuarios aprovisionados en un business (join con profiles).
	ListByBusiness(businessID string, limit, offset int) ([]*UserWithProfile, error)
	Delete(id string) error
}
