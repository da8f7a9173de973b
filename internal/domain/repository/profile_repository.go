package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// ProfileRepository puerto de persistencia para perfiles (User ↔ Business + Role).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	DeleteByUserID(userID string) error
}
