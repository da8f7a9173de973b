package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// BusinessRepository puerto de persistencia para businesses (tenants).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
}
