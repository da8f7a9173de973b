// Package authz implementa la puerta de autorización: identidad + roles
// requeridos → Profile resuelto o denegación. Es el ÚNICO camino de evaluación;
// los middlewares HTTP y los use cases no duplican esta lógica.
package authz

import (
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// Gate evalúa pertenencia de rol leyendo el Profile desde la DB en cada
// petición. No cachea nada entre el check y la escritura posterior.
type Gate struct {
	profiles repository.ProfileRepository
}

// NewGate construye la puerta de autorización.
func NewGate(profiles repository.ProfileRepository) *Gate {
	return &Gate{profiles: profiles}
}

// Authorize decide allow/deny para un userID frente a un conjunto de roles
// requeridos y devuelve el Profile resuelto para el scoping posterior.
//
//   - userID vacío            → ErrUnauthorized (sin identidad).
//   - identidad sin Profile   → ErrProfileMissing (conocido pero no aprovisionado).
//   - rol fuera del conjunto  → ErrForbidden.
//
// Un conjunto vacío significa "cualquier rol aprovisionado".
// Solo lee; nunca muta estado.
func (g *Gate) Authorize(userID string, required ...string) (*entity.Profile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	profile, err := g.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileMissing
	}
	if len(required) == 0 {
		return profile, nil
	}
	for _, role := range required {
		if profile.Role == role {
			return profile, nil
		}
	}
	return nil, domain.ErrForbidden
}

// Atajos de conveniencia: todos enrutan por Authorize, sin lógica propia.

// AdminOnly requiere rol admin.
func (g *Gate) AdminOnly(userID string) (*entity.Profile, error) {
	return g.Authorize(userID, entity.RoleAdmin)
}

// EditorOrAdmin requiere editor o admin.
func (g *Gate) EditorOrAdmin(userID string) (*entity.Profile, error) {
	return g.Authorize(userID, entity.RoleAdmin, entity.RoleEditor)
}

// ApproverOrAdmin requiere approver o admin.
func (g *Gate) ApproverOrAdmin(userID string) (*entity.Profile, error) {
	return g.Authorize(userID, entity.RoleAdmin, entity.RoleApprover)
}
