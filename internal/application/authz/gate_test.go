package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/authz"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// fakeProfileRepo repo en memoria: userID → Profile.
type fakeProfileRepo struct {
	byUser map[string]*entity.Profile
}

func (f *fakeProfileRepo) Create(p *entity.Profile) error {
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	return f.byUser[userID], nil
}

func (f *fakeProfileRepo) Update(p *entity.Profile) error {
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) DeleteByUserID(userID string) error {
	delete(f.byUser, userID)
	return nil
}

func gateConRol(role string) (*authz.Gate, string) {
	const userID = "00000000-0000-0000-0000-000000000001"
	repo := &fakeProfileRepo{byUser: map[string]*entity.Profile{
		userID: {ID: "p1", UserID: userID, BusinessID: "b1", Role: role},
	}}
	return authz.NewGate(repo), userID
}

// Tabla exhaustiva: 4 roles × conjuntos requeridos representativos.
// Allow si y solo si el rol pertenece al conjunto.
func TestAuthorize_TablaRolesPorConjunto(t *testing.T) {
	roles := []string{entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover, entity.RoleViewer}
	conjuntos := [][]string{
		{entity.RoleAdmin},
		{entity.RoleAdmin, entity.RoleEditor},
		{entity.RoleAdmin, entity.RoleApprover},
		{entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover},
		{entity.RoleViewer},
		{entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover, entity.RoleViewer},
	}

	contiene := func(set []string, role string) bool {
		for _, r := range set {
			if r == role {
				return true
			}
		}
		return false
	}

	for _, role := range roles {
		gate, userID := gateConRol(role)
		for _, set := range conjuntos {
			profile, err := gate.Authorize(userID, set...)
			if contiene(set, role) {
				require.NoError(t, err, "rol %s debe pasar con %v", role, set)
				assert.Equal(t, role, profile.Role)
				assert.Equal(t, "b1", profile.BusinessID,
					"el Profile resuelto debe exponerse para el scoping")
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden,
					"rol %s debe fallar Forbidden con %v", role, set)
				assert.Nil(t, profile)
			}
		}
	}
}

// Conjunto vacío = cualquier rol aprovisionado.
func TestAuthorize_SinRolesRequeridos(t *testing.T) {
	gate, userID := gateConRol(entity.RoleViewer)
	profile, err := gate.Authorize(userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, profile.Role)
}

func TestAuthorize_SinIdentidad(t *testing.T) {
	gate, _ := gateConRol(entity.RoleAdmin)
	_, err := gate.Authorize("", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Identidad conocida pero sin perfil: ProfileMissing, distinto de Unauthorized.
func TestAuthorize_PerfilFaltante(t *testing.T) {
	gate := authz.NewGate(&fakeProfileRepo{byUser: map[string]*entity.Profile{}})
	_, err := gate.Authorize("usuario-sin-perfil", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrProfileMissing)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

// Los atajos deben comportarse idéntico a Authorize con el conjunto equivalente.
func TestAuthorize_AtajosConsistentes(t *testing.T) {
	roles := []string{entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover, entity.RoleViewer}
	for _, role := range roles {
		gate, userID := gateConRol(role)

		_, errAtajo := gate.AdminOnly(userID)
		_, errBase := gate.Authorize(userID, entity.RoleAdmin)
		assert.Equal(t, errBase, errAtajo, "AdminOnly(%s)", role)

		_, errAtajo = gate.EditorOrAdmin(userID)
		_, errBase = gate.Authorize(userID, entity.RoleAdmin, entity.RoleEditor)
		assert.Equal(t, errBase, errAtajo, "EditorOrAdmin(%s)", role)

		_, errAtajo = gate.ApproverOrAdmin(userID)
		_, errBase = gate.Authorize(userID, entity.RoleAdmin, entity.RoleApprover)
		assert.Equal(t, errBase, errAtajo, "ApproverOrAdmin(%s)", role)
	}
}
