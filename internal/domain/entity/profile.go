package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin    = "admin"
	RoleEditor   = "editor"
	RoleApprover = "approver"
	RoleViewer   = "viewer"
)

// ValidRole verifica que el rol pertenezca al enum.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleApprover, RoleViewer:
		return true
	}
	return false
}

// Profile vincula un User con exactamente un Business y un Role.
// Toda autorización pasa por el Profile resuelto; un usuario sin Profile
// es un estado de error (ErrProfileMissing), no un default.
type Profile struct {
	ID         string
	UserID     string
	BusinessID string
	Role       string // admin, editor, approver, viewer
	CreatedAt  time.Time
}

// CanCreateProduct indica si el rol puede crear productos.
func (p *Profile) CanCreateProduct() bool {
	return p.Role == RoleAdmin || p.Role == RoleEditor || p.Role == RoleApprover
}

// CanApproveProduct indica si el rol puede aprobar o rechazar productos.
func (p *Profile) CanApproveProduct() bool {
	return p.Role == RoleAdmin || p.Role == RoleApprover
}

// CanManageUsers indica si el rol puede administrar usuarios.
func (p *Profile) CanManageUsers() bool {
	return p.Role == RoleAdmin
}
