package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del workflow de aprobación de un Product.
const (
	StatusDraft           = "draft"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

// ValidStatus verifica que el estado pertenezca al enum.
func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Categorías válidas para Product.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryBooks       = "books"
	CategoryHome        = "home"
	CategorySports      = "sports"
	CategoryOther       = "other"
)

// ValidCategory verifica que la categoría pertenezca al enum.
func ValidCategory(category string) bool {
	switch category {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryHome, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Product representa una publicación del marketplace sujeta al workflow
// de aprobación. Siempre pertenece a un Business; el acceso cruzado entre
// businesses se niega en la capa de aplicación.
type Product struct {
	ID          string
	BusinessID  string
	CreatedBy   string // User.ID del creador
	Name        string
	Description string
	Price       decimal.Decimal // no negativo
	Category    string
	ImageURL    string
	Status      string // draft, pending_approval, approved, rejected
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// transition identifica una fila de la tabla de transiciones.
type transition struct {
	from string
	to   string
}

// transitionRoles es la única tabla de transiciones del workflow.
// approved y rejected son terminales: no existe re-envío a pending_approval.
var transitionRoles = map[transition][]string{
	{StatusDraft, StatusPendingApproval}:    {RoleAdmin, RoleEditor, RoleApprover},
	{StatusPendingApproval, StatusApproved}: {RoleAdmin, RoleApprover},
	{StatusPendingApproval, StatusRejected}: {RoleAdmin, RoleApprover},
}

// CanTransition indica si el rol puede mover un producto de from a to.
// Cualquier par fuera de la tabla es ilegal para todos los roles.
func CanTransition(role, from, to string) bool {
	allowed, ok := transitionRoles[transition{from, to}]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
