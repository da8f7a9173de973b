package repository

import "time"

// ActivityResult fila del feed de actividad reciente (derivado de products).
type ActivityResult struct {
	UserName    string
	ProductName string
	Status      string
	At          time.Time
}

// StatsRepository consultas de solo lectura para dashboards y estadísticas admin.
// Todas las consultas están delimitadas por business.
type StatsRepository interface {
	CountUsersByBusiness(businessID string) (int, error)
	CountProductsByBusiness(businessID string) (int, error)
	CountProductsByBusinessAndStatus(businessID, status string) (int, error)
	CountCategoriesByBusiness(businessID string) (int, error)
	RecentActivity(businessID string, limit int) ([]ActivityResult, error)
}
