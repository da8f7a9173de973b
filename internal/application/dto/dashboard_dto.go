package dto

import "time"

// DashboardResponse respuesta de GET /api/dashboard. Los bloques de stats son
// opcionales según el rol (dashboard_type).
type DashboardResponse struct {
	User          UserResponse        `json:"user"`
	Permissions   PermissionsResponse `json:"permissions"`
	DashboardType string              `json:"dashboard_type"`

	// Solo admin: datos del business y conteo de usuarios.
	BusinessStats *BusinessStatsResponse `json:"business_stats,omitempty"`
	// Solo editor/approver/admin: conteos de productos por estado del business.
	ProductStats *ProductStatsResponse `json:"product_stats,omitempty"`
	// Solo viewer: catálogo disponible.
	ViewerStats *ViewerStatsResponse `json:"viewer_stats,omitempty"`
}

// BusinessStatsResponse bloque admin del dashboard.
type BusinessStatsResponse struct {
	TotalUsers   int    `json:"total_users"`
	BusinessName string `json:"business_name"`
	Industry     string `json:"industry"`
	CompanySize  string `json:"company_size"`
}

// ProductStatsResponse conteos de productos del business por estado.
type ProductStatsResponse struct {
	Total            int `json:"total"`
	Draft            int `json:"draft"`
	PendingApproval  int `json:"pending_approval"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
}

// ViewerStatsResponse bloque viewer del dashboard.
type ViewerStatsResponse struct {
	AvailableProducts int `json:"available_products"`
	Categories        int `json:"categories"`
}

// AdminStatsResponse respuesta de GET /api/admin/stats (delimitada al business del admin).
type AdminStatsResponse struct {
	TotalUsers       int `json:"total_users"`
	TotalProducts    int `json:"total_products"`
	PendingApprovals int `json:"pending_approvals"`
}

// ActivityResponse fila del feed de actividad reciente.
type ActivityResponse struct {
	User   string    `json:"user"`
	Action string    `json:"action"`
	Time   time.Time `json:"time"`
	Status string    `json:"status"`
}
