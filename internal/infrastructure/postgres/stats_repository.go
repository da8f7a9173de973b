package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para dashboards. Siempre
// delimitadas por business.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) count(query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountUsersByBusiness(businessID string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM profiles WHERE business_id = $1`, businessID)
}

func (r *StatsRepo) CountProductsByBusiness(businessID string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM products WHERE business_id = $1`, businessID)
}

func (r *StatsRepo) CountProductsByBusinessAndStatus(businessID, status string) (int, error) {
	return r.count(
		`SELECT COUNT(*) FROM products WHERE business_id = $1 AND status = $2`,
		businessID, status,
	)
}

func (r *StatsRepo) CountCategoriesByBusiness(businessID string) (int, error) {
	return r.count(
		`SELECT COUNT(DISTINCT category) FROM products WHERE business_id = $1`,
		businessID,
	)
}

// RecentActivity devuelve las últimas modificaciones de productos del business,
// con el nombre del creador resuelto por join.
func (r *StatsRepo) RecentActivity(businessID string, limit int) ([]repository.ActivityResult, error) {
	query := `
		SELECT u.first_name || ' ' || u.last_name, p.name, p.status, p.updated_at
		FROM products p
		JOIN users u ON u.id = p.created_by
		WHERE p.business_id = $1
		ORDER BY p.updated_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()
	var out []repository.ActivityResult
	for rows.Next() {
		var a repository.ActivityResult
		if err := rows.Scan(&a.UserName, &a.ProductName, &a.Status, &a.At); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
