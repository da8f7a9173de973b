package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil. user_id tiene constraint UNIQUE: un usuario
// tiene exactamente un perfil.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, business_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.BusinessID, profile.Role, profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrValidation
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario (nil si no está aprovisionado).
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, business_id, role, created_at
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.BusinessID, &p.Role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil (cambio de rol).
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET business_id = $2, role = $3 WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.BusinessID, profile.Role,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// DeleteByUserID elimina el perfil de un usuario.
func (r *ProfileRepo) DeleteByUserID(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
