package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// recordingQuerier captura el SQL y los argumentos de cada Exec para poder
// afirmar sobre lo que realmente llega a la base.
type recordingQuerier struct {
	sql  string
	args []any
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (q *recordingQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *recordingQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

// UpdateStatusIf debe escribir la columna status con el valor destino y
// condicionar sobre el estado de partida en la misma sentencia.
func TestProductRepo_UpdateStatusIf_EscribeStatus(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewProductRepository(q)

	ok, err := repo.UpdateStatusIf("p-1", entity.StatusDraft, entity.StatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Contains(t, q.sql, "SET status")
	assert.Contains(t, q.sql, "AND status")
	require.Len(t, q.args, 3)
	assert.Equal(t, "p-1", q.args[0])
	assert.Equal(t, entity.StatusDraft, q.args[1])
	assert.Equal(t, entity.StatusApproved, q.args[2])
}

// Update nunca toca la columna status: los cambios de estado solo pasan por
// UpdateStatusIf.
func TestProductRepo_Update_NoEscribeStatus(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewProductRepository(q)

	err := repo.Update(&entity.Product{
		ID:     "p-1",
		Name:   "Silla",
		Price:  decimal.NewFromInt(10),
		Status: entity.StatusApproved,
	})
	require.NoError(t, err)

	assert.NotContains(t, q.sql, "status")
	for _, a := range q.args {
		assert.NotEqual(t, entity.StatusApproved, a,
			"el estado no debe viajar como argumento de Update")
	}
}
