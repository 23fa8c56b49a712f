package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCtx routes repository queries to the pgxmock pool via the same context
// hook that WithTransaction uses.
func mockCtx(t *testing.T) (context.Context, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return context.WithValue(context.Background(), "tx", mock), mock
}

// anyArgs returns n pgxmock.AnyArg() placeholders so expectations can match
// the query's argument count without asserting values.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestWorkSessionRepository_Create(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewWorkSessionRepository(nil)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO work_sessions").
		WithArgs(anyArgs(8)...).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	start := worksession.NewTimeOfDay(8, 55)
	created, err := repo.Create(ctx, worksession.WorkSession{
		UserID:    "user-1",
		WorkDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: &start,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkSessionRepository_Create_DuplicateDay(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewWorkSessionRepository(nil)

	mock.ExpectQuery("INSERT INTO work_sessions").
		WithArgs(anyArgs(8)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_work_sessions_user_date"})

	start := worksession.NewTimeOfDay(9, 10)
	_, err := repo.Create(ctx, worksession.WorkSession{
		UserID:    "user-1",
		WorkDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: &start,
	})

	assert.ErrorIs(t, err, worksession.ErrAlreadyStarted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkSessionRepository_GetByUserAndDate_NotFound(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewWorkSessionRepository(nil)

	mock.ExpectQuery("SELECT (.+) FROM work_sessions").
		WithArgs(anyArgs(2)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUserAndDate(ctx, "user-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, worksession.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkSessionRepository_Update_NotFound(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewWorkSessionRepository(nil)

	mock.ExpectQuery("UPDATE work_sessions").
		WithArgs(anyArgs(5)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(ctx, worksession.WorkSession{SessionID: "missing"})
	assert.ErrorIs(t, err, worksession.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
