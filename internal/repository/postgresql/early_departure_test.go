package postgresql

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarlyDepartureRepository_Create(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewEarlyDepartureRepository(nil)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO early_departure_requests").
		WithArgs(anyArgs(7)...).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(ctx, earlydeparture.Request{
		UserID:      "user-1",
		Description: "Medical appointment",
		RequestDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		RequestTime: worksession.NewTimeOfDay(15, 30),
		Status:      earlydeparture.RequestStatusPending,
		CreatedBy:   "user-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEarlyDepartureRepository_UpdateStatus_AlreadyResolved(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewEarlyDepartureRepository(nil)

	// The status = 'pending' guard matched no rows.
	mock.ExpectQuery("UPDATE early_departure_requests").
		WithArgs(anyArgs(3)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateStatus(ctx, "req-1", earlydeparture.RequestStatusApproved, "admin-1")
	assert.ErrorIs(t, err, earlydeparture.ErrRequestAlreadyResolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEarlyDepartureRepository_Delete_NotFound(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewEarlyDepartureRepository(nil)

	mock.ExpectExec("DELETE FROM early_departure_requests").
		WithArgs(anyArgs(1)...).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, earlydeparture.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	ctx, mock := mockCtx(t)
	repo := NewUserRepository(nil)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(anyArgs(1)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
