package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type workSessionRepository struct {
	db *database.DB
}

// Create implements worksession.WorkSessionRepository.
func (r *workSessionRepository) Create(ctx context.Context, session worksession.WorkSession) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	session.SessionID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO work_sessions (
			id, user_id, work_date, start_time, lunch_start, lunch_end, end_time, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.SessionID,
		session.UserID,
		session.WorkDate,
		session.StartTime,
		session.LunchStart,
		session.LunchEnd,
		session.EndTime,
		session.CreatedBy,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return worksession.WorkSession{}, worksession.ErrAlreadyStarted
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return session, nil
}

// GetByUserAndDate implements worksession.WorkSessionRepository.
func (r *workSessionRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, work_date, start_time, lunch_start, lunch_end, end_time,
			   created_by, created_at, updated_at
		FROM work_sessions
		WHERE user_id = $1
		  AND work_date = $2
		LIMIT 1
	`

	var session worksession.WorkSession
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&session.SessionID, &session.UserID, &session.WorkDate,
		&session.StartTime, &session.LunchStart, &session.LunchEnd, &session.EndTime,
		&session.CreatedBy, &session.CreatedAt, &session.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worksession.WorkSession{}, worksession.ErrSessionNotFound
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to get work session by user and date: %w", err)
	}

	return session, nil
}

// Update implements worksession.WorkSessionRepository.
func (r *workSessionRepository) Update(ctx context.Context, session worksession.WorkSession) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_sessions
		SET start_time = $2,
			lunch_start = $3,
			lunch_end = $4,
			end_time = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.SessionID,
		session.StartTime,
		session.LunchStart,
		session.LunchEnd,
		session.EndTime,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worksession.WorkSession{}, worksession.ErrSessionNotFound
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to update work session: %w", err)
	}

	return session, nil
}

// ListByUser implements worksession.WorkSessionRepository.
func (r *workSessionRepository) ListByUser(ctx context.Context, userID string) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, work_date, start_time, lunch_start, lunch_end, end_time,
			   created_by, created_at, updated_at
		FROM work_sessions
		WHERE user_id = $1
		ORDER BY work_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions by user: %w", err)
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		var session worksession.WorkSession
		if err := rows.Scan(
			&session.SessionID, &session.UserID, &session.WorkDate,
			&session.StartTime, &session.LunchStart, &session.LunchEnd, &session.EndTime,
			&session.CreatedBy, &session.CreatedAt, &session.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sessions: %w", err)
	}

	return sessions, nil
}

// List implements worksession.WorkSessionRepository. The filter's status is
// not applied here; lateness is derived in the service layer.
func (r *workSessionRepository) List(ctx context.Context, filter worksession.SessionFilter) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ws.id, ws.user_id, ws.work_date, ws.start_time, ws.lunch_start, ws.lunch_end, ws.end_time,
			   ws.created_by, ws.created_at, ws.updated_at,
			   u.first_name || ' ' || u.last_name AS user_name
		FROM work_sessions ws
		LEFT JOIN users u ON u.id = ws.user_id
		WHERE 1=1
	`

	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil && *filter.UserID != "" {
		query += fmt.Sprintf(" AND ws.user_id = $%d", argPos)
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND ws.work_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND ws.work_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY ws.work_date DESC, ws.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		var session worksession.WorkSession
		if err := rows.Scan(
			&session.SessionID, &session.UserID, &session.WorkDate,
			&session.StartTime, &session.LunchStart, &session.LunchEnd, &session.EndTime,
			&session.CreatedBy, &session.CreatedAt, &session.UpdatedAt,
			&session.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sessions: %w", err)
	}

	return sessions, nil
}

func NewWorkSessionRepository(db *database.DB) worksession.WorkSessionRepository {
	return &workSessionRepository{db: db}
}
