package worksession

import (
	"context"
	"time"
)

type WorkSessionRepository interface {
	// Create inserts a new session. A duplicate (user_id, work_date) pair
	// hits the unique index and comes back as ErrAlreadyStarted.
	Create(ctx context.Context, session WorkSession) (WorkSession, error)

	// GetByUserAndDate returns ErrSessionNotFound when the user has no
	// session on that date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (WorkSession, error)

	// Update persists punch changes and returns the stored row.
	Update(ctx context.Context, session WorkSession) (WorkSession, error)

	// ListByUser returns one user's sessions, most recent work date first.
	ListByUser(ctx context.Context, userID string) ([]WorkSession, error)

	// List returns sessions matching the filter's user and date range,
	// most recent work date first. Status is ignored here; lateness is
	// derived above the repository.
	List(ctx context.Context, filter SessionFilter) ([]WorkSession, error)
}
