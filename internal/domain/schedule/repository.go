package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, schedule Schedule) (Schedule, error)

	// GetByID returns ErrScheduleNotFound when no schedule matches.
	GetByID(ctx context.Context, id string) (Schedule, error)

	// GetByUserID resolves the schedule assigned to a user through
	// users.schedule_id. Returns ErrScheduleNotFound when the user has no
	// assignment.
	GetByUserID(ctx context.Context, userID string) (Schedule, error)

	List(ctx context.Context) ([]Schedule, error)

	Update(ctx context.Context, schedule Schedule) (Schedule, error)

	Delete(ctx context.Context, id string) error
}
