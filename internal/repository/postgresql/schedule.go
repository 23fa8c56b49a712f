package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/schedule"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	sch.ScheduleID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO schedules (
			id, name, start_time, end_time, lunch_start, lunch_end, active, days_of_week, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sch.ScheduleID,
		sch.Name,
		sch.StartTime,
		sch.EndTime,
		sch.LunchStart,
		sch.LunchEnd,
		sch.Active,
		sch.DaysOfWeek,
		sch.CreatedBy,
	).Scan(&sch.CreatedAt, &sch.UpdatedAt)

	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return sch, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, lunch_start, lunch_end, active, days_of_week,
			   created_by, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var sch schedule.Schedule
	err := q.QueryRow(ctx, query, id).Scan(
		&sch.ScheduleID, &sch.Name,
		&sch.StartTime, &sch.EndTime, &sch.LunchStart, &sch.LunchEnd,
		&sch.Active, &sch.DaysOfWeek,
		&sch.CreatedBy, &sch.CreatedAt, &sch.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return sch, nil
}

// GetByUserID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByUserID(ctx context.Context, userID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_time, s.end_time, s.lunch_start, s.lunch_end, s.active, s.days_of_week,
			   s.created_by, s.created_at, s.updated_at
		FROM schedules s
		JOIN users u ON u.schedule_id = s.id
		WHERE u.id = $1
	`

	var sch schedule.Schedule
	err := q.QueryRow(ctx, query, userID).Scan(
		&sch.ScheduleID, &sch.Name,
		&sch.StartTime, &sch.EndTime, &sch.LunchStart, &sch.LunchEnd,
		&sch.Active, &sch.DaysOfWeek,
		&sch.CreatedBy, &sch.CreatedAt, &sch.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by user: %w", err)
	}

	return sch, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, lunch_start, lunch_end, active, days_of_week,
			   created_by, created_at, updated_at
		FROM schedules
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var sch schedule.Schedule
		if err := rows.Scan(
			&sch.ScheduleID, &sch.Name,
			&sch.StartTime, &sch.EndTime, &sch.LunchStart, &sch.LunchEnd,
			&sch.Active, &sch.DaysOfWeek,
			&sch.CreatedBy, &sch.CreatedAt, &sch.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}

	return schedules, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET name = $2,
			start_time = $3,
			end_time = $4,
			lunch_start = $5,
			lunch_end = $6,
			active = $7,
			days_of_week = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sch.ScheduleID,
		sch.Name,
		sch.StartTime,
		sch.EndTime,
		sch.LunchStart,
		sch.LunchEnd,
		sch.Active,
		sch.DaysOfWeek,
	).Scan(&sch.CreatedAt, &sch.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return sch, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}
