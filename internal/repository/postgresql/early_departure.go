package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type earlyDepartureRepository struct {
	db *database.DB
}

// Create implements earlydeparture.RequestRepository.
func (r *earlyDepartureRepository) Create(ctx context.Context, request earlydeparture.Request) (earlydeparture.Request, error) {
	q := GetQuerier(ctx, r.db)

	request.RequestID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO early_departure_requests (
			id, user_id, description, request_date, request_time, status, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.RequestID,
		request.UserID,
		request.Description,
		request.RequestDate,
		request.RequestTime,
		request.Status,
		request.CreatedBy,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return earlydeparture.Request{}, fmt.Errorf("failed to create early departure request: %w", err)
	}

	return request, nil
}

// GetByID implements earlydeparture.RequestRepository.
func (r *earlyDepartureRepository) GetByID(ctx context.Context, id string) (earlydeparture.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT edr.id, edr.user_id, edr.description, edr.request_date, edr.request_time,
			   edr.status, edr.approved_by, edr.created_by, edr.created_at, edr.updated_at,
			   u.first_name || ' ' || u.last_name AS user_name
		FROM early_departure_requests edr
		LEFT JOIN users u ON u.id = edr.user_id
		WHERE edr.id = $1
	`

	var request earlydeparture.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&request.RequestID, &request.UserID, &request.Description,
		&request.RequestDate, &request.RequestTime,
		&request.Status, &request.ApprovedBy, &request.CreatedBy,
		&request.CreatedAt, &request.UpdatedAt,
		&request.UserName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return earlydeparture.Request{}, earlydeparture.ErrRequestNotFound
		}
		return earlydeparture.Request{}, fmt.Errorf("failed to get early departure request: %w", err)
	}

	return request, nil
}

// UpdateStatus implements earlydeparture.RequestRepository. The WHERE clause
// re-checks status = 'pending' so a request can only be resolved once.
func (r *earlyDepartureRepository) UpdateStatus(ctx context.Context, id string, status earlydeparture.RequestStatus, approvedBy string) (earlydeparture.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE early_departure_requests
		SET status = $2,
			approved_by = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		RETURNING id, user_id, description, request_date, request_time,
				  status, approved_by, created_by, created_at, updated_at
	`

	var request earlydeparture.Request
	err := q.QueryRow(ctx, query, id, status, approvedBy).Scan(
		&request.RequestID, &request.UserID, &request.Description,
		&request.RequestDate, &request.RequestTime,
		&request.Status, &request.ApprovedBy, &request.CreatedBy,
		&request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return earlydeparture.Request{}, earlydeparture.ErrRequestAlreadyResolved
		}
		return earlydeparture.Request{}, fmt.Errorf("failed to update early departure request status: %w", err)
	}

	return request, nil
}

// ListByUser implements earlydeparture.RequestRepository.
func (r *earlyDepartureRepository) ListByUser(ctx context.Context, userID string) ([]earlydeparture.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, description, request_date, request_time,
			   status, approved_by, created_by, created_at, updated_at
		FROM early_departure_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list early departure requests by user: %w", err)
	}
	defer rows.Close()

	var requests []earlydeparture.Request
	for rows.Next() {
		var request earlydeparture.Request
		if err := rows.Scan(
			&request.RequestID, &request.UserID, &request.Description,
			&request.RequestDate, &request.RequestTime,
			&request.Status, &request.ApprovedBy, &request.CreatedBy,
			&request.CreatedAt, &request.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan early departure request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate early departure requests: %w", err)
	}

	return requests, nil
}

// ListAll implements earlydeparture.RequestRepository.
func (r *earlyDepartureRepository) ListAll(ctx context.Context) ([]earlydeparture.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT edr.id, edr.user_id, edr.description, edr.request_date, edr.request_time,
			   edr.status, edr.approved_by, edr.created_by, edr.created_at, edr.updated_at,
			   u.first_name || ' ' || u.last_name AS user_name
		FROM early_departure_requests edr
		LEFT JOIN users u ON u.id = edr.user_id
		ORDER BY edr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list early departure requests: %w", err)
	}
	defer rows.Close()

	var requests []earlydeparture.Request
	for rows.Next() {
		var request earlydeparture.Request
		if err := rows.Scan(
			&request.RequestID, &request.UserID, &request.Description,
			&request.RequestDate, &request.RequestTime,
			&request.Status, &request.ApprovedBy, &request.CreatedBy,
			&request.CreatedAt, &request.UpdatedAt,
			&request.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan early departure request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate early departure requests: %w", err)
	}

	return requests, nil
}

// Delete implements earlydeparture.RequestRepository.
func (r *earlyDepartureRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM early_departure_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete early departure request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return earlydeparture.ErrRequestNotFound
	}

	return nil
}

func NewEarlyDepartureRepository(db *database.DB) earlydeparture.RequestRepository {
	return &earlyDepartureRepository{db: db}
}
