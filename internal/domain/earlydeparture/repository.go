package earlydeparture

import "context"

type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID returns ErrRequestNotFound when no request matches.
	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus resolves a pending request. The WHERE clause re-checks
	// status = 'pending' so two concurrent resolutions cannot both win;
	// the loser gets ErrRequestAlreadyResolved.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, approvedBy string) (Request, error)

	// ListByUser returns one user's requests, most recently submitted first.
	ListByUser(ctx context.Context, userID string) ([]Request, error)

	// ListAll returns every request, most recently submitted first.
	ListAll(ctx context.Context) ([]Request, error)

	Delete(ctx context.Context, id string) error
}
