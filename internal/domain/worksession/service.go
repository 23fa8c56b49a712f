package worksession

import "context"

// WorkSessionService is the clock ledger. The four punch operations act on
// the caller's session for the current day, identified via JWT claims in ctx,
// and enforce the start -> lunch start -> lunch end -> end ordering.
type WorkSessionService interface {
	StartWork(ctx context.Context) (SessionResponse, error)
	StartLunch(ctx context.Context) (SessionResponse, error)
	EndLunch(ctx context.Context) (SessionResponse, error)
	EndWork(ctx context.Context) (SessionResponse, error)

	GetMySessions(ctx context.Context) (ListSessionsResponse, error)
	ListSessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)
	GetUserSessions(ctx context.Context, userID string) (ListSessionsResponse, error)
}
