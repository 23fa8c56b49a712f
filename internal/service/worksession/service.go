package worksession

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/schedule"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/clock"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type WorkSessionServiceImpl struct {
	db *database.DB
	worksession.WorkSessionRepository
	schedule.ScheduleRepository
	user.UserRepository
	clock clock.Clock
}

func NewWorkSessionService(
	db *database.DB,
	sessionRepo worksession.WorkSessionRepository,
	scheduleRepo schedule.ScheduleRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
) worksession.WorkSessionService {
	return &WorkSessionServiceImpl{
		db:                    db,
		WorkSessionRepository: sessionRepo,
		ScheduleRepository:    scheduleRepo,
		UserRepository:        userRepo,
		clock:                 clk,
	}
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// workDate truncates now to the calendar day, keeping the local zone.
func workDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartWork implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) StartWork(ctx context.Context) (worksession.SessionResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	now := s.clock.Now()
	today := workDate(now)

	_, err = s.WorkSessionRepository.GetByUserAndDate(ctx, userID, today)
	if err == nil {
		return worksession.SessionResponse{}, worksession.ErrAlreadyStarted
	}
	if !errors.Is(err, worksession.ErrSessionNotFound) {
		return worksession.SessionResponse{}, fmt.Errorf("failed to check for existing session: %w", err)
	}

	start := worksession.TimeOfDayFrom(now)
	data := worksession.WorkSession{
		UserID:    userID,
		WorkDate:  today,
		StartTime: &start,
		CreatedBy: &userID,
	}

	// The unique index on (user_id, work_date) closes the window between the
	// existence check above and this insert: a concurrent duplicate comes
	// back as ErrAlreadyStarted from the repository.
	created, err := s.WorkSessionRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, worksession.ErrAlreadyStarted) {
			return worksession.SessionResponse{}, worksession.ErrAlreadyStarted
		}
		return worksession.SessionResponse{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return s.mapSessionToResponse(ctx, created), nil
}

// StartLunch implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) StartLunch(ctx context.Context) (worksession.SessionResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	now := s.clock.Now()

	session, err := s.WorkSessionRepository.GetByUserAndDate(ctx, userID, workDate(now))
	if err != nil {
		if errors.Is(err, worksession.ErrSessionNotFound) {
			return worksession.SessionResponse{}, worksession.ErrNotStarted
		}
		return worksession.SessionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}

	if session.LunchStart != nil {
		return worksession.SessionResponse{}, worksession.ErrAlreadyOnLunch
	}

	lunchStart := worksession.TimeOfDayFrom(now)
	session.LunchStart = &lunchStart

	updated, err := s.WorkSessionRepository.Update(ctx, session)
	if err != nil {
		return worksession.SessionResponse{}, fmt.Errorf("failed to update work session: %w", err)
	}

	return s.mapSessionToResponse(ctx, updated), nil
}

// EndLunch implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) EndLunch(ctx context.Context) (worksession.SessionResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	now := s.clock.Now()

	session, err := s.WorkSessionRepository.GetByUserAndDate(ctx, userID, workDate(now))
	if err != nil {
		if errors.Is(err, worksession.ErrSessionNotFound) {
			return worksession.SessionResponse{}, worksession.ErrLunchNotStarted
		}
		return worksession.SessionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}

	if session.LunchStart == nil {
		return worksession.SessionResponse{}, worksession.ErrLunchNotStarted
	}
	if session.LunchEnd != nil {
		return worksession.SessionResponse{}, worksession.ErrLunchAlreadyEnded
	}

	lunchEnd := worksession.TimeOfDayFrom(now)
	session.LunchEnd = &lunchEnd

	updated, err := s.WorkSessionRepository.Update(ctx, session)
	if err != nil {
		return worksession.SessionResponse{}, fmt.Errorf("failed to update work session: %w", err)
	}

	return s.mapSessionToResponse(ctx, updated), nil
}

// EndWork implements worksession.WorkSessionService. Lunch punches are
// optional; only start and a not-yet-ended day are required.
func (s *WorkSessionServiceImpl) EndWork(ctx context.Context) (worksession.SessionResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	now := s.clock.Now()

	session, err := s.WorkSessionRepository.GetByUserAndDate(ctx, userID, workDate(now))
	if err != nil {
		if errors.Is(err, worksession.ErrSessionNotFound) {
			return worksession.SessionResponse{}, worksession.ErrNotStarted
		}
		return worksession.SessionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}

	if session.EndTime != nil {
		return worksession.SessionResponse{}, worksession.ErrAlreadyEnded
	}

	endTime := worksession.TimeOfDayFrom(now)
	session.EndTime = &endTime

	updated, err := s.WorkSessionRepository.Update(ctx, session)
	if err != nil {
		return worksession.SessionResponse{}, fmt.Errorf("failed to update work session: %w", err)
	}

	return s.mapSessionToResponse(ctx, updated), nil
}

// GetMySessions implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) GetMySessions(ctx context.Context) (worksession.ListSessionsResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return worksession.ListSessionsResponse{}, err
	}

	return s.listUserSessions(ctx, userID)
}

// GetUserSessions implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) GetUserSessions(ctx context.Context, userID string) (worksession.ListSessionsResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return worksession.ListSessionsResponse{}, user.ErrUserNotFound
		}
		return worksession.ListSessionsResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return s.listUserSessions(ctx, userID)
}

func (s *WorkSessionServiceImpl) listUserSessions(ctx context.Context, userID string) (worksession.ListSessionsResponse, error) {
	sessions, err := s.WorkSessionRepository.ListByUser(ctx, userID)
	if err != nil {
		return worksession.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	scheduleStart := s.scheduleStartFor(ctx, userID)

	responses := make([]worksession.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, mapSession(session, scheduleStart))
	}

	return worksession.ListSessionsResponse{
		TotalCount: len(responses),
		Sessions:   responses,
	}, nil
}

// ListSessions implements worksession.WorkSessionService. Status filtering
// happens here rather than in SQL because lateness is derived, not stored.
func (s *WorkSessionServiceImpl) ListSessions(ctx context.Context, filter worksession.SessionFilter) (worksession.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksession.ListSessionsResponse{}, err
	}

	sessions, err := s.WorkSessionRepository.List(ctx, filter)
	if err != nil {
		return worksession.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	scheduleStarts := make(map[string]*worksession.TimeOfDay)

	responses := make([]worksession.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		start, ok := scheduleStarts[session.UserID]
		if !ok {
			start = s.scheduleStartFor(ctx, session.UserID)
			scheduleStarts[session.UserID] = start
		}

		resp := mapSession(session, start)
		if filter.Status != nil && *filter.Status != "" && resp.Status != *filter.Status {
			continue
		}
		responses = append(responses, resp)
	}

	return worksession.ListSessionsResponse{
		TotalCount: len(responses),
		Sessions:   responses,
	}, nil
}

// scheduleStartFor resolves the lateness cutoff for a user. No assignment
// means the default cutoff applies.
func (s *WorkSessionServiceImpl) scheduleStartFor(ctx context.Context, userID string) *worksession.TimeOfDay {
	assigned, err := s.ScheduleRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	return &assigned.StartTime
}

func (s *WorkSessionServiceImpl) mapSessionToResponse(ctx context.Context, session worksession.WorkSession) worksession.SessionResponse {
	return mapSession(session, s.scheduleStartFor(ctx, session.UserID))
}

// timeOfDayPtrToString safely converts a *TimeOfDay to a string.
func timeOfDayPtrToString(t *worksession.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	formatted := t.String()
	return &formatted
}

func mapSession(session worksession.WorkSession, scheduleStart *worksession.TimeOfDay) worksession.SessionResponse {
	resp := worksession.SessionResponse{
		SessionID:  session.SessionID,
		UserID:     session.UserID,
		UserName:   session.UserName,
		WorkDate:   session.WorkDate.Format("2006-01-02"),
		StartTime:  timeOfDayPtrToString(session.StartTime),
		LunchStart: timeOfDayPtrToString(session.LunchStart),
		LunchEnd:   timeOfDayPtrToString(session.LunchEnd),
		EndTime:    timeOfDayPtrToString(session.EndTime),
		Status:     string(Lateness(session, scheduleStart)),
		CreatedAt:  session.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  session.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	minutes, err := WorkedMinutes(session)
	switch {
	case err != nil:
		invalid := "invalid_interval"
		resp.WorkedDuration = &invalid
	case minutes != nil:
		formatted := FormatDuration(*minutes)
		resp.WorkedDuration = &formatted
	}

	return resp
}
