package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/schedule"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.ScheduleRepository
}

func NewScheduleService(db *database.DB, scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                 db,
		ScheduleRepository: scheduleRepo,
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

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	creatorID, err := userIDFromClaims(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	startTime, err := worksession.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	endTime, err := worksession.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse end time: %w", err)
	}
	lunchStart, err := worksession.ParseTimeOfDay(req.LunchStart)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse lunch start: %w", err)
	}
	lunchEnd, err := worksession.ParseTimeOfDay(req.LunchEnd)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse lunch end: %w", err)
	}

	data := schedule.Schedule{
		Name:       req.Name,
		StartTime:  startTime,
		EndTime:    endTime,
		LunchStart: lunchStart,
		LunchEnd:   lunchEnd,
		Active:     req.Active,
		DaysOfWeek: req.DaysOfWeek,
		CreatedBy:  &creatorID,
	}

	created, err := s.ScheduleRepository.Create(ctx, data)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	found, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return mapScheduleToResponse(found), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context) (schedule.ListSchedulesResponse, error) {
	schedules, err := s.ScheduleRepository.List(ctx)
	if err != nil {
		return schedule.ListSchedulesResponse{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		responses = append(responses, mapScheduleToResponse(sch))
	}

	return schedule.ListSchedulesResponse{
		TotalCount: len(responses),
		Schedules:  responses,
	}, nil
}

// UpdateSchedule implements schedule.ScheduleService. Only fields present in
// the request change; everything else keeps its stored value.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	existing, err := s.ScheduleRepository.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.StartTime != nil {
		startTime, err := worksession.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse start time: %w", err)
		}
		existing.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := worksession.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse end time: %w", err)
		}
		existing.EndTime = endTime
	}
	if req.LunchStart != nil {
		lunchStart, err := worksession.ParseTimeOfDay(*req.LunchStart)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse lunch start: %w", err)
		}
		existing.LunchStart = lunchStart
	}
	if req.LunchEnd != nil {
		lunchEnd, err := worksession.ParseTimeOfDay(*req.LunchEnd)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse lunch end: %w", err)
		}
		existing.LunchEnd = lunchEnd
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}
	if req.DaysOfWeek != nil {
		existing.DaysOfWeek = req.DaysOfWeek
	}

	updated, err := s.ScheduleRepository.Update(ctx, existing)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return mapScheduleToResponse(updated), nil
}

// DeleteSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.ScheduleRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := s.ScheduleRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return nil
}

func mapScheduleToResponse(sch schedule.Schedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ScheduleID: sch.ScheduleID,
		Name:       sch.Name,
		StartTime:  sch.StartTime.String(),
		EndTime:    sch.EndTime.String(),
		LunchStart: sch.LunchStart.String(),
		LunchEnd:   sch.LunchEnd.String(),
		Active:     sch.Active,
		DaysOfWeek: sch.DaysOfWeek,
		CreatedAt:  sch.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  sch.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
