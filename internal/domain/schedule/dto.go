package schedule

import (
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Name       string `json:"name"`
	StartTime  string `json:"start_time"`  // HH:MM
	EndTime    string `json:"end_time"`    // HH:MM
	LunchStart string `json:"lunch_start"` // HH:MM
	LunchEnd   string `json:"lunch_end"`   // HH:MM
	Active     bool   `json:"active"`
	DaysOfWeek []int  `json:"days_of_week"` // 1=Monday ... 7=Sunday
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for field, value := range map[string]string{
		"start_time":  r.StartTime,
		"end_time":    r.EndTime,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
	} {
		if !validator.IsValidTimeOfDay(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	for _, day := range r.DaysOfWeek {
		if day < 1 || day > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "days_of_week values must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ScheduleID string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	DaysOfWeek []int   `json:"days_of_week,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	for field, value := range map[string]*string{
		"start_time":  r.StartTime,
		"end_time":    r.EndTime,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
	} {
		if value != nil && !validator.IsValidTimeOfDay(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	for _, day := range r.DaysOfWeek {
		if day < 1 || day > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "days_of_week values must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ScheduleID string `json:"schedule_id"`
	Name       string `json:"name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`
	DaysOfWeek []int  `json:"days_of_week"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type ListSchedulesResponse struct {
	TotalCount int                `json:"total_count"`
	Schedules  []ScheduleResponse `json:"schedules"`
}
