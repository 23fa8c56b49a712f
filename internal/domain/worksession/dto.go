package worksession

import (
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/validator"
)

// LatenessStatus is derived from the start punch at read time; it is never
// stored.
type LatenessStatus string

const (
	LatenessOnTime LatenessStatus = "on_time"
	LatenessLate   LatenessStatus = "late"
	LatenessAbsent LatenessStatus = "absent"
)

type SessionResponse struct {
	SessionID  string  `json:"session_id"`
	UserID     string  `json:"user_id"`
	UserName   *string `json:"user_name,omitempty"`
	WorkDate   string  `json:"work_date"`
	StartTime  *string `json:"start_time"`
	LunchStart *string `json:"lunch_start"`
	LunchEnd   *string `json:"lunch_end"`
	EndTime    *string `json:"end_time"`
	Status     string  `json:"status"`
	// WorkedDuration is "{h}h {m}m" once the session has ended, nil while it
	// is still open, and "invalid_interval" when the punches are inconsistent.
	WorkedDuration *string `json:"worked_duration"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListSessionsResponse struct {
	TotalCount int               `json:"total_count"`
	Sessions   []SessionResponse `json:"sessions"`
}

// SessionFilter narrows the admin listing. All fields are optional.
type SessionFilter struct {
	UserID    *string
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Status    *string // on_time | late | absent
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{
			string(LatenessOnTime), string(LatenessLate), string(LatenessAbsent),
		}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: on_time, late, absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
