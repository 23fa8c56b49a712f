package earlydeparture

import (
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/validator"
)

type SubmitRequestRequest struct {
	Description string `json:"description"`
	RequestDate string `json:"request_date"` // YYYY-MM-DD
	RequestTime string `json:"request_time"` // HH:MM
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	} else if len(r.Description) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.RequestDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_date",
			Message: "request_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.RequestDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "request_date",
			Message: "request_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.RequestTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_time",
			Message: "request_time is required",
		})
	} else if !validator.IsValidTimeOfDay(r.RequestTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_time",
			Message: "request_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	RequestID   string  `json:"request_id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Description string  `json:"description"`
	RequestDate string  `json:"request_date"`
	RequestTime string  `json:"request_time"`
	Status      string  `json:"status"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListRequestsResponse struct {
	TotalCount int               `json:"total_count"`
	Requests   []RequestResponse `json:"requests"`
}
