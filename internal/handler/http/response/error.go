package response

import (
	"errors"
	"net/http"

	"github.com/recursos-humanos/hr-backend-go/internal/domain/auth"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/schedule"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Work session domain errors
	case errors.Is(err, worksession.ErrAlreadyStarted):
		Conflict(w, "Work session already started today")
	case errors.Is(err, worksession.ErrNotStarted):
		Conflict(w, "Work session has not been started today")
	case errors.Is(err, worksession.ErrAlreadyOnLunch):
		Conflict(w, "Lunch has already been started")
	case errors.Is(err, worksession.ErrLunchNotStarted):
		Conflict(w, "Lunch has not been started")
	case errors.Is(err, worksession.ErrLunchAlreadyEnded):
		Conflict(w, "Lunch has already been ended")
	case errors.Is(err, worksession.ErrAlreadyEnded):
		Conflict(w, "Work session has already been ended")
	case errors.Is(err, worksession.ErrSessionNotFound):
		NotFound(w, "Work session not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Early departure domain errors
	case errors.Is(err, earlydeparture.ErrRequestNotFound):
		NotFound(w, "Early departure request not found")
	case errors.Is(err, earlydeparture.ErrRequestAlreadyResolved):
		Conflict(w, "Early departure request has already been approved or rejected")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
