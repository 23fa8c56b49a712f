package earlydeparture

import (
	"time"

	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is an employee's petition to leave before the scheduled end of the
// day. It references the work day only by date and time, never by session id.
type Request struct {
	RequestID   string
	UserID      string
	Description string
	RequestDate time.Time
	RequestTime worksession.TimeOfDay
	Status      RequestStatus
	ApprovedBy  *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	UserName *string
}

// IsResolved reports whether the request has left the pending state.
// Approved and rejected are terminal.
func (r *Request) IsResolved() bool {
	return r.Status != RequestStatusPending
}
