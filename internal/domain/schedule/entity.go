package schedule

import (
	"time"

	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
)

// Schedule is admin-owned reference data. The clock ledger reads it only to
// classify lateness against StartTime.
type Schedule struct {
	ScheduleID string
	Name       string
	StartTime  worksession.TimeOfDay
	EndTime    worksession.TimeOfDay
	LunchStart worksession.TimeOfDay
	LunchEnd   worksession.TimeOfDay
	Active     bool
	DaysOfWeek []int // 1=Monday ... 7=Sunday
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
