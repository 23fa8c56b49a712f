package worksession

import (
	"fmt"

	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
)

// DefaultScheduleStart is the lateness cutoff used when the employee has no
// assigned schedule.
var DefaultScheduleStart = worksession.NewTimeOfDay(9, 0)

// Lateness classifies a session's start time against the schedule start.
// A start exactly on the schedule start is on time; only minutes count.
func Lateness(session worksession.WorkSession, scheduleStart *worksession.TimeOfDay) worksession.LatenessStatus {
	if session.StartTime == nil {
		return worksession.LatenessAbsent
	}

	cutoff := DefaultScheduleStart
	if scheduleStart != nil {
		cutoff = *scheduleStart
	}

	if session.StartTime.After(cutoff) {
		return worksession.LatenessLate
	}
	return worksession.LatenessOnTime
}

// WorkedMinutes derives the worked duration of a session in whole minutes.
// Returns nil without error while the session is still open. The lunch
// interval is subtracted only when both lunch punches exist; a lone lunch
// punch is ignored, matching how half-recorded lunches have always been
// displayed. End before start, or lunch end before lunch start, yields
// ErrInvalidInterval rather than a clamped value.
func WorkedMinutes(session worksession.WorkSession) (*int, error) {
	if session.StartTime == nil || session.EndTime == nil {
		return nil, nil
	}

	total := session.EndTime.MinuteOfDay() - session.StartTime.MinuteOfDay()
	if total < 0 {
		return nil, worksession.ErrInvalidInterval
	}

	if session.LunchStart != nil && session.LunchEnd != nil {
		lunch := session.LunchEnd.MinuteOfDay() - session.LunchStart.MinuteOfDay()
		if lunch < 0 {
			return nil, worksession.ErrInvalidInterval
		}
		total -= lunch
		if total < 0 {
			return nil, worksession.ErrInvalidInterval
		}
	}

	return &total, nil
}

// FormatDuration renders minutes as "{hours}h {minutes}m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
