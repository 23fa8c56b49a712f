package worksession

import (
	"testing"

	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(hour, minute int) *worksession.TimeOfDay {
	t := worksession.NewTimeOfDay(hour, minute)
	return &t
}

func TestWorkedMinutes_FullDayWithLunch(t *testing.T) {
	session := worksession.WorkSession{
		StartTime:  tod(9, 0),
		LunchStart: tod(13, 0),
		LunchEnd:   tod(14, 0),
		EndTime:    tod(18, 0),
	}

	minutes, err := WorkedMinutes(session)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 8*60, *minutes)
	assert.Equal(t, "8h 0m", FormatDuration(*minutes))
}

func TestWorkedMinutes_NoLunchPunches(t *testing.T) {
	session := worksession.WorkSession{
		StartTime: tod(9, 0),
		EndTime:   tod(16, 0),
	}

	minutes, err := WorkedMinutes(session)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 7*60, *minutes)
	assert.Equal(t, "7h 0m", FormatDuration(*minutes))
}

func TestWorkedMinutes_LoneLunchPunchIgnored(t *testing.T) {
	// Only lunch start recorded, never ended: lunch must not be subtracted.
	session := worksession.WorkSession{
		StartTime:  tod(9, 0),
		LunchStart: tod(13, 0),
		EndTime:    tod(16, 0),
	}

	minutes, err := WorkedMinutes(session)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 7*60, *minutes)
}

func TestWorkedMinutes_UnevenTimes(t *testing.T) {
	session := worksession.WorkSession{
		StartTime:  tod(8, 47),
		LunchStart: tod(12, 30),
		LunchEnd:   tod(13, 22),
		EndTime:    tod(16, 59),
	}

	minutes, err := WorkedMinutes(session)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	// 8h12m gross minus 52m lunch
	assert.Equal(t, 7*60+20, *minutes)
	assert.Equal(t, "7h 20m", FormatDuration(*minutes))
}

func TestWorkedMinutes_OpenSession(t *testing.T) {
	session := worksession.WorkSession{
		StartTime: tod(9, 0),
	}

	minutes, err := WorkedMinutes(session)
	require.NoError(t, err)
	assert.Nil(t, minutes)
}

func TestWorkedMinutes_EndBeforeStart(t *testing.T) {
	session := worksession.WorkSession{
		StartTime: tod(17, 0),
		EndTime:   tod(9, 0),
	}

	_, err := WorkedMinutes(session)
	assert.ErrorIs(t, err, worksession.ErrInvalidInterval)
}

func TestWorkedMinutes_LunchEndBeforeLunchStart(t *testing.T) {
	session := worksession.WorkSession{
		StartTime:  tod(9, 0),
		LunchStart: tod(14, 0),
		LunchEnd:   tod(13, 0),
		EndTime:    tod(18, 0),
	}

	_, err := WorkedMinutes(session)
	assert.ErrorIs(t, err, worksession.ErrInvalidInterval)
}

func TestWorkedMinutes_LunchLongerThanDay(t *testing.T) {
	session := worksession.WorkSession{
		StartTime:  tod(9, 0),
		LunchStart: tod(9, 5),
		LunchEnd:   tod(18, 0),
		EndTime:    tod(9, 10),
	}

	_, err := WorkedMinutes(session)
	assert.ErrorIs(t, err, worksession.ErrInvalidInterval)
}

func TestLateness_DefaultCutoff(t *testing.T) {
	tests := []struct {
		name  string
		start *worksession.TimeOfDay
		want  worksession.LatenessStatus
	}{
		{"exactly on cutoff is on time", tod(9, 0), worksession.LatenessOnTime},
		{"one minute past cutoff is late", tod(9, 1), worksession.LatenessLate},
		{"before cutoff is on time", tod(7, 45), worksession.LatenessOnTime},
		{"no start punch is absent", nil, worksession.LatenessAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := worksession.WorkSession{StartTime: tt.start}
			assert.Equal(t, tt.want, Lateness(session, nil))
		})
	}
}

func TestLateness_ScheduleCutoff(t *testing.T) {
	cutoff := worksession.NewTimeOfDay(10, 30)

	late := worksession.WorkSession{StartTime: tod(10, 31)}
	assert.Equal(t, worksession.LatenessLate, Lateness(late, &cutoff))

	onTime := worksession.WorkSession{StartTime: tod(10, 30)}
	assert.Equal(t, worksession.LatenessOnTime, Lateness(onTime, &cutoff))

	// Past the default cutoff but within the schedule's.
	laxSchedule := worksession.WorkSession{StartTime: tod(9, 45)}
	assert.Equal(t, worksession.LatenessOnTime, Lateness(laxSchedule, &cutoff))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatDuration(0))
	assert.Equal(t, "0h 59m", FormatDuration(59))
	assert.Equal(t, "1h 0m", FormatDuration(60))
	assert.Equal(t, "10h 5m", FormatDuration(605))
}
