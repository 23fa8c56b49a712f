package worksession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("13:05")
	require.NoError(t, err)
	assert.Equal(t, 13, parsed.Hour)
	assert.Equal(t, 5, parsed.Minute)

	parsed, err = ParseTimeOfDay("13:05:42")
	require.NoError(t, err)
	assert.Equal(t, "13:05", parsed.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("noon")
	assert.Error(t, err)
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:05", NewTimeOfDay(8, 5).String())
	assert.Equal(t, "00:00", NewTimeOfDay(0, 0).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59).String())
}

func TestTimeOfDay_MinuteOfDayAndAfter(t *testing.T) {
	nine := NewTimeOfDay(9, 0)
	assert.Equal(t, 540, nine.MinuteOfDay())

	assert.True(t, NewTimeOfDay(9, 1).After(nine))
	assert.False(t, nine.After(nine))
	assert.False(t, NewTimeOfDay(8, 59).After(nine))
}

func TestTimeOfDay_ValueScanRoundTrip(t *testing.T) {
	original := NewTimeOfDay(13, 5)

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, "13:05:00", value)

	var scanned TimeOfDay
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestTimeOfDay_ScanSources(t *testing.T) {
	var fromBytes TimeOfDay
	require.NoError(t, fromBytes.Scan([]byte("08:30:00")))
	assert.Equal(t, NewTimeOfDay(8, 30), fromBytes)

	var fromTime TimeOfDay
	require.NoError(t, fromTime.Scan(time.Date(0, 1, 1, 16, 45, 12, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(16, 45), fromTime)

	var target TimeOfDay
	assert.Error(t, target.Scan(nil))
	assert.Error(t, target.Scan(42))
	assert.Error(t, target.Scan("not a time"))
}

func TestTimeOfDayFrom_TruncatesSeconds(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 59, 0, time.UTC)
	assert.Equal(t, NewTimeOfDay(9, 0), TimeOfDayFrom(at))
}
