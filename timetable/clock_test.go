package timetable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flywise/timetable"
)

// TestParseClock_Valid covers midnight, midday and the last minute of the day.
func TestParseClock_Valid(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"07:05": 7*60 + 5,
		"12:30": 12*60 + 30,
		"23:59": 23*60 + 59,
	}
	for s, want := range cases {
		got, err := timetable.ParseClock(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}

// TestParseClock_Invalid rejects out-of-range and malformed clock strings.
func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "7", "24:00", "12:60", "-1:00", "ab:cd", "12-30", "12:30:00"} {
		if _, err := timetable.ParseClock(s); !errors.Is(err, timetable.ErrBadClock) {
			t.Fatalf("ParseClock(%q): expected ErrBadClock, got %v", s, err)
		}
	}
}

// TestFormatClock_RoundTrip: formatting a parsed value is the identity
// for zero-padded input.
func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:00", "09:30", "23:59"} {
		m, err := timetable.ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, timetable.FormatClock(m))
	}
}

// TestFormatDuration checks the XhYYm shape, minutes zero-padded.
func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h00m", timetable.FormatDuration(0))
	assert.Equal(t, "0h45m", timetable.FormatDuration(45))
	assert.Equal(t, "3h00m", timetable.FormatDuration(180))
	assert.Equal(t, "3h05m", timetable.FormatDuration(185))
	assert.Equal(t, "26h10m", timetable.FormatDuration(26*60+10))
}
