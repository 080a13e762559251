package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a zero-padded "HH:MM" string into minutes since
// local midnight. Hours must be in [0, 24) and minutes in [0, 60);
// anything else yields ErrBadClock with the offending string attached.
func ParseClock(s string) (int, error) {
	// 1) Split on the single ":" separator.
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	// 2) Both halves must be plain base-10 integers.
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	// 3) Range-check: same-day clock only.
	if h < 0 || h >= 24 || m < 0 || m >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
// The inverse of ParseClock for values in [0, MinutesPerDay).
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a minute count as "XhYYm" (hours unpadded,
// minutes zero-padded), e.g. 185 → "3h05m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
