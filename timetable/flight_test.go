package timetable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flywise/timetable"
)

// mustFlight builds a valid flight or fails the test. Shared by the
// itinerary and graph tests in this package.
func mustFlight(t *testing.T, origin, dest, number string, depart, arrive, economy, business, first int) timetable.Flight {
	t.Helper()
	f, err := timetable.NewFlight(origin, dest, number, depart, arrive, economy, business, first)
	require.NoError(t, err)

	return f
}

func TestNewFlight_Valid(t *testing.T) {
	f := mustFlight(t, "SFO", "DEN", "FW101", 8*60, 9*60, 100, 250, 400)

	assert.Equal(t, "SFO", f.Origin)
	assert.Equal(t, "DEN", f.Dest)
	assert.Equal(t, 60, f.Duration())
}

// TestNewFlight_Invalid walks every validation branch in order.
func TestNewFlight_Invalid(t *testing.T) {
	cases := []struct {
		name                    string
		origin, dest, number    string
		depart, arrive          int
		economy, business, first int
		want                    error
	}{
		{"empty origin", "", "DEN", "FW1", 0, 60, 0, 0, 0, timetable.ErrEmptyAirport},
		{"empty dest", "SFO", "", "FW1", 0, 60, 0, 0, 0, timetable.ErrEmptyAirport},
		{"empty number", "SFO", "DEN", "", 0, 60, 0, 0, 0, timetable.ErrEmptyFlightNumber},
		{"negative depart", "SFO", "DEN", "FW1", -1, 60, 0, 0, 0, timetable.ErrBadClock},
		{"arrive past midnight", "SFO", "DEN", "FW1", 0, 1440, 0, 0, 0, timetable.ErrBadClock},
		{"zero duration", "SFO", "DEN", "FW1", 60, 60, 0, 0, 0, timetable.ErrNonPositiveLeg},
		{"arrives before departing", "SFO", "DEN", "FW1", 120, 60, 0, 0, 0, timetable.ErrNonPositiveLeg},
		{"negative economy", "SFO", "DEN", "FW1", 0, 60, -1, 0, 0, timetable.ErrNegativeFare},
		{"negative first", "SFO", "DEN", "FW1", 0, 60, 0, 0, -9, timetable.ErrNegativeFare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := timetable.NewFlight(tc.origin, tc.dest, tc.number,
				tc.depart, tc.arrive, tc.economy, tc.business, tc.first)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// TestPriceFor_Total: PriceFor is a total function over the three cabins.
func TestPriceFor_Total(t *testing.T) {
	f := mustFlight(t, "SFO", "DEN", "FW101", 8*60, 9*60, 100, 250, 400)

	assert.Equal(t, 100, f.PriceFor(timetable.CabinEconomy))
	assert.Equal(t, 250, f.PriceFor(timetable.CabinBusiness))
	assert.Equal(t, 400, f.PriceFor(timetable.CabinFirst))
}

// TestPriceFor_UnknownCabinPanics: an out-of-range cabin is a
// programming defect and must fail loudly, not coerce.
func TestPriceFor_UnknownCabinPanics(t *testing.T) {
	f := mustFlight(t, "SFO", "DEN", "FW101", 8*60, 9*60, 100, 250, 400)

	assert.Panics(t, func() {
		_ = f.PriceFor(timetable.Cabin(3))
	})
}
