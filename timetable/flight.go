package timetable

import (
	"fmt"
)

// Flight is an immutable description of one scheduled flight leg with a
// flat fare for each of the three cabins.
//
// Depart and Arrive are minutes since local midnight, both within
// [0, MinutesPerDay), with Arrive strictly greater than Depart. The
// FlightNumber is an opaque identifier and takes no part in any
// comparison. Construct flights through NewFlight so these invariants
// hold for every value the rest of the system sees.
type Flight struct {
	// Origin is the departure airport code (exact-match, case-sensitive).
	Origin string

	// Dest is the arrival airport code.
	Dest string

	// FlightNumber is an opaque leg identifier, e.g. "FW101".
	FlightNumber string

	// Depart is the departure time in minutes since local midnight.
	Depart int

	// Arrive is the arrival time in minutes since local midnight.
	// Always strictly greater than Depart.
	Arrive int

	// Economy, Business and First are the non-negative flat fares
	// for the respective cabins.
	Economy  int
	Business int
	First    int
}

// NewFlight validates all fields and returns the flight by value.
//
// Validation (in order):
//  1. Origin and Dest must be non-empty (ErrEmptyAirport).
//  2. FlightNumber must be non-empty (ErrEmptyFlightNumber).
//  3. Both times must lie in [0, MinutesPerDay) (ErrBadClock).
//  4. Arrive must be strictly after Depart (ErrNonPositiveLeg).
//  5. All three fares must be non-negative (ErrNegativeFare).
func NewFlight(origin, dest, number string, depart, arrive, economy, business, first int) (Flight, error) {
	if origin == "" || dest == "" {
		return Flight{}, ErrEmptyAirport
	}
	if number == "" {
		return Flight{}, ErrEmptyFlightNumber
	}
	if depart < 0 || depart >= MinutesPerDay || arrive < 0 || arrive >= MinutesPerDay {
		return Flight{}, fmt.Errorf("%w: flight %s depart=%d arrive=%d", ErrBadClock, number, depart, arrive)
	}
	if arrive <= depart {
		return Flight{}, fmt.Errorf("%w: flight %s %s→%s %s..%s",
			ErrNonPositiveLeg, number, origin, dest, FormatClock(depart), FormatClock(arrive))
	}
	if economy < 0 || business < 0 || first < 0 {
		return Flight{}, fmt.Errorf("%w: flight %s", ErrNegativeFare, number)
	}

	return Flight{
		Origin:       origin,
		Dest:         dest,
		FlightNumber: number,
		Depart:       depart,
		Arrive:       arrive,
		Economy:      economy,
		Business:     business,
		First:        first,
	}, nil
}

// Duration returns the leg's airborne time in minutes. Always positive.
func (f Flight) Duration() int {
	return f.Arrive - f.Depart
}

// PriceFor returns the flat fare for the given cabin. It is a total
// function over the three Cabin variants; any other value means a caller
// bypassed ParseCabin, which is a defect, so PriceFor fails loudly
// rather than coercing.
func (f Flight) PriceFor(cabin Cabin) int {
	switch cabin {
	case CabinEconomy:
		return f.Economy
	case CabinBusiness:
		return f.Business
	case CabinFirst:
		return f.First
	default:
		panic(fmt.Sprintf("timetable: PriceFor called with invalid Cabin(%d)", int(cabin)))
	}
}
