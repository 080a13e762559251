// Package timetable: sentinel errors and the Cabin enumeration.
//
// This file declares the error values shared across the package and the
// closed Cabin type with its boundary parser. The Flight, Itinerary, and
// RouteGraph types live in their own files.
package timetable

import (
	"errors"
	"fmt"
)

// Sentinel errors for timetable validation.
var (
	// ErrEmptyAirport indicates a flight with an empty origin or destination code.
	ErrEmptyAirport = errors.New("timetable: airport code is empty")

	// ErrEmptyFlightNumber indicates a flight with an empty flight number.
	ErrEmptyFlightNumber = errors.New("timetable: flight number is empty")

	// ErrBadClock indicates a minute-of-day value outside [0, 1440)
	// or a malformed HH:MM string.
	ErrBadClock = errors.New("timetable: clock value out of range")

	// ErrNonPositiveLeg indicates a flight that does not arrive strictly
	// after it departs. Overnight legs are not representable.
	ErrNonPositiveLeg = errors.New("timetable: arrival must be after departure")

	// ErrNegativeFare indicates a negative cabin fare.
	ErrNegativeFare = errors.New("timetable: fare must be non-negative")

	// ErrUnknownCabin indicates a cabin string that is none of
	// "economy", "business", "first".
	ErrUnknownCabin = errors.New("timetable: unknown cabin")

	// ErrEmptyItinerary indicates an itinerary built from zero flights.
	ErrEmptyItinerary = errors.New("timetable: itinerary has no flights")

	// ErrBrokenItinerary indicates consecutive legs that do not connect
	// (a leg departing from an airport other than the previous arrival).
	ErrBrokenItinerary = errors.New("timetable: consecutive legs do not connect")
)

// MinutesPerDay bounds every clock value in the system.
// All times are same-day minutes since local midnight.
const MinutesPerDay = 1440

// Cabin is a closed enumeration of exactly three service classes.
// The zero value is CabinEconomy.
type Cabin int

const (
	// CabinEconomy is the economy service class.
	CabinEconomy Cabin = iota

	// CabinBusiness is the business service class.
	CabinBusiness

	// CabinFirst is the first service class.
	CabinFirst
)

// cabinNames maps each Cabin variant to its external string form.
var cabinNames = [...]string{
	CabinEconomy:  "economy",
	CabinBusiness: "business",
	CabinFirst:    "first",
}

// String returns the external name of the cabin ("economy", "business",
// "first"). Panics on an out-of-range value; such a value can only be
// produced by code bypassing ParseCabin and is a defect.
func (c Cabin) String() string {
	if c < CabinEconomy || c > CabinFirst {
		panic(fmt.Sprintf("timetable: invalid Cabin(%d)", int(c)))
	}

	return cabinNames[c]
}

// ParseCabin converts an external cabin string to its Cabin variant.
// This is the one boundary where arbitrary strings are accepted; every
// other API takes the already-validated Cabin type. Unknown strings
// yield ErrUnknownCabin.
func ParseCabin(s string) (Cabin, error) {
	switch s {
	case "economy":
		return CabinEconomy, nil
	case "business":
		return CabinBusiness, nil
	case "first":
		return CabinFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCabin, s)
	}
}

// Cabins returns all cabin variants in the fixed reporting order:
// economy, business, first.
func Cabins() []Cabin {
	return []Cabin{CabinEconomy, CabinBusiness, CabinFirst}
}
