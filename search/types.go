// Package search: configuration options and sentinel errors for the
// constrained itinerary searches.
package search

import (
	"errors"
)

// DefaultMinLayover is the minimum ground time, in minutes, between one
// leg's arrival and the next leg's departure. It applies uniformly to
// every connection; the very first leg of an itinerary is exempt (no
// prior leg exists). Injected into both search variants from this one
// constant so the two cannot drift apart.
const DefaultMinLayover = 60

// Sentinel errors for the search entry points.
var (
	// ErrNilGraph is returned when a nil *timetable.RouteGraph is passed.
	ErrNilGraph = errors.New("search: route graph is nil")

	// ErrEmptyOrigin is returned when the origin airport code is empty.
	ErrEmptyOrigin = errors.New("search: origin airport is empty")

	// ErrEmptyDest is returned when the destination airport code is empty.
	ErrEmptyDest = errors.New("search: destination airport is empty")

	// ErrBadDeparture is returned when the earliest-departure threshold
	// lies outside [0, timetable.MinutesPerDay).
	ErrBadDeparture = errors.New("search: earliest departure out of range")

	// ErrBadLayover is returned when a negative minimum layover is configured.
	ErrBadLayover = errors.New("search: minimum layover must be non-negative")

	// ErrNoItinerary is the normal "unreachable" outcome: no feasible
	// itinerary connects origin to destination under the given
	// departure-time and layover constraints. Match with errors.Is.
	ErrNoItinerary = errors.New("search: no feasible itinerary")
)

// Options holds the tunable constraints shared by both search variants.
//
// DepartAfter – earliest acceptable departure of the first leg, minutes
// since midnight. Must lie in [0, timetable.MinutesPerDay). Default 0.
//
// MinLayover – minimum connection time in minutes applied to every
// non-first leg. Must be ≥ 0. Default DefaultMinLayover.
type Options struct {
	DepartAfter int // earliest departure of the first leg
	MinLayover  int // minimum connection time between legs
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DepartAfter sets the earliest acceptable departure time of the first
// leg, in minutes since midnight. Values outside [0, 1440) surface as
// ErrBadDeparture when the search runs.
func DepartAfter(minutes int) Option {
	return func(o *Options) {
		o.DepartAfter = minutes
	}
}

// WithMinLayover overrides the minimum connection time between legs.
// Negative values surface as ErrBadLayover when the search runs.
func WithMinLayover(minutes int) Option {
	return func(o *Options) {
		o.MinLayover = minutes
	}
}

// DefaultOptions returns the Options both searches start from:
// depart any time from midnight, DefaultMinLayover between legs.
func DefaultOptions() Options {
	return Options{
		DepartAfter: 0,
		MinLayover:  DefaultMinLayover,
	}
}
