package timetable

import (
	"fmt"
)

// Itinerary is an ordered, non-empty sequence of flights where each leg
// departs from the previous leg's destination.
//
// An absent itinerary (no connecting path) is represented as a nil
// *Itinerary by the search layer, never as an Itinerary with zero
// flights — NewItinerary rejects the empty sequence outright.
//
// The layover feasibility of the chain is the search's concern; the
// constructor only enforces the structural airport-chaining invariant,
// so reconstruction cannot silently produce a disconnected sequence.
type Itinerary struct {
	// Flights are the legs in chronological order.
	Flights []Flight
}

// NewItinerary wraps a chronological flight sequence after checking:
//  1. The sequence is non-empty (ErrEmptyItinerary).
//  2. Each consecutive pair connects: flights[i].Dest == flights[i+1].Origin
//     (ErrBrokenItinerary).
func NewItinerary(flights []Flight) (*Itinerary, error) {
	if len(flights) == 0 {
		return nil, ErrEmptyItinerary
	}
	for i := 1; i < len(flights); i++ {
		if flights[i-1].Dest != flights[i].Origin {
			return nil, fmt.Errorf("%w: leg %d arrives at %s, leg %d departs from %s",
				ErrBrokenItinerary, i-1, flights[i-1].Dest, i, flights[i].Origin)
		}
	}

	return &Itinerary{Flights: flights}, nil
}

// Origin returns the first leg's departure airport.
func (it *Itinerary) Origin() string { return it.Flights[0].Origin }

// Dest returns the last leg's arrival airport.
func (it *Itinerary) Dest() string { return it.Flights[len(it.Flights)-1].Dest }

// DepartTime returns the first leg's departure in minutes since midnight.
func (it *Itinerary) DepartTime() int { return it.Flights[0].Depart }

// ArriveTime returns the last leg's arrival in minutes since midnight.
func (it *Itinerary) ArriveTime() int { return it.Flights[len(it.Flights)-1].Arrive }

// Duration returns total door-to-door time in minutes (arrival minus
// departure, ground time included).
func (it *Itinerary) Duration() int { return it.ArriveTime() - it.DepartTime() }

// Stops returns the number of intermediate stops: len(Flights) - 1.
func (it *Itinerary) Stops() int { return len(it.Flights) - 1 }

// TotalPrice sums the per-leg fares for the given cabin.
func (it *Itinerary) TotalPrice(cabin Cabin) int {
	total := 0
	for _, f := range it.Flights {
		total += f.PriceFor(cabin)
	}

	return total
}
