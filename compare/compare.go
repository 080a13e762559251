// Package compare runs the full itinerary comparison for one route
// query: the earliest-arrival search plus one cheapest-fare search per
// cabin, rendered as the fixed-order report.
//
// The four searches are logically independent and read-only over the
// shared RouteGraph, so they fan out concurrently; each owns its
// working state exclusively for its own duration. A mode that finds no
// feasible itinerary contributes a sentinel row with an explanatory
// note — it never aborts the other modes. Any other search error
// aborts the whole comparison.
package compare

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flywise/report"
	"github.com/katalvlaran/flywise/search"
	"github.com/katalvlaran/flywise/timetable"
)

// noItineraryNote annotates a mode with no feasible connection.
const noItineraryNote = "(no valid itinerary)"

// Run executes all four search modes for the route from origin to dest
// with the given earliest-departure time (minutes since midnight) and
// returns the rendered comparison table.
//
// Row order is fixed: earliest arrival, then cheapest fare for
// economy, business, and first.
func Run(g *timetable.RouteGraph, origin, dest string, departAfter int, opts ...search.Option) (string, error) {
	// One slot per row keeps the fixed order regardless of which
	// goroutine finishes first: slot 0 is earliest arrival, slots
	// 1..3 follow the fixed cabin order.
	cabins := timetable.Cabins()
	results := make([]*timetable.Itinerary, 1+len(cabins))
	opts = append(opts, search.DepartAfter(departAfter))

	var eg errgroup.Group
	eg.Go(func() error {
		it, err := search.EarliestArrival(g, origin, dest, opts...)
		if err != nil && !errors.Is(err, search.ErrNoItinerary) {
			return fmt.Errorf("earliest arrival: %w", err)
		}
		results[0] = it

		return nil
	})
	for i, cabin := range cabins {
		i, cabin := i, cabin
		eg.Go(func() error {
			it, err := search.CheapestFare(g, origin, dest, cabin, opts...)
			if err != nil && !errors.Is(err, search.ErrNoItinerary) {
				return fmt.Errorf("cheapest %s: %w", cabin, err)
			}
			results[1+i] = it

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	rows := make([]report.Row, 0, len(results))
	rows = append(rows, report.Row{
		Mode:      "Earliest arrival",
		Itinerary: results[0],
		Note:      note(results[0]),
	})
	for i, cabin := range cabins {
		cabin := cabin
		rows = append(rows, report.Row{
			Mode:      "Cheapest | " + cabin.String(),
			Cabin:     &cabin,
			Itinerary: results[1+i],
			Note:      note(results[1+i]),
		})
	}

	return report.Render(origin, dest, rows), nil
}

// note returns the unreachable annotation for absent itineraries.
func note(it *timetable.Itinerary) string {
	if it == nil {
		return noItineraryNote
	}

	return ""
}
