package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/flywise/timetable"
)

func TestBuildRouteGraph_GroupsByOrigin(t *testing.T) {
	flights := []timetable.Flight{
		mustFlight(t, "SFO", "DEN", "FW101", 8*60, 9*60, 100, 250, 400),
		mustFlight(t, "SFO", "ORD", "FW102", 9*60, 12*60, 150, 300, 500),
		mustFlight(t, "DEN", "JFK", "FW202", 10*60, 11*60, 50, 120, 200),
	}
	g := timetable.BuildRouteGraph(flights)

	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.Outbound("SFO"), 2)
	assert.Len(t, g.Outbound("DEN"), 1)
	assert.ElementsMatch(t, []string{"SFO", "DEN"}, g.Airports())
}

// TestRouteGraph_InsertionOrder: flights keep source order within one
// origin, which fixes tie-break determinism downstream.
func TestRouteGraph_InsertionOrder(t *testing.T) {
	flights := []timetable.Flight{
		mustFlight(t, "SFO", "DEN", "FW103", 12*60, 13*60, 80, 210, 380),
		mustFlight(t, "SFO", "DEN", "FW101", 8*60, 9*60, 100, 250, 400),
		mustFlight(t, "SFO", "DEN", "FW102", 9*60, 10*60, 90, 230, 390),
	}
	g := timetable.BuildRouteGraph(flights)

	out := g.Outbound("SFO")
	assert.Equal(t, []string{"FW103", "FW101", "FW102"}, []string{
		out[0].FlightNumber, out[1].FlightNumber, out[2].FlightNumber,
	})
}

// TestRouteGraph_UnknownAirport: lookups never fail, they yield an
// empty outbound set. Destinations with no departures behave the same.
func TestRouteGraph_UnknownAirport(t *testing.T) {
	g := timetable.BuildRouteGraph([]timetable.Flight{
		mustFlight(t, "SFO", "JFK", "FW900", 6*60, 12*60, 300, 700, 1200),
	})

	assert.Empty(t, g.Outbound("JFK"))
	assert.Empty(t, g.Outbound("nowhere"))
}

// TestRouteGraph_CaseSensitive: airport codes match exactly, no
// normalization.
func TestRouteGraph_CaseSensitive(t *testing.T) {
	g := timetable.BuildRouteGraph([]timetable.Flight{
		mustFlight(t, "SFO", "JFK", "FW900", 6*60, 12*60, 300, 700, 1200),
	})

	assert.Len(t, g.Outbound("SFO"), 1)
	assert.Empty(t, g.Outbound("sfo"))
}

func TestBuildRouteGraph_Empty(t *testing.T) {
	g := timetable.BuildRouteGraph(nil)

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Airports())
	assert.Empty(t, g.Outbound("SFO"))
}
