package timetable

// RouteGraph maps each origin airport code to the ordered list of
// flights departing it. Flights keep the order in which they were
// supplied (source-file order), which fixes tie-breaking behavior in
// the searches without being otherwise significant.
//
// A RouteGraph is built once per run and never mutated afterwards, so
// concurrent searches may read it without any locking discipline.
type RouteGraph struct {
	// outbound groups flights by Origin, preserving insertion order.
	outbound map[string][]Flight

	// flights counts every edge in the graph.
	flights int
}

// BuildRouteGraph groups the given flights by origin airport. Input
// order is preserved within each origin's list. The slice contents are
// copied into the graph; the caller's slice may be reused afterwards.
func BuildRouteGraph(flights []Flight) *RouteGraph {
	g := &RouteGraph{
		outbound: make(map[string][]Flight, len(flights)),
		flights:  len(flights),
	}
	for _, f := range flights {
		g.outbound[f.Origin] = append(g.outbound[f.Origin], f)
	}

	return g
}

// Outbound returns the flights departing the given airport in insertion
// order. Unknown airports — including destinations that never appear as
// an origin — yield an empty slice, never an error.
//
// The returned slice is shared with the graph; callers must not mutate it.
func (g *RouteGraph) Outbound(airport string) []Flight {
	return g.outbound[airport]
}

// Airports returns every airport with at least one outbound flight.
// Order is unspecified.
func (g *RouteGraph) Airports() []string {
	out := make([]string, 0, len(g.outbound))
	for code := range g.outbound {
		out = append(out, code)
	}

	return out
}

// Len returns the total number of flights in the graph.
func (g *RouteGraph) Len() int {
	return g.flights
}
