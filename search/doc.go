// Package search implements the two constrained shortest-path searches
// over a timetable.RouteGraph: earliest arrival and cheapest fare per
// cabin, both subject to a minimum layover between connecting flights.
//
// Overview:
//
//   - Both variants are the same label-correcting (Dijkstra-style)
//     search over airports, driven by a min-heap priority queue with the
//     lazy-decrease-key strategy: improvements push duplicate entries and
//     stale entries are skipped when popped. They differ only in the
//     metric being minimized and in how the "current clock" at an
//     airport — needed for the layover eligibility test — is derived.
//   - EarliestArrival labels each airport with the best arrival time
//     reachable there; the label doubles as the clock, so one label per
//     airport suffices.
//   - CheapestFare labels each airport with a Pareto frontier of
//     (cumulative fare, clock) pairs for one cabin; the clock is the
//     arrival time of the flight that produced the label. The cheapest
//     way into an airport may land too late for every onward leg, so a
//     costlier, earlier label is kept alongside it whenever neither
//     dominates the other on both coordinates. Chronological feasibility
//     is still enforced; a cheaper path that cannot be flown in time is
//     never selected, and never blocks a catchable one.
//
// Eligibility: an outbound flight may be taken only if it departs at or
// after the current clock plus the minimum layover; at the airport the
// search starts from, no prior leg exists, so the raw requested
// departure time applies with no layover added.
//
// Each label is finalized at most once per search, and a route that
// revisits an airport lands there strictly later at no lower fare, so
// it is dominated by the label it grew from and never admitted. That
// bounds the frontier and guarantees termination on cyclic route
// networks. Every search owns its label, predecessor,
// and queue state exclusively for the duration of the call; nothing is
// shared or retained, so searches may run concurrently over one graph.
//
// Tie-breaking: when two queue entries carry an equal key, the one with
// the earlier clock is popped first. For cheapest-fare this matches the
// reference behavior of ordering equal costs by arrival time; it is an
// implementation detail, not an API guarantee — callers must not rely
// on which of several equally-cheap itineraries is returned.
//
// Complexity, with V airports, E flights, and L admitted labels:
//
//   - Time:  O(L·E/V + L log L) — each label relaxed at most once over
//     its airport's outbound flights. For earliest arrival L ≤ V; for
//     cheapest fare L is the total frontier size, small in practice for
//     same-day schedules.
//   - Space: O(L + E) — frontier/predecessor maps plus heap entries
//     under lazy decrease-key.
//
// The unreachable outcome is a normal result, not a failure: both
// entry points return ErrNoItinerary (match with errors.Is) and a nil
// itinerary when the destination cannot be reached feasibly.
package search
