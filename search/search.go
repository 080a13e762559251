// Package search implements the constrained label-correcting search
// shared by the earliest-arrival and cheapest-fare variants.
//
// The two entry points differ only in the objective plugged into the
// runner: the metric seeded at the start airport, the metric a relaxed
// flight produces, and the label frontier that decides which candidate
// labels are worth enqueueing. The eligibility rule (layover
// feasibility) and the loop structure are identical, so tie-break
// behavior cannot drift between the variants.
package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/flywise/timetable"
)

// EarliestArrival finds the itinerary from origin to dest departing no
// earlier than the configured DepartAfter time, minimizing arrival time
// at dest, subject to the minimum-layover constraint.
//
// Returns:
//
//   - *timetable.Itinerary: legs in chronological order.
//   - err: a validation sentinel for bad inputs, or ErrNoItinerary when
//     no feasible connection exists (nil itinerary in that case).
func EarliestArrival(g *timetable.RouteGraph, origin, dest string, opts ...Option) (*timetable.Itinerary, error) {
	return run(g, origin, dest, earliestObjective{}, opts)
}

// CheapestFare finds the itinerary from origin to dest departing no
// earlier than the configured DepartAfter time, minimizing the total
// fare for the given cabin, subject to the same layover constraint.
//
// Cost is the sole optimization objective once feasibility is
// satisfied: a cheaper but time-infeasible path is never selected, and
// when the cheapest label at an airport cannot make any onward
// connection, a costlier still-catchable label through the same airport
// remains eligible — regardless of the order in which the two labels
// were discovered.
func CheapestFare(g *timetable.RouteGraph, origin, dest string, cabin timetable.Cabin, opts ...Option) (*timetable.Itinerary, error) {
	return run(g, origin, dest, fareObjective{cabin: cabin}, opts)
}

// state identifies one finalizable unit of search progress. For the
// earliest-arrival objective the key and clock are collapsed to zero,
// so a state is the airport itself and each airport finalizes exactly
// once. For the cheapest-fare objective the label is part of the state:
// several mutually non-dominated (fare, clock) labels may coexist at
// one airport, each expanded at most once.
type state struct {
	airport string
	key     int64
	clock   int
}

// objective parameterizes the runner with the metric being minimized.
// The clock used for eligibility checks is always the arrival time of
// the flight that produced the label, independent of the objective.
type objective interface {
	// startKey is the label seeded at the start airport.
	startKey(departAfter int) int64

	// relaxKey is the label a flight produces when taken from an
	// airport whose label is key.
	relaxKey(key int64, f timetable.Flight) int64

	// newFrontier allocates the admission structure deciding which
	// candidate labels enter the queue. One frontier per search call.
	newFrontier() frontier

	// finalized collapses a queue entry to the granularity at which it
	// is visited at most once.
	finalized(airport string, key int64, clock int) state
}

// frontier records the labels admitted so far per airport and rejects
// candidates that cannot improve on them.
type frontier interface {
	// admit reports whether the label (key, clock) at airport is worth
	// enqueueing, recording it if so.
	admit(airport string, key int64, clock int) bool
}

// earliestObjective minimizes arrival time; the label and the clock
// coincide, so one best label per airport suffices and an airport is
// one state.
type earliestObjective struct{}

func (earliestObjective) startKey(departAfter int) int64 { return int64(departAfter) }

func (earliestObjective) relaxKey(_ int64, f timetable.Flight) int64 { return int64(f.Arrive) }

func (earliestObjective) newFrontier() frontier {
	return &arrivalFrontier{best: make(map[string]int64)}
}

func (earliestObjective) finalized(airport string, _ int64, _ int) state {
	return state{airport: airport}
}

// arrivalFrontier keeps the single best arrival label per airport and
// admits strict improvements only. Ties keep the earlier-seen flight,
// which makes insertion order the deterministic tie-break.
type arrivalFrontier struct {
	best map[string]int64
}

func (fr *arrivalFrontier) admit(airport string, key int64, _ int) bool {
	if cur, ok := fr.best[airport]; ok && key >= cur {
		return false
	}
	fr.best[airport] = key

	return true
}

// fareObjective minimizes cumulative fare for one cabin; a state is a
// full (airport, fare, clock) label.
type fareObjective struct{ cabin timetable.Cabin }

func (fareObjective) startKey(int) int64 { return 0 }

func (o fareObjective) relaxKey(key int64, f timetable.Flight) int64 {
	return key + int64(f.PriceFor(o.cabin))
}

func (fareObjective) newFrontier() frontier {
	return &fareFrontier{labels: make(map[string][]fareLabel)}
}

func (fareObjective) finalized(airport string, key int64, clock int) state {
	return state{airport: airport, key: key, clock: clock}
}

// fareLabel is one admitted (cumulative fare, clock) point at an airport.
type fareLabel struct {
	key   int64
	clock int
}

// fareFrontier keeps a Pareto frontier of (fare, clock) labels per
// airport. A single cheapest label is not enough here: the cheapest way
// into an airport may land too late to catch any onward leg, while a
// costlier, earlier label still can. A candidate is rejected only when
// some admitted label is both cheaper-or-equal and earlier-or-equal —
// such a label can be extended along every leg the candidate could, at
// no greater cost. Admitting a label prunes the ones it dominates.
//
// Any route that revisits an airport arrives there strictly later at no
// lower fare, so it is dominated by the label it grew from; admitted
// labels therefore correspond to cycle-free routes, which bounds the
// frontier and guarantees termination.
type fareFrontier struct {
	labels map[string][]fareLabel
}

func (fr *fareFrontier) admit(airport string, key int64, clock int) bool {
	labels := fr.labels[airport]

	// 1) Dominated by an existing label: nothing to gain.
	for _, l := range labels {
		if l.key <= key && l.clock <= clock {
			return false
		}
	}

	// 2) Drop labels the new one dominates, then record it.
	kept := labels[:0]
	for _, l := range labels {
		if key <= l.key && clock <= l.clock {
			continue
		}
		kept = append(kept, l)
	}
	fr.labels[airport] = append(kept, fareLabel{key: key, clock: clock})

	return true
}

// run validates inputs, executes the label-correcting loop, and
// reconstructs the itinerary once the destination is finalized.
func run(g *timetable.RouteGraph, origin, dest string, obj objective, opts []Option) (*timetable.Itinerary, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints.
	if origin == "" {
		return nil, ErrEmptyOrigin
	}
	if dest == "" {
		return nil, ErrEmptyDest
	}

	// 3) Validate graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate constraints.
	if cfg.DepartAfter < 0 || cfg.DepartAfter >= timetable.MinutesPerDay {
		return nil, fmt.Errorf("%w: %d", ErrBadDeparture, cfg.DepartAfter)
	}
	if cfg.MinLayover < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLayover, cfg.MinLayover)
	}

	// 5) Working state is owned exclusively by this call and discarded
	//    when it returns; nothing is shared across searches.
	r := &runner{
		g:        g,
		obj:      obj,
		options:  cfg,
		origin:   origin,
		dest:     dest,
		frontier: obj.newFrontier(),
		prev:     make(map[state]hop),
		visited:  make(map[state]bool),
	}

	r.init()

	return r.process()
}

// hop records how a state was reached: the flight taken plus the label
// and clock of the state it was taken from. Entries are written once
// per state and never deleted, so reconstruction always walks the
// exact chain that produced the finalized destination label.
type hop struct {
	flight    timetable.Flight
	prevKey   int64
	prevClock int
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *timetable.RouteGraph // read-only route graph
	obj      objective             // metric being minimized
	options  Options               // departure threshold and layover floor
	origin   string                // start airport
	dest     string                // target airport
	frontier frontier              // admitted labels per airport
	prev     map[state]hop         // reached state → flight that reached it
	visited  map[state]bool        // finalized states
	pq       flightPQ              // min-heap of pending visits
}

// init seeds the start airport: its label is the objective's start key
// and its clock is the raw requested departure time, so the first leg
// needs no layover on top of it.
func (r *runner) init() {
	start := r.obj.startKey(r.options.DepartAfter)
	r.frontier.admit(r.origin, start, r.options.DepartAfter)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &queueItem{
		airport: r.origin,
		key:     start,
		clock:   r.options.DepartAfter,
	})
}

// process is the label-correcting loop. Each state is finalized at most
// once; duplicate heap entries (lazy decrease-key leftovers) are
// skipped on pop. Terminates when the destination is finalized or the
// queue empties, whichever comes first. Keys never decrease along the
// queue, so the first pop of the destination carries its optimal label.
func (r *runner) process() (*timetable.Itinerary, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-key entry.
		item := heap.Pop(&r.pq).(*queueItem)

		// 2) Skip entries whose state was already finalized.
		s := r.obj.finalized(item.airport, item.key, item.clock)
		if r.visited[s] {
			continue
		}

		// 3) Finalize.
		r.visited[s] = true

		// 4) Destination finalized: rebuild the leg sequence and stop.
		if item.airport == r.dest {
			return r.reconstruct(item)
		}

		// 5) Relax every outbound flight that is still catchable.
		r.relax(item)
	}

	// Queue exhausted without finalizing the destination.
	return nil, ErrNoItinerary
}

// relax attempts every outbound flight of the popped entry. A flight is
// eligible only if it departs at or after the entry's clock — plus the
// minimum layover everywhere except the start airport, where no prior
// leg exists. Eligible flights whose label the frontier admits update
// the hop chain and enqueue a new entry.
func (r *runner) relax(item *queueItem) {
	// Connection threshold at this airport.
	threshold := item.clock
	if item.airport != r.origin {
		threshold += r.options.MinLayover
	}

	for _, f := range r.g.Outbound(item.airport) {
		// Not catchable: departs before the ground time is over.
		if f.Depart < threshold {
			continue
		}

		// Candidate label via this flight.
		newKey := r.obj.relaxKey(item.key, f)
		if !r.frontier.admit(f.Dest, newKey, f.Arrive) {
			continue
		}

		r.prev[r.obj.finalized(f.Dest, newKey, f.Arrive)] = hop{
			flight:    f,
			prevKey:   item.key,
			prevClock: item.clock,
		}
		heap.Push(&r.pq, &queueItem{
			airport: f.Dest,
			key:     newKey,
			clock:   f.Arrive,
		})
	}
}

// reconstruct walks the hop chain backward from the finalized
// destination state to the start airport, then reverses the collected
// legs into chronological order. Called only once the destination is
// finalized; an empty chain (origin == dest, or a hole in the map)
// degrades to ErrNoItinerary rather than an empty-but-present result.
func (r *runner) reconstruct(item *queueItem) (*timetable.Itinerary, error) {
	var legs []timetable.Flight

	cur := r.obj.finalized(item.airport, item.key, item.clock)
	for cur.airport != r.origin {
		h, ok := r.prev[cur]
		if !ok {
			return nil, ErrNoItinerary
		}
		legs = append(legs, h.flight)
		cur = r.obj.finalized(h.flight.Origin, h.prevKey, h.prevClock)
	}
	if len(legs) == 0 {
		return nil, ErrNoItinerary
	}

	// Reverse into chronological order.
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}

	it, err := timetable.NewItinerary(legs)
	if err != nil {
		// Hop entries link Origin→Dest by construction, so this can
		// only fire on a corrupted map.
		return nil, fmt.Errorf("search: reconstruct: %w", err)
	}

	return it, nil
}

// queueItem is one pending visit: an airport, its tentative label, and
// the clock (arrival time of the producing flight) used for the
// eligibility test once the entry is popped.
type queueItem struct {
	airport string // airport code
	key     int64  // tentative label (arrival time or cumulative fare)
	clock   int    // minutes-of-day clock at this airport
}

// flightPQ is a min-heap of *queueItem ordered by key ascending, with
// equal keys ordered by clock ascending. Under lazy decrease-key an
// improvement pushes a duplicate; outdated entries are detected via the
// visited set when popped.
type flightPQ []*queueItem

// Len returns the number of items in the heap.
func (pq flightPQ) Len() int { return len(pq) }

// Less orders by key, breaking ties on the earlier clock.
func (pq flightPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].clock < pq[j].clock
}

// Swap swaps two elements in the heap.
func (pq flightPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *queueItem.
func (pq *flightPQ) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (pq *flightPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
