// Package flywise compares flight itineraries between two airports under
// two optimization criteria — earliest arrival and lowest fare per cabin —
// over a static, same-day flight schedule.
//
// 🚀 What is flywise?
//
//	An offline route & fare comparator that brings together:
//		• timetable/ — immutable Flight records, cabin fares, the RouteGraph
//		• search/    — constrained label-correcting shortest-path searches
//		               (earliest-arrival and cheapest-fare-per-cabin) with a
//		               minimum-layover side constraint
//		• schedule/  — whitespace-table and CSV schedule loaders with strict,
//		               row-numbered validation
//		• report/    — the fixed-column comparison table
//		• compare/   — one call that runs all four searches and renders
//
// ✨ Why flywise?
//
//   - Deterministic – pure computation over an immutable schedule, no I/O
//     inside the search, no retries, no hidden state
//   - Strict at the boundary – a single malformed schedule row fails the
//     whole load; unreachable destinations are a result, not an error
//   - Small, composable API – functional options, sentinel errors, and a
//     read-only graph safe for concurrent searches
//
// Quick ASCII example:
//
//	    SFO ──08:00→09:00── DEN ──10:00→11:00── JFK
//
//	compare schedule.txt SFO JFK 07:00 ranks that connection by arrival
//	time and by total fare for each of the three cabins.
//
//	go get github.com/katalvlaran/flywise
package flywise
