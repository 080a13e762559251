// Package report renders the comparison of itineraries found by the
// different search modes into a fixed-column textual table.
//
// The layout is part of the tool's external contract: a route header
// line, the column header, a dash rule of the header's length, and one
// '|'-separated line per search mode. Absent values — a mode with no
// feasible itinerary, or a mode without a cabin — render as the "N/A"
// sentinel rather than dropping columns.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/flywise/timetable"
)

// NotApplicable is the sentinel rendered in place of any value a row
// does not have.
const NotApplicable = "N/A"

// columnHeader is the fixed column set, in order.
const columnHeader = "Mode | Cabin | Dep | Arr | Duration | Stops | Total Price | Note"

// Row is one line of the comparison: a search-mode label, the cabin the
// mode priced (nil for time-based modes), the itinerary it found (nil
// when unreachable), and a free-text note.
type Row struct {
	Mode      string
	Cabin     *timetable.Cabin
	Itinerary *timetable.Itinerary
	Note      string
}

// Render produces the full comparison table for the queried route.
// It is a pure formatting function: no value here is computed beyond
// string assembly and the itinerary's own derived properties.
func Render(origin, dest string, rows []Row) string {
	var b strings.Builder

	// Route header, column header, dash rule.
	fmt.Fprintf(&b, "%s -> %s\n", origin, dest)
	b.WriteString(columnHeader)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(columnHeader)))

	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(renderRow(r))
	}

	return b.String()
}

// renderRow formats a single row, substituting NotApplicable for every
// value the row lacks.
func renderRow(r Row) string {
	cabin := NotApplicable
	if r.Cabin != nil {
		cabin = r.Cabin.String()
	}

	if r.Itinerary == nil {
		return fmt.Sprintf("%s | %s | %s | %s | %s | %s | %s | %s",
			r.Mode, cabin,
			NotApplicable, NotApplicable, NotApplicable, NotApplicable, NotApplicable,
			r.Note)
	}

	// Total price is only meaningful when the row carries a cabin.
	price := NotApplicable
	if r.Cabin != nil {
		price = strconv.Itoa(r.Itinerary.TotalPrice(*r.Cabin))
	}

	return fmt.Sprintf("%s | %s | %s | %s | %s | %d | %s | %s",
		r.Mode, cabin,
		timetable.FormatClock(r.Itinerary.DepartTime()),
		timetable.FormatClock(r.Itinerary.ArriveTime()),
		timetable.FormatDuration(r.Itinerary.Duration()),
		r.Itinerary.Stops(),
		price,
		r.Note)
}
