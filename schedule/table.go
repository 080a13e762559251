package schedule

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flywise/timetable"
)

// ErrFieldCount indicates a table line with other than the eight
// expected fields.
var ErrFieldCount = errors.New("schedule: expected 8 whitespace-separated fields")

// tableFields is the positional field count of one table line:
// ORIGIN DEST FLIGHTNUM HH:MM HH:MM ECONOMY BUSINESS FIRST.
const tableFields = 8

// ParseTable reads the whitespace-delimited schedule format from r.
// name labels row errors (usually the file path). Blank lines and
// '#'-comment lines are skipped; line numbers count every physical
// line, skipped or not, so errors point into the actual file.
func ParseTable(r io.Reader, name string) ([]timetable.Flight, error) {
	var flights []timetable.Flight

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++

		// Skip blanks and comments before splitting.
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != tableFields {
			return nil, rowError(name, line, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields)))
		}

		rec, err := tableRecord(fields)
		if err != nil {
			return nil, rowError(name, line, err)
		}

		f, err := buildFlight(rec)
		if err != nil {
			return nil, rowError(name, line, err)
		}
		flights = append(flights, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schedule: reading %s: %w", name, err)
	}

	return flights, nil
}

// tableRecord maps the eight positional fields onto the shared record
// shape. Fares must be plain base-10 integers here; their sign is
// checked later by the struct validator.
func tableRecord(fields []string) (record, error) {
	economy, err := strconv.Atoi(fields[5])
	if err != nil {
		return record{}, fmt.Errorf("schedule: economy fare: %w", err)
	}
	business, err := strconv.Atoi(fields[6])
	if err != nil {
		return record{}, fmt.Errorf("schedule: business fare: %w", err)
	}
	first, err := strconv.Atoi(fields[7])
	if err != nil {
		return record{}, fmt.Errorf("schedule: first fare: %w", err)
	}

	return record{
		Origin:       fields[0],
		Dest:         fields[1],
		FlightNumber: fields[2],
		Depart:       fields[3],
		Arrive:       fields[4],
		Economy:      economy,
		Business:     business,
		First:        first,
	}, nil
}
