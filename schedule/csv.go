package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/katalvlaran/flywise/timetable"
)

// ErrMissingColumn indicates a CSV header lacking one of the required
// named columns.
var ErrMissingColumn = errors.New("schedule: missing required column")

// requiredColumns are the named columns every schedule CSV must carry.
// Extra columns are tolerated and ignored.
var requiredColumns = []string{
	"origin", "dest", "flight_number", "depart", "arrive",
	"economy", "business", "first",
}

// ParseCSV reads the header-row CSV schedule format from r. name labels
// row errors (usually the file path). The header occupies line 1, so
// the first data row reports as line 2.
func ParseCSV(r io.Reader, name string) ([]timetable.Flight, error) {
	// 1) csvutil maps header names onto the csv-tagged record struct.
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("schedule: reading %s header: %w", name, err)
	}

	// 2) Reject a header missing any required column up front, before
	//    decoding would silently zero-fill the absent fields.
	header := make(map[string]bool, len(dec.Header()))
	for _, col := range dec.Header() {
		header[col] = true
	}
	for _, col := range requiredColumns {
		if !header[col] {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrMissingColumn, col)
		}
	}

	// 3) Decode record by record so failures carry their row number.
	var flights []timetable.Flight
	for line := 2; ; line++ {
		var rec record
		if err = dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, rowError(name, line, err)
		}

		f, err := buildFlight(rec)
		if err != nil {
			return nil, rowError(name, line, err)
		}
		flights = append(flights, f)
	}

	return flights, nil
}
