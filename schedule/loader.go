package schedule

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/flywise/timetable"
)

// validate holds the package-wide struct validator. Rules live in the
// record tags; the validator itself is stateless and safe to share.
var validate = validator.New()

// record is the wire shape of one flight row, shared by both loaders.
// CSV headers map through the csv tags; the table loader fills it
// positionally. Clock fields stay strings here — ParseClock owns their
// validation and gives better errors than a numeric tag could.
type record struct {
	Origin       string `csv:"origin" validate:"required"`
	Dest         string `csv:"dest" validate:"required"`
	FlightNumber string `csv:"flight_number" validate:"required"`
	Depart       string `csv:"depart" validate:"required"`
	Arrive       string `csv:"arrive" validate:"required"`
	Economy      int    `csv:"economy" validate:"gte=0"`
	Business     int    `csv:"business" validate:"gte=0"`
	First        int    `csv:"first" validate:"gte=0"`
}

// Load reads a schedule file, dispatching on the extension: ".csv"
// (case-insensitive) selects the CSV loader, anything else the
// whitespace table loader. Errors carry the path and, where a specific
// row is at fault, its line number.
func Load(path string) ([]timetable.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return ParseCSV(f, path)
	}

	return ParseTable(f, path)
}

// buildFlight turns one decoded record into a validated Flight.
// Validation order: struct rules (presence, fare signs), then clock
// parsing, then the Flight invariants.
func buildFlight(rec record) (timetable.Flight, error) {
	if err := validate.Struct(rec); err != nil {
		return timetable.Flight{}, err
	}

	depart, err := timetable.ParseClock(rec.Depart)
	if err != nil {
		return timetable.Flight{}, err
	}
	arrive, err := timetable.ParseClock(rec.Arrive)
	if err != nil {
		return timetable.Flight{}, err
	}

	return timetable.NewFlight(rec.Origin, rec.Dest, rec.FlightNumber,
		depart, arrive, rec.Economy, rec.Business, rec.First)
}

// rowError tags a row-level failure with its source name and line number.
func rowError(name string, line int, err error) error {
	return fmt.Errorf("%s:%d: %w", name, line, err)
}
