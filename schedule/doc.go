// Package schedule loads flight records from the two accepted external
// encodings: a whitespace-delimited table and a header-row CSV file.
//
// Both loaders are strict by design: the first malformed row fails the
// whole load with an error tagged by source name and row number, so the
// comparator never operates on a partially-read schedule. The
// unreachable-destination case is not the loader's concern — a schedule
// that parses cleanly but connects nothing is still a valid schedule.
//
// Formats:
//
//   - Table (any extension but .csv): one flight per line,
//     ORIGIN DEST FLIGHTNUM HH:MM HH:MM ECONOMY BUSINESS FIRST,
//     separated by arbitrary whitespace. Blank lines and lines starting
//     with '#' are ignored.
//   - CSV (.csv, case-insensitive): a header row with the named columns
//     origin,dest,flight_number,depart,arrive,economy,business,first
//     followed by one flight per record. A missing required column
//     fails immediately, before any record is read.
//
// Every decoded row passes struct validation (required strings,
// non-negative fares) and then timetable.NewFlight, which applies the
// time invariants (same-day clocks, arrival strictly after departure).
package schedule
