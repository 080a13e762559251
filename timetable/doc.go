// Package timetable defines the flight-schedule data model: immutable
// Flight records with per-cabin fares, the closed Cabin enumeration, the
// Itinerary value, and the RouteGraph adjacency structure that the search
// algorithms traverse.
//
// Overview:
//
//   - Flight is an immutable description of one scheduled leg. All times
//     are integer minutes since local midnight (0 ≤ t < 1440) and every
//     flight arrives strictly after it departs; overnight legs are not
//     representable. NewFlight validates all of this once, so the rest of
//     the system never re-checks it.
//   - Cabin is a closed enumeration of exactly three service classes.
//     External cabin strings enter through ParseCabin, which rejects
//     anything unknown with ErrUnknownCabin. Flight.PriceFor is a total
//     function over the three variants and panics on any other value —
//     reaching it with a bad Cabin is a programming defect, not input.
//   - Itinerary is a non-empty chain of flights where each leg departs
//     from the previous leg's destination. Absence of an itinerary is a
//     nil pointer, never an empty sequence.
//   - RouteGraph maps an origin airport code to its outbound flights in
//     insertion order. It is built once and read-only thereafter, so any
//     number of searches may traverse it concurrently without locking.
//
// Airport codes are matched exactly (case-sensitive, no normalization);
// callers must supply consistent casing.
//
// Errors (sentinel):
//
//   - ErrEmptyAirport      – flight origin or destination code is empty.
//   - ErrEmptyFlightNumber – flight number is empty.
//   - ErrBadClock          – a clock value is outside [0, 1440) or a
//     string is not zero-padded HH:MM.
//   - ErrNonPositiveLeg    – arrival is not strictly after departure.
//   - ErrNegativeFare      – a cabin fare is negative.
//   - ErrUnknownCabin      – a cabin string is none of economy/business/first.
//   - ErrEmptyItinerary    – an itinerary was built from zero flights.
//   - ErrBrokenItinerary   – consecutive legs do not connect.
package timetable
