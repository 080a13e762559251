// Command flywise compares flight itineraries between two airports over
// a static schedule file.
//
// Usage:
//
//	flywise compare <schedule-file> <origin> <dest> <departure-time HH:MM>
//
// The schedule file is the whitespace table format, or CSV when the
// file extension is .csv. The report lists the earliest-arrival
// itinerary and the cheapest itinerary for each cabin, departing no
// earlier than the given time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/flywise/compare"
	"github.com/katalvlaran/flywise/schedule"
	"github.com/katalvlaran/flywise/timetable"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "compare":
		if len(args) != 5 {
			usage()
			os.Exit(2)
		}
		if err := runCompare(args[1], args[2], args[3], args[4]); err != nil {
			fmt.Fprintln(os.Stderr, "flywise:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "flywise: unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}
}

// runCompare loads the schedule, builds the route graph, and prints the
// four-mode comparison for the requested route.
func runCompare(schedulePath, origin, dest, departClock string) error {
	departAfter, err := timetable.ParseClock(departClock)
	if err != nil {
		return err
	}

	flights, err := schedule.Load(schedulePath)
	if err != nil {
		return err
	}

	table, err := compare.Run(timetable.BuildRouteGraph(flights), origin, dest, departAfter)
	if err != nil {
		return err
	}
	fmt.Println(table)

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "FlyWise — Flight Route & Fare Comparator.")
	fmt.Fprintln(os.Stderr, "usage: flywise compare <schedule-file> <origin> <dest> <departure-time HH:MM>")
}
