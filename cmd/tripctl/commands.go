package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

func rootCmd(a *app) *cobra.Command {
	var (
		driver     string
		sqlitePath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "tripctl",
		Short: "Inspect and edit trip plans",
		Long: `tripctl reads and writes the same trip collection as the API server.

Examples:
  tripctl list                                   # All trips, current one starred
  tripctl create --title "Da Lat" --start 2026-03-10 --end 2026-03-12
  tripctl costs <trip-id>                        # Cost breakdown
  tripctl share <trip-id>                        # Print a share link
  tripctl open <token>                           # Read a shared trip
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(a.out)

	cmd.PersistentFlags().StringVar(&driver, "driver", "", "Storage driver: sqlite, postgres or memory (default from STORAGE_DRIVER)")
	cmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file (default from SQLITE_PATH)")
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Output JSON instead of text")

	withTrips := func(cmd *cobra.Command, fn func(svc *service.TripService) error) error {
		svc, closeStore, err := a.open(cmd.Context(), driver, sqlitePath)
		if err != nil {
			return err
		}
		defer closeStore()
		return fn(svc)
	}

	cmd.AddCommand(
		listCmd(a, withTrips, &asJSON),
		showCmd(a, withTrips, &asJSON),
		createCmd(a, withTrips, &asJSON),
		costsCmd(a, withTrips, &asJSON),
		shareCmd(a, withTrips),
		openCmd(a, &asJSON),
	)
	return cmd
}

type tripsFunc func(cmd *cobra.Command, fn func(svc *service.TripService) error) error

func listCmd(a *app, withTrips tripsFunc, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withTrips(cmd, func(svc *service.TripService) error {
				trips := svc.ListTrips()
				if *asJSON {
					return writeJSON(a.out, trips)
				}
				current := ""
				if t, ok := svc.CurrentTrip(); ok {
					current = t.ID
				}
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "\tID\tTITLE\tDATES\tDAYS\tACTIVITIES")
				for _, t := range trips {
					mark := ""
					if t.ID == current {
						mark = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\t%d\t%d\n",
						mark, t.ID, t.Title, a.format.Date(t.StartDate), a.format.Date(t.EndDate), len(t.Days), t.ActivityCount())
				}
				return tw.Flush()
			})
		},
	}
}

func showCmd(a *app, withTrips tripsFunc, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Print a trip's itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTrips(cmd, func(svc *service.TripService) error {
				trip, err := svc.GetTrip(args[0])
				if err != nil {
					return err
				}
				if *asJSON {
					return writeJSON(a.out, trip)
				}
				return a.printItinerary(trip)
			})
		},
	}
}

func createCmd(a *app, withTrips tripsFunc, asJSON *bool) *cobra.Command {
	var in service.NewTrip
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a trip and make it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withTrips(cmd, func(svc *service.TripService) error {
				trip, err := svc.CreateTrip(cmd.Context(), in)
				if err != nil {
					return err
				}
				if *asJSON {
					return writeJSON(a.out, trip)
				}
				fmt.Fprintf(a.out, "created %s (%d days)\n", trip.ID, len(trip.Days))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "Trip title")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "Last day, YYYY-MM-DD")
	cmd.Flags().IntVar(&in.NumberOfPeople, "people", 0, "Number of travellers (default 2)")
	cmd.Flags().StringVar(&in.Currency, "currency", "", "ISO 4217 currency code (default VND)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func costsCmd(a *app, withTrips tripsFunc, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "costs <trip-id>",
		Short: "Print a trip's cost breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTrips(cmd, func(svc *service.TripService) error {
				trip, err := svc.GetTrip(args[0])
				if err != nil {
					return err
				}
				costs := service.CostBreakdown(trip)
				if *asJSON {
					return writeJSON(a.out, costs)
				}
				return a.printCosts(trip, costs)
			})
		},
	}
}

func shareCmd(a *app, withTrips tripsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "share <trip-id>",
		Short: "Print a read-only share link for a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTrips(cmd, func(svc *service.TripService) error {
				trip, err := svc.GetTrip(args[0])
				if err != nil {
					return err
				}
				url, err := a.codec.URL(trip)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, url)
				return nil
			})
		},
	}
}

var errBadToken = errors.New("share link is invalid or corrupted")

func openCmd(a *app, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "open <token>",
		Short: "Read a shared trip from its token",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			trip, ok := a.codec.Decode(args[0])
			if !ok {
				return errBadToken
			}
			if *asJSON {
				return writeJSON(a.out, trip)
			}
			if err := a.printItinerary(trip); err != nil {
				return err
			}
			return a.printCosts(trip, service.CostBreakdown(trip))
		},
	}
}

// printItinerary writes one block per day with its activities in order.
func (a *app) printItinerary(trip domain.Trip) error {
	fmt.Fprintf(a.out, "%s\n%s - %s, %d people\n", trip.Title, a.format.Date(trip.StartDate), a.format.Date(trip.EndDate), trip.NumberOfPeople)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, d := range trip.Days {
		fmt.Fprintf(tw, "\nDay %d\t%s\n", i+1, a.format.Date(d.Date))
		for _, act := range d.Activities {
			cost := ""
			if act.CostEstimate != nil {
				cost = a.format.Currency(*act.CostEstimate, trip.Currency)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", timeRange(act), act.Title, act.Category, cost)
		}
	}
	return tw.Flush()
}

func (a *app) printCosts(trip domain.Trip, costs domain.CostBreakdown) error {
	money := func(v float64) string { return a.format.Currency(v, trip.Currency) }
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Total\t%s\t\n", money(costs.Total))
	fmt.Fprintf(tw, "Per person (%d)\t%s\t\n", trip.NumberOfPeople, money(costs.PerPerson))
	for i, d := range costs.ByDay {
		fmt.Fprintf(tw, "Day %d\t%s\t\n", i+1, money(d.Total))
	}
	for _, c := range costs.ByCategory {
		fmt.Fprintf(tw, "%s\t%s\t\n", c.Category, money(c.Total))
	}
	return tw.Flush()
}

func timeRange(act domain.Activity) string {
	switch {
	case act.TimeStart != "" && act.TimeEnd != "":
		return act.TimeStart + "-" + act.TimeEnd
	default:
		return act.TimeStart
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
