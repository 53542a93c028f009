package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/willfong/flightdb/internal/database"
	"github.com/willfong/flightdb/internal/prompt"
)

// lookup runs one gateway call with already-validated input
type lookup func(ctx context.Context, gw *database.Gateway) []database.Record

var idCmd = &cobra.Command{
	Use:     "id <flight-id>",
	Short:   "Show flight by ID",
	Example: `  flightdb id 119`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := prompt.ParseFlightID(args[0])
		if err != nil {
			return err
		}
		return runLookup(cmd, func(ctx context.Context, gw *database.Gateway) []database.Record {
			return gw.FlightByID(ctx, id)
		})
	},
}

var dateCmd = &cobra.Command{
	Use:     "date <DD/MM/YYYY>",
	Short:   "Show flights by date",
	Example: `  flightdb date 14/01/2015`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := prompt.ParseDate(args[0])
		if err != nil {
			return err
		}
		return runLookup(cmd, func(ctx context.Context, gw *database.Gateway) []database.Record {
			return gw.FlightsByDate(ctx, d.Day(), int(d.Month()), d.Year())
		})
	},
}

var airlineCmd = &cobra.Command{
	Use:   "airline <name>",
	Short: "Delayed flights by airline",
	Long: `List flights operated by an airline. The name must match the
airlines table exactly, e.g. "Delta Air Lines Inc.".`,
	Example: `  flightdb airline "American Airlines Inc."`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return runLookup(cmd, func(ctx context.Context, gw *database.Gateway) []database.Record {
			return gw.FlightsByAirline(ctx, name)
		})
	},
}

var airportCmd = &cobra.Command{
	Use:     "airport <IATA>",
	Short:   "Delayed flights by origin airport",
	Example: `  flightdb airport SEA
  flightdb airport lax`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := prompt.ParseAirportCode(args[0])
		if err != nil {
			return err
		}
		return runLookup(cmd, func(ctx context.Context, gw *database.Gateway) []database.Record {
			return gw.FlightsByAirport(ctx, code)
		})
	},
}

func init() {
	rootCmd.AddCommand(idCmd, dateCmd, airlineCmd, airportCmd)
}

func runLookup(cmd *cobra.Command, fn lookup) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records := fn(s.ctx, s.gw)
	if err := s.ui.PrintResults(cmd.OutOrStdout(), records); err != nil {
		return errReported
	}
	if s.ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, s.ui.Warning("Interrupted"))
		return errReported
	}
	return nil
}
