package ui

import (
	"fmt"
	"io"

	"github.com/willfong/flightdb/internal/database"
	"github.com/willfong/flightdb/internal/models"
)

// FlightLine renders one flight as "<id>. <origin> -> <dest> by <airline>",
// adding ", Delay: <n> Minutes" when the flight left late.
func (u *UI) FlightLine(f models.Flight) string {
	if !u.shouldStyle() {
		line := fmt.Sprintf("%s. %s %s %s by %s", f.ID, f.Origin, SymbolArrow, f.Destination, f.Airline)
		if f.IsDelayed() {
			line += fmt.Sprintf(", Delay: %d Minutes", f.DelayMinutes)
		}
		return line
	}

	line := fmt.Sprintf("%s. %s %s %s by %s",
		f.ID,
		StyleAirport.Render(f.Origin),
		StyleMuted.Render(SymbolArrow),
		StyleAirport.Render(f.Destination),
		f.Airline,
	)
	if f.IsDelayed() {
		line += StyleDelay.Render(fmt.Sprintf(", Delay: %d Minutes", f.DelayMinutes))
	}
	return line
}

// PrintResults writes a result count followed by one line per record.
// The first record that cannot be displayed stops the batch: an error line
// is written, the remaining records are skipped and the error is returned.
func (u *UI) PrintResults(w io.Writer, records []database.Record) error {
	fmt.Fprintf(w, "Got %d results.\n", len(records))

	for _, rec := range records {
		flight, err := models.FlightFromRecord(rec)
		if err != nil {
			fmt.Fprintln(w, u.Error("Error showing results: "+err.Error()))
			return err
		}
		fmt.Fprintln(w, u.FlightLine(flight))
	}
	return nil
}
