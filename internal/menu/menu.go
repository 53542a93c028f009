// Package menu implements the interactive flight lookup loop.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/willfong/flightdb/internal/database"
	"github.com/willfong/flightdb/internal/prompt"
	"github.com/willfong/flightdb/internal/ui"
)

// Store is the set of lookups the menu can run
type Store interface {
	FlightByID(ctx context.Context, id int) []database.Record
	FlightsByDate(ctx context.Context, day, month, year int) []database.Record
	FlightsByAirline(ctx context.Context, airline string) []database.Record
	FlightsByAirport(ctx context.Context, origin string) []database.Record
}

// Operation is a menu entry
type Operation int

const (
	OpFlightByID Operation = iota + 1
	OpFlightsByDate
	OpFlightsByAirline
	OpFlightsByAirport
	OpExit
)

// Operations lists menu entries in display order
func Operations() []Operation {
	return []Operation{OpFlightByID, OpFlightsByDate, OpFlightsByAirline, OpFlightsByAirport, OpExit}
}

// Label returns the menu text for an operation
func (o Operation) Label() string {
	switch o {
	case OpFlightByID:
		return "Show flight by ID"
	case OpFlightsByDate:
		return "Show flights by date"
	case OpFlightsByAirline:
		return "Delayed flights by airline"
	case OpFlightsByAirport:
		return "Delayed flights by origin airport"
	case OpExit:
		return "Exit"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Lookup maps a menu number to its operation
func Lookup(n int) (Operation, bool) {
	op := Operation(n)
	return op, op >= OpFlightByID && op <= OpExit
}

// Handler runs one lookup: it prompts for the operation's input and returns
// the matching records.
type Handler func(ctx context.Context, p *prompt.Prompter, store Store) ([]database.Record, error)

// HandlerFor returns the handler of a lookup operation. Exit has none.
func HandlerFor(op Operation) (Handler, bool) {
	switch op {
	case OpFlightByID:
		return flightByID, true
	case OpFlightsByDate:
		return flightsByDate, true
	case OpFlightsByAirline:
		return flightsByAirline, true
	case OpFlightsByAirport:
		return flightsByAirport, true
	default:
		return nil, false
	}
}

func flightByID(ctx context.Context, p *prompt.Prompter, store Store) ([]database.Record, error) {
	id, err := p.FlightID(ctx)
	if err != nil {
		return nil, err
	}
	return store.FlightByID(ctx, id), nil
}

func flightsByDate(ctx context.Context, p *prompt.Prompter, store Store) ([]database.Record, error) {
	date, err := p.Date(ctx)
	if err != nil {
		return nil, err
	}
	return store.FlightsByDate(ctx, date.Day(), int(date.Month()), date.Year()), nil
}

func flightsByAirline(ctx context.Context, p *prompt.Prompter, store Store) ([]database.Record, error) {
	airline, err := p.Airline(ctx)
	if err != nil {
		return nil, err
	}
	return store.FlightsByAirline(ctx, airline), nil
}

func flightsByAirport(ctx context.Context, p *prompt.Prompter, store Store) ([]database.Record, error) {
	code, err := p.AirportCode(ctx)
	if err != nil {
		return nil, err
	}
	return store.FlightsByAirport(ctx, code), nil
}

// Menu is the interactive session
type Menu struct {
	store  Store
	prompt *prompt.Prompter
	out    io.Writer
	ui     *ui.UI
}

// New creates a menu reading from in and writing to out
func New(store Store, in io.Reader, out io.Writer, u *ui.UI) *Menu {
	if u == nil {
		u = ui.Plain()
	}
	return &Menu{
		store:  store,
		prompt: prompt.New(in, out, u),
		out:    out,
		ui:     u,
	}
}

// Show prints the menu
func (m *Menu) Show() {
	fmt.Fprintln(m.out, m.ui.Bold("Menu:"))
	for _, op := range Operations() {
		fmt.Fprintln(m.out, m.ui.MenuItem(int(op), op.Label()))
	}
}

// Run loops until the user picks Exit, the input ends or ctx is cancelled.
// Reaching the end of input is a normal exit. Cancelling ctx interrupts a
// pending prompt and Run returns ctx.Err().
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.Show()
		n, err := m.prompt.Choice(ctx, func(n int) bool {
			_, ok := Lookup(n)
			return ok
		})
		if err != nil {
			return endOfInput(err)
		}

		op, _ := Lookup(n)
		handler, ok := HandlerFor(op)
		if !ok {
			return nil
		}

		records, err := handler(ctx, m.prompt, m.store)
		if err != nil {
			return endOfInput(err)
		}

		// A malformed row has already been reported; keep the session going
		_ = m.ui.PrintResults(m.out, records)
		fmt.Fprintln(m.out)
	}
}

// Run starts an interactive session against store
func Run(ctx context.Context, store Store, in io.Reader, out io.Writer, u *ui.UI) error {
	return New(store, in, out, u).Run(ctx)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
