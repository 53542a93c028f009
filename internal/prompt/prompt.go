// Package prompt reads validated user input line by line.
//
// Every reader re-prompts until the input is valid. The only ways out of a
// prompt are valid input, the end of the input stream (io.EOF) or a
// cancelled context.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/willfong/flightdb/internal/config"
	"github.com/willfong/flightdb/internal/ui"
)

// Validation errors
var (
	ErrAirportCode = fmt.Errorf("airport code must be exactly %d letters", config.IATALength)
	ErrFlightID    = errors.New("flight ID must be a whole number")
	ErrDate        = errors.New("date must be a valid DD/MM/YYYY date")
)

const retryMessage = "Try again..."

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	ui  *ui.UI

	// A reader goroutine stays at most one line ahead, so a blocked read can
	// be abandoned when the context is cancelled.
	start sync.Once
	lines chan readResult
	err   error
}

type readResult struct {
	line string
	err  error
}

// New creates a Prompter
func New(in io.Reader, out io.Writer, u *ui.UI) *Prompter {
	if u == nil {
		u = ui.Plain()
	}
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		ui:    u,
		lines: make(chan readResult),
	}
}

// readLoop hands over input lines until the input fails
func (p *Prompter) readLoop() {
	for {
		line, err := p.in.ReadString('\n')
		if err != nil && errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		p.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Line prints label and returns the next input line without its line ending.
// It returns ctx.Err() as soon as ctx is cancelled, even mid-read. Once the
// input fails, every later call returns the same error.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.err != nil {
		return "", p.err
	}
	if label != "" {
		fmt.Fprint(p.out, label)
	}

	p.start.Do(func() { go p.readLoop() })

	select {
	case res := <-p.lines:
		if res.err != nil {
			p.err = res.err
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ask repeats a prompt until parse accepts the answer
func ask[T any](ctx context.Context, p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, p.ui.Warning(retryMessage+" "+err.Error()))
	}
}

// AirportCode asks for an origin IATA code. The result is upper-cased.
func (p *Prompter) AirportCode(ctx context.Context) (string, error) {
	return ask(ctx, p, "Enter origin airport IATA code: ", ParseAirportCode)
}

// FlightID asks for a numeric flight ID
func (p *Prompter) FlightID(ctx context.Context) (int, error) {
	return ask(ctx, p, "Enter flight ID: ", ParseFlightID)
}

// Date asks for a DD/MM/YYYY date
func (p *Prompter) Date(ctx context.Context) (time.Time, error) {
	return ask(ctx, p, "Enter date in DD/MM/YYYY format: ", ParseDate)
}

// Airline asks for an airline name; any text is accepted
func (p *Prompter) Airline(ctx context.Context) (string, error) {
	return p.Line(ctx, "Enter airline name: ")
}

// Choice reads a menu number accepted by valid. No label is printed; the
// caller has already shown the menu.
func (p *Prompter) Choice(ctx context.Context, valid func(int) bool) (int, error) {
	return ask(ctx, p, "", func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || !valid(n) {
			return 0, errors.New("choose one of the listed options")
		}
		return n, nil
	})
}

// ParseAirportCode accepts exactly three ASCII letters
func ParseAirportCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != config.IATALength {
		return "", ErrAirportCode
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return "", ErrAirportCode
		}
	}
	return strings.ToUpper(s), nil
}

// ParseFlightID accepts a base-10 integer
func ParseFlightID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrFlightID
	}
	return n, nil
}

// ParseDate accepts DD/MM/YYYY and rejects impossible dates such as 31/02/2015
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(config.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrDate
	}
	return d, nil
}
