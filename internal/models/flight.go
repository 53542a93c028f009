package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Columns every flight result must carry to be displayed
const (
	ColID          = "ID"
	ColOrigin      = "ORIGIN_AIRPORT"
	ColDestination = "DESTINATION_AIRPORT"
	ColAirline     = "AIRLINE"
	ColDelay       = "DELAY"
)

// RequiredColumns lists the columns FlightFromRecord reads
var RequiredColumns = []string{ColID, ColOrigin, ColDestination, ColAirline, ColDelay}

// ErrMissingColumn means a result row lacks a required column
var ErrMissingColumn = errors.New("missing column")

// Flight is the display view of one flight result
type Flight struct {
	ID          string
	Origin      string
	Destination string
	Airline     string

	// DelayMinutes is the departure delay; NULL in the store reads as 0
	DelayMinutes int
}

// IsDelayed returns true if the flight left late
func (f Flight) IsDelayed() bool {
	return f.DelayMinutes > 0
}

// FlightFromRecord converts a result row (column name -> value) into a Flight.
// A missing column or an unreadable delay is an error.
func FlightFromRecord(rec map[string]any) (Flight, error) {
	for _, col := range RequiredColumns {
		if _, ok := rec[col]; !ok {
			return Flight{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	delay, err := delayMinutes(rec[ColDelay])
	if err != nil {
		return Flight{}, err
	}

	return Flight{
		ID:           cast.ToString(rec[ColID]),
		Origin:       cast.ToString(rec[ColOrigin]),
		Destination:  cast.ToString(rec[ColDestination]),
		Airline:      cast.ToString(rec[ColAirline]),
		DelayMinutes: delay,
	}, nil
}

// delayMinutes truncates a delay value toward zero. NULL and empty values
// count as no delay.
func delayMinutes(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return 0, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %v: %w", ColDelay, v, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid %s value %v", ColDelay, v)
	}
	return int(f), nil
}
