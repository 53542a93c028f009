// Package database provides read-only access to the flight-delay store.
//
// FILE: catalog.go
// PURPOSE: The fixed set of parameterized query templates and the sqlx-backed
// binder that turns their named placeholders into driver-specific positional ones.
//
// KEY TYPES:
// - QueryID: Names one catalog entry
// - Template: SQL text plus the parameter names it expects
// - Params: Named parameter values for one execution
//
// RELATED FILES:
// - gateway.go: Executes a template against the store
// - flights.go: One method per catalog entry
package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// QueryID names a catalog entry
type QueryID int

const (
	QueryFlightByID QueryID = iota + 1
	QueryFlightsByDate
	QueryFlightsByAirport
	QueryFlightsByAirline
)

// String returns the metric/log name of the query
func (q QueryID) String() string {
	switch q {
	case QueryFlightByID:
		return "flight_by_id"
	case QueryFlightsByDate:
		return "flights_by_date"
	case QueryFlightsByAirport:
		return "flights_by_airport"
	case QueryFlightsByAirline:
		return "flights_by_airline"
	default:
		return "query_" + strconv.Itoa(int(q))
	}
}

// Params holds named parameter values, keyed without the leading colon
type Params map[string]any

// Template is a static SQL statement with :name placeholders
type Template struct {
	ID     QueryID
	SQL    string
	Params []string
}

// Every projection carries ID, FLIGHT_ID, ORIGIN_AIRPORT, DESTINATION_AIRPORT,
// AIRLINE and DELAY so the display layer can format any result the same way.
const (
	queryFlightByID = `
		SELECT flights.ID AS ID, flights.ID AS FLIGHT_ID,
			flights.YEAR AS YEAR, flights.MONTH AS MONTH, flights.DAY AS DAY,
			flights.ORIGIN_AIRPORT AS ORIGIN_AIRPORT,
			flights.DESTINATION_AIRPORT AS DESTINATION_AIRPORT,
			airlines.AIRLINE AS AIRLINE,
			flights.DEPARTURE_DELAY AS DELAY
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE flights.ID = :id`

	// No airlines join: AIRLINE is the carrier code stored on the flight
	queryFlightsByDate = `
		SELECT flights.ID AS ID, flights.ID AS FLIGHT_ID,
			flights.YEAR AS YEAR, flights.MONTH AS MONTH, flights.DAY AS DAY,
			flights.ORIGIN_AIRPORT AS ORIGIN_AIRPORT,
			flights.DESTINATION_AIRPORT AS DESTINATION_AIRPORT,
			flights.AIRLINE AS AIRLINE,
			flights.DEPARTURE_DELAY AS DELAY
		FROM flights
		WHERE flights.DAY = :day
			AND flights.MONTH = :month
			AND flights.YEAR = :year`

	queryFlightsByAirport = `
		SELECT flights.ID AS ID, flights.ID AS FLIGHT_ID,
			flights.YEAR AS YEAR, flights.MONTH AS MONTH, flights.DAY AS DAY,
			flights.ORIGIN_AIRPORT AS ORIGIN_AIRPORT,
			flights.DESTINATION_AIRPORT AS DESTINATION_AIRPORT,
			airlines.AIRLINE AS AIRLINE,
			flights.DEPARTURE_DELAY AS DELAY
		FROM flights
		JOIN airlines ON flights.AIRLINE = airlines.ID
		WHERE flights.ORIGIN_AIRPORT = :origin_airport`

	queryFlightsByAirline = `
		SELECT flights.ID AS ID, flights.ID AS FLIGHT_ID,
			airlines.ID AS AIRLINE_ID,
			flights.YEAR AS YEAR, flights.MONTH AS MONTH, flights.DAY AS DAY,
			flights.ORIGIN_AIRPORT AS ORIGIN_AIRPORT,
			flights.DESTINATION_AIRPORT AS DESTINATION_AIRPORT,
			airlines.AIRLINE AS AIRLINE,
			flights.DEPARTURE_DELAY AS DELAY
		FROM flights
		JOIN airlines ON airlines.ID = flights.AIRLINE
		WHERE airlines.AIRLINE = :airline`
)

// Lookup returns the template for a query
func Lookup(id QueryID) (Template, error) {
	switch id {
	case QueryFlightByID:
		return Template{ID: id, SQL: queryFlightByID, Params: []string{"id"}}, nil
	case QueryFlightsByDate:
		return Template{ID: id, SQL: queryFlightsByDate, Params: []string{"day", "month", "year"}}, nil
	case QueryFlightsByAirport:
		return Template{ID: id, SQL: queryFlightsByAirport, Params: []string{"origin_airport"}}, nil
	case QueryFlightsByAirline:
		return Template{ID: id, SQL: queryFlightsByAirline, Params: []string{"airline"}}, nil
	default:
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownQuery, id)
	}
}

// Catalog lists every query in the catalog
func Catalog() []QueryID {
	return []QueryID{QueryFlightByID, QueryFlightsByDate, QueryFlightsByAirport, QueryFlightsByAirline}
}

// Bind rewrites :name placeholders in query into the positional form the
// dialect's driver understands and returns the matching argument list.
// A literal colon is written as "::".
func Bind(query string, dialect Dialect, params Params) (string, []any, error) {
	bound, args, err := sqlx.Named(query, map[string]any(params))
	if err != nil {
		if strings.HasPrefix(err.Error(), "could not find name") {
			return "", nil, fmt.Errorf("%w: %w", ErrMissingParam, err)
		}
		return "", nil, fmt.Errorf("failed to bind named parameters: %w", err)
	}
	return sqlx.Rebind(bindType(dialect), bound), args, nil
}

func bindType(dialect Dialect) int {
	if dialect == DialectPostgres {
		return sqlx.DOLLAR
	}
	return sqlx.QUESTION
}
