// Package database provides read-only access to the flight-delay store.
//
// FILE: flights.go
// PURPOSE: Named lookups, one per catalog entry. Each binds exactly one
// parameter set and delegates to Execute.
//
// RELATED FILES:
// - catalog.go: The templates these bind into
// - gateway.go: Execute and error policy
package database

import "context"

// FlightByID returns the flight with the given ID (0 or 1 records)
func (g *Gateway) FlightByID(ctx context.Context, id int) []Record {
	return g.Execute(ctx, QueryFlightByID, Params{"id": id})
}

// FlightsByDate returns every flight scheduled on the given day
func (g *Gateway) FlightsByDate(ctx context.Context, day, month, year int) []Record {
	return g.Execute(ctx, QueryFlightsByDate, Params{"day": day, "month": month, "year": year})
}

// FlightsByAirline returns every flight operated by the airline with this exact name
func (g *Gateway) FlightsByAirline(ctx context.Context, airline string) []Record {
	return g.Execute(ctx, QueryFlightsByAirline, Params{"airline": airline})
}

// FlightsByAirport returns every flight departing from an IATA origin code
func (g *Gateway) FlightsByAirport(ctx context.Context, origin string) []Record {
	return g.Execute(ctx, QueryFlightsByAirport, Params{"origin_airport": origin})
}
