package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/willfong/flightdb/internal/config"
)

type fixtureFlight struct {
	id          int
	year        int
	month       int
	day         int
	airline     string
	origin      string
	destination string
	delay       any
}

var fixtureAirlines = [][2]string{
	{"AS", "Alaska Airlines Inc."},
	{"AA", "American Airlines Inc."},
	{"DL", "Delta Air Lines Inc."},
}

var fixtureFlights = []fixtureFlight{
	{1, 2015, 1, 14, "AS", "SEA", "ANC", -11.0},
	{2, 2015, 1, 14, "AA", "LAX", "PBI", 45.0},
	{3, 2015, 1, 14, "DL", "SEA", "MSP", nil},
	{119, 2015, 1, 1, "AA", "SFO", "MIA", nil},
	{120, 2015, 1, 15, "AS", "SEA", "LAX", 12.0},
}

// writeFixtureDB creates a sqlite store in a temp dir and returns its path
func writeFixtureDB(t *testing.T, withAirlines bool) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flights.sqlite3")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts, err := SchemaStatements(DialectSQLite)
	require.NoError(t, err)
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	for _, a := range fixtureAirlines {
		_, err := db.Exec("INSERT INTO airlines (ID, AIRLINE) VALUES (?, ?)", a[0], a[1])
		require.NoError(t, err)
	}
	for _, f := range fixtureFlights {
		_, err := db.Exec(`INSERT INTO flights
			(ID, YEAR, MONTH, DAY, AIRLINE, ORIGIN_AIRPORT, DESTINATION_AIRPORT, DEPARTURE_DELAY)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.id, f.year, f.month, f.day, f.airline, f.origin, f.destination, f.delay)
		require.NoError(t, err)
	}

	if !withAirlines {
		_, err := db.Exec("DROP TABLE airlines")
		require.NoError(t, err)
	}

	return path
}

func sqliteURI(path string) string {
	// absolute path -> sqlite:////abs/path
	return "sqlite:///" + path
}

// WithGateway opens a gateway on a fresh fixture store and closes it afterwards
func WithGateway(t *testing.T, action func(g *Gateway)) {
	t.Helper()

	cfg := config.DefaultConfig().Database
	cfg.URI = sqliteURI(writeFixtureDB(t, true))

	g, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer g.Close()

	action(g)
}

func ids(records []Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r["ID"].(int64))
	}
	return out
}
