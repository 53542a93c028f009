package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	// Drivers selected by ResolveURI
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "modernc.org/sqlite"

	"github.com/willfong/flightdb/internal/config"
	"github.com/willfong/flightdb/internal/logging"
)

// Gateway owns the store connection and runs catalog queries against it
type Gateway struct {
	db     *sql.DB
	target Target
	config config.DatabaseConfig
	log    logging.Logger

	metrics *queryMetrics

	closeOnce sync.Once
	closeErr  error
	closed    bool
	mu        sync.Mutex
}

// Open resolves the configured URI, opens the store and verifies it answers.
// Any failure wraps ErrConnection.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logging.Logger) (*Gateway, error) {
	if log == nil {
		log = logging.Nop()
	}

	target, err := ResolveURI(cfg.URI)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database %s: %w", ErrConnection, target.Redacted, err)
	}

	// Apply connection settings
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = config.DBMaxOpenConns
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	g := &Gateway{
		db:      db,
		target:  target,
		config:  cfg,
		log:     log.With("store", target.Redacted),
		metrics: newQueryMetrics(),
	}

	if err := g.connect(ctx); err != nil {
		db.Close()
		return nil, err
	}

	g.log.Debug("connected to store", "driver", target.Driver)
	return g, nil
}

// connect verifies the database connection is working
func (g *Gateway) connect(ctx context.Context) error {
	if g.config.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.ConnectTimeout)
		defer cancel()
	}

	if err := g.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: failed to ping database %s: %w", ErrConnection, g.target.Redacted, err)
	}
	return nil
}

// Close releases the connection. Calling it more than once is safe.
func (g *Gateway) Close() error {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		g.mu.Unlock()

		g.closeErr = g.db.Close()
		g.log.Debug("store connection released")
	})
	return g.closeErr
}

// URI returns the store URI with any password masked
func (g *Gateway) URI() string {
	return g.target.Redacted
}

// Dialect returns the dialect of the connected store
func (g *Gateway) Dialect() Dialect {
	return g.target.Dialect
}

// Query binds params into the template for id, runs it and returns every row.
// Unlike Execute it reports failures, so callers can tell "no rows" from
// "query failed". Every call is counted in the query metrics, including ones
// that never reach the store.
func (g *Gateway) Query(ctx context.Context, id QueryID, params Params) ([]Record, error) {
	start := time.Now()
	records, err := g.query(ctx, id, params)
	g.metrics.record(id, time.Since(start), len(records), err)
	if err != nil {
		return nil, err
	}

	g.log.Debug("query executed", "query", id.String(), "rows", len(records), "duration", time.Since(start))
	return records, nil
}

func (g *Gateway) query(ctx context.Context, id QueryID, params Params) ([]Record, error) {
	g.mu.Lock()
	closed := g.closed
	g.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	tmpl, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	query, args, err := Bind(tmpl.SQL, g.target.Dialect, params)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", id, err)
	}

	if g.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.QueryTimeout)
		defer cancel()
	}

	records, err := g.run(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", id, err)
	}
	return records, nil
}

func (g *Gateway) run(ctx context.Context, query string, args []any) ([]Record, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Execute runs a catalog query and always returns a usable slice. Failures are
// logged and reported as an empty result, so an empty slice means either "no
// match" or "query failed".
func (g *Gateway) Execute(ctx context.Context, id QueryID, params Params) []Record {
	records, err := g.Query(ctx, id, params)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			g.log.Warn("query cancelled", "query", id.String())
		} else {
			g.log.Error("query failed", "query", id.String(), "error", err)
		}
		return []Record{}
	}
	return records
}

// Stats returns connection and query statistics
func (g *Gateway) Stats() (QueryStats, error) {
	stats, err := g.metrics.summarize()
	if err != nil {
		return QueryStats{}, fmt.Errorf("failed to gather query metrics: %w", err)
	}

	dbStats := g.db.Stats()
	stats.OpenConnections = dbStats.OpenConnections
	stats.InUse = dbStats.InUse
	stats.Idle = dbStats.Idle
	return stats, nil
}
