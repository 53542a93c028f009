package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willfong/flightdb/internal/config"
	"github.com/willfong/flightdb/internal/database"
	"github.com/willfong/flightdb/internal/logging"
	"github.com/willfong/flightdb/internal/ui"
)

// session is everything a lookup command needs: an open gateway, a logger,
// the console and a context cancelled on SIGINT/SIGTERM.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg *config.Config
	log logging.Logger
	ui  *ui.UI
	gw  *database.Gateway
}

// loadConfig merges defaults, flightdb.yaml, the environment and flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindFlags lets explicitly set flags win over env and config file
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"database.uri": "db",
		"no_color":     "no-color",
		"stats":        "stats",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// openSession loads config and connects to the store. Any failure has
// already been printed when it returns.
func openSession(cmd *cobra.Command) (*session, error) {
	u := newUI()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		return nil, errReported
	}
	if cfg.NoColor {
		u.SetNoColor(true)
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		return nil, errReported
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)

	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	gw, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		spin.Error("connection failed")
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		cancel()
		_ = log.Sync()
		return nil, errReported
	}
	spin.Success("connected!")

	return &session{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		log:    log,
		ui:     u,
		gw:     gw,
	}, nil
}

// Close prints the summary when asked for and releases the store
func (s *session) Close() {
	if s.cfg.Stats {
		s.printStats()
	}
	if err := s.gw.Close(); err != nil {
		s.log.Warn("failed to close store", "error", err)
	}
	s.cancel()
	_ = s.log.Sync()
}

func (s *session) printStats() {
	stats, err := s.gw.Stats()
	if err != nil {
		s.log.Warn("failed to collect stats", "error", err)
		return
	}

	fmt.Fprintln(os.Stderr, s.ui.SummaryBox("Query Summary", []ui.KV{
		{Key: "Store", Value: s.gw.URI()},
		{Key: "Queries", Value: fmt.Sprintf("%d", stats.TotalQueries)},
		{Key: "Failed", Value: fmt.Sprintf("%d", stats.FailedQueries)},
		{Key: "Empty", Value: fmt.Sprintf("%d", stats.EmptyResults)},
		{Key: "Rows", Value: fmt.Sprintf("%d", stats.RowsReturned)},
		{Key: "Avg Latency", Value: stats.AvgLatency.Round(time.Microsecond).String()},
	}))
	fmt.Fprintln(os.Stderr, s.ui.Gauge("Succeeded", stats.SuccessRate()))
}
