package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/albertinopadin/baseball-mcp/aggregator"
	"github.com/albertinopadin/baseball-mcp/lib/configutil"
	"github.com/albertinopadin/baseball-mcp/lib/kvcache"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/albertinopadin/baseball-mcp/providers/baseballref"
	"github.com/albertinopadin/baseball-mcp/providers/cached"
	"github.com/albertinopadin/baseball-mcp/providers/composite"
	"github.com/albertinopadin/baseball-mcp/providers/historical"
	"github.com/albertinopadin/baseball-mcp/providers/npbofficial"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "npb-cli",
	Short: "npb-cli queries NPB player data across the archive, the official site and Baseball-Reference.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

type Config struct {
	HistoricalDB  string `json:"historical_db"`
	CacheDir      string `json:"cache_dir"`
	CacheTTLHours int    `json:"cache_ttl_hours"`
	CutoffYear    int    `json:"cutoff_year"`
	NPBBaseURL    string `json:"npb_base_url"`
	BRefBaseURL   string `json:"bref_base_url"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("npb.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fatal("failed to read npb.json5", err)
	}
	if cfg.HistoricalDB == "" {
		cfg.HistoricalDB = "npb_history.db"
	}
	if cfg.CacheTTLHours <= 0 {
		cfg.CacheTTLHours = 6
	}
	return cfg
}

// buildAggregator wires the full provider stack from config: archive +
// official-site scraper spliced by the composite, Baseball-Reference for
// advanced metrics, and an optional response cache around the outward-facing
// providers.
func buildAggregator() (*aggregator.Aggregator, func()) {
	cfg := loadConfig()

	database, err := historical.Open(cfg.HistoricalDB)
	if err != nil {
		fatal("failed to open historical db", err)
	}
	hist := historical.New(database)

	scraper, err := npbofficial.New(cfg.NPBBaseURL)
	if err != nil {
		fatal("failed to build official site client", err)
	}
	bref, err := baseballref.New(cfg.BRefBaseURL)
	if err != nil {
		fatal("failed to build baseball-reference client", err)
	}

	var opts []composite.Option
	if cfg.CutoffYear > 0 {
		opts = append(opts, composite.WithCutoffYear(cfg.CutoffYear))
	}

	var comp npb.Provider = composite.New(hist, scraper, opts...)
	var reference npb.Provider = bref
	cleanup := func() { database.Close() }

	if cfg.CacheDir != "" {
		cache, err := kvcache.Open(cfg.CacheDir, time.Duration(cfg.CacheTTLHours)*time.Hour)
		if err != nil {
			fatal("failed to open cache", err)
		}
		comp = cached.New(comp, cache)
		reference = cached.New(reference, cache)
		cleanup = func() {
			cache.Close()
			database.Close()
		}
	}

	agg, err := aggregator.New(map[string]npb.Provider{
		historical.SourceName:  hist,
		npbofficial.SourceName: scraper,
		baseballref.SourceName: bref,
		composite.SourceName:   comp,
	}, aggregator.Priorities{
		Default:   []string{composite.SourceName, baseballref.SourceName},
		Teams:     []string{composite.SourceName},
		Roster:    []string{composite.SourceName},
		Standings: []string{composite.SourceName},
	})
	if err != nil {
		fatal("failed to build aggregator", err)
	}
	return agg, cleanup
}

// seasonArg converts the --season flag to the nullable form the providers
// take; 0 means "not specified".
func seasonArg(season int) *int {
	if season == 0 {
		return nil
	}
	return &season
}
