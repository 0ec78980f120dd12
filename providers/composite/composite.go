// Package composite splices the historical archive and the live scraper into
// one provider: seasons before the cutoff year come from the archive, recent
// seasons from the live site, and career requests merge the two.
package composite

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/albertinopadin/baseball-mcp/npb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("providers/composite")

const SourceName = "composite"

// DefaultCutoffYear is the first season served by the live scraper; the
// archive covers everything before it.
const DefaultCutoffYear = 2005

type Provider struct {
	historical npb.Provider
	scraper    npb.Provider
	cutoff     int
}

type Option func(*Provider)

func WithCutoffYear(year int) Option {
	return func(p *Provider) { p.cutoff = year }
}

func New(historical, scraper npb.Provider, opts ...Option) *Provider {
	p := &Provider{
		historical: historical,
		scraper:    scraper,
		cutoff:     DefaultCutoffYear,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string { return SourceName }

// SearchPlayer queries both backends concurrently and concatenates the
// results, archive first. On an id collision the archive entry wins. A single
// backend failing contributes nothing; the call errors only when both fail.
func (p *Provider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	backends := []npb.Provider{p.historical, p.scraper}
	results := make([][]npb.Player, len(backends))
	errs := make([]error, len(backends))

	var wg sync.WaitGroup
	for i, backend := range backends {
		wg.Add(1)
		go func(i int, backend npb.Provider) {
			defer wg.Done()
			results[i], errs[i] = backend.SearchPlayer(ctx, name)
		}(i, backend)
	}
	wg.Wait()

	joined := errors.Join(errs...)
	if errs[0] != nil && errs[1] != nil {
		span.RecordError(joined)
		span.SetStatus(codes.Error, "both backends failed")
		return nil, joined
	}
	if joined != nil {
		slog.WarnContext(ctx, "one search backend failed, continuing with the other",
			"query", name, "error", joined)
	}

	seen := map[string]bool{}
	var out []npb.Player
	for _, players := range results {
		for _, player := range players {
			if seen[player.ID] {
				continue
			}
			seen[player.ID] = true
			out = append(out, player)
		}
	}
	return out, nil
}

// PlayerStats routes a single-season request by the cutoff year. A career
// request starts from the archive and, when the archive reaches close enough
// to the cutoff, splices in the live seasons: the two season lists are
// concatenated, de-duplicated by season keeping the archive row, and the
// career aggregate is recomputed from the union.
func (p *Provider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "PlayerStats")
	defer span.End()
	span.SetAttributes(attribute.String("player_id", playerID))

	if season != nil {
		if *season < p.cutoff {
			return p.historical.PlayerStats(ctx, playerID, season, statsType)
		}
		return p.scraper.PlayerStats(ctx, playerID, season, statsType)
	}

	hist, err := p.historical.PlayerStats(ctx, playerID, nil, statsType)
	if errors.Is(err, npb.ErrNotFound) {
		return p.scraper.PlayerStats(ctx, playerID, nil, statsType)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive lookup failed")
		return nil, err
	}

	latest, ok := latestSeason(hist)
	// the archive is current enough to splice when at most one season is
	// missing before the cutoff
	if !ok || latest < p.cutoff-2 {
		return hist, nil
	}

	live, err := p.scraper.PlayerStats(ctx, playerID, nil, statsType)
	if err != nil {
		if !errors.Is(err, npb.ErrNotFound) {
			slog.WarnContext(ctx, "live seasons unavailable, returning archive data only",
				"player_id", playerID, "error", err)
		}
		return hist, nil
	}
	return mergeCareer(hist, live), nil
}

func latestSeason(stats *npb.PlayerStats) (int, bool) {
	latest, found := 0, false
	for _, s := range stats.Seasons {
		if s.Season != nil && *s.Season > latest {
			latest, found = *s.Season, true
		}
	}
	return latest, found
}

func mergeCareer(hist, live *npb.PlayerStats) *npb.PlayerStats {
	merged := hist.Clone()

	seen := map[int]bool{}
	for _, s := range merged.Seasons {
		if s.Season != nil {
			seen[*s.Season] = true
		}
	}

	added := false
	for _, s := range live.Seasons {
		if s.Season == nil || seen[*s.Season] {
			continue
		}
		seen[*s.Season] = true
		merged.Seasons = append(merged.Seasons, s)
		added = true
	}
	if !added {
		return merged
	}

	sort.SliceStable(merged.Seasons, func(i, j int) bool {
		return *merged.Seasons[i].Season < *merged.Seasons[j].Season
	})
	merged.Source = SourceName
	merged.Career = npb.CareerTotals(merged.Seasons)
	merged.Career.Source = SourceName
	return merged
}

func (p *Provider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	if season != nil && *season < p.cutoff {
		return p.historical.Teams(ctx, season)
	}
	return p.scraper.Teams(ctx, season)
}

func (p *Provider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	if season != nil && *season < p.cutoff {
		return p.historical.TeamRoster(ctx, teamID, season)
	}
	return p.scraper.TeamRoster(ctx, teamID, season)
}

// Standings always come from the live site; the archive does not retain them
// and answers ErrUnsupported.
func (p *Provider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	return p.scraper.Standings(ctx, league, season)
}

// HealthCheck probes both backends concurrently. The composite is healthy as
// long as either backend answers; losing one degrades coverage, not the
// provider.
func (p *Provider) HealthCheck(ctx context.Context) error {
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, backend := range []npb.Provider{p.historical, p.scraper} {
		wg.Add(1)
		go func(i int, backend npb.Provider) {
			defer wg.Done()
			errs[i] = backend.HealthCheck(ctx)
		}(i, backend)
	}
	wg.Wait()

	if errs[0] != nil && errs[1] != nil {
		return errors.Join(errs...)
	}
	return nil
}

var _ npb.Provider = (*Provider)(nil)
