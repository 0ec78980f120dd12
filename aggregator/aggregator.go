// Package aggregator federates an arbitrary set of named providers behind
// per-operation priority orders. It is the layer callers talk to: source
// pinning, fan-out search, stats fallback with advanced-metric merging, and
// the disambiguation workflow all live here.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/albertinopadin/baseball-mcp/npb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("aggregator")

// Priorities lists provider names in the order each operation should try
// them. An empty list falls back to Default.
type Priorities struct {
	Default   []string
	Search    []string
	Stats     []string
	Teams     []string
	Roster    []string
	Standings []string
}

func (p Priorities) forOp(op []string) []string {
	if len(op) > 0 {
		return op
	}
	return p.Default
}

type Aggregator struct {
	providers  map[string]npb.Provider
	priorities Priorities
}

// New builds an aggregator over the given named providers. Every name in the
// priority lists must refer to a configured provider.
func New(providers map[string]npb.Provider, priorities Priorities) (*Aggregator, error) {
	for _, list := range [][]string{
		priorities.Default, priorities.Search, priorities.Stats,
		priorities.Teams, priorities.Roster, priorities.Standings,
	} {
		for _, name := range list {
			if _, ok := providers[name]; !ok {
				return nil, fmt.Errorf("priority list references unknown provider %q", name)
			}
		}
	}
	if len(priorities.Default) == 0 {
		return nil, fmt.Errorf("a default priority order is required")
	}
	return &Aggregator{providers: providers, priorities: priorities}, nil
}

func (a *Aggregator) provider(name string) (npb.Provider, error) {
	p, ok := a.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return p, nil
}

// SearchPlayer searches for a player by name. With source set the named
// provider is consulted alone and its failure is an empty result, not an
// error. Otherwise providers run in priority order: if the first-priority
// provider finds anything its results are returned as-is, and the remaining
// providers are only swept (merging candidates by id) when it found nothing.
func (a *Aggregator) SearchPlayer(ctx context.Context, name string, source string) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name), attribute.String("source", source))

	if source != "" {
		provider, err := a.provider(source)
		if err != nil {
			return nil, err
		}
		players, err := provider.SearchPlayer(ctx, name)
		if err != nil {
			slog.WarnContext(ctx, "pinned search failed", "source", source, "error", err)
			return nil, nil
		}
		return players, nil
	}

	seen := map[string]bool{}
	var out []npb.Player
	for i, providerName := range a.priorities.forOp(a.priorities.Search) {
		provider := a.providers[providerName]
		players, err := provider.SearchPlayer(ctx, name)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "search provider failed, continuing",
				"provider", providerName, "error", err)
			continue
		}
		for _, player := range players {
			if seen[player.ID] {
				continue
			}
			seen[player.ID] = true
			out = append(out, player)
		}
		// the first-priority provider satisfying the query bounds latency
		// for the common case
		if i == 0 && len(out) > 0 {
			break
		}
	}
	return out, nil
}

// PlayerStats retrieves stats with fallback. With source set the named
// provider is consulted alone and its errors propagate. Otherwise providers
// run in priority order: the first success is the base result, and later
// providers only contribute advanced-metric fields the base is missing. A
// populated field is never overwritten, and iteration stops as soon as every
// advanced field is filled.
func (a *Aggregator) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType, source string) (*npb.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "PlayerStats")
	defer span.End()
	span.SetAttributes(
		attribute.String("player_id", playerID),
		attribute.String("source", source),
	)

	if source != "" {
		provider, err := a.provider(source)
		if err != nil {
			return nil, err
		}
		return provider.PlayerStats(ctx, playerID, season, statsType)
	}

	var best *npb.PlayerStats
	for _, providerName := range a.priorities.forOp(a.priorities.Stats) {
		provider := a.providers[providerName]
		stats, err := provider.PlayerStats(ctx, playerID, season, statsType)
		if err != nil {
			slog.DebugContext(ctx, "stats provider contributed nothing",
				"provider", providerName, "player_id", playerID, "error", err)
			continue
		}

		if best == nil {
			best = stats.Clone()
		} else if mergeAdvanced(best, stats) {
			slog.DebugContext(ctx, "merged advanced metrics",
				"base", best.Source, "from", stats.Source)
			best.Source = best.Source + "+" + stats.Source
		}
		if advancedComplete(best) {
			break
		}
	}
	if best == nil {
		span.SetStatus(codes.Error, "no provider had stats")
		return nil, npb.ErrNotFound
	}
	return best, nil
}

func (a *Aggregator) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	return firstSuccess(ctx, a, a.priorities.forOp(a.priorities.Teams),
		func(p npb.Provider) ([]npb.Team, error) { return p.Teams(ctx, season) })
}

func (a *Aggregator) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	return firstSuccess(ctx, a, a.priorities.forOp(a.priorities.Roster),
		func(p npb.Provider) ([]npb.Player, error) { return p.TeamRoster(ctx, teamID, season) })
}

func (a *Aggregator) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	return firstSuccess(ctx, a, a.priorities.forOp(a.priorities.Standings),
		func(p npb.Provider) ([]npb.Standing, error) { return p.Standings(ctx, league, season) })
}

// firstSuccess walks the priority order and returns the first provider's
// successful, non-empty answer. ErrUnsupported and failures just move on to
// the next provider; only a fully empty sweep is ErrNotFound.
func firstSuccess[T any](ctx context.Context, a *Aggregator, order []string, call func(npb.Provider) ([]T, error)) ([]T, error) {
	for _, providerName := range order {
		result, err := call(a.providers[providerName])
		if err != nil {
			slog.DebugContext(ctx, "provider contributed nothing",
				"provider", providerName, "error", err)
			continue
		}
		if len(result) > 0 {
			return result, nil
		}
	}
	return nil, npb.ErrNotFound
}

// HealthCheck probes every configured provider concurrently. A probe failure
// records false for that provider; it never fails the call.
func (a *Aggregator) HealthCheck(ctx context.Context) map[string]bool {
	ctx, span := tracer.Start(ctx, "HealthCheck")
	defer span.End()

	names := make([]string, 0, len(a.providers))
	for name := range a.providers {
		names = append(names, name)
	}

	healthy := make([]bool, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, provider npb.Provider) {
			defer wg.Done()
			healthy[i] = provider.HealthCheck(ctx) == nil
		}(i, a.providers[name])
	}
	wg.Wait()

	out := make(map[string]bool, len(names))
	for i, name := range names {
		out[name] = healthy[i]
	}
	return out
}

// mergeAdvanced copies advanced-metric fields from src into dst wherever dst
// has them unset, matching season lines by year and merging the career
// aggregates. Reports whether anything was filled.
func mergeAdvanced(dst, src *npb.PlayerStats) bool {
	bySeason := map[int]*npb.SeasonStats{}
	for i := range dst.Seasons {
		if dst.Seasons[i].Season != nil {
			bySeason[*dst.Seasons[i].Season] = &dst.Seasons[i]
		}
	}

	filled := false
	for i := range src.Seasons {
		s := &src.Seasons[i]
		if s.Season == nil {
			continue
		}
		if target, ok := bySeason[*s.Season]; ok {
			filled = mergeAdvancedLine(target, s) || filled
		}
	}
	if dst.Career != nil && src.Career != nil {
		filled = mergeAdvancedLine(dst.Career, src.Career) || filled
	}
	return filled
}

func mergeAdvancedLine(dst, src *npb.SeasonStats) bool {
	filled := false
	if dst.WAR == nil && src.WAR != nil {
		dst.WAR, filled = src.WAR, true
	}
	if dst.WOBA == nil && src.WOBA != nil {
		dst.WOBA, filled = src.WOBA, true
	}
	if dst.WRCPlus == nil && src.WRCPlus != nil {
		dst.WRCPlus, filled = src.WRCPlus, true
	}
	if dst.OPSPlus == nil && src.OPSPlus != nil {
		dst.OPSPlus, filled = src.OPSPlus, true
	}
	if dst.ERAPlus == nil && src.ERAPlus != nil {
		dst.ERAPlus, filled = src.ERAPlus, true
	}
	if dst.FIP == nil && src.FIP != nil {
		dst.FIP, filled = src.FIP, true
	}
	if dst.XFIP == nil && src.XFIP != nil {
		dst.XFIP, filled = src.XFIP, true
	}
	if dst.XWOBA == nil && src.XWOBA != nil {
		dst.XWOBA, filled = src.XWOBA, true
	}
	return filled
}

func advancedComplete(stats *npb.PlayerStats) bool {
	lines := make([]*npb.SeasonStats, 0, len(stats.Seasons)+1)
	for i := range stats.Seasons {
		lines = append(lines, &stats.Seasons[i])
	}
	if stats.Career != nil {
		lines = append(lines, stats.Career)
	}
	for _, line := range lines {
		if line.WAR == nil || line.WOBA == nil || line.WRCPlus == nil ||
			line.OPSPlus == nil || line.ERAPlus == nil || line.FIP == nil ||
			line.XFIP == nil || line.XWOBA == nil {
			return false
		}
	}
	return true
}
