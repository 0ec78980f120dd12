package aggregator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/albertinopadin/baseball-mcp/npb"
	"go.opentelemetry.io/otel/attribute"
)

// ResolvePlayer searches for a name and narrows same-named candidates to one
// identity. Every candidate is probed concurrently for recorded stats
// (batting first, then pitching); a candidate whose probe errors simply does
// not qualify. Exactly one qualifying candidate is auto-selected. Several
// qualifying candidates, or none, come back as an AmbiguityError carrying the
// set the caller should re-query by id — listing same-named players from the
// wrong league beats hiding them.
func (a *Aggregator) ResolvePlayer(ctx context.Context, name string, source string) (*npb.Player, error) {
	ctx, span := tracer.Start(ctx, "ResolvePlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	candidates, err := a.SearchPlayer(ctx, name, source)
	if err != nil {
		return nil, err
	}
	switch len(candidates) {
	case 0:
		return nil, npb.ErrNotFound
	case 1:
		return &candidates[0], nil
	}

	confirmed := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			confirmed[i] = a.hasRecordedStats(ctx, candidates[i])
		}(i)
	}
	wg.Wait()

	var qualifying []npb.Player
	for i, ok := range confirmed {
		if ok {
			qualifying = append(qualifying, candidates[i])
		}
	}

	switch len(qualifying) {
	case 1:
		slog.DebugContext(ctx, "disambiguated by recorded stats",
			"query", name, "player_id", qualifying[0].ID)
		return &qualifying[0], nil
	case 0:
		return nil, &npb.AmbiguityError{Query: name, Candidates: candidates, NoneConfirmed: true}
	default:
		return nil, &npb.AmbiguityError{Query: name, Candidates: qualifying}
	}
}

// hasRecordedStats probes one candidate through the provider that produced
// it, so ids never cross provider namespaces. Any error means "no stats";
// one candidate's failure must not taint the others.
func (a *Aggregator) hasRecordedStats(ctx context.Context, candidate npb.Player) bool {
	pinned := ""
	if _, ok := a.providers[candidate.Source]; ok {
		pinned = candidate.Source
	}

	for _, statsType := range []npb.StatsType{npb.StatsBatting, npb.StatsPitching} {
		stats, err := a.PlayerStats(ctx, candidate.ID, nil, statsType, pinned)
		if err != nil {
			continue
		}
		if stats.HasRecordedStats() {
			return true
		}
	}
	return false
}
