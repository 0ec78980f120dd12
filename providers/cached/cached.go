// Package cached wraps any provider with a TTL response cache. The decorator
// is transparent: cold and warm calls return identical data, and only
// successful responses are stored, so failures never poison the cache.
package cached

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/albertinopadin/baseball-mcp/lib/kvcache"
	"github.com/albertinopadin/baseball-mcp/npb"
)

type Provider struct {
	inner npb.Provider
	cache *kvcache.Cache
}

func New(inner npb.Provider, cache *kvcache.Cache) *Provider {
	return &Provider{inner: inner, cache: cache}
}

// Name reports the wrapped provider's name; the cache has no identity of its
// own.
func (p *Provider) Name() string { return p.inner.Name() }

func seasonArg(season *int) string {
	if season == nil {
		return ""
	}
	return strconv.Itoa(*season)
}

func leagueArg(league *npb.League) string {
	if league == nil {
		return ""
	}
	return string(*league)
}

// through serves key from the cache, falling back to fetch on a miss. A cache
// read or write fault degrades to a direct fetch; it never fails the call.
func through[T any](ctx context.Context, cache *kvcache.Cache, key string, fetch func() (T, error)) (T, error) {
	var cachedValue T
	err := cache.Get(ctx, key, &cachedValue)
	if err == nil {
		return cachedValue, nil
	}
	if !errors.Is(err, kvcache.ErrMiss) {
		slog.WarnContext(ctx, "cache read failed, fetching directly", "key", key, "error", err)
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}
	if err := cache.Set(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return value, nil
}

func (p *Provider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	key := kvcache.Key(p.inner.Name()+".search", name)
	return through(ctx, p.cache, key, func() ([]npb.Player, error) {
		return p.inner.SearchPlayer(ctx, name)
	})
}

func (p *Provider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	key := kvcache.Key(p.inner.Name()+".stats", playerID, seasonArg(season), string(statsType))
	stats, err := through(ctx, p.cache, key, func() (npb.PlayerStats, error) {
		fetched, err := p.inner.PlayerStats(ctx, playerID, season, statsType)
		if err != nil {
			return npb.PlayerStats{}, err
		}
		return *fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (p *Provider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	key := kvcache.Key(p.inner.Name()+".teams", seasonArg(season))
	return through(ctx, p.cache, key, func() ([]npb.Team, error) {
		return p.inner.Teams(ctx, season)
	})
}

func (p *Provider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	key := kvcache.Key(p.inner.Name()+".roster", teamID, seasonArg(season))
	return through(ctx, p.cache, key, func() ([]npb.Player, error) {
		return p.inner.TeamRoster(ctx, teamID, season)
	})
}

func (p *Provider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	key := kvcache.Key(p.inner.Name()+".standings", leagueArg(league), seasonArg(season))
	return through(ctx, p.cache, key, func() ([]npb.Standing, error) {
		return p.inner.Standings(ctx, league, season)
	})
}

// HealthCheck is never cached; a stale health verdict is worse than the probe.
func (p *Provider) HealthCheck(ctx context.Context) error {
	return p.inner.HealthCheck(ctx)
}

var _ npb.Provider = (*Provider)(nil)
