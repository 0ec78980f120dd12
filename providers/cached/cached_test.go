package cached

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/albertinopadin/baseball-mcp/lib/kvcache"
	"github.com/albertinopadin/baseball-mcp/lib/telemetry"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	players []npb.Player
	stats   *npb.PlayerStats
	err     error

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeProvider) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
}

func (f *fakeProvider) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	f.record("SearchPlayer")
	return f.players, f.err
}

func (f *fakeProvider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	f.record("PlayerStats")
	if f.err != nil {
		return nil, f.err
	}
	return f.stats.Clone(), nil
}

func (f *fakeProvider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	f.record("Teams")
	return []npb.Team{{ID: "giants"}}, nil
}

func (f *fakeProvider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	f.record("TeamRoster")
	return f.players, nil
}

func (f *fakeProvider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	f.record("Standings")
	return []npb.Standing{{Team: "Hanshin Tigers", Wins: 85}}, nil
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error {
	f.record("HealthCheck")
	return nil
}

func setup(t *testing.T, inner npb.Provider) *Provider {
	cleanup := telemetry.SetupForTesting("providers/cached")
	t.Cleanup(cleanup)

	cache, err := kvcache.OpenInMemory(time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return New(inner, cache)
}

func sampleStats() *npb.PlayerStats {
	seasons := []npb.SeasonStats{{
		PlayerID: "p1",
		Season:   npb.IntPtr(2024),
		Type:     npb.StatsBatting,
		Games:    130,
		AtBats:   520,
		Hits:     180,
		WAR:      npb.Float64Ptr(6.2),
	}}
	return &npb.PlayerStats{
		PlayerID: "p1",
		Type:     npb.StatsBatting,
		Source:   "fake",
		Seasons:  seasons,
		Career:   npb.CareerTotals(seasons),
	}
}

func TestSearchColdAndWarmIdentical(t *testing.T) {
	inner := &fakeProvider{players: []npb.Player{{
		ID:          "p1",
		NameEnglish: "Suzuki, Ichiro",
		SourceIDs:   map[string]string{"fake": "p1"},
	}}}
	provider := setup(t, inner)
	ctx := context.Background()

	cold, err := provider.SearchPlayer(ctx, "Ichiro")
	require.NoError(t, err)
	warm, err := provider.SearchPlayer(ctx, "Ichiro")
	require.NoError(t, err)

	require.Equal(t, cold, warm)
	require.Equal(t, 1, inner.count("SearchPlayer"))

	// a different query is a different key
	_, err = provider.SearchPlayer(ctx, "Darvish")
	require.NoError(t, err)
	require.Equal(t, 2, inner.count("SearchPlayer"))
}

func TestPlayerStatsCachedPerArguments(t *testing.T) {
	inner := &fakeProvider{stats: sampleStats()}
	provider := setup(t, inner)
	ctx := context.Background()

	cold, err := provider.PlayerStats(ctx, "p1", npb.IntPtr(2024), npb.StatsBatting)
	require.NoError(t, err)
	warm, err := provider.PlayerStats(ctx, "p1", npb.IntPtr(2024), npb.StatsBatting)
	require.NoError(t, err)

	require.Equal(t, cold, warm)
	require.NotNil(t, warm.Seasons[0].WAR)
	require.Equal(t, 6.2, *warm.Seasons[0].WAR)
	require.Equal(t, 1, inner.count("PlayerStats"))

	// season and stats type are part of the key
	_, err = provider.PlayerStats(ctx, "p1", nil, npb.StatsBatting)
	require.NoError(t, err)
	require.Equal(t, 2, inner.count("PlayerStats"))
}

func TestErrorsAreNotCached(t *testing.T) {
	inner := &fakeProvider{err: npb.ErrNotFound}
	provider := setup(t, inner)
	ctx := context.Background()

	_, err := provider.PlayerStats(ctx, "p1", nil, npb.StatsBatting)
	require.ErrorIs(t, err, npb.ErrNotFound)
	_, err = provider.PlayerStats(ctx, "p1", nil, npb.StatsBatting)
	require.ErrorIs(t, err, npb.ErrNotFound)
	require.Equal(t, 2, inner.count("PlayerStats"))
}

func TestTeamsStandingsAndRosterCached(t *testing.T) {
	inner := &fakeProvider{players: []npb.Player{{ID: "p1"}}}
	provider := setup(t, inner)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		teams, err := provider.Teams(ctx, nil)
		require.NoError(t, err)
		require.Len(t, teams, 1)

		standings, err := provider.Standings(ctx, nil, npb.IntPtr(2024))
		require.NoError(t, err)
		require.Equal(t, 85, standings[0].Wins)

		_, err = provider.TeamRoster(ctx, "giants", nil)
		require.NoError(t, err)
	}
	require.Equal(t, 1, inner.count("Teams"))
	require.Equal(t, 1, inner.count("Standings"))
	require.Equal(t, 1, inner.count("TeamRoster"))
}

func TestHealthCheckBypassesCache(t *testing.T) {
	inner := &fakeProvider{}
	provider := setup(t, inner)

	require.NoError(t, provider.HealthCheck(context.Background()))
	require.NoError(t, provider.HealthCheck(context.Background()))
	require.Equal(t, 2, inner.count("HealthCheck"))
}
