package composite

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/stretchr/testify/require"
)

// fakeProvider counts calls per operation so routing tests can assert which
// backend was consulted.
type fakeProvider struct {
	name      string
	players   []npb.Player
	searchErr error
	stats     *npb.PlayerStats
	statsErr  error
	teams     []npb.Team
	roster    []npb.Player
	standings []npb.Standing
	healthErr error

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

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	f.record("SearchPlayer")
	return f.players, f.searchErr
}

func (f *fakeProvider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	f.record("PlayerStats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats.Clone(), nil
}

func (f *fakeProvider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	f.record("Teams")
	return f.teams, nil
}

func (f *fakeProvider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	f.record("TeamRoster")
	return f.roster, nil
}

func (f *fakeProvider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	f.record("Standings")
	return f.standings, nil
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error {
	f.record("HealthCheck")
	return f.healthErr
}

func battingSeason(year int, team string, games int) npb.SeasonStats {
	return npb.SeasonStats{
		Season: npb.IntPtr(year),
		Type:   npb.StatsBatting,
		Team:   team,
		Games:  games,
		AtBats: 400,
		Hits:   120,
	}
}

func statsWithSeasons(source string, seasons ...npb.SeasonStats) *npb.PlayerStats {
	return &npb.PlayerStats{
		PlayerID: "p1",
		Type:     npb.StatsBatting,
		Source:   source,
		Seasons:  seasons,
		Career:   npb.CareerTotals(seasons),
	}
}

func TestSeasonRouting(t *testing.T) {
	historical := &fakeProvider{name: "hist", stats: statsWithSeasons("hist", battingSeason(1999, "a", 100))}
	scraper := &fakeProvider{name: "live", stats: statsWithSeasons("live", battingSeason(2010, "b", 100))}
	provider := New(historical, scraper)
	ctx := context.Background()

	stats, err := provider.PlayerStats(ctx, "p1", npb.IntPtr(1999), npb.StatsBatting)
	require.NoError(t, err)
	require.Equal(t, "hist", stats.Source)
	require.Equal(t, 0, scraper.count("PlayerStats"))

	stats, err = provider.PlayerStats(ctx, "p1", npb.IntPtr(2010), npb.StatsBatting)
	require.NoError(t, err)
	require.Equal(t, "live", stats.Source)
	require.Equal(t, 1, historical.count("PlayerStats"))
}

func TestCareerMergeDeduplicatesSeasons(t *testing.T) {
	historical := &fakeProvider{name: "hist", stats: statsWithSeasons("hist",
		battingSeason(2001, "archive", 100),
		battingSeason(2002, "archive", 100),
		battingSeason(2003, "archive", 100),
	)}
	scraper := &fakeProvider{name: "live", stats: statsWithSeasons("live",
		battingSeason(2003, "live", 90),
		battingSeason(2004, "live", 120),
	)}
	provider := New(historical, scraper)

	stats, err := provider.PlayerStats(context.Background(), "p1", nil, npb.StatsBatting)
	require.NoError(t, err)
	require.Len(t, stats.Seasons, 4)

	years := map[int]string{}
	for _, s := range stats.Seasons {
		years[*s.Season] = s.Team
	}
	require.Len(t, years, 4)
	// the overlapping season keeps the archive row
	require.Equal(t, "archive", years[2003])
	require.Equal(t, "live", years[2004])

	require.Equal(t, SourceName, stats.Source)
	require.Equal(t, 420, stats.Career.Games)
	require.Equal(t, 1600, stats.Career.AtBats)
	require.Equal(t, 0.3, stats.Career.BattingAverage)
}

func TestCareerStaysArchivalWhenArchiveEndsEarly(t *testing.T) {
	historical := &fakeProvider{name: "hist", stats: statsWithSeasons("hist", battingSeason(1980, "archive", 100))}
	scraper := &fakeProvider{name: "live", stats: statsWithSeasons("live", battingSeason(2024, "live", 100))}
	provider := New(historical, scraper)

	stats, err := provider.PlayerStats(context.Background(), "p1", nil, npb.StatsBatting)
	require.NoError(t, err)
	require.Len(t, stats.Seasons, 1)
	require.Equal(t, 0, scraper.count("PlayerStats"))
}

func TestCareerFallsThroughToScraper(t *testing.T) {
	historical := &fakeProvider{name: "hist", statsErr: npb.ErrNotFound}
	scraper := &fakeProvider{name: "live", stats: statsWithSeasons("live", battingSeason(2024, "live", 100))}
	provider := New(historical, scraper)

	stats, err := provider.PlayerStats(context.Background(), "p1", nil, npb.StatsBatting)
	require.NoError(t, err)
	require.Equal(t, "live", stats.Source)
}

func TestCareerSurvivesScraperFailure(t *testing.T) {
	historical := &fakeProvider{name: "hist", stats: statsWithSeasons("hist", battingSeason(2004, "archive", 100))}
	scraper := &fakeProvider{name: "live", statsErr: &npb.TransportError{Source: "live", Op: "fetch", Err: errors.New("timeout")}}
	provider := New(historical, scraper)

	stats, err := provider.PlayerStats(context.Background(), "p1", nil, npb.StatsBatting)
	require.NoError(t, err)
	require.Equal(t, "hist", stats.Source)
	require.Len(t, stats.Seasons, 1)
}

func TestSearchArchivePrecedenceOnIDCollision(t *testing.T) {
	historical := &fakeProvider{name: "hist", players: []npb.Player{{ID: "p1", Source: "hist"}}}
	scraper := &fakeProvider{name: "live", players: []npb.Player{{ID: "p1", Source: "live"}, {ID: "p2", Source: "live"}}}
	provider := New(historical, scraper)

	players, err := provider.SearchPlayer(context.Background(), "somebody")
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "hist", players[0].Source)
	require.Equal(t, "p2", players[1].ID)
}

func TestSearchToleratesOneBackendFailure(t *testing.T) {
	historical := &fakeProvider{name: "hist", searchErr: &npb.TransportError{Source: "hist", Op: "query", Err: errors.New("locked")}}
	scraper := &fakeProvider{name: "live", players: []npb.Player{{ID: "p2", Source: "live"}}}
	provider := New(historical, scraper)

	players, err := provider.SearchPlayer(context.Background(), "somebody")
	require.NoError(t, err)
	require.Len(t, players, 1)

	// both failing is an error
	scraper.searchErr = errors.New("down")
	scraper.players = nil
	_, err = provider.SearchPlayer(context.Background(), "somebody")
	require.Error(t, err)
}

func TestTeamsAndRosterRouting(t *testing.T) {
	historical := &fakeProvider{name: "hist", teams: []npb.Team{{ID: "old"}}}
	scraper := &fakeProvider{name: "live", teams: []npb.Team{{ID: "new"}}}
	provider := New(historical, scraper)
	ctx := context.Background()

	teams, err := provider.Teams(ctx, npb.IntPtr(1964))
	require.NoError(t, err)
	require.Equal(t, "old", teams[0].ID)

	teams, err = provider.Teams(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, "new", teams[0].ID)

	_, err = provider.TeamRoster(ctx, "giants", npb.IntPtr(1964))
	require.NoError(t, err)
	require.Equal(t, 1, historical.count("TeamRoster"))
	require.Equal(t, 0, scraper.count("TeamRoster"))
}

func TestStandingsScraperOnly(t *testing.T) {
	historical := &fakeProvider{name: "hist"}
	scraper := &fakeProvider{name: "live", standings: []npb.Standing{{Team: "Hanshin Tigers", Wins: 85}}}
	provider := New(historical, scraper)

	standings, err := provider.Standings(context.Background(), nil, npb.IntPtr(1964))
	require.NoError(t, err)
	require.Len(t, standings, 1)
	require.Equal(t, 0, historical.count("Standings"))
}

func TestHealthCheckDegrades(t *testing.T) {
	historical := &fakeProvider{name: "hist", healthErr: errors.New("archive missing")}
	scraper := &fakeProvider{name: "live"}
	provider := New(historical, scraper)
	require.NoError(t, provider.HealthCheck(context.Background()))

	scraper.healthErr = errors.New("site down")
	require.Error(t, provider.HealthCheck(context.Background()))
}
