package npbofficial

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/albertinopadin/baseball-mcp/lib/nameutil"
	"github.com/albertinopadin/baseball-mcp/lib/timezone"
	"github.com/albertinopadin/baseball-mcp/npb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("providers/npbofficial")

const SourceName = "npb_official"

type Provider struct {
	client *client
}

// New builds a provider against the official site. baseURL is overridable for
// tests; pass "" for the real site.
func New(baseURL string) (*Provider, error) {
	c, err := newClient(baseURL)
	if err != nil {
		return nil, err
	}
	return &Provider{client: c}, nil
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) currentSeason() int {
	return timezone.CurrentSeason(timezone.Now())
}

type pageRequest struct {
	path     string
	pitching bool
	team     string
}

// fetchStatRows fans the page fetches out concurrently; each goroutine owns
// one slot of the result slices and the merge happens after the join. Pages
// missing for the season (404) contribute nothing; transport faults surface
// only when every page failed.
func (p *Provider) fetchStatRows(ctx context.Context, season int, requests []pageRequest) ([]statRow, error) {
	results := make([][]statRow, len(requests))
	errs := make([]error, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req pageRequest) {
			defer wg.Done()

			doc, err := p.client.fetchDocument(ctx, req.path)
			if errors.Is(err, npb.ErrNotFound) {
				return
			}
			if err != nil {
				errs[i] = err
				return
			}
			if req.pitching {
				results[i] = parsePitchingPage(doc, season, req.team)
			} else {
				results[i] = parseBattingPage(doc, season, req.team)
			}
		}(i, req)
	}
	wg.Wait()

	var rows []statRow
	for _, pageRows := range results {
		rows = append(rows, pageRows...)
	}

	joined := errors.Join(errs...)
	if joined != nil && len(rows) == 0 {
		return nil, joined
	}
	if joined != nil {
		slog.WarnContext(ctx, "some stat pages failed, continuing with partial results",
			"season", season, "error", joined)
	}
	return rows, nil
}

func (p *Provider) leaguePages(season int, statsType npb.StatsType) []pageRequest {
	var out []pageRequest
	for _, league := range []npb.League{npb.LeagueCentral, npb.LeaguePacific} {
		if statsType == "" || statsType == npb.StatsBatting {
			out = append(out, pageRequest{path: leagueBattingPath(season, league)})
		}
		if statsType == "" || statsType == npb.StatsPitching {
			out = append(out, pageRequest{path: leaguePitchingPath(season, league), pitching: true})
		}
	}
	return out
}

func (p *Provider) teamPages(season int, statsType npb.StatsType) []pageRequest {
	var out []pageRequest
	for _, team := range npb.AllTeams {
		if statsType == "" || statsType == npb.StatsBatting {
			out = append(out, pageRequest{path: teamBattingPath(season, team.SiteCode), team: team.ID})
		}
		if statsType == "" || statsType == npb.StatsPitching {
			out = append(out, pageRequest{path: teamPitchingPath(season, team.SiteCode), pitching: true, team: team.ID})
		}
	}
	return out
}

// SearchPlayer scans the current season's stat pages for matching names,
// falling back to the prior season for players who have not appeared yet
// this year. League leader pages go first since they are two fetches; the
// full per-team sweep only runs when the leaders turn up nothing.
func (p *Provider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	current := p.currentSeason()
	for _, season := range []int{current, current - 1} {
		for _, pages := range [][]pageRequest{
			p.leaguePages(season, ""),
			p.teamPages(season, ""),
		} {
			rows, err := p.fetchStatRows(ctx, season, pages)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "stat page sweep failed")
				return nil, err
			}
			players := p.matchPlayers(rows, name, season)
			if len(players) > 0 {
				slog.DebugContext(ctx, "live search hit", "query", name, "season", season, "results", len(players))
				return players, nil
			}
		}
	}
	return nil, nil
}

func (p *Provider) matchPlayers(rows []statRow, name string, season int) []npb.Player {
	seen := map[string]bool{}
	var out []npb.Player
	for _, row := range rows {
		if !nameutil.Match(name, row.name, false) {
			continue
		}
		if seen[row.playerID] {
			continue
		}
		seen[row.playerID] = true

		player := npb.Player{
			ID:          row.playerID,
			NameEnglish: row.name,
			YearsActive: strconv.Itoa(season),
			Source:      SourceName,
			SourceIDs:   map[string]string{SourceName: row.playerID},
		}
		if row.stats.Team != "" {
			player.Team = npb.TeamByID(row.stats.Team)
		}
		if row.stats.Type == npb.StatsPitching {
			player.Position = "Pitcher"
		}
		out = append(out, player)
	}
	return out
}

func (p *Provider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "PlayerStats")
	defer span.End()
	span.SetAttributes(
		attribute.String("player_id", playerID),
		attribute.String("stats_type", string(statsType)),
	)

	year := p.currentSeason()
	if season != nil {
		year = *season
	}

	for _, pages := range [][]pageRequest{
		p.leaguePages(year, statsType),
		p.teamPages(year, statsType),
	} {
		rows, err := p.fetchStatRows(ctx, year, pages)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "stat page sweep failed")
			return nil, err
		}
		for _, row := range rows {
			if !idMatches(playerID, row.playerID, row.name) {
				continue
			}

			line := row.stats
			line.PlayerID = playerID
			return &npb.PlayerStats{
				PlayerID: playerID,
				Player: &npb.Player{
					ID:          row.playerID,
					NameEnglish: row.name,
					Source:      SourceName,
					SourceIDs:   map[string]string{SourceName: row.playerID},
				},
				Type:    statsType,
				Source:  SourceName,
				Seasons: []npb.SeasonStats{line},
			}, nil
		}
	}
	return nil, npb.ErrNotFound
}

// Teams is served from reference data; the franchise list is closed and does
// not change season to season.
func (p *Provider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	teams := make([]npb.Team, len(npb.AllTeams))
	copy(teams, npb.AllTeams)
	return teams, nil
}

func (p *Provider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "TeamRoster")
	defer span.End()
	span.SetAttributes(attribute.String("team_id", teamID))

	team := npb.TeamByID(teamID)
	if team == nil {
		team = npb.TeamByName(teamID)
	}
	if team == nil {
		return nil, npb.ErrNotFound
	}

	year := p.currentSeason()
	if season != nil {
		year = *season
	}

	rows, err := p.fetchStatRows(ctx, year, []pageRequest{
		{path: teamBattingPath(year, team.SiteCode), team: team.ID},
		{path: teamPitchingPath(year, team.SiteCode), pitching: true, team: team.ID},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "roster pages failed")
		return nil, err
	}

	seen := map[string]bool{}
	var players []npb.Player
	for _, row := range rows {
		if seen[row.playerID] {
			continue
		}
		seen[row.playerID] = true
		player := npb.Player{
			ID:          row.playerID,
			NameEnglish: row.name,
			Team:        team,
			YearsActive: strconv.Itoa(year),
			Source:      SourceName,
			SourceIDs:   map[string]string{SourceName: row.playerID},
		}
		if row.stats.Type == npb.StatsPitching {
			player.Position = "Pitcher"
		}
		players = append(players, player)
	}
	return players, nil
}

func (p *Provider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	ctx, span := tracer.Start(ctx, "Standings")
	defer span.End()

	year := p.currentSeason()
	if season != nil {
		year = *season
	}

	leagues := []npb.League{npb.LeagueCentral, npb.LeaguePacific}
	if league != nil {
		leagues = []npb.League{*league}
	}

	results := make([][]npb.Standing, len(leagues))
	errs := make([]error, len(leagues))
	var wg sync.WaitGroup
	for i, lg := range leagues {
		wg.Add(1)
		go func(i int, lg npb.League) {
			defer wg.Done()
			doc, err := p.client.fetchDocument(ctx, standingsPath(year, lg))
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = parseStandingsPage(doc, lg)
		}(i, lg)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "standings fetch failed")
		return nil, err
	}

	var standings []npb.Standing
	for _, rows := range results {
		standings = append(standings, rows...)
	}
	return standings, nil
}

// HealthCheck fetches the current standings page. A 404 still proves the site
// answered, which is all health means here.
func (p *Provider) HealthCheck(ctx context.Context) error {
	_, err := p.client.fetchDocument(ctx, standingsPath(p.currentSeason(), npb.LeagueCentral))
	if err != nil && !errors.Is(err, npb.ErrNotFound) {
		return err
	}
	return nil
}

var _ npb.Provider = (*Provider)(nil)
