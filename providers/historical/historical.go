// Package historical serves pre-cutoff player data out of a local SQLite
// archive. Rosters and stat lines come from the archive's season rows; career
// totals are always recomputed from those rows rather than read from the
// stored aggregates, which only act as a fallback for players with no
// per-season data.
package historical

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/albertinopadin/baseball-mcp/lib/metrics"
	"github.com/albertinopadin/baseball-mcp/lib/nameutil"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/albertinopadin/baseball-mcp/providers/historical/db"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("providers/historical")

const SourceName = "npb_historical"

// Open opens (or creates) the archive database at path and applies the
// embedded schema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	database.SetMaxOpenConns(1)
	if _, err := database.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}

	if _, err := database.Exec(db.Schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return database, nil
}

type Provider struct {
	database *sql.DB
	qry      *db.Queries
}

func New(database *sql.DB) *Provider {
	return &Provider{
		database: database,
		qry:      db.New(database),
	}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	// the archive stores normalized romanized variants, so one pass with
	// the raw query and one with the normalized form cover misspellings
	patterns := []string{name, nameutil.Normalize(name)}

	seen := map[string]bool{}
	var players []npb.Player
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		rows, err := p.qry.SearchPlayers(ctx, "%"+pattern+"%")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search query failed")
			return nil, &npb.TransportError{Source: SourceName, Op: "search players", Err: err}
		}
		for _, row := range rows {
			if seen[row.PlayerID] {
				continue
			}
			seen[row.PlayerID] = true
			player, err := p.playerFromRow(ctx, row)
			if err != nil {
				return nil, err
			}
			players = append(players, player)
		}
	}

	names := make([]string, len(players))
	byName := map[string]int{}
	for i, pl := range players {
		names[i] = pl.NameEnglish
		byName[pl.NameEnglish] = i
	}
	nameutil.SortBySimilarity(name, names)
	ranked := make([]npb.Player, 0, len(players))
	for _, n := range names {
		ranked = append(ranked, players[byName[n]])
	}

	slog.DebugContext(ctx, "archive search", "query", name, "results", len(ranked))
	return ranked, nil
}

func (p *Provider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "PlayerStats")
	defer span.End()
	span.SetAttributes(
		attribute.String("player_id", playerID),
		attribute.String("stats_type", string(statsType)),
	)

	playerRow, err := p.qry.GetPlayer(ctx, playerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, npb.ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load player")
		return nil, &npb.TransportError{Source: SourceName, Op: "get player", Err: err}
	}
	player, err := p.playerFromRow(ctx, playerRow)
	if err != nil {
		return nil, err
	}

	result := &npb.PlayerStats{
		PlayerID: playerID,
		Player:   &player,
		Type:     statsType,
		Source:   SourceName,
	}

	switch statsType {
	case npb.StatsBatting:
		err = p.loadBatting(ctx, result, playerID, season)
	case npb.StatsPitching:
		err = p.loadPitching(ctx, result, playerID, season)
	default:
		return nil, fmt.Errorf("unknown stats type %q", statsType)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if len(result.Seasons) == 0 && result.Career == nil {
		return nil, npb.ErrNotFound
	}
	return result, nil
}

func (p *Provider) loadBatting(ctx context.Context, out *npb.PlayerStats, playerID string, season *int) error {
	if season != nil {
		rows, err := p.qry.GetBattingSeason(ctx, db.GetBattingSeasonParams{
			PlayerID: playerID,
			Season:   int64(*season),
		})
		if err != nil {
			return &npb.TransportError{Source: SourceName, Op: "get batting season", Err: err}
		}
		for _, row := range rows {
			out.Seasons = append(out.Seasons, battingFromRow(row))
		}
		return nil
	}

	rows, err := p.qry.GetBattingSeasons(ctx, playerID)
	if err != nil {
		return &npb.TransportError{Source: SourceName, Op: "get batting seasons", Err: err}
	}
	for _, row := range rows {
		out.Seasons = append(out.Seasons, battingFromRow(row))
	}

	if len(out.Seasons) > 0 {
		out.Career = npb.CareerTotals(out.Seasons)
		metrics.EnhanceBatting(out.Career)
		return nil
	}

	// no per-season rows: fall back to a stored aggregate, still
	// recomputing its rates from the stored counts
	stored, err := p.qry.GetStoredBattingCareer(ctx, playerID)
	if err != nil {
		return &npb.TransportError{Source: SourceName, Op: "get stored batting career", Err: err}
	}
	if len(stored) > 0 {
		career := battingFromRow(stored[0])
		career.Season = nil
		out.Career = &career
		metrics.EnhanceBatting(out.Career)
	}
	return nil
}

func (p *Provider) loadPitching(ctx context.Context, out *npb.PlayerStats, playerID string, season *int) error {
	if season != nil {
		rows, err := p.qry.GetPitchingSeason(ctx, db.GetPitchingSeasonParams{
			PlayerID: playerID,
			Season:   int64(*season),
		})
		if err != nil {
			return &npb.TransportError{Source: SourceName, Op: "get pitching season", Err: err}
		}
		for _, row := range rows {
			out.Seasons = append(out.Seasons, pitchingFromRow(row))
		}
		return nil
	}

	rows, err := p.qry.GetPitchingSeasons(ctx, playerID)
	if err != nil {
		return &npb.TransportError{Source: SourceName, Op: "get pitching seasons", Err: err}
	}
	for _, row := range rows {
		out.Seasons = append(out.Seasons, pitchingFromRow(row))
	}

	if len(out.Seasons) > 0 {
		out.Career = npb.CareerTotals(out.Seasons)
		metrics.EnhancePitching(out.Career)
		return nil
	}

	stored, err := p.qry.GetStoredPitchingCareer(ctx, playerID)
	if err != nil {
		return &npb.TransportError{Source: SourceName, Op: "get stored pitching career", Err: err}
	}
	if len(stored) > 0 {
		career := pitchingFromRow(stored[0])
		career.Season = nil
		out.Career = &career
		metrics.EnhancePitching(out.Career)
	}
	return nil
}

func (p *Provider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	ctx, span := tracer.Start(ctx, "Teams")
	defer span.End()

	rows, err := p.qry.ListTeams(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list teams")
		return nil, &npb.TransportError{Source: SourceName, Op: "list teams", Err: err}
	}
	teams := make([]npb.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, teamFromRow(row))
	}
	return teams, nil
}

func (p *Provider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "TeamRoster")
	defer span.End()
	span.SetAttributes(attribute.String("team_id", teamID))

	var (
		rows []db.Player
		err  error
	)
	if season == nil {
		rows, err = p.qry.AllTimeRoster(ctx, sql.NullString{String: teamID, Valid: true})
	} else {
		rows, err = p.qry.SeasonRoster(ctx, db.SeasonRosterParams{
			TeamID: sql.NullString{String: teamID, Valid: true},
			Season: int64(*season),
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "roster query failed")
		return nil, &npb.TransportError{Source: SourceName, Op: "team roster", Err: err}
	}

	players := make([]npb.Player, 0, len(rows))
	for _, row := range rows {
		player, err := p.playerFromRow(ctx, row)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// Standings are not recorded in the archive; this is a structural gap, not an
// empty result.
func (p *Provider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	return nil, npb.ErrUnsupported
}

func (p *Provider) HealthCheck(ctx context.Context) error {
	count, err := p.qry.CountPlayers(ctx)
	if err != nil {
		return &npb.TransportError{Source: SourceName, Op: "health check", Err: err}
	}
	slog.DebugContext(ctx, "archive healthy", "players", count)
	return nil
}

func (p *Provider) playerFromRow(ctx context.Context, row db.Player) (npb.Player, error) {
	player := npb.Player{
		ID:          row.PlayerID,
		NameEnglish: row.NameEnglish,
		Source:      SourceName,
		SourceIDs:   map[string]string{SourceName: row.PlayerID},
	}
	if row.NameJapanese.Valid {
		player.NameJapanese = row.NameJapanese.String
	}
	if row.PrimaryPosition.Valid {
		player.Position = row.PrimaryPosition.String
	}

	years, err := p.qry.PlayerYears(ctx, row.PlayerID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return npb.Player{}, &npb.TransportError{Source: SourceName, Op: "player years", Err: err}
	}
	if years.FirstYear > 0 {
		if years.FirstYear == years.LastYear {
			player.YearsActive = fmt.Sprintf("%d", years.FirstYear)
		} else {
			player.YearsActive = fmt.Sprintf("%d-%d", years.FirstYear, years.LastYear)
		}
	}
	return player, nil
}

func battingFromRow(row db.BattingStat) npb.SeasonStats {
	s := npb.SeasonStats{
		PlayerID:         row.PlayerID,
		Type:             npb.StatsBatting,
		Source:           row.DataSource,
		Games:            int(row.Games),
		PlateAppearances: int(row.PlateAppearances),
		AtBats:           int(row.AtBats),
		Runs:             int(row.Runs),
		Hits:             int(row.Hits),
		Doubles:          int(row.Doubles),
		Triples:          int(row.Triples),
		HomeRuns:         int(row.HomeRuns),
		RBI:              int(row.Rbi),
		StolenBases:      int(row.StolenBases),
		CaughtStealing:   int(row.CaughtStealing),
		Walks:            int(row.Walks),
		Strikeouts:       int(row.Strikeouts),
		HitByPitch:       int(row.HitByPitch),
		SacrificeFlies:   int(row.SacrificeFlies),
	}
	if row.Season != db.CareerSeason {
		s.Season = npb.IntPtr(int(row.Season))
	}
	if row.TeamID.Valid {
		s.Team = row.TeamID.String
	}
	s.RecomputeRates()
	metrics.EnhanceBatting(&s)
	return s
}

func pitchingFromRow(row db.PitchingStat) npb.SeasonStats {
	s := npb.SeasonStats{
		PlayerID:          row.PlayerID,
		Type:              npb.StatsPitching,
		Source:            row.DataSource,
		Games:             int(row.Games),
		Wins:              int(row.Wins),
		Losses:            int(row.Losses),
		Saves:             int(row.Saves),
		Holds:             int(row.Holds),
		GamesStarted:      int(row.GamesStarted),
		CompleteGames:     int(row.CompleteGames),
		Shutouts:          int(row.Shutouts),
		InningsPitched:    row.InningsPitched,
		HitsAllowed:       int(row.HitsAllowed),
		RunsAllowed:       int(row.RunsAllowed),
		EarnedRuns:        int(row.EarnedRuns),
		HomeRunsAllowed:   int(row.HomeRunsAllowed),
		WalksAllowed:      int(row.WalksAllowed),
		HitBatters:        int(row.HitBatters),
		StrikeoutsPitched: int(row.StrikeoutsPitched),
	}
	if row.Season != db.CareerSeason {
		s.Season = npb.IntPtr(int(row.Season))
	}
	if row.TeamID.Valid {
		s.Team = row.TeamID.String
	}
	s.RecomputeRates()
	metrics.EnhancePitching(&s)
	return s
}

func teamFromRow(row db.Team) npb.Team {
	team := npb.Team{
		ID:          row.TeamID,
		NameEnglish: row.NameEnglish,
		League:      npb.League(strings.ToLower(row.League)),
	}
	if row.NameJapanese.Valid {
		team.NameJapanese = row.NameJapanese.String
	}
	if row.City.Valid {
		team.City = row.City.String
	}
	if row.Abbreviation.Valid {
		team.Abbreviation = row.Abbreviation.String
	}
	if ref := npb.TeamByID(row.TeamID); ref != nil {
		team.SiteCode = ref.SiteCode
	}
	return team
}

// variantsJSON renders the stored romanized-variant list for a player name.
func variantsJSON(name string) sql.NullString {
	variants := nameutil.Variants(name)
	encoded, err := json.Marshal(variants)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(encoded), Valid: true}
}
