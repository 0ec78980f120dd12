package historical

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/albertinopadin/baseball-mcp/providers/historical/db"
)

// Dataset is the import file format: reference teams plus players with their
// per-season and optional stored-career stat lines.
type Dataset struct {
	Teams   []DatasetTeam   `json:"teams"`
	Players []DatasetPlayer `json:"players"`
}

type DatasetTeam struct {
	ID           string `json:"team_id"`
	NameEnglish  string `json:"name_english"`
	NameJapanese string `json:"name_japanese"`
	League       string `json:"league"`
	City         string `json:"city"`
	Abbreviation string `json:"abbreviation"`
}

type DatasetPlayer struct {
	ID           string         `json:"player_id"`
	NameEnglish  string         `json:"name_english"`
	NameJapanese string         `json:"name_japanese"`
	Position     string         `json:"primary_position"`
	Batting      []DatasetStats `json:"batting"`
	Pitching     []DatasetStats `json:"pitching"`
}

// DatasetStats carries both batting and pitching columns; the zero ones are
// simply unused. Season 0 marks a stored career aggregate.
type DatasetStats struct {
	Season int    `json:"season"`
	TeamID string `json:"team_id"`
	Source string `json:"data_source"`

	Games            int `json:"games"`
	PlateAppearances int `json:"plate_appearances"`
	AtBats           int `json:"at_bats"`
	Runs             int `json:"runs"`
	Hits             int `json:"hits"`
	Doubles          int `json:"doubles"`
	Triples          int `json:"triples"`
	HomeRuns         int `json:"home_runs"`
	RBI              int `json:"rbi"`
	StolenBases      int `json:"stolen_bases"`
	CaughtStealing   int `json:"caught_stealing"`
	Walks            int `json:"walks"`
	Strikeouts       int `json:"strikeouts"`
	HitByPitch       int `json:"hit_by_pitch"`
	SacrificeFlies   int `json:"sacrifice_flies"`

	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Saves             int     `json:"saves"`
	Holds             int     `json:"holds"`
	GamesStarted      int     `json:"games_started"`
	CompleteGames     int     `json:"complete_games"`
	Shutouts          int     `json:"shutouts"`
	InningsPitched    float64 `json:"innings_pitched"`
	HitsAllowed       int     `json:"hits_allowed"`
	RunsAllowed       int     `json:"runs_allowed"`
	EarnedRuns        int     `json:"earned_runs"`
	HomeRunsAllowed   int     `json:"home_runs_allowed"`
	WalksAllowed      int     `json:"walks_allowed"`
	HitBatters        int     `json:"hit_batters"`
	StrikeoutsPitched int     `json:"strikeouts_pitched"`
}

// ImportFile loads a JSON dataset file into the archive.
func (p *Provider) ImportFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dataset Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return p.Import(ctx, dataset)
}

// Import writes a dataset into the archive in one transaction. Name variants
// are generated at import time so searches can match romanization spellings
// without touching the resolver at query time.
func (p *Provider) Import(ctx context.Context, dataset Dataset) error {
	tx, err := p.database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := p.qry.WithTx(tx)

	for _, team := range dataset.Teams {
		err := txqry.UpsertTeam(ctx, db.UpsertTeamParams{
			TeamID:       team.ID,
			NameEnglish:  team.NameEnglish,
			NameJapanese: nullString(team.NameJapanese),
			League:       team.League,
			City:         nullString(team.City),
			Abbreviation: nullString(team.Abbreviation),
		})
		if err != nil {
			return fmt.Errorf("import team %s: %w", team.ID, err)
		}
	}

	for _, player := range dataset.Players {
		first, last := seasonSpan(player)
		err := txqry.UpsertPlayer(ctx, db.UpsertPlayerParams{
			PlayerID:              player.ID,
			NameEnglish:           player.NameEnglish,
			NameJapanese:          nullString(player.NameJapanese),
			NameRomanizedVariants: variantsJSON(player.NameEnglish),
			DebutYear:             nullInt(first),
			FinalYear:             nullInt(last),
			PrimaryPosition:       nullString(player.Position),
		})
		if err != nil {
			return fmt.Errorf("import player %s: %w", player.ID, err)
		}

		for _, line := range player.Batting {
			err := txqry.UpsertBattingStat(ctx, db.UpsertBattingStatParams{
				PlayerID:         player.ID,
				Season:           int64(line.Season),
				TeamID:           nullString(line.TeamID),
				DataSource:       sourceOrDefault(line.Source),
				Games:            int64(line.Games),
				PlateAppearances: int64(line.PlateAppearances),
				AtBats:           int64(line.AtBats),
				Runs:             int64(line.Runs),
				Hits:             int64(line.Hits),
				Doubles:          int64(line.Doubles),
				Triples:          int64(line.Triples),
				HomeRuns:         int64(line.HomeRuns),
				Rbi:              int64(line.RBI),
				StolenBases:      int64(line.StolenBases),
				CaughtStealing:   int64(line.CaughtStealing),
				Walks:            int64(line.Walks),
				Strikeouts:       int64(line.Strikeouts),
				HitByPitch:       int64(line.HitByPitch),
				SacrificeFlies:   int64(line.SacrificeFlies),
			})
			if err != nil {
				return fmt.Errorf("import batting %s/%d: %w", player.ID, line.Season, err)
			}
		}

		for _, line := range player.Pitching {
			err := txqry.UpsertPitchingStat(ctx, db.UpsertPitchingStatParams{
				PlayerID:          player.ID,
				Season:            int64(line.Season),
				TeamID:            nullString(line.TeamID),
				DataSource:        sourceOrDefault(line.Source),
				Games:             int64(line.Games),
				Wins:              int64(line.Wins),
				Losses:            int64(line.Losses),
				Saves:             int64(line.Saves),
				Holds:             int64(line.Holds),
				GamesStarted:      int64(line.GamesStarted),
				CompleteGames:     int64(line.CompleteGames),
				Shutouts:          int64(line.Shutouts),
				InningsPitched:    line.InningsPitched,
				HitsAllowed:       int64(line.HitsAllowed),
				RunsAllowed:       int64(line.RunsAllowed),
				EarnedRuns:        int64(line.EarnedRuns),
				HomeRunsAllowed:   int64(line.HomeRunsAllowed),
				WalksAllowed:      int64(line.WalksAllowed),
				HitBatters:        int64(line.HitBatters),
				StrikeoutsPitched: int64(line.StrikeoutsPitched),
			})
			if err != nil {
				return fmt.Errorf("import pitching %s/%d: %w", player.ID, line.Season, err)
			}
		}
	}

	return tx.Commit()
}

func seasonSpan(player DatasetPlayer) (first, last int) {
	for _, line := range append(append([]DatasetStats{}, player.Batting...), player.Pitching...) {
		if line.Season == db.CareerSeason {
			continue
		}
		if first == 0 || line.Season < first {
			first = line.Season
		}
		if line.Season > last {
			last = line.Season
		}
	}
	return first, last
}

func sourceOrDefault(source string) string {
	if source == "" {
		return SourceName
	}
	return source
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

var _ npb.Provider = (*Provider)(nil)
