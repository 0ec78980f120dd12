package npbofficial

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/albertinopadin/baseball-mcp/lib/htmlutil"
	"github.com/albertinopadin/baseball-mcp/lib/nameutil"
	"github.com/albertinopadin/baseball-mcp/npb"
)

var playerHrefRe = regexp.MustCompile(`/players/(\d+)\.html`)

// playerIDFromRow derives a deterministic player id: the site's numeric id
// when the name cell links to a profile page, otherwise a slug of the
// normalized name. The same inputs always yield the same id, so repeated
// scrapes agree with each other.
func playerIDFromRow(nameCell htmlutil.Cell) string {
	if m := playerHrefRe.FindStringSubmatch(nameCell.Href); m != nil {
		return m[1]
	}
	return nameSlug(nameCell.Text)
}

func nameSlug(name string) string {
	return strings.ReplaceAll(nameutil.Normalize(name), " ", "_")
}

// idMatches reports whether a stat row belongs to the requested player id,
// either exactly or through the name behind a slug id (so a caller holding
// "kouji_uehara" still finds the row listed as "Koji Uehara").
func idMatches(requested string, rowID string, rowName string) bool {
	if strings.EqualFold(requested, rowID) {
		return true
	}
	requestedName := strings.ReplaceAll(requested, "_", " ")
	return nameutil.Match(requestedName, rowName, false)
}

func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func atof(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInnings converts the site's innings notation, where ".1" means one
// third and ".2" means two thirds of an inning.
func parseInnings(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	whole, fraction, ok := strings.Cut(s, ".")
	if !ok {
		return atof(s)
	}
	switch fraction {
	case "1":
		return float64(atoi(whole)) + 0.33
	case "2":
		return float64(atoi(whole)) + 0.67
	default:
		return atof(s)
	}
}

type statRow struct {
	playerID string
	name     string
	stats    npb.SeasonStats
}

// Stat page layout, both league leader and per-team pages:
// [0] bats flag (*/+), [1] name, [2] G, [3] PA, [4] AB, [5] R, [6] H,
// [7] 2B, [8] 3B, [9] HR, [10] TB, [11] RBI, [12] SH, [13] SF, [14] SB,
// [15] CS, [16] BB, [17] HP, [18] SO, then grounded-into and rate columns.
// Rate columns are ignored: rates are recomputed from the counts.
func parseBattingPage(doc *goquery.Document, season int, team string) []statRow {
	var out []statRow
	for _, rows := range htmlutil.Tables(doc) {
		for _, row := range rows {
			if len(row) < 20 {
				continue
			}
			name := row[1].Text
			if name == "" || !isDataRow(row[2].Text) {
				continue
			}

			s := npb.SeasonStats{
				Season:           npb.IntPtr(season),
				Type:             npb.StatsBatting,
				Team:             team,
				Source:           SourceName,
				Games:            atoi(row[2].Text),
				PlateAppearances: atoi(row[3].Text),
				AtBats:           atoi(row[4].Text),
				Runs:             atoi(row[5].Text),
				Hits:             atoi(row[6].Text),
				Doubles:          atoi(row[7].Text),
				Triples:          atoi(row[8].Text),
				HomeRuns:         atoi(row[9].Text),
				RBI:              atoi(row[11].Text),
				SacrificeFlies:   atoi(row[13].Text),
				StolenBases:      atoi(row[14].Text),
				CaughtStealing:   atoi(row[15].Text),
				Walks:            atoi(row[16].Text),
				HitByPitch:       atoi(row[17].Text),
				Strikeouts:       atoi(row[18].Text),
			}
			id := playerIDFromRow(row[1])
			s.PlayerID = id
			s.RecomputeRates()

			out = append(out, statRow{playerID: id, name: name, stats: s})
		}
	}
	return out
}

// Pitching layout: [0] throws flag, [1] name, [2] G, [3] W, [4] L, [5] SV,
// [6] HLD, [7] CG, [8] SHO, [9] win pct, [10] batters faced, [11]+[12]
// innings (whole and third columns), [13] H, [14] HR, [15] BB, [16] HB,
// [17] SO, [18] R, [19] ER, then rate columns.
func parsePitchingPage(doc *goquery.Document, season int, team string) []statRow {
	var out []statRow
	for _, rows := range htmlutil.Tables(doc) {
		for _, row := range rows {
			if len(row) < 20 {
				continue
			}
			name := row[1].Text
			if name == "" || !isDataRow(row[2].Text) {
				continue
			}

			s := npb.SeasonStats{
				Season:            npb.IntPtr(season),
				Type:              npb.StatsPitching,
				Team:              team,
				Source:            SourceName,
				Games:             atoi(row[2].Text),
				Wins:              atoi(row[3].Text),
				Losses:            atoi(row[4].Text),
				Saves:             atoi(row[5].Text),
				Holds:             atoi(row[6].Text),
				CompleteGames:     atoi(row[7].Text),
				Shutouts:          atoi(row[8].Text),
				InningsPitched:    parseInnings(row[11].Text + row[12].Text),
				HitsAllowed:       atoi(row[13].Text),
				HomeRunsAllowed:   atoi(row[14].Text),
				WalksAllowed:      atoi(row[15].Text),
				HitBatters:        atoi(row[16].Text),
				StrikeoutsPitched: atoi(row[17].Text),
				RunsAllowed:       atoi(row[18].Text),
				EarnedRuns:        atoi(row[19].Text),
			}
			id := playerIDFromRow(row[1])
			s.PlayerID = id
			s.RecomputeRates()

			out = append(out, statRow{playerID: id, name: name, stats: s})
		}
	}
	return out
}

// Standings layout: [0] rank, [1] team, [2] G, [3] W, [4] L, [5] T,
// [6] PCT, [7] GB.
func parseStandingsPage(doc *goquery.Document, league npb.League) []npb.Standing {
	var out []npb.Standing
	for _, rows := range htmlutil.Tables(doc) {
		for _, row := range rows {
			if len(row) < 7 {
				continue
			}
			if row[1].Text == "" || !isDataRow(row[2].Text) {
				continue
			}
			standing := npb.Standing{
				Team:   row[1].Text,
				League: league,
				Wins:   atoi(row[3].Text),
				Losses: atoi(row[4].Text),
				Ties:   atoi(row[5].Text),
				PCT:    atof(row[6].Text),
			}
			if len(row) > 7 {
				standing.GamesBehind = atof(row[7].Text)
			}
			out = append(out, standing)
		}
	}
	return out
}

// isDataRow screens out header and separator rows by checking that the games
// column holds a number.
func isDataRow(games string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(games))
	return err == nil
}
