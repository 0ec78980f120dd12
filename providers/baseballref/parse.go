package baseballref

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/albertinopadin/baseball-mcp/lib/htmlutil"
	"github.com/albertinopadin/baseball-mcp/npb"
)

var (
	playerHrefRe  = regexp.MustCompile(`/register/player\.fcgi\?id=([^"&]+)`)
	pitchingIDRe  = regexp.MustCompile(`pitching`)
	battingTables = []string{"batting_standard", "batting", "standard_batting"}

	// register rows tagged with other leagues are MLB/minors stints
	npbLeagues = map[string]bool{"JPPL": true, "JPCL": true, "NPB": true}
)

func playerIDFromHref(href string) string {
	if m := playerHrefRe.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return ""
}

// findBattingTable tries the known batting table ids in order.
func findBattingTable(doc *goquery.Document) *goquery.Selection {
	for _, id := range battingTables {
		table := doc.Find("table#" + id)
		if table.Length() > 0 {
			return table.First()
		}
	}
	return nil
}

// findPitchingTable matches the table id loosely; the register uses several
// variants ("pitching_standard", "standard_pitching", ...).
func findPitchingTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		id, _ := table.Attr("id")
		if pitchingIDRe.MatchString(id) {
			found = table
			return false
		}
		return true
	})
	return found
}

// tableData reads a stat table into header-keyed rows. The first all-header
// row names the columns; repeated mid-table header rows fall out later when
// their Year cell fails to parse as a number.
func tableData(table *goquery.Selection) []map[string]htmlutil.Cell {
	var headers []string
	var rows []map[string]htmlutil.Cell

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("th, td")
		if headers == nil {
			if tr.Find("th").Length() == cells.Length() && cells.Length() > 0 {
				cells.Each(func(_ int, cell *goquery.Selection) {
					headers = append(headers, htmlutil.CleanText(cell.Text()))
				})
			}
			return
		}

		row := map[string]htmlutil.Cell{}
		cells.Each(func(i int, cell *goquery.Selection) {
			if i >= len(headers) {
				return
			}
			href, _ := cell.Find("a").First().Attr("href")
			row[headers[i]] = htmlutil.Cell{
				Text: htmlutil.CleanText(cell.Text()),
				Href: href,
			}
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func intField(row map[string]htmlutil.Cell, key string) int {
	return atoi(row[key].Text)
}

// optional columns come back nil when absent or blank, so the aggregator can
// tell "source has no WAR" from "WAR is zero"
func intPtrField(row map[string]htmlutil.Cell, key string) *int {
	s := strings.TrimSpace(row[key].Text)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func floatPtrField(row map[string]htmlutil.Cell, key string) *float64 {
	s := strings.TrimSpace(row[key].Text)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseInnings converts the register's innings notation, where ".1" means one
// third and ".2" means two thirds of an inning.
func parseInnings(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	whole, fraction, ok := strings.Cut(s, ".")
	if !ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return v
	}
	switch fraction {
	case "1":
		return float64(atoi(whole)) + 0.33
	case "2":
		return float64(atoi(whole)) + 0.67
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return v
	}
}

// rowSeason returns the row's year, or false for header and summary rows.
func rowSeason(row map[string]htmlutil.Cell) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(row["Year"].Text))
	if err != nil || year == 0 {
		return 0, false
	}
	return year, true
}

func isNPBRow(row map[string]htmlutil.Cell) bool {
	lg := strings.TrimSpace(row["Lg"].Text)
	return lg == "" || npbLeagues[lg]
}

func battingSeasons(table *goquery.Selection, playerID string) []npb.SeasonStats {
	var out []npb.SeasonStats
	for _, row := range tableData(table) {
		year, ok := rowSeason(row)
		if !ok || !isNPBRow(row) {
			continue
		}

		s := npb.SeasonStats{
			PlayerID:         playerID,
			Season:           npb.IntPtr(year),
			Type:             npb.StatsBatting,
			Team:             row["Tm"].Text,
			Source:           SourceName,
			Games:            intField(row, "G"),
			PlateAppearances: intField(row, "PA"),
			AtBats:           intField(row, "AB"),
			Runs:             intField(row, "R"),
			Hits:             intField(row, "H"),
			Doubles:          intField(row, "2B"),
			Triples:          intField(row, "3B"),
			HomeRuns:         intField(row, "HR"),
			RBI:              intField(row, "RBI"),
			StolenBases:      intField(row, "SB"),
			CaughtStealing:   intField(row, "CS"),
			Walks:            intField(row, "BB"),
			Strikeouts:       intField(row, "SO"),
			HitByPitch:       intField(row, "HBP"),
			SacrificeFlies:   intField(row, "SF"),
		}
		s.RecomputeRates()
		s.OPSPlus = intPtrField(row, "OPS+")
		s.WAR = floatPtrField(row, "WAR")
		out = append(out, s)
	}
	return out
}

func pitchingSeasons(table *goquery.Selection, playerID string) []npb.SeasonStats {
	var out []npb.SeasonStats
	for _, row := range tableData(table) {
		year, ok := rowSeason(row)
		if !ok || !isNPBRow(row) {
			continue
		}

		s := npb.SeasonStats{
			PlayerID:          playerID,
			Season:            npb.IntPtr(year),
			Type:              npb.StatsPitching,
			Team:              row["Tm"].Text,
			Source:            SourceName,
			Games:             intField(row, "G"),
			Wins:              intField(row, "W"),
			Losses:            intField(row, "L"),
			Saves:             intField(row, "SV"),
			GamesStarted:      intField(row, "GS"),
			CompleteGames:     intField(row, "CG"),
			Shutouts:          intField(row, "SHO"),
			InningsPitched:    parseInnings(row["IP"].Text),
			HitsAllowed:       intField(row, "H"),
			RunsAllowed:       intField(row, "R"),
			EarnedRuns:        intField(row, "ER"),
			HomeRunsAllowed:   intField(row, "HR"),
			WalksAllowed:      intField(row, "BB"),
			StrikeoutsPitched: intField(row, "SO"),
		}
		s.RecomputeRates()
		s.ERAPlus = intPtrField(row, "ERA+")
		s.WAR = floatPtrField(row, "WAR")
		out = append(out, s)
	}
	return out
}
