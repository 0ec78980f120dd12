package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	statsSeason *int
	statsType   *string
	statsSource *string
)

func init() {
	statsSeason = statsCmd.Flags().Int("season", 0, "Restrict to a single season; omit for the full career.")
	statsType = statsCmd.Flags().String("type", "batting", "Stats discipline: batting or pitching.")
	statsSource = statsCmd.Flags().String("source", "", "Query only this provider.")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <player-id>",
	Short: "Prints season and career stat lines for a player id.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		discipline := npb.StatsType(*statsType)
		stats, err := agg.PlayerStats(cmd.Context(), args[0], seasonArg(*statsSeason), discipline, *statsSource)
		if err != nil {
			fatal("stats lookup failed", err)
		}

		if stats.Player != nil {
			fmt.Printf("%s (%s, source %s)\n", stats.Player.NameEnglish, args[0], stats.Source)
		}
		switch discipline {
		case npb.StatsPitching:
			renderPitching(stats)
		default:
			renderBatting(stats)
		}
	},
}

func seasonLabel(s npb.SeasonStats) string {
	if s.Season == nil {
		return "career"
	}
	return strconv.Itoa(*s.Season)
}

func orDash[T any](v *T) any {
	if v == nil {
		return "-"
	}
	return *v
}

func renderBatting(stats *npb.PlayerStats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Season", "Team", "G", "PA", "AB", "R", "H", "2B", "3B", "HR", "RBI", "SB", "BB", "SO", "AVG", "OBP", "SLG", "OPS", "OPS+", "wOBA", "WAR"})

	rows := stats.Seasons
	if stats.Career != nil {
		rows = append(rows, *stats.Career)
	}
	for _, s := range rows {
		t.AppendRow(table.Row{
			seasonLabel(s), s.Team, s.Games, s.PlateAppearances, s.AtBats, s.Runs,
			s.Hits, s.Doubles, s.Triples, s.HomeRuns, s.RBI, s.StolenBases,
			s.Walks, s.Strikeouts,
			s.BattingAverage, s.OnBasePercentage, s.SluggingPercentage, s.OPS,
			orDash(s.OPSPlus), orDash(s.WOBA), orDash(s.WAR),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderPitching(stats *npb.PlayerStats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Season", "Team", "G", "W", "L", "SV", "IP", "H", "ER", "BB", "SO", "ERA", "WHIP", "FIP", "ERA+", "WAR"})

	rows := stats.Seasons
	if stats.Career != nil {
		rows = append(rows, *stats.Career)
	}
	for _, s := range rows {
		t.AppendRow(table.Row{
			seasonLabel(s), s.Team, s.Games, s.Wins, s.Losses, s.Saves,
			s.InningsPitched, s.HitsAllowed, s.EarnedRuns, s.WalksAllowed,
			s.StrikeoutsPitched, s.ERA, s.WHIP,
			orDash(s.FIP), orDash(s.ERAPlus), orDash(s.WAR),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
