package commands

import (
	"fmt"
	"os"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	standingsSeason *int
	standingsLeague *string
)

func init() {
	standingsSeason = standingsCmd.Flags().Int("season", 0, "Season to show standings for; omit for the current one.")
	standingsLeague = standingsCmd.Flags().String("league", "", "Restrict to one league: central or pacific.")
	rootCmd.AddCommand(standingsCmd)
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Prints league standings.",
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		var league *npb.League
		switch *standingsLeague {
		case "":
		case string(npb.LeagueCentral), string(npb.LeaguePacific):
			l := npb.League(*standingsLeague)
			league = &l
		default:
			fatal("invalid league", fmt.Errorf("%q is not central or pacific", *standingsLeague))
		}

		standings, err := agg.Standings(cmd.Context(), league, seasonArg(*standingsSeason))
		if err != nil {
			fatal("standings lookup failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Team", "League", "W", "L", "T", "PCT", "GB"})
		for _, s := range standings {
			t.AppendRow(table.Row{s.Team, s.League, s.Wins, s.Losses, s.Ties, s.PCT, s.GamesBehind})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
