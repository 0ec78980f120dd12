package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	teamsSeason  *int
	rosterSeason *int
)

func init() {
	teamsSeason = teamsCmd.Flags().Int("season", 0, "Season to list teams for; omit for the current one.")
	rosterSeason = rosterCmd.Flags().Int("season", 0, "Season to list the roster for; omit for the current one.")
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(rosterCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Lists the league's teams.",
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		teams, err := agg.Teams(cmd.Context(), seasonArg(*teamsSeason))
		if err != nil {
			fatal("teams lookup failed", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Japanese", "League", "City", "Abbr"})
		for _, team := range teams {
			t.AppendRow(table.Row{team.ID, team.NameEnglish, team.NameJapanese, team.League, team.City, team.Abbreviation})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster <team-id>",
	Short: "Lists the players on a team.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		players, err := agg.TeamRoster(cmd.Context(), args[0], seasonArg(*rosterSeason))
		if err != nil {
			fatal("roster lookup failed", err)
		}
		renderPlayers(players)
	},
}
