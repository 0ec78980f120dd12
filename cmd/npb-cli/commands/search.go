package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	searchSource  *string
	searchResolve *bool
)

func init() {
	searchSource = searchCmd.Flags().String("source", "", "Query only this provider.")
	searchResolve = searchCmd.Flags().Bool("resolve", false, "Narrow same-named candidates to one player by probing for recorded stats.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <player name>",
	Short: "Searches for players by name across the configured providers.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		name := strings.Join(args, " ")

		if *searchResolve {
			player, err := agg.ResolvePlayer(cmd.Context(), name, *searchSource)
			var ambiguous *npb.AmbiguityError
			if errors.As(err, &ambiguous) {
				fmt.Println(ambiguous.Error())
				renderPlayers(ambiguous.Candidates)
				os.Exit(1)
			}
			if err != nil {
				fatal("resolve failed", err)
			}
			renderPlayers([]npb.Player{*player})
			return
		}

		players, err := agg.SearchPlayer(cmd.Context(), name, *searchSource)
		if err != nil {
			fatal("search failed", err)
		}
		if len(players) == 0 {
			fmt.Println("no players found")
			return
		}
		renderPlayers(players)
	},
}

func renderPlayers(players []npb.Player) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Team", "Position", "Years", "Source"})

	for _, p := range players {
		team := ""
		if p.Team != nil {
			team = p.Team.NameEnglish
		}
		t.AppendRow(table.Row{p.ID, p.NameEnglish, team, p.Position, p.YearsActive, p.Source})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
