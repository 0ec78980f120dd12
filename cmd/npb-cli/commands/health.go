package commands

import (
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probes every configured provider and reports which are reachable.",
	Run: func(cmd *cobra.Command, args []string) {
		agg, cleanup := buildAggregator()
		defer cleanup()

		health := agg.HealthCheck(cmd.Context())

		names := make([]string, 0, len(health))
		for name := range health {
			names = append(names, name)
		}
		sort.Strings(names)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Provider", "Healthy"})
		for _, name := range names {
			t.AppendRow(table.Row{name, health[name]})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
