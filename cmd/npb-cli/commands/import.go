package commands

import (
	"log/slog"
	"time"

	"github.com/albertinopadin/baseball-mcp/providers/historical"
	"github.com/spf13/cobra"
)

var importDb *string

func init() {
	importDb = importCmd.Flags().String("db", "", "The historical database to import into; defaults to the configured one.")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <dataset.json>",
	Short: "Imports a historical dataset (teams, players, season stats) into the archive database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := *importDb
		if path == "" {
			path = loadConfig().HistoricalDB
		}

		database, err := historical.Open(path)
		if err != nil {
			fatal("failed to open historical db", err)
		}
		defer database.Close()
		provider := historical.New(database)

		t1 := time.Now()
		if err := provider.ImportFile(cmd.Context(), args[0]); err != nil {
			fatal("import failed", err)
		}
		t2 := time.Now()

		slog.Info("import finished", "db", path, "seconds", t2.Sub(t1).Seconds())
	},
}
