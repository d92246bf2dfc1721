package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MarkEWaite/analysis-model/internal/config"
	"github.com/MarkEWaite/analysis-model/internal/logging"
	"github.com/MarkEWaite/analysis-model/internal/storage"
)

var (
	historyLimit      int
	historyConfigPath string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists recorded parse runs from the history database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(false)
		logger := logging.Logger
		defer logger.Sync()

		cfg, err := config.Load(historyConfigPath)
		if err != nil {
			logger.Errorw("loading config", "error", err)
			os.Exit(1)
		}

		store, err := storage.OpenHistory(cfg.History.Path)
		if err != nil {
			logger.Errorw("opening history store", "error", err, "db", cfg.History.Path)
			os.Exit(1)
		}
		defer store.Close()

		runs, err := store.Runs(historyLimit)
		if err != nil {
			logger.Errorw("reading runs", "error", err)
			os.Exit(1)
		}
		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return
		}
		for _, r := range runs {
			fmt.Printf("#%d %s %s %s: %d issue(s) (error: %d, high: %d, normal: %d, low: %d)\n",
				r.ID, r.ParsedAt.Format("2006-01-02 15:04:05"), r.Tool, r.Source,
				r.Total, r.Errors, r.High, r.Normal, r.Low)
		}
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to list (0 = all)")
	historyCmd.Flags().StringVarP(&historyConfigPath, "config", "c", ".analysis-model.yaml", "Config file path")
	rootCmd.AddCommand(historyCmd)
}
