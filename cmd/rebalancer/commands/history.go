package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"PortfolioSentinel/internal/config"
	"PortfolioSentinel/internal/logging"
	"PortfolioSentinel/internal/notifier"
	"PortfolioSentinel/internal/recorder"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rebalance runs from the run-history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log := logging.New(logging.Config{Level: "warn", Pretty: true})
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			return fmt.Errorf("open run history: %w", err)
		}
		defer sr.Close()

		runs, err := sr.RecentRuns(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		for _, r := range runs {
			scaled := ""
			if r.TurnoverScale < 1.0 {
				scaled = fmt.Sprintf(" (turnover scaled to %.1f%%)", r.TurnoverScale*100)
			}
			fmt.Printf("%s  total %-12s buy %-12s sell %-12s%s\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				notifier.Money(r.TotalValue),
				notifier.Money(r.TotalBuy),
				notifier.Money(r.TotalSell),
				scaled)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
