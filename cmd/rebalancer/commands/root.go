package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	dryRun     bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rebalancer",
	Short: "ETF allocation and rebalancing recommendations",
	Long: `PortfolioSentinel blends a static core allocation policy with a
trend-driven momentum overlay, sizes concrete buy/sell amounts against
current holdings, and caps per-run turnover by proportional scaling.

Examples:
  rebalancer run
  rebalancer run --dry-run
  rebalancer schedule --run-on-start
  rebalancer history --limit 5`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load() // .env is optional
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "configs/config.yaml", "config file")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the report without writing audit or history records")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
