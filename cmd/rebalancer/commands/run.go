package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute and print rebalancing recommendations once",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		defer app.Close()

		report, err := app.runOnce()
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
