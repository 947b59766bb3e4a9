package main

import (
	"os"

	"PortfolioSentinel/cmd/rebalancer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
