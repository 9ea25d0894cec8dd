package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rentbuy",
	Short: "Rent-vs-buy net worth projection",
	Long: `rentbuy projects the comparative net worth of buying a home with a
mortgage versus renting and investing the difference, over a 30-year
horizon, under deterministic and Monte Carlo market assumptions.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
