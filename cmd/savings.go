package cmd

import (
	"fmt"
	"time"

	"kopilka/internal/cli"
	"kopilka/internal/forecast"

	"github.com/spf13/cobra"
)

var (
	flagHorizon int
	flagWindow  int
)

var savingsCmd = &cobra.Command{
	Use:   "show-savings",
	Short: "Show the savings forecast against the daily target",
	RunE:  runSavings,
}

func init() {
	savingsCmd.Flags().IntVar(&flagHorizon, "horizon", 90, "Days of schedule to precompute")
	savingsCmd.Flags().IntVar(&flagWindow, "window", 14, "Rows to show around today")
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(_ *cobra.Command, _ []string) error {
	_, cfg, state, err := openDocs()
	if err != nil {
		return err
	}

	horizon, window := flagHorizon, flagWindow
	if horizon <= 0 {
		horizon = 90
	}
	if window <= 0 {
		window = 14
	}

	tbl := forecast.Project(cfg, state, time.Now(), horizon)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS FORECAST"))
	fmt.Println()
	fmt.Print(forecast.Render(tbl, window, cfg.Currency))
	fmt.Println()
	return nil
}
