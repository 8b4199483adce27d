package cmd

import (
	"fmt"
	"os"

	"kopilka/internal/cli"

	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Show current configuration",
	RunE:  runShowConfig,
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}

func runShowConfig(_ *cobra.Command, _ []string) error {
	s, cfg, _, err := openDocs()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", s.ConfigPath())
	if _, err := os.Stat(s.ConfigPath()); err == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:        %s\n", cfg.Currency)
	fmt.Printf("    Initial balance: %s\n", cli.FormatAmount(cfg.InitialBalance))
	fmt.Printf("    Daily target:    %s\n", cli.FormatAmount(cfg.DailyDefault))
	fmt.Printf("    Tithe enabled:   %v\n", cfg.TitheEnabled)
	if cfg.Period != nil {
		fmt.Printf("    Goal period:     %s\n", *cfg.Period)
	}
	fmt.Println()

	fmt.Println("  [Baseline]")
	if cfg.BaseDate != nil && cfg.BaseAmount != nil {
		fmt.Printf("    Anchor: %s -> %s\n", *cfg.BaseDate, cli.FormatAmount(*cfg.BaseAmount))
	} else {
		fmt.Println("    Anchor: not set (falls back to stored goals, then today)")
	}
	fmt.Println()

	fmt.Println("  Run `kopilka init` to reconfigure.")
	return nil
}
