// Package cmd implements the kopilka CLI commands.
package cmd

import (
	"os"

	"kopilka/internal/model"
	"kopilka/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "kopilka",
	Short: "Personal savings and tithe ledger",
	Long:  "Record income and expenses, set aside a 10% tithe, and see whether your savings run ahead of or behind your daily target.",
	RunE:  runSavings,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", store.DefaultDir(), "Directory holding the config and state documents")
}

// openDocs loads both documents, running the setup form first if this is
// the first launch.
func openDocs() (*store.Store, model.Config, model.State, error) {
	s := store.New(flagDataDir)
	cfg := s.LoadConfig()
	state := s.LoadState()

	if cfg.IsFirstLaunch {
		if err := runSetupForm(s, &cfg, &state); err != nil {
			return nil, cfg, state, err
		}
	}
	return s, cfg, state, nil
}
