package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a timestamped copy of the state document",
	RunE:  runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(_ *cobra.Command, _ []string) error {
	s, _, _, err := openDocs()
	if err != nil {
		return err
	}
	path, err := s.BackupState()
	if err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	fmt.Printf("  Backup saved to %s\n", path)
	return nil
}
