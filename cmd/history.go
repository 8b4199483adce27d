package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kopilka/internal/cli"
	"kopilka/internal/ledger"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [limit]",
	Short: "Show recent transactions, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

// parseLimit parses a history limit argument; it must be a positive
// integer.
func parseLimit(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q: expected a positive integer", arg)
	}
	return n, nil
}

func runHistory(_ *cobra.Command, args []string) error {
	limit := 10
	if len(args) == 1 {
		n, err := parseLimit(args[0])
		if err != nil {
			return err
		}
		limit = n
	}

	_, cfg, state, err := openDocs()
	if err != nil {
		return err
	}

	recent := ledger.LastTransactions(state, limit)
	if len(recent) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}

	rows := make([][]string, 0, len(recent))
	for _, tx := range recent {
		when := tx.Timestamp
		if ts, err := time.Parse(time.RFC3339, tx.Timestamp); err == nil {
			when = ts.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			when,
			string(tx.Type),
			cli.FormatSigned(tx.Amount),
			tx.Description,
			strings.Join(tx.Tags, ","),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Last %d transactions (%s)", len(recent), cfg.Currency),
		Headers:   []string{"When", "Type", "Amount", "Description", "Tags"},
		Rows:      rows,
		AlignLeft: []bool{true, true, false, true, true},
	}))
	return nil
}
