package cmd

import (
	"fmt"

	"kopilka/internal/cli"
	"kopilka/internal/ledger"
	"kopilka/internal/money"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [description] [tags...]",
	Short: "Record an income or expense transaction",
	Long: `Record a transaction. Positive amounts are income; with tithe enabled,
10% is set aside into the tithe pool as a separate entry. Zero or negative
amounts are expenses.

Prefix negative amounts with -- to stop flag parsing:
  kopilka add -- -250 groceries food`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := money.ParseAmount(args[0])
	if err != nil {
		return err
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}
	var tags []string
	if len(args) > 2 {
		tags = args[2:]
	}

	s, cfg, state, err := openDocs()
	if err != nil {
		return err
	}

	added, err := ledger.Record(s, &cfg, &state, amount, description, tags)
	if err != nil {
		return err
	}

	fmt.Println()
	for _, tx := range added {
		fmt.Printf("  Recorded %-11s %s\n", tx.Type, cli.FormatSigned(tx.Amount))
	}
	fmt.Println()
	fmt.Printf("  Balance:    %s\n", cli.FormatMoney(ledger.Balance(cfg, state), cfg.Currency))
	fmt.Printf("  Tithe pool: %s\n", cli.FormatMoney(ledger.TithePool(state), cfg.Currency))
	fmt.Println()
	return nil
}
