package cmd

import (
	"errors"
	"fmt"

	"kopilka/internal/cli"
	"kopilka/internal/ledger"
	"kopilka/internal/money"

	"github.com/spf13/cobra"
)

var showTitheCmd = &cobra.Command{
	Use:   "show-tithe",
	Short: "Show the accumulated tithe pool",
	RunE:  runShowTithe,
}

var spendTitheCmd = &cobra.Command{
	Use:   "spend-tithe <amount> [description]",
	Short: "Withdraw from the tithe pool",
	Long: `Withdraw from the tithe pool. The amount must be negative and may not
exceed the current pool. Spending from the pool does not change the
usable balance.

Prefix the amount with -- to stop flag parsing:
  kopilka spend-tithe -- -50 "gift"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSpendTithe,
}

func init() {
	rootCmd.AddCommand(showTitheCmd)
	rootCmd.AddCommand(spendTitheCmd)
}

func runShowTithe(_ *cobra.Command, _ []string) error {
	_, cfg, state, err := openDocs()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Tithe pool: %s\n", cli.FormatMoney(ledger.TithePool(state), cfg.Currency))
	fmt.Println()
	return nil
}

func runSpendTithe(_ *cobra.Command, args []string) error {
	amount, err := money.ParseAmount(args[0])
	if err != nil {
		return err
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	s, cfg, state, err := openDocs()
	if err != nil {
		return err
	}

	tx, err := ledger.SpendTithe(s, &cfg, &state, amount, description)
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) || errors.Is(err, ledger.ErrAmountNotNegative) {
			return err
		}
		return fmt.Errorf("spending tithe: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Spent %s from the tithe pool (%s)\n", cli.FormatAmount(-tx.Amount), tx.Description)
	fmt.Printf("  Remaining pool: %s\n", cli.FormatMoney(ledger.TithePool(state), cfg.Currency))
	fmt.Println()
	return nil
}
