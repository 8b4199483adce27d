package cmd

import (
	"fmt"
	"time"

	"kopilka/internal/model"
	"kopilka/internal/money"
	"kopilka/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run or re-run the setup wizard",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	s := store.New(flagDataDir)
	cfg := s.LoadConfig()
	state := s.LoadState()
	return runSetupForm(s, &cfg, &state)
}

// runSetupForm collects the initial settings, seeded with the current
// config so re-running keeps previous answers. On completion the anchor
// is mirrored into the state's first goal and both documents are saved.
func runSetupForm(s *store.Store, cfg *model.Config, state *model.State) error {
	initialIn := fmt.Sprintf("%.2f", cfg.InitialBalance)
	dailyIn := fmt.Sprintf("%.2f", cfg.DailyDefault)
	currency := cfg.Currency
	tithe := cfg.TitheEnabled
	period := ""
	if cfg.Period != nil {
		period = *cfg.Period
	}
	baseDate := ""
	if cfg.BaseDate != nil {
		baseDate = *cfg.BaseDate
	}
	baseAmount := ""
	if cfg.BaseAmount != nil {
		baseAmount = fmt.Sprintf("%.2f", *cfg.BaseAmount)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current total balance").
				Value(&initialIn).
				Validate(validateAmount),
			huh.NewInput().
				Title("Target net savings per day").
				Value(&dailyIn).
				Validate(validateAmount),
			huh.NewInput().
				Title("Goal period label (optional)").
				Value(&period),
			huh.NewInput().
				Title("Currency").
				Value(&currency),
			huh.NewConfirm().
				Title("Set aside a 10% tithe from income?").
				Value(&tithe),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Baseline date, YYYY-MM-DD (empty = today)").
				Value(&baseDate).
				Validate(validateDateOrEmpty),
			huh.NewInput().
				Title("Baseline amount (empty = current balance)").
				Value(&baseAmount).
				Validate(validateAmountOrEmpty),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.InitialBalance, _ = money.ParseAmount(initialIn)
	cfg.DailyDefault, _ = money.ParseAmount(dailyIn)
	cfg.Currency = currency
	cfg.TitheEnabled = tithe
	cfg.Period = nil
	if period != "" {
		cfg.Period = &period
	}

	if baseDate == "" {
		baseDate = time.Now().UTC().Format("2006-01-02")
	}
	cfg.BaseDate = &baseDate

	anchorAmount := cfg.InitialBalance
	if baseAmount != "" {
		anchorAmount, _ = money.ParseAmount(baseAmount)
	}
	cfg.BaseAmount = &anchorAmount

	cfg.IsFirstLaunch = false

	goal := model.Goal{Date: baseDate, Amount: anchorAmount}
	if len(state.Goals) == 0 {
		state.Goals = append(state.Goals, goal)
	} else {
		state.Goals[0] = goal
	}

	if err := s.SaveConfig(*cfg); err != nil {
		return err
	}
	if err := s.SaveState(*state); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", s.ConfigPath())
	fmt.Println("  Run `kopilka init` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateAmount(s string) error {
	_, err := money.ParseAmount(s)
	return err
}

func validateAmountOrEmpty(s string) error {
	if s == "" {
		return nil
	}
	return validateAmount(s)
}

func validateDateOrEmpty(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return nil
}
