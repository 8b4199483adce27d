// Package ledger computes balance and tithe-pool totals from the
// transaction log and implements the two mutating operations: recording a
// transaction and spending from the tithe pool.
package ledger

import (
	"errors"
	"fmt"
	"math"

	"kopilka/internal/model"
	"kopilka/internal/money"
)

var (
	// ErrAmountNotNegative reports a tithe spend with a non-negative amount.
	ErrAmountNotNegative = errors.New("amount must be negative")
	// ErrInsufficientFunds reports a tithe spend exceeding the pool.
	ErrInsufficientFunds = errors.New("insufficient tithe funds")
)

// Saver persists the documents after a mutation. Both documents are
// written on every mutation, even when config itself did not change.
type Saver interface {
	SaveConfig(model.Config) error
	SaveState(model.State) error
}

// Balance returns the usable balance: initial balance plus all
// transactions except tithe spends. A tithe spend draws on money that was
// already subtracted from the usable balance when the tithe was set
// aside, so counting it here would double-subtract.
func Balance(cfg model.Config, st model.State) float64 {
	total := cfg.InitialBalance
	for _, tx := range st.Transactions {
		if tx.Type != model.TypeTitheSpend {
			total += tx.Amount
		}
	}
	return money.Round2(total)
}

// TithePool returns the accumulated tithe minus what has been spent.
// Tithe and tithe-spend amounts are both stored negative. The arithmetic
// is reported as-is even if hand-edited state drives it below zero.
func TithePool(st model.State) float64 {
	total := 0.0
	for _, tx := range st.Transactions {
		switch tx.Type {
		case model.TypeTithe:
			total += -tx.Amount
		case model.TypeTitheSpend:
			total += tx.Amount
		}
	}
	return money.Round2(total)
}

// LastTransactions returns the most recent limit transactions by log
// order, newest first. A limit beyond the log length returns the whole
// log; a non-positive limit returns nothing.
func LastTransactions(st model.State, limit int) []model.Transaction {
	if limit <= 0 {
		return []model.Transaction{}
	}
	n := len(st.Transactions)
	if limit > n {
		limit = n
	}
	out := make([]model.Transaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, st.Transactions[i])
	}
	return out
}

// Record classifies and appends a transaction, then persists both
// documents. A positive amount with tithe enabled is split into a full
// income transaction plus a separate tithe transaction for -10% of it;
// a tithe that rounds to zero is skipped. Any other amount becomes a
// single income or expense transaction (zero counts as expense).
// The appended transactions are returned in log order.
func Record(s Saver, cfg *model.Config, st *model.State, amount float64, description string, tags []string) ([]model.Transaction, error) {
	var added []model.Transaction

	switch {
	case amount > 0 && cfg.TitheEnabled:
		income := model.NewTransaction(amount, description, tags, model.TypeIncome)
		added = append(added, income)

		if tithe := money.Tithe(amount); tithe != 0 {
			desc := fmt.Sprintf("tithe for %s", income.ID)
			added = append(added, model.NewTransaction(-tithe, desc, nil, model.TypeTithe))
		}
	case amount > 0:
		added = append(added, model.NewTransaction(amount, description, tags, model.TypeIncome))
	default:
		added = append(added, model.NewTransaction(amount, description, tags, model.TypeExpense))
	}

	st.Transactions = append(st.Transactions, added...)

	if err := s.SaveState(*st); err != nil {
		return nil, err
	}
	if err := s.SaveConfig(*cfg); err != nil {
		return nil, err
	}
	return added, nil
}

// SpendTithe withdraws from the tithe pool. The amount must be strictly
// negative and its magnitude must not exceed the current pool; on failure
// the state is left unmodified.
func SpendTithe(s Saver, cfg *model.Config, st *model.State, amount float64, description string) (model.Transaction, error) {
	if amount >= 0 {
		return model.Transaction{}, ErrAmountNotNegative
	}

	pool := TithePool(*st)
	if math.Abs(amount) > pool {
		return model.Transaction{}, fmt.Errorf("%w: current tithe pool is %.2f", ErrInsufficientFunds, pool)
	}

	if description == "" {
		description = "tithe spend"
	}
	tx := model.NewTransaction(amount, description, nil, model.TypeTitheSpend)
	st.Transactions = append(st.Transactions, tx)

	if err := s.SaveState(*st); err != nil {
		return model.Transaction{}, err
	}
	if err := s.SaveConfig(*cfg); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}
