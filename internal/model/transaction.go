// Package model holds the persisted document and transaction types.
package model

import (
	"time"

	"github.com/google/uuid"

	"kopilka/internal/money"
)

// Type classifies a ledger transaction.
type Type string

const (
	// TypeIncome is a positive inflow, recorded at its full amount.
	TypeIncome Type = "income"
	// TypeExpense is an ordinary outflow (amount <= 0).
	TypeExpense Type = "expense"
	// TypeTithe is the negative portion of an income set aside into the
	// tithe pool, paired with the income transaction that spawned it.
	TypeTithe Type = "tithe"
	// TypeTitheSpend is a withdrawal from the accumulated tithe pool.
	// It is excluded from balance: the money left the usable balance
	// already when the tithe was set aside.
	TypeTitheSpend Type = "tithe_spend"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTithe, TypeTitheSpend:
		return true
	}
	return false
}

// Transaction is a single immutable entry in the append-only ledger.
type Transaction struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Timestamp   string   `json:"timestamp"` // UTC, RFC 3339
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Type        Type     `json:"type"`
}

// NewTransaction builds a transaction with a fresh id and a UTC creation
// timestamp. The amount is rounded to 2 decimals before being stored; a
// zero amount is permitted and stored as-is.
func NewTransaction(amount float64, description string, tags []string, typ Type) Transaction {
	if tags == nil {
		tags = []string{}
	}
	return Transaction{
		ID:          uuid.NewString(),
		Amount:      money.Round2(amount),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Description: description,
		Tags:        tags,
		Type:        typ,
	}
}
