package model

import (
	"testing"
	"time"
)

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction(10.005, "salary", []string{"work"}, TypeIncome)

	if tx.Amount != 10.01 {
		t.Fatalf("amount = %v, want 10.01", tx.Amount)
	}
	if tx.Type != TypeIncome {
		t.Fatalf("type = %q, want income", tx.Type)
	}
	if tx.ID == "" {
		t.Fatal("expected a generated id")
	}
	if _, err := time.Parse(time.RFC3339, tx.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", tx.Timestamp, err)
	}
	if len(tx.Tags) != 1 || tx.Tags[0] != "work" {
		t.Fatalf("tags = %v", tx.Tags)
	}
}

func TestNewTransactionDefaultsNilTags(t *testing.T) {
	tx := NewTransaction(-5, "", nil, TypeExpense)
	if tx.Tags == nil || len(tx.Tags) != 0 {
		t.Fatalf("tags = %#v, want empty non-nil slice", tx.Tags)
	}
}

func TestNewTransactionUniqueIDs(t *testing.T) {
	a := NewTransaction(1, "", nil, TypeIncome)
	b := NewTransaction(1, "", nil, TypeIncome)
	if a.ID == b.ID {
		t.Fatalf("ids not unique: %s", a.ID)
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeIncome, TypeExpense, TypeTithe, TypeTitheSpend} {
		if !typ.Valid() {
			t.Fatalf("%q should be valid", typ)
		}
	}
	if Type("refund").Valid() {
		t.Fatal("unknown type should not be valid")
	}
}
