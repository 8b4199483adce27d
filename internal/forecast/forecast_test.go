package forecast

import (
	"testing"
	"time"

	"kopilka/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(isoDate, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestResolveAnchorConfigWins(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.BaseDate = strPtr("2024-01-01")
	cfg.BaseAmount = floatPtr(1000)
	st := model.State{Goals: []model.Goal{{Date: "2023-06-01", Amount: 5}}}

	d, amount, ok := ResolveAnchor(cfg, st)
	if !ok {
		t.Fatal("expected an anchor")
	}
	if !d.Equal(mustDate(t, "2024-01-01")) || amount != 1000 {
		t.Fatalf("anchor = %s, %v", d.Format(isoDate), amount)
	}
}

func TestResolveAnchorBadConfigDateFallsThrough(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.BaseDate = strPtr("not-a-date")
	cfg.BaseAmount = floatPtr(1000)
	st := model.State{Goals: []model.Goal{{Date: "2023-06-01", Amount: 5}}}

	d, amount, ok := ResolveAnchor(cfg, st)
	if !ok {
		t.Fatal("expected goal anchor")
	}
	if !d.Equal(mustDate(t, "2023-06-01")) || amount != 5 {
		t.Fatalf("anchor = %s, %v", d.Format(isoDate), amount)
	}
}

func TestResolveAnchorNone(t *testing.T) {
	cases := []struct {
		name string
		cfg  model.Config
		st   model.State
	}{
		{"nothing set", model.DefaultConfig(), model.State{}},
		{"bad goal date", model.DefaultConfig(), model.State{Goals: []model.Goal{{Date: "??", Amount: 1}}}},
	}
	for _, tc := range cases {
		if _, _, ok := ResolveAnchor(tc.cfg, tc.st); ok {
			t.Fatalf("%s: expected no anchor", tc.name)
		}
	}
}

func TestProjectWorkedExample(t *testing.T) {
	// Anchor (2024-01-01, 1000), daily 100, today 2024-01-11, balance 3000:
	// expected today 2000, diff 1000, so 10 days ahead, through 2024-01-21.
	cfg := model.DefaultConfig()
	cfg.DailyDefault = 100
	cfg.InitialBalance = 3000
	cfg.BaseDate = strPtr("2024-01-01")
	cfg.BaseAmount = floatPtr(1000)
	st := model.DefaultState()

	tbl := Project(cfg, st, mustDate(t, "2024-01-11"), 90)

	if tbl.CurrentBalance != 3000 {
		t.Fatalf("current balance = %v", tbl.CurrentBalance)
	}
	if tbl.OffsetDays != 10 {
		t.Fatalf("offset = %d, want 10", tbl.OffsetDays)
	}
	if !tbl.AheadDate.Equal(mustDate(t, "2024-01-21")) {
		t.Fatalf("ahead date = %s, want 2024-01-21", tbl.AheadDate.Format(isoDate))
	}

	if len(tbl.Rows) != 90 {
		t.Fatalf("rows = %d, want 90", len(tbl.Rows))
	}
	if !tbl.Rows[0].Date.Equal(tbl.AnchorDate) || tbl.Rows[0].Expected != 1000 {
		t.Fatalf("row 0 = %+v", tbl.Rows[0])
	}
	// Row at today's offset must match the value the offset was derived from.
	if tbl.Rows[10].Expected != 2000 {
		t.Fatalf("expected today = %v, want 2000", tbl.Rows[10].Expected)
	}
	// Round trip: the schedule at the ahead date equals the actual balance.
	if got := tbl.Expected(tbl.AheadDate); got != tbl.CurrentBalance {
		t.Fatalf("expected(aheadDate) = %v, want %v", got, tbl.CurrentBalance)
	}
}

func TestProjectBehindSchedule(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DailyDefault = 100
	cfg.InitialBalance = 1500
	cfg.BaseDate = strPtr("2024-01-01")
	cfg.BaseAmount = floatPtr(1000)

	tbl := Project(cfg, model.DefaultState(), mustDate(t, "2024-01-11"), 30)
	if tbl.OffsetDays != -5 {
		t.Fatalf("offset = %d, want -5", tbl.OffsetDays)
	}
	if !tbl.AheadDate.Equal(mustDate(t, "2024-01-06")) {
		t.Fatalf("ahead date = %s, want 2024-01-06", tbl.AheadDate.Format(isoDate))
	}
}

func TestProjectZeroDailyRate(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DailyDefault = 0
	cfg.InitialBalance = 3000
	cfg.BaseDate = strPtr("2024-01-01")
	cfg.BaseAmount = floatPtr(1000)

	today := mustDate(t, "2024-01-11")
	tbl := Project(cfg, model.DefaultState(), today, 30)

	if tbl.OffsetDays != 0 {
		t.Fatalf("offset = %d, want 0 for zero rate", tbl.OffsetDays)
	}
	if !tbl.AheadDate.Equal(today) {
		t.Fatalf("ahead date = %s, want today", tbl.AheadDate.Format(isoDate))
	}
}

func TestProjectSameDayAnchorUsesLiveBalance(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DailyDefault = 100
	cfg.InitialBalance = 3000
	cfg.BaseDate = strPtr("2024-01-11")
	cfg.BaseAmount = floatPtr(500) // stale recorded amount

	tbl := Project(cfg, model.DefaultState(), mustDate(t, "2024-01-11"), 30)
	if tbl.AnchorAmount != 3000 {
		t.Fatalf("anchor amount = %v, want live balance 3000", tbl.AnchorAmount)
	}
	if tbl.OffsetDays != 0 {
		t.Fatalf("offset = %d, want 0", tbl.OffsetDays)
	}
}

func TestProjectNoAnchorDefaultsToToday(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DailyDefault = 100
	cfg.InitialBalance = 250

	today := mustDate(t, "2024-03-05")
	tbl := Project(cfg, model.DefaultState(), today, 30)

	if !tbl.AnchorDate.Equal(today) || tbl.AnchorAmount != 250 {
		t.Fatalf("anchor = %s, %v; want today/current balance", tbl.AnchorDate.Format(isoDate), tbl.AnchorAmount)
	}
	if tbl.OffsetDays != 0 {
		t.Fatalf("offset = %d, want 0", tbl.OffsetDays)
	}
}

func TestTableExpectedExtrapolates(t *testing.T) {
	tbl := Table{
		AnchorDate:   mustDate(t, "2024-01-01"),
		AnchorAmount: 1000,
		Daily:        100,
	}
	cases := []struct {
		date string
		want float64
	}{
		{"2024-01-01", 1000},
		{"2024-04-10", 11000}, // 100 days out, beyond any precomputed horizon
		{"2023-12-22", 0},     // before the anchor
	}
	for _, tc := range cases {
		if got := tbl.Expected(mustDate(t, tc.date)); got != tc.want {
			t.Fatalf("Expected(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}
