// Package forecast builds the linear expected-balance schedule and
// measures how far actual savings run ahead of or behind it.
package forecast

import (
	"math"
	"time"

	"kopilka/internal/ledger"
	"kopilka/internal/model"
	"kopilka/internal/money"
)

const isoDate = "2006-01-02"

// Row is one day of the expected-balance schedule.
type Row struct {
	Date     time.Time
	Expected float64
}

// Table is the computed projection around today.
type Table struct {
	Today          time.Time
	CurrentBalance float64
	AnchorDate     time.Time
	AnchorAmount   float64
	Daily          float64
	Rows           []Row
	// OffsetDays is the signed day count by which the actual balance
	// leads (positive) or lags (negative) the schedule.
	OffsetDays int
	AheadDate  time.Time
}

// ResolveAnchor picks the projection baseline. An explicit config anchor
// wins; an unparseable config date falls through to the first stored
// goal; an unparseable goal date means no anchor at all.
func ResolveAnchor(cfg model.Config, st model.State) (time.Time, float64, bool) {
	if cfg.BaseDate != nil && cfg.BaseAmount != nil {
		if d, err := time.Parse(isoDate, *cfg.BaseDate); err == nil {
			return d, *cfg.BaseAmount, true
		}
	}
	if len(st.Goals) > 0 {
		if d, err := time.Parse(isoDate, st.Goals[0].Date); err == nil {
			return d, st.Goals[0].Amount, true
		}
	}
	return time.Time{}, 0, false
}

// Project builds horizonDays of expected-balance rows starting at the
// anchor date and computes the ahead/behind offset for today. Without a
// resolvable anchor the baseline is (today, current balance); an anchor
// dated today has its amount overridden with the live balance. A zero
// daily rate makes the offset undefined, which is reported as 0 days
// (on schedule) rather than dividing by zero.
func Project(cfg model.Config, st model.State, today time.Time, horizonDays int) Table {
	today = dateOf(today)
	daily := cfg.DailyDefault
	current := ledger.Balance(cfg, st)

	anchorDate, anchorAmount, ok := ResolveAnchor(cfg, st)
	if !ok {
		anchorDate, anchorAmount = today, current
	}
	if anchorDate.Equal(today) {
		anchorAmount = current
	}

	rows := make([]Row, 0, horizonDays)
	for d := 0; d < horizonDays; d++ {
		rows = append(rows, Row{
			Date:     anchorDate.AddDate(0, 0, d),
			Expected: expectedAt(anchorAmount, daily, d),
		})
	}

	offsetDays := 0
	if daily != 0 {
		elapsed := daysBetween(anchorDate, today)
		expectedToday := anchorAmount + daily*float64(elapsed)
		diff := money.Round2(current - expectedToday)
		offsetDays = int(math.Floor(diff / daily))
	}

	return Table{
		Today:          today,
		CurrentBalance: current,
		AnchorDate:     anchorDate,
		AnchorAmount:   money.Round2(anchorAmount),
		Daily:          money.Round2(daily),
		Rows:           rows,
		OffsetDays:     offsetDays,
		AheadDate:      today.AddDate(0, 0, offsetDays),
	}
}

// Expected returns the schedule value for an arbitrary date, including
// dates outside the precomputed rows.
func (t Table) Expected(d time.Time) float64 {
	return expectedAt(t.AnchorAmount, t.Daily, daysBetween(t.AnchorDate, dateOf(d)))
}

func expectedAt(anchorAmount, daily float64, days int) float64 {
	return money.Round2(anchorAmount + daily*float64(days))
}

// dateOf truncates an instant to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
