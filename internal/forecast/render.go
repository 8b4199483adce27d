package forecast

import (
	"fmt"
	"strings"
	"time"
)

// Render formats a projection as a header block, a windowed date/expected
// table, and a summary sentence. The window is placed relative to how far
// the ahead date sits from today:
//
//	far behind (<= -14d)  window at ahead date, ellipsis, today's row
//	slightly behind       window at ahead date (today falls inside)
//	slightly ahead (<14d) window at today (ahead date falls inside)
//	far ahead (>= 14d)    window at today, ellipsis, ahead date's row
//
// Rows beyond the precomputed horizon are extrapolated with the same
// linear formula.
func Render(t Table, windowSize int, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today %s   Current balance: %.2f %s\n",
		t.Today.Format(isoDate), t.CurrentBalance, currency)
	fmt.Fprintf(&b, "Base: %s -> %.2f\n", t.AnchorDate.Format(isoDate), t.AnchorAmount)
	fmt.Fprintf(&b, "Daily expected (clean): %.2f\n", t.Daily)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-10s | %12s\n", "Date", "Expected")
	b.WriteString(strings.Repeat("-", 27))
	b.WriteString("\n")

	writeRange := func(start time.Time, count int) {
		day := start
		for i := 0; i < count; i++ {
			b.WriteString(t.renderRow(day))
			day = day.AddDate(0, 0, 1)
		}
	}

	delta := daysBetween(t.Today, t.AheadDate)
	switch {
	case delta <= -14:
		writeRange(t.AheadDate, windowSize)
		fmt.Fprintf(&b, "%11s\n", "...")
		b.WriteString(t.renderRow(t.Today))
	case delta < 0:
		writeRange(t.AheadDate, windowSize)
	case delta <= 13:
		writeRange(t.Today, windowSize)
	default:
		writeRange(t.Today, windowSize)
		fmt.Fprintf(&b, "%11s\n", "...")
		b.WriteString(t.renderRow(t.AheadDate))
	}

	b.WriteString("\n")
	b.WriteString(t.summary())
	b.WriteString("\n")

	return b.String()
}

func (t Table) renderRow(d time.Time) string {
	mark := ""
	if d.Equal(t.Today) {
		mark = " <today"
	}
	if d.Equal(t.AheadDate) {
		if mark != "" {
			mark += ",ahead"
		} else {
			mark = " <ahead"
		}
	}
	return fmt.Sprintf("%-10s | %12.2f%s\n", d.Format(isoDate), t.Expected(d), mark)
}

func (t Table) summary() string {
	ahead := t.AheadDate.Format(isoDate)
	switch {
	case t.OffsetDays > 0:
		return fmt.Sprintf("You are %d days ahead of schedule, funded through %s.", t.OffsetDays, ahead)
	case t.OffsetDays < 0:
		return fmt.Sprintf("You are %d days behind schedule, covered only through %s.", -t.OffsetDays, ahead)
	default:
		return fmt.Sprintf("You are right on schedule as of %s.", ahead)
	}
}
