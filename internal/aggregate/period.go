// Package aggregate turns the flat expense list into per-day groups for a
// selected calendar period (month or week).
package aggregate

import (
	"fmt"
	"time"
)

// Kind distinguishes the two supported aggregation windows.
type Kind int

const (
	// KindMonth selects a calendar month.
	KindMonth Kind = iota
	// KindWeek selects a Monday-based calendar week.
	KindWeek
)

// Period is a calendar month or week used as a query window. Day boundaries
// follow the user's local calendar, never UTC midnight: an expense logged at
// 23:30 local time belongs to that local day.
type Period struct {
	Kind      Kind
	Year      int        // month periods
	Month     time.Month // month periods
	WeekStart time.Time  // week periods: local midnight on Monday
}

// MonthOf returns the month period containing t.
func MonthOf(t time.Time) Period {
	t = t.Local()
	return Period{Kind: KindMonth, Year: t.Year(), Month: t.Month()}
}

// WeekOf returns the Monday-based week period containing t.
func WeekOf(t time.Time) Period {
	day := StartOfDay(t)
	// time.Weekday has Sunday == 0; shift so Monday == 0
	offset := (int(day.Weekday()) + 6) % 7
	return Period{Kind: KindWeek, WeekStart: day.AddDate(0, 0, -offset)}
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Start returns the first instant of the period, in local time.
func (p Period) Start() time.Time {
	if p.Kind == KindWeek {
		return p.WeekStart
	}
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local)
}

// nextStart returns the first instant of the following period.
func (p Period) nextStart() time.Time {
	if p.Kind == KindWeek {
		return p.WeekStart.AddDate(0, 0, 7)
	}
	return p.Start().AddDate(0, 1, 0)
}

// End returns the last instant of the period. Together with Start this
// makes the period an inclusive [start, end] range.
func (p Period) End() time.Time {
	return p.nextStart().Add(-time.Nanosecond)
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	t = t.Local()
	return !t.Before(p.Start()) && t.Before(p.nextStart())
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	if p.Kind == KindWeek {
		return 7
	}
	// day 0 of the next month is the last day of this one
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Prev returns the immediately preceding period.
func (p Period) Prev() Period {
	if p.Kind == KindWeek {
		return Period{Kind: KindWeek, WeekStart: p.WeekStart.AddDate(0, 0, -7)}
	}
	return MonthOf(p.Start().AddDate(0, -1, 0))
}

// Next returns the immediately following period.
func (p Period) Next() Period {
	if p.Kind == KindWeek {
		return Period{Kind: KindWeek, WeekStart: p.WeekStart.AddDate(0, 0, 7)}
	}
	return MonthOf(p.nextStart())
}

// YearEarlier returns the same month one year back, or the week-aligned
// range one year back, for year-over-year comparison.
func (p Period) YearEarlier() Period {
	if p.Kind == KindWeek {
		return WeekOf(p.WeekStart.AddDate(-1, 0, 0))
	}
	return Period{Kind: KindMonth, Year: p.Year - 1, Month: p.Month}
}

// Key is a stable identity string used for cache keying and equality.
func (p Period) Key() string {
	if p.Kind == KindWeek {
		return "week:" + p.WeekStart.Format("2006-01-02")
	}
	return fmt.Sprintf("month:%04d-%02d", p.Year, int(p.Month))
}

// Equal reports whether two periods select the same window.
func (p Period) Equal(other Period) bool {
	return p.Key() == other.Key()
}

// Label returns the localized display label for the period.
func (p Period) Label() string {
	if p.Kind == KindWeek {
		end := p.WeekStart.AddDate(0, 0, 6)
		return fmt.Sprintf("%d月%d日 - %d月%d日",
			int(p.WeekStart.Month()), p.WeekStart.Day(),
			int(end.Month()), end.Day())
	}
	return fmt.Sprintf("%d年%d月", p.Year, int(p.Month))
}
