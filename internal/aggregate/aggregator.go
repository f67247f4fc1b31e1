package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cyxnb666/AccountingApp/internal/model"
)

// DayGroup is the set of expenses sharing one local calendar day, with a
// precomputed integer-rounded total.
type DayGroup struct {
	Label    string
	Date     time.Time // local midnight of the day
	Expenses []model.Expense
	Total    int
}

// GroupByDay filters expenses to the period's inclusive range, groups them
// by local calendar day, and returns the groups sorted most recent first.
// Within a day, the ledger's insertion order is preserved.
func GroupByDay(p Period, expenses []model.Expense) []DayGroup {
	byDay := make(map[time.Time]*DayGroup)
	var order []time.Time

	for _, e := range expenses {
		if !p.Contains(e.Date) {
			continue
		}
		day := StartOfDay(e.Date)
		g, ok := byDay[day]
		if !ok {
			g = &DayGroup{Label: DayLabel(day), Date: day}
			byDay[day] = g
			order = append(order, day)
		}
		g.Expenses = append(g.Expenses, e)
	}

	groups := make([]DayGroup, 0, len(order))
	for _, day := range order {
		g := byDay[day]
		var sum float64
		for _, e := range g.Expenses {
			sum += e.Amount
		}
		g.Total = int(math.Round(sum))
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// DayLabel returns the localized label for a day: relative for today and
// yesterday, calendar otherwise.
func DayLabel(day time.Time) string {
	today := StartOfDay(time.Now())
	switch {
	case day.Equal(today):
		return "今天"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "昨天"
	default:
		return fmt.Sprintf("%d月%d日", int(day.Month()), day.Day())
	}
}

// Aggregator memoizes the most recent grouping. The cache key pairs the
// period with the ledger's generation counter, so any mutation invalidates
// it — including a delete immediately offset by an add, which a raw
// count-based key would miss.
type Aggregator struct {
	key    string
	gen    uint64
	groups []DayGroup
	valid  bool
}

// NewAggregator creates an empty aggregator cache.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Groups returns the day groups for the period, recomputing only when the
// period or the ledger generation has changed since the last call.
func (a *Aggregator) Groups(p Period, generation uint64, expenses []model.Expense) []DayGroup {
	key := p.Key()
	if a.valid && a.key == key && a.gen == generation {
		return a.groups
	}

	a.groups = GroupByDay(p, expenses)
	a.key = key
	a.gen = generation
	a.valid = true
	return a.groups
}
