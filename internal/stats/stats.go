// Package stats computes summary numbers, category breakdowns, and
// period-over-period comparisons for a selected period.
package stats

import (
	"math"
	"sort"

	"github.com/cyxnb666/AccountingApp/internal/aggregate"
	"github.com/cyxnb666/AccountingApp/internal/model"
)

// weeksPerMonth derives the weekly budget from the monthly one; the weekly
// budget is not stored independently.
const weeksPerMonth = 4

// Summary holds the headline numbers for one period.
type Summary struct {
	Total         float64
	Count         int
	DailyAverage  float64 // total / calendar days in the period
	PerRecord     float64 // total / count, 0 when there are no records
	Budget        float64 // the budget applicable to this period
	BudgetUsedPct float64 // 0 when the budget is 0, never NaN or Inf
	Remaining     float64
}

// Summarize computes the summary for a period given the full expense list
// and the monthly budget. Week periods use monthlyBudget/4.
func Summarize(p aggregate.Period, expenses []model.Expense, monthlyBudget float64) Summary {
	var s Summary
	for _, e := range expenses {
		if !p.Contains(e.Date) {
			continue
		}
		s.Total += e.Amount
		s.Count++
	}

	s.DailyAverage = s.Total / float64(p.Days())
	if s.Count > 0 {
		s.PerRecord = s.Total / float64(s.Count)
	}

	s.Budget = monthlyBudget
	if p.Kind == aggregate.KindWeek {
		s.Budget = monthlyBudget / weeksPerMonth
	}
	if s.Budget != 0 {
		s.BudgetUsedPct = s.Total / s.Budget * 100
	}
	s.Remaining = s.Budget - s.Total

	return s
}

// CategoryStat is one category's share of a period's spending.
type CategoryStat struct {
	CategoryID string
	Amount     float64
	Percent    int // rounded independently; a breakdown need not sum to 100
}

// Breakdown groups a period's expenses by category id, sorted by amount
// descending. Percentages are 0 when the period total is 0.
func Breakdown(p aggregate.Period, expenses []model.Expense) []CategoryStat {
	amounts := make(map[string]float64)
	var order []string
	var total float64

	for _, e := range expenses {
		if !p.Contains(e.Date) {
			continue
		}
		if _, ok := amounts[e.Category]; !ok {
			order = append(order, e.Category)
		}
		amounts[e.Category] += e.Amount
		total += e.Amount
	}

	out := make([]CategoryStat, 0, len(order))
	for _, id := range order {
		stat := CategoryStat{CategoryID: id, Amount: amounts[id]}
		if total != 0 {
			stat.Percent = int(math.Round(amounts[id] / total * 100))
		}
		out = append(out, stat)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// Direction indicates how spending moved against a comparison base.
type Direction int

const (
	// Flat means no change, including the zero-base degenerate case.
	Flat Direction = iota
	// Up means spending increased.
	Up
	// Down means spending decreased.
	Down
)

// Change is a directional percent change against a previous period.
type Change struct {
	Percent   float64
	Direction Direction
}

// Compare returns the percent change from previous to current. A zero
// comparison base reports 0%, never Inf or NaN.
func Compare(current, previous float64) Change {
	if previous == 0 {
		return Change{}
	}
	pct := (current - previous) / previous * 100
	c := Change{Percent: math.Abs(pct)}
	switch {
	case pct > 0:
		c.Direction = Up
	case pct < 0:
		c.Direction = Down
	}
	return c
}

// PeriodTotal sums the amounts of expenses falling within the period.
func PeriodTotal(p aggregate.Period, expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if p.Contains(e.Date) {
			total += e.Amount
		}
	}
	return total
}
