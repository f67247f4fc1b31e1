package aggregate

import (
	"time"

	"github.com/cyxnb666/AccountingApp/internal/common"
)

// Bounds supplies the date range actually covered by recorded expenses.
// The ledger satisfies this.
type Bounds interface {
	EarliestExpenseDate() (time.Time, bool)
	LatestExpenseDate() (time.Time, bool)
}

// Navigator steps the selected period backward and forward, clamped to the
// inclusive range from the earliest to the latest expense-bearing period.
// A rejected move leaves the selection unchanged.
type Navigator struct {
	bounds  Bounds
	current Period
}

// NewNavigator creates a navigator starting at the given period.
func NewNavigator(bounds Bounds, start Period) *Navigator {
	return &Navigator{bounds: bounds, current: start}
}

// Current returns the selected period.
func (n *Navigator) Current() Period {
	return n.current
}

// Select jumps directly to a period, bypassing the clamp. Used when the
// user names an explicit month or week rather than stepping.
func (n *Navigator) Select(p Period) {
	n.current = p
}

// Prev moves to the preceding period, rejecting moves before the period
// containing the earliest expense.
func (n *Navigator) Prev() error {
	earliest, ok := n.bounds.EarliestExpenseDate()
	if !ok {
		return common.NewUserError("还没有任何记录", common.ErrPeriodOutOfRange)
	}
	candidate := n.current.Prev()
	if candidate.End().Before(earliest.Local()) {
		return common.NewUserError("已经是最早的记录了", common.ErrPeriodOutOfRange)
	}
	n.current = candidate
	return nil
}

// Next moves to the following period, rejecting moves past the period
// containing the latest expense.
func (n *Navigator) Next() error {
	latest, ok := n.bounds.LatestExpenseDate()
	if !ok {
		return common.NewUserError("还没有任何记录", common.ErrPeriodOutOfRange)
	}
	candidate := n.current.Next()
	if candidate.Start().After(latest.Local()) {
		return common.NewUserError("已经是最新的记录了", common.ErrPeriodOutOfRange)
	}
	n.current = candidate
	return nil
}
