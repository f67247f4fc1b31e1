// Package ledger owns the canonical in-memory expense, category, and budget
// collections and mediates every read and write to durable storage.
//
// The ledger is constructed once and passed by reference to whatever
// composes the user interface. It is deliberately not safe for concurrent
// use: all access happens on one logical thread of control.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cyxnb666/AccountingApp/internal/common"
	"github.com/cyxnb666/AccountingApp/internal/importer"
	"github.com/cyxnb666/AccountingApp/internal/model"
	"github.com/cyxnb666/AccountingApp/internal/storage"
)

// DefaultMonthlyBudget is used when no budget was ever persisted, or when
// the persisted value is exactly zero.
const DefaultMonthlyBudget = 5000

// Ledger is the single source of truth for expenses, categories, and the
// monthly budget. Every mutation rewrites the affected collection to
// durable storage in full; persistence is best-effort and a failed save
// leaves the in-memory mutation standing.
type Ledger struct {
	store       storage.Store
	expenses    []model.Expense
	categories  []model.Category
	budget      float64
	generation  uint64
	subscribers []func()
	lastSaveErr error
}

// New constructs a ledger backed by store, loading all persisted state.
// Absent categories seed the built-in default set; an absent or zero
// budget falls back to DefaultMonthlyBudget.
func New(ctx context.Context, store storage.Store) (*Ledger, error) {
	l := &Ledger{store: store}

	if err := l.loadExpenses(ctx); err != nil {
		return nil, err
	}
	if err := l.loadCategories(ctx); err != nil {
		return nil, err
	}
	if err := l.loadBudget(ctx); err != nil {
		return nil, err
	}

	slog.Debug("ledger loaded",
		"expenses", len(l.expenses),
		"categories", len(l.categories),
		"budget", l.budget)
	return l, nil
}

func (l *Ledger) loadExpenses(ctx context.Context) error {
	data, err := l.store.Get(ctx, storage.KeyExpenses)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	if err := json.Unmarshal(data, &l.expenses); err != nil {
		return fmt.Errorf("failed to decode expenses: %w", err)
	}
	return nil
}

func (l *Ledger) loadCategories(ctx context.Context) error {
	data, err := l.store.Get(ctx, storage.KeyCategories)
	if errors.Is(err, common.ErrNotFound) {
		l.categories = model.DefaultCategories()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if err := json.Unmarshal(data, &l.categories); err != nil {
		return fmt.Errorf("failed to decode categories: %w", err)
	}
	return nil
}

func (l *Ledger) loadBudget(ctx context.Context) error {
	data, err := l.store.Get(ctx, storage.KeyBudget)
	if errors.Is(err, common.ErrNotFound) {
		l.budget = DefaultMonthlyBudget
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if err := json.Unmarshal(data, &l.budget); err != nil {
		return fmt.Errorf("failed to decode budget: %w", err)
	}
	if l.budget == 0 {
		l.budget = DefaultMonthlyBudget
	}
	return nil
}

// Subscribe registers a callback fired after every mutation. The
// presentation layer uses this instead of polling.
func (l *Ledger) Subscribe(fn func()) {
	l.subscribers = append(l.subscribers, fn)
}

// Generation returns a monotonic counter incremented on every mutating
// call. Derived-view caches key on it to invalidate correctly even when a
// delete is immediately offset by an add.
func (l *Ledger) Generation() uint64 {
	return l.generation
}

// LastSaveErr reports the outcome of the most recent persistence attempt.
// A non-nil value means in-memory and durable state have diverged.
func (l *Ledger) LastSaveErr() error {
	return l.lastSaveErr
}

func (l *Ledger) mutated() {
	l.generation++
	for _, fn := range l.subscribers {
		fn()
	}
}

// save marshals v and writes it under key. Failures are logged and
// remembered, never propagated: the in-memory state stays authoritative
// until a future save succeeds.
func (l *Ledger) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = l.store.Put(ctx, key, data)
	}
	l.lastSaveErr = err
	if err != nil {
		slog.Warn("failed to persist collection", "key", key, "error", err)
	}
}

// Expenses returns a copy of the expense collection in insertion order.
func (l *Ledger) Expenses() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// AddExpense appends an expense and persists the full collection.
func (l *Ledger) AddExpense(ctx context.Context, e model.Expense) {
	l.expenses = append(l.expenses, e)
	l.save(ctx, storage.KeyExpenses, l.expenses)
	l.mutated()
}

// DeleteExpense removes the expense with the given id, preserving the
// order of the remainder. Returns common.ErrNotFound for unknown ids.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	for i, e := range l.expenses {
		if e.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			l.save(ctx, storage.KeyExpenses, l.expenses)
			l.mutated()
			return nil
		}
	}
	return fmt.Errorf("expense %q: %w", id, common.ErrNotFound)
}

// ClearExpenses empties the expense collection. Categories and the budget
// are untouched.
func (l *Ledger) ClearExpenses(ctx context.Context) {
	l.expenses = nil
	l.save(ctx, storage.KeyExpenses, []model.Expense{})
	l.mutated()
}

// Categories returns a copy of the category collection.
func (l *Ledger) Categories() []model.Category {
	out := make([]model.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// CategoryByID looks up a category, reporting explicitly whether it exists.
func (l *Ledger) CategoryByID(id string) (model.Category, bool) {
	for _, c := range l.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// DisplayCategory resolves a category id for presentation. Dangling ids —
// an expense whose category was deleted — uniformly render as the
// fallback bucket.
func (l *Ledger) DisplayCategory(id string) model.Category {
	if c, ok := l.CategoryByID(id); ok {
		return c
	}
	return model.FallbackCategory()
}

// AddCategory appends a category and persists the collection. A duplicate
// id is a no-op, preserving id uniqueness within the set.
func (l *Ledger) AddCategory(ctx context.Context, c model.Category) {
	if _, ok := l.CategoryByID(c.ID); ok {
		return
	}
	l.categories = append(l.categories, c)
	l.save(ctx, storage.KeyCategories, l.categories)
	l.mutated()
}

// UpdateCategory replaces the category with a matching id. Unknown ids are
// a no-op.
func (l *Ledger) UpdateCategory(ctx context.Context, c model.Category) {
	for i, existing := range l.categories {
		if existing.ID == c.ID {
			l.categories[i] = c
			l.save(ctx, storage.KeyCategories, l.categories)
			l.mutated()
			return
		}
	}
}

// DeleteCategory removes the category with the given id. Expenses that
// reference it keep their id and render under the fallback bucket.
func (l *Ledger) DeleteCategory(ctx context.Context, id string) {
	for i, c := range l.categories {
		if c.ID == id {
			l.categories = append(l.categories[:i], l.categories[i+1:]...)
			l.save(ctx, storage.KeyCategories, l.categories)
			l.mutated()
			return
		}
	}
}

// Budget returns the monthly budget.
func (l *Ledger) Budget() float64 {
	return l.budget
}

// SetBudget replaces the monthly budget wholesale and persists it.
func (l *Ledger) SetBudget(ctx context.Context, v float64) {
	l.budget = v
	l.save(ctx, storage.KeyBudget, v)
	l.mutated()
}

// Import parses the historical text format and appends all well-formed
// records in one batch with exactly one persistence write. Malformed lines
// are skipped and reported in the result, never fatal.
func (l *Ledger) Import(ctx context.Context, text string) importer.Result {
	res := importer.Parse(text)
	if len(res.Imported) > 0 {
		l.expenses = append(l.expenses, res.Imported...)
		l.save(ctx, storage.KeyExpenses, l.expenses)
		l.mutated()
	}
	slog.Info("imported historical records",
		"imported", len(res.Imported),
		"skipped", len(res.SkippedLines))
	return res
}

// Export renders every expense in the historical text format, one line per
// record, so the output round-trips through Import.
func (l *Ledger) Export() string {
	lines := make([]importer.ExportLine, 0, len(l.expenses))
	for _, e := range l.expenses {
		d := e.Date.Local()
		lines = append(lines, importer.ExportLine{
			Year:        d.Year(),
			Month:       int(d.Month()),
			Day:         d.Day(),
			Amount:      e.Amount,
			Description: e.Description,
			Category:    l.DisplayCategory(e.Category).Name,
		})
	}
	return importer.Export(lines)
}

// EarliestExpenseDate returns the oldest expense date, if any expenses exist.
func (l *Ledger) EarliestExpenseDate() (time.Time, bool) {
	var earliest time.Time
	for i, e := range l.expenses {
		if i == 0 || e.Date.Before(earliest) {
			earliest = e.Date
		}
	}
	return earliest, len(l.expenses) > 0
}

// LatestExpenseDate returns the newest expense date, if any expenses exist.
func (l *Ledger) LatestExpenseDate() (time.Time, bool) {
	var latest time.Time
	for i, e := range l.expenses {
		if i == 0 || e.Date.After(latest) {
			latest = e.Date
		}
	}
	return latest, len(l.expenses) > 0
}
