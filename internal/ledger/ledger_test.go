package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyxnb666/AccountingApp/internal/aggregate"
	"github.com/cyxnb666/AccountingApp/internal/common"
	"github.com/cyxnb666/AccountingApp/internal/model"
	"github.com/cyxnb666/AccountingApp/internal/stats"
	"github.com/cyxnb666/AccountingApp/internal/storage"
)

func newTestLedger(t *testing.T) (*Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	l, err := New(context.Background(), store)
	require.NoError(t, err)
	return l, store
}

// assertSameExpenses compares expense slices field by field. JSON round
// trips strip monotonic clocks and normalize locations, so time.Time needs
// Equal, not ==.
func assertSameExpenses(t *testing.T, want, got []model.Expense) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.True(t, want[i].Date.Equal(got[i].Date),
			"date mismatch at %d: %v != %v", i, want[i].Date, got[i].Date)
	}
}

func TestFirstRunDefaults(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.Empty(t, l.Expenses())
	assert.Len(t, l.Categories(), 8)
	assert.Equal(t, float64(DefaultMonthlyBudget), l.Budget())

	ids := make(map[string]bool)
	for _, c := range l.Categories() {
		assert.False(t, ids[c.ID], "duplicate category id %s", c.ID)
		ids[c.ID] = true
	}
	assert.True(t, ids[model.CategoryFood])
	assert.True(t, ids[model.CategoryOther])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	e1 := model.NewExpense(14, "lunch", model.CategoryFood,
		time.Date(2025, 6, 15, 12, 30, 0, 0, time.Local))
	e2 := model.NewExpense(80, "haircut", model.CategoryOther,
		time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	l.AddExpense(ctx, e1)
	l.AddExpense(ctx, e2)

	custom := model.NewCategory("宠物", "🐱")
	l.AddCategory(ctx, custom)
	l.SetBudget(ctx, 6200)

	// A fresh ledger over the same store sees identical state, in the
	// same insertion order.
	reloaded, err := New(ctx, store)
	require.NoError(t, err)

	assertSameExpenses(t, l.Expenses(), reloaded.Expenses())
	assert.Equal(t, l.Categories(), reloaded.Categories())
	assert.Equal(t, 6200.0, reloaded.Budget())
}

func TestPersistedZeroBudgetFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Put(ctx, storage.KeyBudget, []byte("0")))

	l, err := New(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultMonthlyBudget), l.Budget())
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	e1 := model.NewExpense(1, "a", model.CategoryFood, time.Now())
	e2 := model.NewExpense(2, "b", model.CategoryFood, time.Now())
	e3 := model.NewExpense(3, "c", model.CategoryFood, time.Now())
	l.AddExpense(ctx, e1)
	l.AddExpense(ctx, e2)
	l.AddExpense(ctx, e3)

	require.NoError(t, l.DeleteExpense(ctx, e2.ID))

	remaining := l.Expenses()
	require.Len(t, remaining, 2)
	assert.Equal(t, e1.ID, remaining[0].ID)
	assert.Equal(t, e3.ID, remaining[1].ID)

	err := l.DeleteExpense(ctx, "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Len(t, l.Expenses(), 2)
}

func TestClearExpensesKeepsCategoriesAndBudget(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	l.AddExpense(ctx, model.NewExpense(1, "a", model.CategoryFood, time.Now()))
	l.SetBudget(ctx, 8000)
	custom := model.NewCategory("宠物", "🐱")
	l.AddCategory(ctx, custom)

	l.ClearExpenses(ctx)

	assert.Empty(t, l.Expenses())
	assert.Equal(t, 8000.0, l.Budget())
	assert.Len(t, l.Categories(), 9)

	reloaded, err := New(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Expenses())
	assert.Equal(t, 8000.0, reloaded.Budget())
}

func TestCategoryOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("update replaces by id", func(t *testing.T) {
		l, _ := newTestLedger(t)
		c := model.NewCategory("宠物", "🐱")
		l.AddCategory(ctx, c)

		c.Name = "猫猫"
		l.UpdateCategory(ctx, c)

		got, ok := l.CategoryByID(c.ID)
		require.True(t, ok)
		assert.Equal(t, "猫猫", got.Name)
	})

	t.Run("update with unknown id is a no-op", func(t *testing.T) {
		l, _ := newTestLedger(t)
		before := l.Categories()
		l.UpdateCategory(ctx, model.Category{ID: "ghost", Name: "x"})
		assert.Equal(t, before, l.Categories())
	})

	t.Run("duplicate id add is a no-op", func(t *testing.T) {
		l, _ := newTestLedger(t)
		l.AddCategory(ctx, model.Category{ID: model.CategoryFood, Name: "dup"})
		assert.Len(t, l.Categories(), 8)
		got, _ := l.CategoryByID(model.CategoryFood)
		assert.Equal(t, "餐饮", got.Name)
	})

	t.Run("deleting a referenced category leaves a working fallback", func(t *testing.T) {
		l, _ := newTestLedger(t)
		e := model.NewExpense(14, "lunch", model.CategoryFood,
			time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))
		l.AddExpense(ctx, e)

		l.DeleteCategory(ctx, model.CategoryFood)

		_, ok := l.CategoryByID(model.CategoryFood)
		assert.False(t, ok)
		assert.Equal(t, "其他", l.DisplayCategory(e.Category).Name)

		// Aggregation and statistics still work over the dangling reference.
		june := aggregate.Period{Kind: aggregate.KindMonth, Year: 2025, Month: time.June}
		groups := aggregate.GroupByDay(june, l.Expenses())
		require.Len(t, groups, 1)
		breakdown := stats.Breakdown(june, l.Expenses())
		require.Len(t, breakdown, 1)
		assert.Equal(t, model.CategoryFood, breakdown[0].CategoryID)
	})
}

func TestGenerationAndNotification(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	var notified int
	l.Subscribe(func() { notified++ })

	start := l.Generation()
	e := model.NewExpense(1, "a", model.CategoryFood, time.Now())
	l.AddExpense(ctx, e)
	l.SetBudget(ctx, 7000)
	require.NoError(t, l.DeleteExpense(ctx, e.ID))

	assert.Equal(t, start+3, l.Generation())
	assert.Equal(t, 3, notified)

	// An add that restores the previous count still moves the generation.
	countBefore := len(l.Expenses())
	l.AddExpense(ctx, model.NewExpense(2, "b", model.CategoryFood, time.Now()))
	require.NoError(t, l.DeleteExpense(ctx, "missing-id-is-not-a-mutation"))
	assert.Len(t, l.Expenses(), countBefore+1)
	assert.Equal(t, start+4, l.Generation())
}

func TestImportBatch(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	putsBefore := store.PutCount
	res := l.Import(ctx, "2025,6,15,14,午饭,餐饮\n2025,6,15,6,地铁,交通\nbad,line\n2025,6,14,80,理发,其他")

	assert.Len(t, res.Imported, 3)
	assert.Equal(t, []int{3}, res.SkippedLines)
	assert.Len(t, l.Expenses(), 3)
	assert.Equal(t, putsBefore+1, store.PutCount, "a batch import persists exactly once")

	june := aggregate.Period{Kind: aggregate.KindMonth, Year: 2025, Month: time.June}
	groups := aggregate.GroupByDay(june, l.Expenses())
	require.Len(t, groups, 2)
	assert.Equal(t, 15, groups[0].Date.Day())
	assert.Equal(t, 20, groups[0].Total)
	assert.Equal(t, 14, groups[1].Date.Day())
	assert.Equal(t, 80, groups[1].Total)

	t.Run("import with nothing well-formed persists nothing", func(t *testing.T) {
		puts := store.PutCount
		res := l.Import(ctx, "bad\nworse,still")
		assert.Empty(t, res.Imported)
		assert.Len(t, res.SkippedLines, 2)
		assert.Equal(t, puts, store.PutCount)
	})
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	l.AddExpense(ctx, model.NewExpense(14, "午饭", model.CategoryFood,
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)))
	l.AddExpense(ctx, model.NewExpense(80.5, "理发", model.CategoryOther,
		time.Date(2025, 6, 14, 9, 0, 0, 0, time.Local)))

	other, _ := newTestLedger(t)
	res := other.Import(ctx, l.Export())

	require.Len(t, res.Imported, 2)
	assert.Empty(t, res.SkippedLines)
	assert.Equal(t, 14.0, res.Imported[0].Amount)
	assert.Equal(t, model.CategoryFood, res.Imported[0].Category)
	assert.Equal(t, 80.5, res.Imported[1].Amount)
	assert.Equal(t, model.CategoryOther, res.Imported[1].Category)
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	store.FailPuts = true
	e := model.NewExpense(1, "a", model.CategoryFood, time.Now())
	l.AddExpense(ctx, e)

	// The mutation stands; only the save failed.
	require.Len(t, l.Expenses(), 1)
	assert.Error(t, l.LastSaveErr())

	// A reload sees the pre-failure durable state.
	reloaded, err := New(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Expenses())

	// The next successful save converges again.
	store.FailPuts = false
	l.AddExpense(ctx, model.NewExpense(2, "b", model.CategoryFood, time.Now()))
	assert.NoError(t, l.LastSaveErr())
	reloaded, err = New(ctx, store)
	require.NoError(t, err)
	assert.Len(t, reloaded.Expenses(), 2)
}

func TestExpenseDateBounds(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	_, ok := l.EarliestExpenseDate()
	assert.False(t, ok)

	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)
	june := time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)
	l.AddExpense(ctx, model.NewExpense(1, "a", model.CategoryFood, june))
	l.AddExpense(ctx, model.NewExpense(2, "b", model.CategoryFood, may))

	earliest, ok := l.EarliestExpenseDate()
	require.True(t, ok)
	assert.True(t, earliest.Equal(may))

	latest, ok := l.LatestExpenseDate()
	require.True(t, ok)
	assert.True(t, latest.Equal(june))
}

func TestScenarioAddThenAggregate(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	l.AddExpense(ctx, model.NewExpense(14, "lunch", model.CategoryFood,
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)))

	june := aggregate.Period{Kind: aggregate.KindMonth, Year: 2025, Month: time.June}
	groups := aggregate.NewAggregator().Groups(june, l.Generation(), l.Expenses())

	require.Len(t, groups, 1)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), groups[0].Date)
	assert.Equal(t, 14, groups[0].Total)
	assert.Len(t, groups[0].Expenses, 1)
}
