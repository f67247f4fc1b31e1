package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyxnb666/AccountingApp/internal/common"
)

type fixedBounds struct {
	earliest, latest time.Time
	empty            bool
}

func (b fixedBounds) EarliestExpenseDate() (time.Time, bool) {
	return b.earliest, !b.empty
}

func (b fixedBounds) LatestExpenseDate() (time.Time, bool) {
	return b.latest, !b.empty
}

func TestNavigatorClamp(t *testing.T) {
	bounds := fixedBounds{
		earliest: time.Date(2025, 5, 10, 12, 0, 0, 0, time.Local),
		latest:   time.Date(2025, 6, 20, 12, 0, 0, 0, time.Local),
	}
	june := Period{Kind: KindMonth, Year: 2025, Month: time.June}

	t.Run("prev stops at the earliest expense-bearing month", func(t *testing.T) {
		nav := NewNavigator(bounds, june)

		require.NoError(t, nav.Prev())
		assert.Equal(t, "month:2025-05", nav.Current().Key())

		err := nav.Prev()
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrPeriodOutOfRange)
		assert.Equal(t, "month:2025-05", nav.Current().Key(), "selection must not change")
	})

	t.Run("next stops at the latest expense-bearing month", func(t *testing.T) {
		nav := NewNavigator(bounds, Period{Kind: KindMonth, Year: 2025, Month: time.May})

		require.NoError(t, nav.Next())
		assert.Equal(t, "month:2025-06", nav.Current().Key())

		err := nav.Next()
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrPeriodOutOfRange)
		assert.Equal(t, "month:2025-06", nav.Current().Key())
	})

	t.Run("boundary errors carry a user-visible message", func(t *testing.T) {
		nav := NewNavigator(bounds, Period{Kind: KindMonth, Year: 2025, Month: time.May})

		err := nav.Prev()
		require.Error(t, err)
		var userErr *common.UserError
		require.ErrorAs(t, err, &userErr)
		assert.NotEmpty(t, userErr.UserMessage)
	})

	t.Run("no expenses rejects any navigation", func(t *testing.T) {
		nav := NewNavigator(fixedBounds{empty: true}, june)

		assert.ErrorIs(t, nav.Prev(), common.ErrPeriodOutOfRange)
		assert.ErrorIs(t, nav.Next(), common.ErrPeriodOutOfRange)
		assert.Equal(t, june.Key(), nav.Current().Key())
	})

	t.Run("week navigation clamps the same way", func(t *testing.T) {
		weekBounds := fixedBounds{
			earliest: time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), // week of 06-09
			latest:   time.Date(2025, 6, 18, 0, 0, 0, 0, time.Local), // week of 06-16
		}
		nav := NewNavigator(weekBounds, WeekOf(weekBounds.latest))

		require.NoError(t, nav.Prev())
		assert.Equal(t, "week:2025-06-09", nav.Current().Key())
		assert.ErrorIs(t, nav.Prev(), common.ErrPeriodOutOfRange)

		require.NoError(t, nav.Next())
		assert.ErrorIs(t, nav.Next(), common.ErrPeriodOutOfRange)
		assert.Equal(t, "week:2025-06-16", nav.Current().Key())
	})

	t.Run("select bypasses the clamp", func(t *testing.T) {
		nav := NewNavigator(bounds, june)
		jan := Period{Kind: KindMonth, Year: 2020, Month: time.January}
		nav.Select(jan)
		assert.Equal(t, jan.Key(), nav.Current().Key())
	})
}
