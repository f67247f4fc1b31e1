package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 8)

	ids := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)
	}

	for _, id := range []string{
		CategoryFood, CategoryTransport, CategoryEntertainment, CategoryShopping,
		CategoryMedical, CategoryGift, CategoryBills, CategoryOther,
	} {
		assert.True(t, ids[id], "missing built-in %s", id)
	}
}

func TestCategoryIDForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"餐饮", CategoryFood},
		{"交通", CategoryTransport},
		{"娱乐", CategoryEntertainment},
		{"购物", CategoryShopping},
		{"医疗", CategoryMedical},
		{"人情", CategoryGift},
		{"缴费", CategoryBills},
		{"其他", CategoryOther},
		{"没见过的名字", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryIDForName(tt.name), "name %q", tt.name)
	}
}

func TestNewCategoryGeneratesUniqueIDs(t *testing.T) {
	a := NewCategory("宠物", "🐱")
	b := NewCategory("宠物", "🐱")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewExpenseDefaultsDateToNow(t *testing.T) {
	e := NewExpense(14, "lunch", CategoryFood, time.Time{})
	assert.False(t, e.Date.IsZero())
	assert.NotEmpty(t, e.ID)
}
