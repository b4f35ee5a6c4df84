package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-calendar/internal/domain"
)

func testState() (*domain.CategoryIndex, *domain.EntrySheet) {
	categories := domain.NewCategoryIndex()
	categories.Add(domain.Category{ID: "a", Name: "Consulting", Rate: 100})
	categories.Add(domain.Category{ID: "b", Name: "Support", Rate: 80})

	sheet := domain.NewEntrySheet(2026, time.August)
	return categories, sheet
}

func TestAggregationEngine_DayTotal(t *testing.T) {
	engine := NewAggregationEngine()

	t.Run("single category", func(t *testing.T) {
		categories, sheet := testState()
		sheet.Put(14, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 3})

		assert.Equal(t, 300.0, engine.DayTotal(categories, sheet, 14))
	})

	t.Run("multiple categories", func(t *testing.T) {
		categories, sheet := testState()
		sheet.Put(14, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 0.5})
		sheet.Put(14, domain.DayEntry{ID: "e2", CategoryID: "b", Hours: 2})

		// 0.5*100 + 2*80
		assert.Equal(t, 210.0, engine.DayTotal(categories, sheet, 14))
	})

	t.Run("hidden category contributes zero", func(t *testing.T) {
		categories, sheet := testState()
		hidden, _ := categories.Get("b")
		hidden.Hidden = true
		categories.Replace(hidden)

		sheet.Put(14, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 1})
		sheet.Put(14, domain.DayEntry{ID: "e2", CategoryID: "b", Hours: 2})

		assert.Equal(t, 100.0, engine.DayTotal(categories, sheet, 14))
	})

	t.Run("dangling category contributes zero", func(t *testing.T) {
		categories, sheet := testState()
		sheet.Put(14, domain.DayEntry{ID: "e1", CategoryID: "missing", Hours: 5})

		assert.Zero(t, engine.DayTotal(categories, sheet, 14))
	})

	t.Run("empty day", func(t *testing.T) {
		categories, sheet := testState()
		assert.Zero(t, engine.DayTotal(categories, sheet, 14))
	})
}

func TestAggregationEngine_DayHours_IncludesHidden(t *testing.T) {
	engine := NewAggregationEngine()
	categories, sheet := testState()

	hidden, _ := categories.Get("b")
	hidden.Hidden = true
	categories.Replace(hidden)

	sheet.Put(14, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 3})
	sheet.Put(14, domain.DayEntry{ID: "e2", CategoryID: "b", Hours: 2})

	// The raw day figure keeps counting hidden hours; the visible
	// figure and the money totals do not.
	assert.Equal(t, 5.0, engine.DayHours(sheet, 14))
	assert.Equal(t, 3.0, engine.DayVisibleHours(categories, sheet, 14))
	assert.Equal(t, 300.0, engine.DayTotal(categories, sheet, 14))
}

func TestAggregationEngine_WeekTotals(t *testing.T) {
	engine := NewAggregationEngine()
	categories, sheet := testState()

	sheet.Put(3, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 8})
	sheet.Put(4, domain.DayEntry{ID: "e2", CategoryID: "a", Hours: 6})
	sheet.Put(5, domain.DayEntry{ID: "e3", CategoryID: "b", Hours: 2})
	sheet.Put(20, domain.DayEntry{ID: "e4", CategoryID: "a", Hours: 1}) // different week

	days := []int{2, 3, 4, 5, 6, 7, 8}

	assert.Equal(t, 16.0, engine.WeekHours(categories, sheet, days))
	assert.Equal(t, 8*100.0+6*100.0+2*80.0, engine.WeekTotal(categories, sheet, days))
}

func TestAggregationEngine_CategorySummary(t *testing.T) {
	engine := NewAggregationEngine()

	t.Run("sums days and amounts", func(t *testing.T) {
		categories, sheet := testState()
		sheet.Put(3, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 8})
		sheet.Put(10, domain.DayEntry{ID: "e2", CategoryID: "a", Hours: 4})
		sheet.Put(10, domain.DayEntry{ID: "e3", CategoryID: "b", Hours: 2})

		summary, err := engine.CategorySummary(categories, sheet, "a")
		require.NoError(t, err)

		assert.Equal(t, 2, summary.DayCount)
		assert.Equal(t, 12.0, summary.HoursTotal)
		assert.Equal(t, 1200.0, summary.AmountTotal)
	})

	t.Run("hidden category still summarizes", func(t *testing.T) {
		categories, sheet := testState()
		hidden, _ := categories.Get("a")
		hidden.Hidden = true
		categories.Replace(hidden)

		sheet.Put(3, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 8})

		summary, err := engine.CategorySummary(categories, sheet, "a")
		require.NoError(t, err)
		assert.Equal(t, 800.0, summary.AmountTotal)
	})

	t.Run("unknown category", func(t *testing.T) {
		categories, sheet := testState()
		_, err := engine.CategorySummary(categories, sheet, "missing")
		assert.Error(t, err)
	})
}

func TestAggregationEngine_MonthTotals(t *testing.T) {
	engine := NewAggregationEngine()
	categories, sheet := testState()

	sheet.Put(3, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 8})
	sheet.Put(10, domain.DayEntry{ID: "e2", CategoryID: "b", Hours: 2})

	totals := engine.MonthTotals(categories, sheet)
	assert.Equal(t, 10.0, totals.GrandHours)
	assert.Equal(t, 8*100.0+2*80.0, totals.GrandAmount)

	t.Run("hiding a category moves it out of the totals", func(t *testing.T) {
		hidden, _ := categories.Get("b")
		hidden.Hidden = true
		categories.Replace(hidden)

		totals := engine.MonthTotals(categories, sheet)
		assert.Equal(t, 8.0, totals.GrandHours)
		assert.Equal(t, 800.0, totals.GrandAmount)

		// Unhiding restores them untouched.
		hidden.Hidden = false
		categories.Replace(hidden)

		totals = engine.MonthTotals(categories, sheet)
		assert.Equal(t, 10.0, totals.GrandHours)
	})
}
