package services

import (
	"billing-calendar/internal/domain"
	"billing-calendar/internal/errors"
)

// aggregationEngineImpl implements the AggregationEngine interface
type aggregationEngineImpl struct{}

// NewAggregationEngine creates a new AggregationEngine instance
func NewAggregationEngine() AggregationEngine {
	return &aggregationEngineImpl{}
}

// DayTotal sums hours*rate over the day's entries. Entries whose
// category is hidden or missing contribute zero.
func (a *aggregationEngineImpl) DayTotal(categories *domain.CategoryIndex, sheet *domain.EntrySheet, day int) float64 {
	total := 0.0
	for _, entry := range sheet.Entries(day) {
		category, ok := categories.Get(entry.CategoryID)
		if !ok || category.Hidden {
			continue
		}
		total += entry.Hours * category.Rate
	}
	return total
}

// DayHours sums hours over every entry on the day. Hidden categories
// are deliberately included here: the raw day figure counts all hours
// present, unlike the currency totals.
func (a *aggregationEngineImpl) DayHours(sheet *domain.EntrySheet, day int) float64 {
	total := 0.0
	for _, entry := range sheet.Entries(day) {
		total += entry.Hours
	}
	return total
}

// DayVisibleHours sums hours over the day's entries whose category is
// present and not hidden.
func (a *aggregationEngineImpl) DayVisibleHours(categories *domain.CategoryIndex, sheet *domain.EntrySheet, day int) float64 {
	total := 0.0
	for _, entry := range sheet.Entries(day) {
		category, ok := categories.Get(entry.CategoryID)
		if !ok || category.Hidden {
			continue
		}
		total += entry.Hours
	}
	return total
}

// WeekTotal sums DayTotal across the in-month days of a week row
func (a *aggregationEngineImpl) WeekTotal(categories *domain.CategoryIndex, sheet *domain.EntrySheet, days []int) float64 {
	total := 0.0
	for _, day := range days {
		total += a.DayTotal(categories, sheet, day)
	}
	return total
}

// WeekHours sums DayVisibleHours across the in-month days of a week row
func (a *aggregationEngineImpl) WeekHours(categories *domain.CategoryIndex, sheet *domain.EntrySheet, days []int) float64 {
	total := 0.0
	for _, day := range days {
		total += a.DayVisibleHours(categories, sheet, day)
	}
	return total
}

// CategorySummary aggregates one category's entries over the month.
// The hidden flag does not affect the summary itself, only whether it
// feeds the month totals.
func (a *aggregationEngineImpl) CategorySummary(categories *domain.CategoryIndex, sheet *domain.EntrySheet, categoryID string) (*CategorySummary, error) {
	category, ok := categories.Get(categoryID)
	if !ok {
		return nil, errors.NewNotFoundError("category", categoryID)
	}

	summary := &CategorySummary{Category: category}
	for _, day := range sheet.Days() {
		entry, ok := sheet.Entry(day, categoryID)
		if !ok {
			continue
		}
		summary.DayCount++
		summary.HoursTotal += entry.Hours
		summary.AmountTotal += entry.Hours * category.Rate
	}
	return summary, nil
}

// MonthTotals sums category summaries over non-hidden categories only.
// Toggling a hidden flag moves that category in or out of these
// figures without touching its entries.
func (a *aggregationEngineImpl) MonthTotals(categories *domain.CategoryIndex, sheet *domain.EntrySheet) MonthTotals {
	totals := MonthTotals{}
	for _, category := range categories.List() {
		if category.Hidden {
			continue
		}
		summary, err := a.CategorySummary(categories, sheet, category.ID)
		if err != nil {
			continue
		}
		totals.GrandHours += summary.HoursTotal
		totals.GrandAmount += summary.AmountTotal
	}
	return totals
}
