package services

import (
	"billing-calendar/internal/domain"
)

// DeltaOutcome describes what a single delta application did to the sheet
type DeltaOutcome string

const (
	OutcomeCreated DeltaOutcome = "created" // new entry added for the category
	OutcomeUpdated DeltaOutcome = "updated" // existing entry hours adjusted
	OutcomeRemoved DeltaOutcome = "removed" // entry collapsed to zero and was dropped
	OutcomeNoOp    DeltaOutcome = "noop"    // nothing to do (negative delta on absent entry)
)

// DeltaResult carries the outcome of one delta application
type DeltaResult struct {
	Day     int          `json:"day"`
	Outcome DeltaOutcome `json:"outcome"`
	Hours   float64      `json:"hours"` // entry hours after the mutation, 0 when removed
}

// CategorySummary aggregates one category's activity over the month
type CategorySummary struct {
	Category    domain.Category `json:"category"`
	DayCount    int             `json:"day_count"`
	HoursTotal  float64         `json:"hours_total"`
	AmountTotal float64         `json:"amount_total"`
}

// MonthTotals carries the month-wide figures over non-hidden categories
type MonthTotals struct {
	GrandHours  float64 `json:"grand_hours"`
	GrandAmount float64 `json:"grand_amount"`
}

// MutationEngine applies hour deltas to an entry sheet. It owns the
// merge-by-category, rounding, and zero-pruning rules; it never touches
// the category store.
type MutationEngine interface {
	// ApplyDelta merges a signed hour delta into the entry for
	// categoryID on the given day.
	ApplyDelta(sheet *domain.EntrySheet, day int, categoryID string, delta float64) (*DeltaResult, error)

	// ClearDay removes every entry for the given day, regardless of category.
	ClearDay(sheet *domain.EntrySheet, day int)

	// FillRange applies the delta to each day in days; with weekdaysOnly
	// set, weekend days are skipped.
	FillRange(sheet *domain.EntrySheet, days []int, categoryID string, delta float64, weekdaysOnly bool) ([]*DeltaResult, error)

	// CascadeDelete drops every entry referencing the category across
	// all days of the sheet.
	CascadeDelete(sheet *domain.EntrySheet, categoryID string) []int
}

// AggregationEngine derives totals from the category store and the
// entry sheet. All methods are pure reads at full precision; rounding
// to 2 decimals happens at the display boundary.
type AggregationEngine interface {
	// DayTotal sums hours*rate over the day's entries, excluding hidden
	// and missing categories.
	DayTotal(categories *domain.CategoryIndex, sheet *domain.EntrySheet, day int) float64

	// DayHours sums hours over every entry on the day, hidden
	// categories included.
	DayHours(sheet *domain.EntrySheet, day int) float64

	// DayVisibleHours sums hours over the day's entries whose category
	// is present and not hidden.
	DayVisibleHours(categories *domain.CategoryIndex, sheet *domain.EntrySheet, day int) float64

	// WeekTotal sums DayTotal across the in-month days of a week row.
	WeekTotal(categories *domain.CategoryIndex, sheet *domain.EntrySheet, days []int) float64

	// WeekHours sums DayVisibleHours across the in-month days of a week
	// row; unlike raw day hours, hidden categories are excluded.
	WeekHours(categories *domain.CategoryIndex, sheet *domain.EntrySheet, days []int) float64

	// CategorySummary aggregates one category's entries over the month,
	// regardless of its hidden flag.
	CategorySummary(categories *domain.CategoryIndex, sheet *domain.EntrySheet, categoryID string) (*CategorySummary, error)

	// MonthTotals sums category summaries over non-hidden categories only.
	MonthTotals(categories *domain.CategoryIndex, sheet *domain.EntrySheet) MonthTotals
}
