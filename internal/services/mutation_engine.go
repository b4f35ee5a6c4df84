package services

import (
	"billing-calendar/internal/calendar"
	"billing-calendar/internal/domain"
	"billing-calendar/internal/errors"
	"billing-calendar/internal/validation"
)

// mutationEngineImpl implements the MutationEngine interface
type mutationEngineImpl struct {
	deltaValidator *validation.DeltaValidator
}

// NewMutationEngine creates a new MutationEngine instance
func NewMutationEngine() MutationEngine {
	return &mutationEngineImpl{
		deltaValidator: validation.NewDeltaValidator(),
	}
}

// ApplyDelta merges a signed hour delta into the entry for categoryID
// on the given day. Hours are re-rounded to 2 decimals after the
// arithmetic step; a result at or below zero removes the entry, and a
// negative delta against an absent entry is a no-op.
func (m *mutationEngineImpl) ApplyDelta(sheet *domain.EntrySheet, day int, categoryID string, delta float64) (*DeltaResult, error) {
	if categoryID == "" {
		return nil, errors.NewValidationError("no category selected", nil)
	}
	if err := m.deltaValidator.ValidateDelta(delta); err != nil {
		return nil, errors.NewValidationError("negligible hour delta", err)
	}
	daysInMonth := calendar.DaysIn(sheet.Year, sheet.Month)
	if err := m.deltaValidator.ValidateDay(day, daysInMonth); err != nil {
		return nil, errors.NewValidationError("day outside active month", err)
	}

	existing, ok := sheet.Entry(day, categoryID)
	if !ok {
		hours := domain.Round2(delta)
		if hours <= 0 {
			// Cannot go negative from nothing, and a delta that rounds
			// away to zero must not leave a zero-hour entry behind.
			return &DeltaResult{Day: day, Outcome: OutcomeNoOp}, nil
		}
		entry := domain.NewDayEntry(categoryID, hours)
		sheet.Put(day, entry)
		return &DeltaResult{Day: day, Outcome: OutcomeCreated, Hours: entry.Hours}, nil
	}

	hours := domain.Round2(existing.Hours + delta)
	if hours <= 0 {
		sheet.Remove(day, categoryID)
		return &DeltaResult{Day: day, Outcome: OutcomeRemoved}, nil
	}

	existing.Hours = hours
	sheet.Put(day, existing)
	return &DeltaResult{Day: day, Outcome: OutcomeUpdated, Hours: hours}, nil
}

// ClearDay removes every entry for the given day
func (m *mutationEngineImpl) ClearDay(sheet *domain.EntrySheet, day int) {
	sheet.ClearDay(day)
}

// FillRange applies the delta to each day in days. Each day's mutation
// is independent, so iteration order does not matter; with weekdaysOnly
// set, weekend days are skipped.
func (m *mutationEngineImpl) FillRange(sheet *domain.EntrySheet, days []int, categoryID string, delta float64, weekdaysOnly bool) ([]*DeltaResult, error) {
	results := make([]*DeltaResult, 0, len(days))
	for _, day := range days {
		if weekdaysOnly && calendar.IsWeekend(sheet.Year, sheet.Month, day) {
			continue
		}
		result, err := m.ApplyDelta(sheet, day, categoryID, delta)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CascadeDelete drops every entry referencing the category across all
// days, pruning days whose entry list becomes empty.
func (m *mutationEngineImpl) CascadeDelete(sheet *domain.EntrySheet, categoryID string) []int {
	return sheet.RemoveCategory(categoryID)
}
