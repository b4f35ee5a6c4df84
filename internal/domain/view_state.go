package domain

import "time"

// ViewState holds the active month and the current category selection.
// It drives aggregation scope but is not domain data itself; only the
// (year, month, selection) triple is persisted for restore.
type ViewState struct {
	Year               int
	Month              time.Month
	SelectedCategoryID string
}

// NewViewState creates a view state anchored on the given date.
func NewViewState(now time.Time) ViewState {
	return ViewState{
		Year:  now.Year(),
		Month: now.Month(),
	}
}

// HasSelection reports whether a category is currently selected.
func (v ViewState) HasSelection() bool {
	return v.SelectedCategoryID != ""
}
