package sqlite

// CategoryRecord is the persisted shape of a billing category. Older
// payloads carried the rate split across two fields (inputRate and
// dailyRate) instead of the single rate field; both shapes load.
type CategoryRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Rate      float64  `json:"rate,omitempty"`
	InputRate *float64 `json:"inputRate,omitempty"`
	DailyRate *float64 `json:"dailyRate,omitempty"`
	Hidden    bool     `json:"hidden,omitempty"`
}

// DayEntryRecord is the persisted shape of one (category, hours)
// pairing on a calendar day.
type DayEntryRecord struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"categoryId"`
	Hours      float64 `json:"hours"`
}

// MonthRecord maps day numbers (as string keys) to the entries
// recorded on that day. One record exists per (year, month) pair.
type MonthRecord map[string][]DayEntryRecord

// ViewRecord is the persisted view selection used to restore the
// calendar on next load.
type ViewRecord struct {
	Year               int    `json:"year"`
	Month              int    `json:"month"`
	SelectedCategoryID string `json:"selectedCategoryId,omitempty"`
}
