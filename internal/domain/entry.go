package domain

import (
	"math"

	"github.com/google/uuid"
)

// Epsilon is the threshold below which an hour delta counts as zero.
const Epsilon = 1e-9

// DayEntry represents hours recorded against a category on a single
// calendar day. A day holds at most one entry per category; repeated
// additions merge into the existing entry instead of appending.
type DayEntry struct {
	ID         string
	CategoryID string
	Hours      float64
}

// NewDayEntry creates a new DayEntry with a fresh identifier.
func NewDayEntry(categoryID string, hours float64) DayEntry {
	return DayEntry{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Hours:      hours,
	}
}

// IsValid checks if the entry has valid data. Stored entries always
// carry strictly positive hours; zero or negative collapses to removal
// before the entry ever lands in a sheet.
func (e DayEntry) IsValid() bool {
	if e.CategoryID == "" {
		return false
	}
	return IsValidHours(e.Hours) && e.Hours > 0
}

// IsValidHours reports whether hours is a finite number.
func IsValidHours(hours float64) bool {
	return !math.IsNaN(hours) && !math.IsInf(hours, 0)
}

// Round2 rounds an hour quantity to 2 decimal places. Every mutation
// re-rounds after its arithmetic step so floating-point drift cannot
// accumulate across repeated clicks.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// IsZeroDelta reports whether a signed hour delta is negligible.
func IsZeroDelta(delta float64) bool {
	return math.Abs(delta) < Epsilon
}
