package validation

import (
	"math"
	"strings"

	"billing-calendar/internal/config"
	"billing-calendar/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a category name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= 1 && length <= v.getNameMaxLength()
}

// IsFiniteNumber checks if a value is neither NaN nor infinite
func (v *Validator) IsFiniteNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsValidRate checks if an hourly rate is a finite positive number
func (v *Validator) IsValidRate(rate float64) bool {
	return v.IsFiniteNumber(rate) && rate > 0
}

// IsValidDelta checks if an hour delta is finite and non-negligible
func (v *Validator) IsValidDelta(delta float64) bool {
	return v.IsFiniteNumber(delta) && math.Abs(delta) >= domain.Epsilon
}

// IsValidDay checks if a day number falls within the given month length
func (v *Validator) IsValidDay(day int, daysInMonth int) bool {
	return day >= 1 && day <= daysInMonth
}

// IsValidCategoryID checks if a category id is set
func (v *Validator) IsValidCategoryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getNameMaxLength returns configured maximum category name length or default
func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255 // Default maximum
}
