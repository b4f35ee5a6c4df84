package domain

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Category represents a billable work type with an hourly rate.
// This is a pure domain model without storage-specific concerns.
type Category struct {
	ID     string
	Name   string
	Rate   float64
	Hidden bool
}

// NewCategory creates a new Category with a fresh identifier.
func NewCategory(name string, rate float64) Category {
	return Category{
		ID:   uuid.NewString(),
		Name: name,
		Rate: rate,
	}
}

// IsValid checks if the category has valid data.
func (c Category) IsValid() bool {
	if strings.TrimSpace(c.Name) == "" {
		return false
	}
	return IsValidRate(c.Rate)
}

// String returns the category name for display purposes.
func (c Category) String() string {
	return c.Name
}

// IsValidRate reports whether rate is a finite positive number.
func IsValidRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0
}
