package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/services"
)

// FillCommand applies one delta across many days at once.
type FillCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewFillCommand creates a new fill command handler
func NewFillCommand(app *App) *FillCommand {
	return &FillCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute applies the delta to every day of the month, to weekdays
// only, or to a single week row (1-based; week < 1 means the whole
// month). The subtract flag flips the sign of the delta.
func (c *FillCommand) Execute(ctx context.Context, deltaArg string, categoryRef string, weekdaysOnly bool, week int, subtract bool) error {
	delta, err := parseNumber("hours", deltaArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if subtract {
		delta = -delta
	}

	categoryID := ""
	if categoryRef != "" {
		category, err := c.app.resolveCategory(categoryRef)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		categoryID = category.ID
	} else if _, ok := c.app.api.SelectedCategory(); !ok {
		c.app.advise("select a category first: bc select <category>")
		return nil
	}

	var results []*services.DeltaResult
	if week >= 1 {
		results, err = c.app.api.FillWeek(ctx, week-1, categoryID, delta)
	} else {
		results, err = c.app.api.FillMonth(ctx, categoryID, delta, weekdaysOnly)
	}
	if err != nil {
		return c.errorHandler.Handle("fill days", err)
	}

	touched := 0
	for _, result := range results {
		if result.Outcome != services.OutcomeNoOp {
			touched++
		}
	}
	fmt.Printf("Applied %s h to %d day(s)\n", c.app.hours(delta), touched)
	return nil
}
