package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/services"
)

// LogCommand merges hour deltas into day entries.
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute applies a signed hour delta to a day of the active month.
// The subtract flag flips the sign, which spares quoting negative
// numbers past flag parsing. An empty categoryRef targets the current
// selection; with neither, the command posts an advisory notice
// instead of failing.
func (c *LogCommand) Execute(ctx context.Context, dayArg string, deltaArg string, categoryRef string, subtract bool) error {
	day, err := parseDay(dayArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
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

	result, err := c.app.api.ApplyDelta(ctx, day, categoryID, delta)
	if err != nil {
		return c.errorHandler.Handle("log hours", err)
	}

	c.report(day, result)
	return nil
}

func (c *LogCommand) report(day int, result *services.DeltaResult) {
	switch result.Outcome {
	case services.OutcomeCreated:
		fmt.Printf("Day %d: logged %s h\n", day, c.app.hours(result.Hours))
	case services.OutcomeUpdated:
		fmt.Printf("Day %d: now %s h\n", day, c.app.hours(result.Hours))
	case services.OutcomeRemoved:
		fmt.Printf("Day %d: entry removed\n", day)
	case services.OutcomeNoOp:
		fmt.Printf("Day %d: nothing to remove\n", day)
	}
}
