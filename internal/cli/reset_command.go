package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/errors"
)

// ResetWeekCommand handles the reset-week command
type ResetWeekCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewResetWeekCommand creates a new reset-week command handler
func NewResetWeekCommand(app *App) *ResetWeekCommand {
	return &ResetWeekCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute clears every in-month day of a week row (1-based).
func (c *ResetWeekCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "reset-week", "usage: bc reset-week <week>")
	}

	week, err := parseDay(args[0])
	if err != nil {
		return errors.NewInvalidInputError("week", args[0], "not a number")
	}

	if err := c.app.api.ResetWeek(ctx, week-1); err != nil {
		return c.errorHandler.Handle("reset week", err)
	}

	fmt.Printf("Cleared week %d\n", week)
	return nil
}
