package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/errors"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes every entry on the given day.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "clear", "usage: bc clear <day>")
	}

	day, err := parseDay(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.ClearDay(ctx, day); err != nil {
		return c.errorHandler.Handle("clear day", err)
	}

	fmt.Printf("Cleared day %d\n", day)
	return nil
}
