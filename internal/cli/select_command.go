package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/errors"
)

// SelectCommand handles the select command
type SelectCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSelectCommand creates a new select command handler
func NewSelectCommand(app *App) *SelectCommand {
	return &SelectCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the select command. "none" clears the selection.
func (c *SelectCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if selected, ok := c.app.api.SelectedCategory(); ok {
			fmt.Printf("Selected category: %s\n", selected.Name)
		} else {
			c.app.advise("no category selected")
		}
		return nil
	}
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "select", "usage: bc select <category>|none")
	}

	if args[0] == "none" {
		if err := c.app.api.ClearSelection(ctx); err != nil {
			return c.errorHandler.Handle("clear selection", err)
		}
		fmt.Println("Cleared category selection")
		return nil
	}

	category, err := c.app.resolveCategory(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if err := c.app.api.SelectCategory(ctx, category.ID); err != nil {
		return c.errorHandler.Handle("select category", err)
	}

	fmt.Printf("Selected category: %s\n", category.Name)
	return nil
}
