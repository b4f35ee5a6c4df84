package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/errors"
)

// CategoryCommand handles category add/update/delete/hide/unhide/list.
type CategoryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a category and makes it the current selection.
func (c *CategoryCommand) Add(ctx context.Context, name string, rateArg string) error {
	rate, err := parseNumber("rate", rateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	category, err := c.app.api.AddCategory(ctx, name, rate)
	if err != nil {
		return c.errorHandler.Handle("add category", err)
	}

	fmt.Printf("Added category %q at %s/h (selected)\n", category.Name, c.app.money(category.Rate))
	return nil
}

// Update renames and reprices an existing category.
func (c *CategoryCommand) Update(ctx context.Context, ref string, name string, rateArg string) error {
	category, err := c.app.resolveCategory(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	rate, err := parseNumber("rate", rateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	updated, err := c.app.api.UpdateCategory(ctx, category.ID, name, rate)
	if err != nil {
		return c.errorHandler.Handle("update category", err)
	}

	fmt.Printf("Updated category %q at %s/h\n", updated.Name, c.app.money(updated.Rate))
	return nil
}

// Delete removes a category and every entry logged against it in the
// active month.
func (c *CategoryCommand) Delete(ctx context.Context, ref string) error {
	category, err := c.app.resolveCategory(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteCategory(ctx, category.ID); err != nil {
		return c.errorHandler.Handle("delete category", err)
	}

	fmt.Printf("Deleted category %q and its entries\n", category.Name)
	if selected, ok := c.app.api.SelectedCategory(); ok {
		fmt.Printf("Selection moved to %q\n", selected.Name)
	}
	return nil
}

// SetHidden toggles a category out of or back into the billing totals.
func (c *CategoryCommand) SetHidden(ctx context.Context, ref string, hidden bool) error {
	category, err := c.app.resolveCategory(ref)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.SetHidden(ctx, category.ID, hidden); err != nil {
		return c.errorHandler.Handle("update category visibility", err)
	}

	if hidden {
		fmt.Printf("Hid category %q; its hours stay logged but no longer bill\n", category.Name)
	} else {
		fmt.Printf("Unhid category %q\n", category.Name)
	}
	return nil
}

// List prints all categories in presentation order.
func (c *CategoryCommand) List(ctx context.Context) error {
	categories := c.app.api.ListCategories()
	if len(categories) == 0 {
		c.app.advise("no categories yet; add one with: bc category add <name> <rate>")
		return nil
	}

	selectedID := ""
	if selected, ok := c.app.api.SelectedCategory(); ok {
		selectedID = selected.ID
	}

	for _, category := range categories {
		marker := " "
		if category.ID == selectedID {
			marker = "*"
		}
		suffix := ""
		if category.Hidden {
			suffix = " (hidden)"
		}
		fmt.Printf("%s %-24s %s/h%s\n", marker, category.Name, c.app.money(category.Rate), suffix)
	}
	return nil
}

// Execute dispatches a category subcommand from raw arguments.
func (c *CategoryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.List(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			return errors.NewInvalidInputError("command", "category add", "usage: bc category add <name> <rate>")
		}
		return c.Add(ctx, args[1], args[2])
	case "update":
		if len(args) != 4 {
			return errors.NewInvalidInputError("command", "category update", "usage: bc category update <category> <name> <rate>")
		}
		return c.Update(ctx, args[1], args[2], args[3])
	case "delete":
		if len(args) != 2 {
			return errors.NewInvalidInputError("command", "category delete", "usage: bc category delete <category>")
		}
		return c.Delete(ctx, args[1])
	case "hide":
		if len(args) != 2 {
			return errors.NewInvalidInputError("command", "category hide", "usage: bc category hide <category>")
		}
		return c.SetHidden(ctx, args[1], true)
	case "unhide":
		if len(args) != 2 {
			return errors.NewInvalidInputError("command", "category unhide", "usage: bc category unhide <category>")
		}
		return c.SetHidden(ctx, args[1], false)
	case "list":
		return c.List(ctx)
	default:
		return errors.NewInvalidInputError("command", args[0], "unknown category subcommand")
	}
}
