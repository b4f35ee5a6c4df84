package cli

import (
	"context"
	"fmt"

	"billing-calendar/internal/errors"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints per-category totals for the active month, or a single
// category's summary when a reference is given.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "summary", "usage: bc summary [category]")
	}

	if len(args) == 1 {
		category, err := c.app.resolveCategory(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		return c.printOne(category.ID)
	}

	categories := c.app.api.ListCategories()
	if len(categories) == 0 {
		c.app.advise("no categories yet; add one with: bc category add <name> <rate>")
		return nil
	}

	for _, category := range categories {
		if err := c.printOne(category.ID); err != nil {
			return err
		}
	}

	totals := c.app.api.MonthTotals()
	fmt.Printf("%-24s %6sh  %s\n", "TOTAL (billed)", c.app.hours(totals.GrandHours), c.app.money(totals.GrandAmount))
	return nil
}

func (c *SummaryCommand) printOne(categoryID string) error {
	summary, err := c.app.api.CategorySummary(categoryID)
	if err != nil {
		return c.errorHandler.Handle("summarize category", err)
	}

	suffix := ""
	if summary.Category.Hidden {
		suffix = " (hidden)"
	}
	fmt.Printf("%-24s %6sh  %s  %d day(s)%s\n",
		summary.Category.Name,
		c.app.hours(summary.HoursTotal),
		c.app.money(summary.AmountTotal),
		summary.DayCount,
		suffix)
	return nil
}
