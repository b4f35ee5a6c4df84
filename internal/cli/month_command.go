package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billing-calendar/internal/calendar"
	"billing-calendar/internal/errors"
)

// MonthCommand switches the active month and renders the billing grid.
type MonthCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewMonthCommand creates a new month command handler
func NewMonthCommand(app *App) *MonthCommand {
	return &MonthCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute renders the active month. With a YYYY-MM argument it switches
// months first; "next" and "prev" step relative to the active month.
func (c *MonthCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "month", "usage: bc month [YYYY-MM|next|prev|list]")
	}

	if len(args) == 1 && args[0] == "list" {
		return c.listStored(ctx)
	}

	if len(args) == 1 {
		year, month, err := c.targetMonth(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		if err := c.app.api.SwitchMonth(ctx, year, month); err != nil {
			return c.errorHandler.Handle("switch month", err)
		}
	}

	c.render()
	return nil
}

// listStored prints the months holding persisted entries.
func (c *MonthCommand) listStored(ctx context.Context) error {
	months, err := c.app.api.StoredMonths(ctx)
	if err != nil {
		return c.errorHandler.Handle("list stored months", err)
	}
	if len(months) == 0 {
		c.app.advise("no months with entries yet")
		return nil
	}
	for _, month := range months {
		fmt.Println(month)
	}
	return nil
}

func (c *MonthCommand) targetMonth(arg string) (int, time.Month, error) {
	view := c.app.api.View()
	switch arg {
	case "next":
		t := time.Date(view.Year, view.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		return t.Year(), t.Month(), nil
	case "prev":
		t := time.Date(view.Year, view.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return t.Year(), t.Month(), nil
	default:
		return parseMonth(arg)
	}
}

// render prints the calendar grid: one row per week, a cell per day
// with its raw hours, and hour and currency totals per week and for
// the month. Day cells count hidden categories; the week and month
// figures do not.
func (c *MonthCommand) render() {
	view := c.app.api.View()
	width := c.app.config.Display.CellWidth

	fmt.Printf("%s %d", view.Month, view.Year)
	if selected, ok := c.app.api.SelectedCategory(); ok {
		fmt.Printf("   (logging to: %s)", selected.Name)
	}
	fmt.Println()
	if notice := c.app.banner.Current(); notice != "" {
		fmt.Printf("note: %s\n", notice)
	}

	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for _, label := range labels {
		fmt.Print(pad(label, width))
	}
	fmt.Println("| week")

	for week, days := range calendar.Weeks(view.Year, view.Month) {
		for _, day := range days {
			fmt.Print(pad(c.cell(day), width))
		}
		weekHours := c.app.api.WeekHours(week)
		weekTotal := c.app.api.WeekTotal(week)
		fmt.Printf("| %sh %s\n", c.app.hours(weekHours), c.app.money(weekTotal))
	}

	totals := c.app.api.MonthTotals()
	fmt.Printf("month: %sh %s\n", c.app.hours(totals.GrandHours), c.app.money(totals.GrandAmount))
}

// cell formats one day cell. A zero day is an out-of-month filler.
func (c *MonthCommand) cell(day int) string {
	if day == 0 {
		return ""
	}
	hours := c.app.api.DayHours(day)
	if hours == 0 {
		return fmt.Sprintf("%2d", day)
	}
	return fmt.Sprintf("%2d %sh", day, c.app.hours(hours))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
