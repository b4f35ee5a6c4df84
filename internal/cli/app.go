package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"billing-calendar/internal/api"
	"billing-calendar/internal/config"
	"billing-calendar/internal/domain"
	"billing-calendar/internal/errors"
	"billing-calendar/internal/notify"
)

// App bundles the dependencies every command handler needs.
type App struct {
	api    api.API
	config *config.Config
	banner *notify.Banner
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		banner: notify.NewBanner(cfg.Notice.Duration),
	}
}

// advise posts a transient notice and echoes it to the user. Advisory
// conditions are not errors: the command still exits zero.
func (a *App) advise(message string) {
	a.banner.Show(message)
	fmt.Printf("note: %s\n", message)
}

// money formats a currency amount with the configured symbol.
func (a *App) money(x float64) string {
	return a.config.Display.CurrencySymbol + strconv.FormatFloat(domain.Round2(x), 'f', 2, 64)
}

// hours formats an hour count, trimming trailing zeros.
func (a *App) hours(x float64) string {
	s := strconv.FormatFloat(domain.Round2(x), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// resolveCategory resolves a user-supplied id or name.
func (a *App) resolveCategory(ref string) (domain.Category, error) {
	category, ok := a.api.FindCategory(ref)
	if !ok {
		return domain.Category{}, errors.NewNotFoundError("category", ref)
	}
	return category, nil
}

// parseDay parses a day-of-month argument.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewInvalidInputError("day", arg, "not a number")
	}
	return day, nil
}

// parseNumber parses a decimal argument such as a rate or hour delta.
func parseNumber(field, arg string) (float64, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError(field, arg, "not a number")
	}
	return value, nil
}

// parseMonth parses a "YYYY-MM" argument.
func parseMonth(arg string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, errors.NewInvalidInputError("month", arg, "expected YYYY-MM")
	}
	return t.Year(), t.Month(), nil
}
