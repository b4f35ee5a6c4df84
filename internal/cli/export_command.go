package cli

import (
	"context"
	"fmt"
	"strings"

	"billing-calendar/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute exports the active month. Arguments follow the key=value
// style: bc export format=csv path=august.csv
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := "csv"
	path := ""

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return errors.NewInvalidInputError("argument", arg, "expected key=value")
		}
		switch key {
		case "format":
			format = value
		case "path":
			path = value
		default:
			return errors.NewInvalidInputError("argument", key, "unknown export option")
		}
	}

	if path == "" {
		view := c.app.api.View()
		path = fmt.Sprintf("%04d-%02d.%s", view.Year, int(view.Month), format)
	}

	var err error
	switch format {
	case "csv":
		err = c.app.api.ExportCSV(path)
	case "json":
		err = c.app.api.ExportJSON(path)
	default:
		return errors.NewInvalidInputError("format", format, "supported formats: csv, json")
	}
	if err != nil {
		return c.errorHandler.Handle("export month", err)
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}
