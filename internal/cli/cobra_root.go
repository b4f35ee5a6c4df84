package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"billing-calendar/internal/api"
	"billing-calendar/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "bc",
		Short: "A billing calendar for tracking billable hours by category",
		Long: `Billing Calendar (bc) keeps a month grid of hours logged against billing
categories, each with an hourly rate, and derives the money totals.

FEATURES:
  • Billing categories with hourly rates, hide/unhide without losing hours
  • Log signed hour deltas onto calendar days (negative subtracts, zero removes)
  • Fill whole weeks or months in one command, weekdays-only supported
  • Per-day, per-week, per-category and per-month totals in hours and currency
  • Month-by-month storage in a local SQLite database
  • Export any month to CSV or JSON

EXAMPLES:
  bc category add "Consulting" 120         # Add a category at $120/h (and select it)
  bc select consulting                     # Select by name or id
  bc log 14 7.5                            # Log 7.5h on the 14th to the selection
  bc log 14 2 --sub --category consulting  # Take 2h back off the 14th
  bc fill 8 --weekdays                     # 8h on every weekday of the month
  bc fill 4 --week 2                       # 4h on every day of week 2
  bc reset-week 2                          # Clear week 2
  bc month 2026-09                         # Switch to September 2026 and show it
  bc month                                 # Show the active month grid
  bc summary                               # Per-category and month totals
  bc export format=csv path=aug.csv        # Export the active month

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    BC_DB_DIR                              Database directory (default: ~/.bc)
    BC_DB_FILENAME                         Database filename (default: bc.db)
    BC_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    BC_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    BC_DISPLAY_CURRENCY                    Currency symbol (default: $)
    BC_DISPLAY_CELL_WIDTH                  Grid cell width (default: 10)

  Application Configuration:
    BC_NOTICE_DURATION                     Advisory notice lifetime (default: 4s)
    BC_APP_TIMEOUT                         Application timeout (default: 60s)
    BC_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  bc [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("currency", "", "Currency symbol (overrides BC_DISPLAY_CURRENCY)")
	flags.Int("cell-width", 0, "Grid cell width (overrides BC_DISPLAY_CELL_WIDTH)")
	flags.Duration("notice-duration", 0, "Advisory notice lifetime (overrides BC_NOTICE_DURATION)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides BC_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides BC_APP_VERBOSE)")
}

// getConfigFromFlags applies flag overrides on top of the loaded config
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("currency") {
		if symbol, err := flags.GetString("currency"); err == nil && symbol != "" {
			r.config.Display.CurrencySymbol = symbol
		}
	}
	if flags.Changed("cell-width") {
		if width, err := flags.GetInt("cell-width"); err == nil && width > 0 {
			r.config.Display.CellWidth = width
		}
	}
	if flags.Changed("notice-duration") {
		if d, err := flags.GetDuration("notice-duration"); err == nil && d > 0 {
			r.config.Notice.Duration = d
		}
	}
	if flags.Changed("app-timeout") {
		if d, err := flags.GetDuration("app-timeout"); err == nil && d > 0 {
			r.config.Application.Timeout = d
		}
	}
	if flags.Changed("verbose") {
		if verbose, err := flags.GetBool("verbose"); err == nil {
			r.config.Application.Verbose = verbose
		}
	}

	return r.config.Validate()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	return r.config.Application.Timeout
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	categoryCmd := &cobra.Command{
		Use:   "category [add|update|delete|hide|unhide|list]",
		Short: "Manage billing categories",
		Long: `Manage billing categories and their hourly rates.

Adding a category selects it. Deleting a category also removes every
hour logged against it in the active month. Hiding keeps the logged
hours but drops them from the billing totals.

Examples:
  bc category add "Consulting" 120
  bc category update consulting "Consulting (remote)" 110
  bc category hide consulting
  bc category delete consulting
  bc category list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCategoryCommand(r.app).Execute(ctx, args)
		},
	}

	selectCmd := &cobra.Command{
		Use:   "select [category|none]",
		Short: "Select the category new hours are logged to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSelectCommand(r.app).Execute(ctx, args)
		},
	}

	logCmd := &cobra.Command{
		Use:   "log <day> <hours>",
		Short: "Merge an hour delta into a day",
		Long: `Merge a signed hour delta into a calendar day of the active month.

A positive delta adds hours, --sub subtracts instead; when the hours
reach zero the entry disappears. Without --category the delta goes to
the currently selected category.

Examples:
  bc log 14 7.5
  bc log 14 2 --sub
  bc log 14 3 --category consulting`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			categoryRef, _ := cmd.Flags().GetString("category")
			subtract, _ := cmd.Flags().GetBool("sub")
			return NewLogCommand(r.app).Execute(ctx, args[0], args[1], categoryRef, subtract)
		},
	}
	logCmd.Flags().String("category", "", "Category id or name (defaults to the selection)")
	logCmd.Flags().Bool("sub", false, "Subtract the hours instead of adding them")

	clearCmd := &cobra.Command{
		Use:   "clear <day>",
		Short: "Remove every entry on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewClearCommand(r.app).Execute(ctx, args)
		},
	}

	fillCmd := &cobra.Command{
		Use:   "fill <hours>",
		Short: "Apply one hour delta across many days",
		Long: `Apply the same hour delta to every day of the active month, to
weekdays only, or to a single week row.

Examples:
  bc fill 8 --weekdays
  bc fill 4 --week 2
  bc fill 1 --sub`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			categoryRef, _ := cmd.Flags().GetString("category")
			weekdaysOnly, _ := cmd.Flags().GetBool("weekdays")
			week, _ := cmd.Flags().GetInt("week")
			subtract, _ := cmd.Flags().GetBool("sub")
			return NewFillCommand(r.app).Execute(ctx, args[0], categoryRef, weekdaysOnly, week, subtract)
		},
	}
	fillCmd.Flags().String("category", "", "Category id or name (defaults to the selection)")
	fillCmd.Flags().Bool("weekdays", false, "Skip Saturdays and Sundays")
	fillCmd.Flags().Int("week", 0, "Fill a single week row (1-based)")
	fillCmd.Flags().Bool("sub", false, "Subtract the hours instead of adding them")

	resetWeekCmd := &cobra.Command{
		Use:   "reset-week <week>",
		Short: "Clear every day of a week row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewResetWeekCommand(r.app).Execute(ctx, args)
		},
	}

	monthCmd := &cobra.Command{
		Use:   "month [YYYY-MM|next|prev|list]",
		Short: "Show the month grid, optionally switching months",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewMonthCommand(r.app).Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [category]",
		Short: "Per-category hour and currency totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [format=csv|json] [path=file]",
		Short: "Export the active month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(categoryCmd, selectCmd, logCmd, clearCmd, fillCmd, resetWeekCmd, monthCmd, summaryCmd, exportCmd)
}
