package api

import (
	"context"
	"strings"
	"time"

	"billing-calendar/internal/calendar"
	"billing-calendar/internal/domain"
	"billing-calendar/internal/errors"
	"billing-calendar/internal/export"
	"billing-calendar/internal/logging"
	"billing-calendar/internal/repository/sqlite"
	"billing-calendar/internal/services"
	"billing-calendar/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// API defines the interface for all calendar operations. It is the
// single owner of the category store, the active month's entry sheet,
// and the view state; nothing mutates them except through these
// operations.
type API interface {
	// Category operations
	AddCategory(ctx context.Context, name string, rate float64) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, name string, rate float64) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	ListCategories() []domain.Category
	GetCategory(id string) (domain.Category, bool)
	FindCategory(ref string) (domain.Category, bool)

	// Selection
	SelectCategory(ctx context.Context, id string) error
	ClearSelection(ctx context.Context) error
	SelectedCategory() (domain.Category, bool)

	// View and month lifecycle
	View() domain.ViewState
	SwitchMonth(ctx context.Context, year int, month time.Month) error
	StoredMonths(ctx context.Context) ([]string, error)

	// Day-entry mutations
	ApplyDelta(ctx context.Context, day int, categoryID string, delta float64) (*services.DeltaResult, error)
	ClearDay(ctx context.Context, day int) error
	FillMonth(ctx context.Context, categoryID string, delta float64, weekdaysOnly bool) ([]*services.DeltaResult, error)
	FillWeek(ctx context.Context, week int, categoryID string, delta float64) ([]*services.DeltaResult, error)
	ResetWeek(ctx context.Context, week int) error

	// Derived aggregates
	DayEntries(day int) []domain.DayEntry
	VisibleDayEntries(day int) []domain.DayEntry
	DayTotal(day int) float64
	DayHours(day int) float64
	DayVisibleHours(day int) float64
	WeekTotal(week int) float64
	WeekHours(week int) float64
	CategorySummary(id string) (*services.CategorySummary, error)
	MonthTotals() services.MonthTotals

	// Export
	ExportCSV(path string) error
	ExportJSON(path string) error
}

type apiImpl struct {
	repo              sqlite.Repository
	mapper            *domain.Mapper
	categoryValidator *validation.CategoryValidator
	mutator           services.MutationEngine
	aggregator        services.AggregationEngine

	categories *domain.CategoryIndex
	sheet      *domain.EntrySheet
	view       domain.ViewState
}

// New creates a new API instance, restoring persisted state. Failed or
// malformed reads fall back to defaults (no categories, empty sheet,
// today's date) and are logged; they never abort startup.
func New(ctx context.Context, repo sqlite.Repository) API {
	a := &apiImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		categoryValidator: validation.NewCategoryValidator(),
		mutator:           services.NewMutationEngine(),
		aggregator:        services.NewAggregationEngine(),
	}
	a.restore(ctx)
	return a
}

// restore loads the categories, view, and active month records.
func (a *apiImpl) restore(ctx context.Context) {
	records, err := a.repo.LoadCategories(ctx)
	if err != nil {
		logging.Warnf("loading categories failed, starting empty: %v\n", err)
		records = nil
	}
	a.categories = a.mapper.Category.IndexFromRecords(records)

	a.view = domain.NewViewState(timeNow())
	if record, err := a.repo.LoadView(ctx); err != nil {
		logging.Warnf("loading view failed, using current date: %v\n", err)
	} else if record != nil {
		a.view = a.mapper.View.FromRecord(*record)
	}
	if _, ok := a.categories.Get(a.view.SelectedCategoryID); !ok {
		a.view.SelectedCategoryID = ""
	}

	a.loadSheet(ctx)
}

// loadSheet swaps in the entry table for the view's (year, month).
func (a *apiImpl) loadSheet(ctx context.Context) {
	record, err := a.repo.LoadMonth(ctx, a.view.Year, a.view.Month)
	if err != nil {
		logging.Warnf("loading month entries failed, starting empty: %v\n", err)
		record = sqlite.MonthRecord{}
	}
	a.sheet = a.mapper.Sheet.FromRecord(a.view.Year, a.view.Month, record)
}

// persistCategories writes the category record, best effort.
func (a *apiImpl) persistCategories(ctx context.Context) {
	if err := a.repo.SaveCategories(ctx, a.mapper.Category.ToRecordSlice(a.categories.List())); err != nil {
		logging.Warnf("saving categories failed, in-memory state kept: %v\n", err)
	}
}

// persistSheet writes the active month record, best effort.
func (a *apiImpl) persistSheet(ctx context.Context) {
	if err := a.repo.SaveMonth(ctx, a.sheet.Year, a.sheet.Month, a.mapper.Sheet.ToRecord(a.sheet)); err != nil {
		logging.Warnf("saving month entries failed, in-memory state kept: %v\n", err)
	}
}

// persistView writes the view record, best effort.
func (a *apiImpl) persistView(ctx context.Context) {
	if err := a.repo.SaveView(ctx, a.mapper.View.ToRecord(a.view)); err != nil {
		logging.Warnf("saving view failed, in-memory state kept: %v\n", err)
	}
}

// ========== Category operations ==========

// AddCategory appends a new category and selects it.
func (a *apiImpl) AddCategory(ctx context.Context, name string, rate float64) (*domain.Category, error) {
	if err := a.categoryValidator.ValidateForUpsert(name, rate); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}
	cleanedName, err := a.categoryValidator.GetValidName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid category name", err)
	}

	category := domain.NewCategory(cleanedName, rate)
	a.categories.Add(category)
	a.view.SelectedCategoryID = category.ID

	a.persistCategories(ctx)
	a.persistView(ctx)
	return &category, nil
}

// UpdateCategory replaces a category's name and rate in place. The
// identity and hidden flag are preserved.
func (a *apiImpl) UpdateCategory(ctx context.Context, id string, name string, rate float64) (*domain.Category, error) {
	if err := a.categoryValidator.ValidateID(id); err != nil {
		return nil, errors.NewValidationError("invalid category id", err)
	}
	if err := a.categoryValidator.ValidateForUpsert(name, rate); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}
	cleanedName, err := a.categoryValidator.GetValidName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid category name", err)
	}

	category, ok := a.categories.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("category", id)
	}
	category.Name = cleanedName
	category.Rate = rate
	a.categories.Replace(category)

	a.persistCategories(ctx)
	return &category, nil
}

// DeleteCategory removes a category and cascades to its entries: both
// the category removal and the entry pruning land in the same state
// snapshot, so no entry ever references a missing category in between.
// If the deleted category was selected, selection moves to the first
// remaining category or to none.
func (a *apiImpl) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := a.categories.Get(id); !ok {
		return errors.NewNotFoundError("category", id)
	}

	a.categories.Remove(id)
	a.mutator.CascadeDelete(a.sheet, id)

	if a.view.SelectedCategoryID == id {
		a.view.SelectedCategoryID = ""
		if first, ok := a.categories.First(); ok {
			a.view.SelectedCategoryID = first.ID
		}
	}

	a.persistCategories(ctx)
	a.persistSheet(ctx)
	a.persistView(ctx)
	return nil
}

// SetHidden toggles a category's visibility. Hiding is reversible and
// non-destructive: the category's entries stay in the sheet and simply
// stop feeding the currency totals.
func (a *apiImpl) SetHidden(ctx context.Context, id string, hidden bool) error {
	category, ok := a.categories.Get(id)
	if !ok {
		return errors.NewNotFoundError("category", id)
	}
	category.Hidden = hidden
	a.categories.Replace(category)

	a.persistCategories(ctx)
	return nil
}

// ListCategories returns the categories in presentation order.
func (a *apiImpl) ListCategories() []domain.Category {
	return a.categories.List()
}

// GetCategory returns the category with the given id.
func (a *apiImpl) GetCategory(id string) (domain.Category, bool) {
	return a.categories.Get(id)
}

// FindCategory resolves a user-supplied reference against ids first,
// then case-insensitive names.
func (a *apiImpl) FindCategory(ref string) (domain.Category, bool) {
	if category, ok := a.categories.Get(ref); ok {
		return category, true
	}
	for _, category := range a.categories.List() {
		if strings.EqualFold(category.Name, ref) {
			return category, true
		}
	}
	return domain.Category{}, false
}

// ========== Selection ==========

// SelectCategory marks a category as the target for subsequent deltas.
func (a *apiImpl) SelectCategory(ctx context.Context, id string) error {
	if _, ok := a.categories.Get(id); !ok {
		return errors.NewNotFoundError("category", id)
	}
	a.view.SelectedCategoryID = id
	a.persistView(ctx)
	return nil
}

// ClearSelection drops the current category selection.
func (a *apiImpl) ClearSelection(ctx context.Context) error {
	a.view.SelectedCategoryID = ""
	a.persistView(ctx)
	return nil
}

// SelectedCategory returns the currently selected category, if any.
func (a *apiImpl) SelectedCategory() (domain.Category, bool) {
	if !a.view.HasSelection() {
		return domain.Category{}, false
	}
	return a.categories.Get(a.view.SelectedCategoryID)
}

// ========== View and month lifecycle ==========

// View returns the current view state.
func (a *apiImpl) View() domain.ViewState {
	return a.view
}

// SwitchMonth makes (year, month) the active month, swapping the entry
// table wholesale. Nothing merges across months.
func (a *apiImpl) SwitchMonth(ctx context.Context, year int, month time.Month) error {
	if month < time.January || month > time.December || year < 1 {
		return errors.NewInvalidInputError("month", month, "not a valid calendar month")
	}
	if year == a.view.Year && month == a.view.Month {
		return nil
	}

	a.view.Year = year
	a.view.Month = month
	a.loadSheet(ctx)
	a.persistView(ctx)
	return nil
}

// StoredMonths lists the months holding at least one persisted entry,
// as YYYY-MM strings in ascending order.
func (a *apiImpl) StoredMonths(ctx context.Context) ([]string, error) {
	keys, err := a.repo.ListMonthKeys(ctx)
	if err != nil {
		return nil, err
	}
	months := make([]string, 0, len(keys))
	for _, key := range keys {
		months = append(months, strings.TrimPrefix(key, "entries:"))
	}
	return months, nil
}

// ========== Day-entry mutations ==========

// resolveTarget resolves an explicit category id or falls back to the
// current selection.
func (a *apiImpl) resolveTarget(categoryID string) (string, error) {
	if categoryID == "" {
		categoryID = a.view.SelectedCategoryID
	}
	if categoryID == "" {
		return "", errors.NewValidationError("no category selected", nil)
	}
	if _, ok := a.categories.Get(categoryID); !ok {
		return "", errors.NewNotFoundError("category", categoryID)
	}
	return categoryID, nil
}

// ApplyDelta merges a signed hour delta into the day's entry for the
// category. An empty categoryID targets the current selection.
func (a *apiImpl) ApplyDelta(ctx context.Context, day int, categoryID string, delta float64) (*services.DeltaResult, error) {
	target, err := a.resolveTarget(categoryID)
	if err != nil {
		return nil, err
	}

	result, err := a.mutator.ApplyDelta(a.sheet, day, target, delta)
	if err != nil {
		return nil, err
	}

	a.persistSheet(ctx)
	return result, nil
}

// ClearDay removes every entry for the given day.
func (a *apiImpl) ClearDay(ctx context.Context, day int) error {
	if day < 1 || day > calendar.DaysIn(a.sheet.Year, a.sheet.Month) {
		return errors.NewInvalidInputError("day", day, "outside the active month")
	}
	a.mutator.ClearDay(a.sheet, day)
	a.persistSheet(ctx)
	return nil
}

// FillMonth applies the delta to every day of the active month, or to
// weekdays only.
func (a *apiImpl) FillMonth(ctx context.Context, categoryID string, delta float64, weekdaysOnly bool) ([]*services.DeltaResult, error) {
	target, err := a.resolveTarget(categoryID)
	if err != nil {
		return nil, err
	}

	days := calendar.MonthDays(a.sheet.Year, a.sheet.Month)
	results, err := a.mutator.FillRange(a.sheet, days, target, delta, weekdaysOnly)
	if err != nil {
		return nil, err
	}

	a.persistSheet(ctx)
	return results, nil
}

// FillWeek applies the delta to the in-month days of a week row.
func (a *apiImpl) FillWeek(ctx context.Context, week int, categoryID string, delta float64) ([]*services.DeltaResult, error) {
	target, err := a.resolveTarget(categoryID)
	if err != nil {
		return nil, err
	}

	days := calendar.WeekDays(a.sheet.Year, a.sheet.Month, week)
	if len(days) == 0 {
		return nil, errors.NewInvalidInputError("week", week, "outside the active month")
	}

	results, err := a.mutator.FillRange(a.sheet, days, target, delta, false)
	if err != nil {
		return nil, err
	}

	a.persistSheet(ctx)
	return results, nil
}

// ResetWeek clears every in-month day of a week row.
func (a *apiImpl) ResetWeek(ctx context.Context, week int) error {
	days := calendar.WeekDays(a.sheet.Year, a.sheet.Month, week)
	if len(days) == 0 {
		return errors.NewInvalidInputError("week", week, "outside the active month")
	}
	for _, day := range days {
		a.mutator.ClearDay(a.sheet, day)
	}
	a.persistSheet(ctx)
	return nil
}

// ========== Derived aggregates ==========

// DayEntries returns every entry recorded on the day, hidden
// categories included.
func (a *apiImpl) DayEntries(day int) []domain.DayEntry {
	return a.sheet.Entries(day)
}

// VisibleDayEntries returns the day's entries whose category is present
// and not hidden, the list day cells render.
func (a *apiImpl) VisibleDayEntries(day int) []domain.DayEntry {
	var visible []domain.DayEntry
	for _, entry := range a.sheet.Entries(day) {
		category, ok := a.categories.Get(entry.CategoryID)
		if !ok || category.Hidden {
			continue
		}
		visible = append(visible, entry)
	}
	return visible
}

func (a *apiImpl) DayTotal(day int) float64 {
	return a.aggregator.DayTotal(a.categories, a.sheet, day)
}

func (a *apiImpl) DayHours(day int) float64 {
	return a.aggregator.DayHours(a.sheet, day)
}

func (a *apiImpl) DayVisibleHours(day int) float64 {
	return a.aggregator.DayVisibleHours(a.categories, a.sheet, day)
}

func (a *apiImpl) WeekTotal(week int) float64 {
	days := calendar.WeekDays(a.sheet.Year, a.sheet.Month, week)
	return a.aggregator.WeekTotal(a.categories, a.sheet, days)
}

func (a *apiImpl) WeekHours(week int) float64 {
	days := calendar.WeekDays(a.sheet.Year, a.sheet.Month, week)
	return a.aggregator.WeekHours(a.categories, a.sheet, days)
}

func (a *apiImpl) CategorySummary(id string) (*services.CategorySummary, error) {
	return a.aggregator.CategorySummary(a.categories, a.sheet, id)
}

func (a *apiImpl) MonthTotals() services.MonthTotals {
	return a.aggregator.MonthTotals(a.categories, a.sheet)
}

// ========== Export ==========

// ExportCSV writes the active month's entries to a CSV file.
func (a *apiImpl) ExportCSV(path string) error {
	if err := export.ToCSV(a.categories, a.sheet, path); err != nil {
		return errors.NewStorageError("export csv", err)
	}
	return nil
}

// ExportJSON writes the active month's entries to a JSON file.
func (a *apiImpl) ExportJSON(path string) error {
	if err := export.ToJSON(a.categories, a.sheet, path); err != nil {
		return errors.NewStorageError("export json", err)
	}
	return nil
}
