package domain

import (
	"strconv"
	"time"

	"billing-calendar/internal/calendar"
	"billing-calendar/internal/repository/sqlite"
)

// CategoryMapper handles conversion between domain and stored Category records.
type CategoryMapper struct{}

// NewCategoryMapper creates a new CategoryMapper instance.
func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

// ToRecord converts a domain Category to a stored record. Legacy rate
// fields are never written back; saves always use the single-rate shape.
func (m *CategoryMapper) ToRecord(category Category) sqlite.CategoryRecord {
	return sqlite.CategoryRecord{
		ID:     category.ID,
		Name:   category.Name,
		Rate:   category.Rate,
		Hidden: category.Hidden,
	}
}

// FromRecord converts a stored record to a domain Category. The record
// is expected to be sanitized already (resolved rate, non-empty id/name).
func (m *CategoryMapper) FromRecord(record sqlite.CategoryRecord) Category {
	return Category{
		ID:     record.ID,
		Name:   record.Name,
		Rate:   record.Rate,
		Hidden: record.Hidden,
	}
}

// ToRecordSlice converts a slice of domain Categories to stored records.
func (m *CategoryMapper) ToRecordSlice(categories []Category) []sqlite.CategoryRecord {
	records := make([]sqlite.CategoryRecord, len(categories))
	for i, category := range categories {
		records[i] = m.ToRecord(category)
	}
	return records
}

// IndexFromRecords builds a CategoryIndex from stored records.
func (m *CategoryMapper) IndexFromRecords(records []sqlite.CategoryRecord) *CategoryIndex {
	index := NewCategoryIndex()
	for _, record := range records {
		index.Add(m.FromRecord(record))
	}
	return index
}

// SheetMapper handles conversion between an EntrySheet and the stored
// per-month record, which keys entry lists by day number.
type SheetMapper struct{}

// NewSheetMapper creates a new SheetMapper instance.
func NewSheetMapper() *SheetMapper {
	return &SheetMapper{}
}

// ToRecord converts an EntrySheet to its stored month record.
func (m *SheetMapper) ToRecord(sheet *EntrySheet) sqlite.MonthRecord {
	record := make(sqlite.MonthRecord)
	for _, day := range sheet.Days() {
		entries := sheet.Entries(day)
		dayRecords := make([]sqlite.DayEntryRecord, len(entries))
		for i, entry := range entries {
			dayRecords[i] = sqlite.DayEntryRecord{
				ID:         entry.ID,
				CategoryID: entry.CategoryID,
				Hours:      entry.Hours,
			}
		}
		record[strconv.Itoa(day)] = dayRecords
	}
	return record
}

// FromRecord builds an EntrySheet for the given month from a stored
// record. Day keys that fail to parse or fall outside the month are
// skipped; individual entries are expected to be sanitized already.
func (m *SheetMapper) FromRecord(year int, month time.Month, record sqlite.MonthRecord) *EntrySheet {
	sheet := NewEntrySheet(year, month)
	lastDay := calendar.DaysIn(year, month)
	for key, dayRecords := range record {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > lastDay {
			continue
		}
		for _, dayRecord := range dayRecords {
			sheet.Put(day, DayEntry{
				ID:         dayRecord.ID,
				CategoryID: dayRecord.CategoryID,
				Hours:      dayRecord.Hours,
			})
		}
	}
	return sheet
}

// ViewMapper handles conversion between the domain ViewState and the
// stored view record.
type ViewMapper struct{}

// NewViewMapper creates a new ViewMapper instance.
func NewViewMapper() *ViewMapper {
	return &ViewMapper{}
}

// ToRecord converts a ViewState to its stored record.
func (m *ViewMapper) ToRecord(view ViewState) sqlite.ViewRecord {
	return sqlite.ViewRecord{
		Year:               view.Year,
		Month:              int(view.Month),
		SelectedCategoryID: view.SelectedCategoryID,
	}
}

// FromRecord converts a stored record to a ViewState.
func (m *ViewMapper) FromRecord(record sqlite.ViewRecord) ViewState {
	return ViewState{
		Year:               record.Year,
		Month:              time.Month(record.Month),
		SelectedCategoryID: record.SelectedCategoryID,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Category *CategoryMapper
	Sheet    *SheetMapper
	View     *ViewMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Category: NewCategoryMapper(),
		Sheet:    NewSheetMapper(),
		View:     NewViewMapper(),
	}
}
