package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-calendar/internal/repository/sqlite"
)

func TestCategoryMapper_RoundTrip(t *testing.T) {
	mapper := NewCategoryMapper()

	category := Category{ID: "c1", Name: "Consulting", Rate: 120, Hidden: true}
	record := mapper.ToRecord(category)

	assert.Equal(t, "c1", record.ID)
	assert.Equal(t, 120.0, record.Rate)
	assert.Nil(t, record.InputRate)
	assert.Nil(t, record.DailyRate)

	assert.Equal(t, category, mapper.FromRecord(record))
}

func TestCategoryMapper_IndexFromRecords(t *testing.T) {
	mapper := NewCategoryMapper()

	index := mapper.IndexFromRecords([]sqlite.CategoryRecord{
		{ID: "a", Name: "Alpha", Rate: 100},
		{ID: "b", Name: "Beta", Rate: 50, Hidden: true},
	})

	require.Equal(t, 2, index.Len())
	got, ok := index.Get("b")
	require.True(t, ok)
	assert.True(t, got.Hidden)

	list := index.List()
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestSheetMapper_RoundTrip(t *testing.T) {
	mapper := NewSheetMapper()

	sheet := NewEntrySheet(2026, time.August)
	sheet.Put(3, DayEntry{ID: "e1", CategoryID: "cat-1", Hours: 7.5})
	sheet.Put(3, DayEntry{ID: "e2", CategoryID: "cat-2", Hours: 2})
	sheet.Put(14, DayEntry{ID: "e3", CategoryID: "cat-1", Hours: 4})

	record := mapper.ToRecord(sheet)
	require.Len(t, record, 2)
	assert.Len(t, record["3"], 2)
	assert.Len(t, record["14"], 1)

	restored := mapper.FromRecord(2026, time.August, record)
	assert.Equal(t, []int{3, 14}, restored.Days())

	entries := restored.Entries(3)
	require.Len(t, entries, 2)
	assert.Equal(t, "cat-1", entries[0].CategoryID)
	assert.Equal(t, 7.5, entries[0].Hours)
}

func TestSheetMapper_FromRecord_SkipsBadDayKeys(t *testing.T) {
	mapper := NewSheetMapper()

	record := sqlite.MonthRecord{
		"14":       {{ID: "e1", CategoryID: "cat-1", Hours: 7.5}},
		"garbage":  {{ID: "e2", CategoryID: "cat-1", Hours: 1}},
		"0":        {{ID: "e3", CategoryID: "cat-1", Hours: 1}},
		"31":       {{ID: "e4", CategoryID: "cat-1", Hours: 1}}, // April has 30 days
		"-3":       {{ID: "e5", CategoryID: "cat-1", Hours: 1}},
		"30":       {{ID: "e6", CategoryID: "cat-2", Hours: 2}},
	}

	sheet := mapper.FromRecord(2026, time.April, record)

	assert.Equal(t, []int{14, 30}, sheet.Days())
	assert.Equal(t, 2, sheet.Len())
}

func TestViewMapper_RoundTrip(t *testing.T) {
	mapper := NewViewMapper()

	view := ViewState{Year: 2026, Month: time.August, SelectedCategoryID: "cat-1"}
	record := mapper.ToRecord(view)

	assert.Equal(t, 2026, record.Year)
	assert.Equal(t, 8, record.Month)

	assert.Equal(t, view, mapper.FromRecord(record))
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper.Category)
	assert.NotNil(t, mapper.Sheet)
	assert.NotNil(t, mapper.View)
}
