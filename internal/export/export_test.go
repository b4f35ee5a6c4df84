package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-calendar/internal/domain"
)

func sampleData() (*domain.CategoryIndex, *domain.EntrySheet) {
	categories := domain.NewCategoryIndex()
	categories.Add(domain.Category{ID: "a", Name: "Consulting", Rate: 120})
	categories.Add(domain.Category{ID: "b", Name: "Support", Rate: 80, Hidden: true})

	sheet := domain.NewEntrySheet(2026, time.August)
	sheet.Put(3, domain.DayEntry{ID: "e1", CategoryID: "a", Hours: 7.5})
	sheet.Put(3, domain.DayEntry{ID: "e2", CategoryID: "b", Hours: 2})
	sheet.Put(14, domain.DayEntry{ID: "e3", CategoryID: "a", Hours: 4})
	sheet.Put(14, domain.DayEntry{ID: "e4", CategoryID: "gone", Hours: 1}) // dangling

	return categories, sheet
}

func TestToCSV(t *testing.T) {
	categories, sheet := sampleData()
	path := filepath.Join(t.TempDir(), "export.csv")

	require.NoError(t, ToCSV(categories, sheet, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus three rows; the dangling entry is skipped.
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Category", "Rate", "Hours", "Amount"}, rows[0])
	assert.Equal(t, []string{"2026-08-03", "Consulting", "120.00", "7.50", "900.00"}, rows[1])
	assert.Equal(t, []string{"2026-08-03", "Support", "80.00", "2.00", "160.00"}, rows[2])
	assert.Equal(t, []string{"2026-08-14", "Consulting", "120.00", "4.00", "480.00"}, rows[3])
}

func TestToJSON(t *testing.T) {
	categories, sheet := sampleData()
	path := filepath.Join(t.TempDir(), "export.json")

	require.NoError(t, ToJSON(categories, sheet, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export jsonExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, 2026, export.Year)
	assert.Equal(t, "August", export.Month)
	assert.Equal(t, 3, export.Count)
	require.Len(t, export.Entries, 3)

	first := export.Entries[0]
	assert.Equal(t, "2026-08-03", first.Date)
	assert.Equal(t, "Consulting", first.Category)
	assert.Equal(t, 900.0, first.Amount)
	assert.False(t, first.Hidden)

	assert.True(t, export.Entries[1].Hidden)
	assert.NotEmpty(t, export.ExportedAt)
}

func TestToCSV_EmptySheet(t *testing.T) {
	categories := domain.NewCategoryIndex()
	sheet := domain.NewEntrySheet(2026, time.August)
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, ToCSV(categories, sheet, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
