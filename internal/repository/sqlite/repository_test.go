package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_Categories(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	t.Run("missing record loads empty", func(t *testing.T) {
		records, err := repo.LoadCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("round trip", func(t *testing.T) {
		saved := []CategoryRecord{
			{ID: "a", Name: "Consulting", Rate: 120},
			{ID: "b", Name: "Support", Rate: 80, Hidden: true},
		}
		require.NoError(t, repo.SaveCategories(ctx, saved))

		loaded, err := repo.LoadCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("save replaces wholesale", func(t *testing.T) {
		require.NoError(t, repo.SaveCategories(ctx, []CategoryRecord{{ID: "c", Name: "New", Rate: 1}}))

		loaded, err := repo.LoadCategories(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "c", loaded[0].ID)
	})
}

func TestRepository_Categories_LegacyRates(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	daily := 90.0
	input := 75.0
	negative := -5.0

	saved := []CategoryRecord{
		{ID: "modern", Name: "Modern", Rate: 120},
		{ID: "legacy-both", Name: "Both", DailyRate: &daily, InputRate: &input},
		{ID: "legacy-input", Name: "InputOnly", InputRate: &input},
		{ID: "no-rate", Name: "Broken"},
		{ID: "bad-rate", Name: "Negative", DailyRate: &negative},
		{ID: "", Name: "NoID", Rate: 50},
		{ID: "no-name", Name: "  ", Rate: 50},
	}
	require.NoError(t, repo.SaveCategories(ctx, saved))

	loaded, err := repo.LoadCategories(ctx)
	require.NoError(t, err)

	// The two legacy shapes resolve (dailyRate preferred over
	// inputRate) and normalize to the single-rate shape; the rest drop.
	require.Len(t, loaded, 3)
	assert.Equal(t, 120.0, loaded[0].Rate)
	assert.Equal(t, 90.0, loaded[1].Rate)
	assert.Nil(t, loaded[1].DailyRate)
	assert.Nil(t, loaded[1].InputRate)
	assert.Equal(t, 75.0, loaded[2].Rate)
}

func TestRepository_Months(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	t.Run("missing record loads empty month", func(t *testing.T) {
		record, err := repo.LoadMonth(ctx, 2026, time.August)
		require.NoError(t, err)
		assert.NotNil(t, record)
		assert.Empty(t, record)
	})

	t.Run("round trip", func(t *testing.T) {
		saved := MonthRecord{
			"3":  {{ID: "e1", CategoryID: "a", Hours: 7.5}},
			"14": {{ID: "e2", CategoryID: "a", Hours: 4}, {ID: "e3", CategoryID: "b", Hours: 2}},
		}
		require.NoError(t, repo.SaveMonth(ctx, 2026, time.August, saved))

		loaded, err := repo.LoadMonth(ctx, 2026, time.August)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("months are isolated", func(t *testing.T) {
		loaded, err := repo.LoadMonth(ctx, 2026, time.September)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("empty save deletes the record", func(t *testing.T) {
		require.NoError(t, repo.SaveMonth(ctx, 2026, time.August, MonthRecord{}))

		keys, err := repo.ListMonthKeys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestRepository_Months_SanitizesEntries(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	saved := MonthRecord{
		"3": {
			{ID: "e1", CategoryID: "a", Hours: 7.5},
			{ID: "", CategoryID: "a", Hours: 1},
			{ID: "e2", CategoryID: "", Hours: 1},
			{ID: "e3", CategoryID: "a", Hours: 0},
			{ID: "e4", CategoryID: "a", Hours: -2},
		},
		"9": {
			{ID: "e5", CategoryID: "a", Hours: 0},
		},
	}
	require.NoError(t, repo.SaveMonth(ctx, 2026, time.August, saved))

	loaded, err := repo.LoadMonth(ctx, 2026, time.August)
	require.NoError(t, err)

	// Bad entries drop individually; day 9 loses its last entry and
	// disappears entirely.
	require.Len(t, loaded, 1)
	require.Len(t, loaded["3"], 1)
	assert.Equal(t, "e1", loaded["3"][0].ID)
}

func TestRepository_ListMonthKeys(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveMonth(ctx, 2026, time.August, MonthRecord{"1": {{ID: "e1", CategoryID: "a", Hours: 1}}}))
	require.NoError(t, repo.SaveMonth(ctx, 2025, time.December, MonthRecord{"2": {{ID: "e2", CategoryID: "a", Hours: 1}}}))
	require.NoError(t, repo.SaveView(ctx, ViewRecord{Year: 2026, Month: 8}))

	keys, err := repo.ListMonthKeys(ctx)
	require.NoError(t, err)

	// Only month records, not the view record.
	assert.ElementsMatch(t, []string{"entries:2026-08", "entries:2025-12"}, keys)
}

func TestRepository_View(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	t.Run("missing record loads nil", func(t *testing.T) {
		record, err := repo.LoadView(ctx)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("round trip", func(t *testing.T) {
		saved := ViewRecord{Year: 2026, Month: 8, SelectedCategoryID: "a"}
		require.NoError(t, repo.SaveView(ctx, saved))

		loaded, err := repo.LoadView(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, saved, *loaded)
	})

	t.Run("out-of-range view loads nil", func(t *testing.T) {
		require.NoError(t, repo.SaveView(ctx, ViewRecord{Year: 2026, Month: 13}))

		loaded, err := repo.LoadView(ctx)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bc.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.SaveCategories(ctx, []CategoryRecord{{ID: "a", Name: "Consulting", Rate: 120}}))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadCategories(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Consulting", loaded[0].Name)
}
