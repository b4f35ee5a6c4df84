package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"billing-calendar/internal/domain"
)

// ToCSV writes one row per day entry of the sheet, joined with its
// category. Entries whose category no longer exists are skipped.
func ToCSV(categories *domain.CategoryIndex, sheet *domain.EntrySheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Category", "Rate", "Hours", "Amount"}); err != nil {
		return err
	}

	for _, day := range sheet.Days() {
		date := time.Date(sheet.Year, sheet.Month, day, 0, 0, 0, 0, time.UTC)
		for _, entry := range sheet.Entries(day) {
			category, ok := categories.Get(entry.CategoryID)
			if !ok {
				continue
			}
			row := []string{
				date.Format("2006-01-02"),
				category.Name,
				formatAmount(category.Rate),
				formatAmount(entry.Hours),
				formatAmount(domain.Round2(entry.Hours * category.Rate)),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func formatAmount(x float64) string {
	return strconv.FormatFloat(domain.Round2(x), 'f', 2, 64)
}
