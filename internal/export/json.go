package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"billing-calendar/internal/domain"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Year       int         `json:"year"`
	Month      string      `json:"month"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	CategoryID string  `json:"category_id"`
	Rate       float64 `json:"rate"`
	Hours      float64 `json:"hours"`
	Amount     float64 `json:"amount"`
	Hidden     bool    `json:"hidden,omitempty"`
}

// ToJSON writes the sheet's day entries, joined with their categories,
// as a single JSON document. Entries whose category no longer exists
// are skipped.
func ToJSON(categories *domain.CategoryIndex, sheet *domain.EntrySheet, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Year:       sheet.Year,
		Month:      sheet.Month.String(),
	}

	for _, day := range sheet.Days() {
		date := time.Date(sheet.Year, sheet.Month, day, 0, 0, 0, 0, time.UTC)
		for _, entry := range sheet.Entries(day) {
			category, ok := categories.Get(entry.CategoryID)
			if !ok {
				continue
			}
			export.Entries = append(export.Entries, jsonEntry{
				Date:       date.Format("2006-01-02"),
				Category:   category.Name,
				CategoryID: category.ID,
				Rate:       domain.Round2(category.Rate),
				Hours:      domain.Round2(entry.Hours),
				Amount:     domain.Round2(entry.Hours * category.Rate),
				Hidden:     category.Hidden,
			})
		}
	}
	export.Count = len(export.Entries)

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
