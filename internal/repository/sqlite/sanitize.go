package sqlite

import (
	"math"
	"strings"
)

// resolveRate reconciles the persisted rate fields into a single
// hourly rate. The current shape stores rate directly; legacy payloads
// split it into dailyRate and inputRate, with dailyRate preferred and
// inputRate as the fallback. Returns false when no field yields a
// finite positive rate.
func resolveRate(record CategoryRecord) (float64, bool) {
	if isPositiveFinite(record.Rate) {
		return record.Rate, true
	}
	if record.DailyRate != nil && isPositiveFinite(*record.DailyRate) {
		return *record.DailyRate, true
	}
	if record.InputRate != nil && isPositiveFinite(*record.InputRate) {
		return *record.InputRate, true
	}
	return 0, false
}

// sanitizeCategories drops malformed category records individually:
// missing id or name, or no resolvable positive finite rate. Surviving
// records are normalized to the single-rate shape.
func sanitizeCategories(records []CategoryRecord) []CategoryRecord {
	clean := make([]CategoryRecord, 0, len(records))
	for _, record := range records {
		if record.ID == "" || strings.TrimSpace(record.Name) == "" {
			continue
		}
		rate, ok := resolveRate(record)
		if !ok {
			continue
		}
		clean = append(clean, CategoryRecord{
			ID:     record.ID,
			Name:   record.Name,
			Rate:   rate,
			Hidden: record.Hidden,
		})
	}
	return clean
}

// sanitizeMonth drops malformed day entries individually rather than
// invalidating the whole day: missing id or category id, or hours that
// are non-finite or not strictly positive. Days left without entries
// disappear from the record.
func sanitizeMonth(record MonthRecord) MonthRecord {
	clean := make(MonthRecord, len(record))
	for day, entries := range record {
		var keep []DayEntryRecord
		for _, entry := range entries {
			if entry.ID == "" || entry.CategoryID == "" {
				continue
			}
			if !isPositiveFinite(entry.Hours) {
				continue
			}
			keep = append(keep, entry)
		}
		if len(keep) > 0 {
			clean[day] = keep
		}
	}
	return clean
}

func isPositiveFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}
