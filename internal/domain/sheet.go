package domain

import (
	"sort"
	"time"
)

// EntrySheet is the day-entry table for a single (year, month) pair.
// Days map to their entries keyed by category id, so the "at most one
// entry per category per day" invariant is structural rather than a
// filtering convention. Absence of a day key means zero entries; empty
// days are pruned immediately.
type EntrySheet struct {
	Year  int
	Month time.Month

	days  map[int]map[string]DayEntry
	order map[int][]string // category ids in first-recorded order per day
}

// NewEntrySheet creates an empty sheet for the given month.
func NewEntrySheet(year int, month time.Month) *EntrySheet {
	return &EntrySheet{
		Year:  year,
		Month: month,
		days:  make(map[int]map[string]DayEntry),
		order: make(map[int][]string),
	}
}

// Entry returns the entry for the given category on the given day.
func (s *EntrySheet) Entry(day int, categoryID string) (DayEntry, bool) {
	entry, ok := s.days[day][categoryID]
	return entry, ok
}

// Put stores an entry on the given day, replacing any existing entry
// for the same category while keeping its slot in the day's order.
func (s *EntrySheet) Put(day int, entry DayEntry) {
	if s.days[day] == nil {
		s.days[day] = make(map[string]DayEntry)
	}
	if _, exists := s.days[day][entry.CategoryID]; !exists {
		s.order[day] = append(s.order[day], entry.CategoryID)
	}
	s.days[day][entry.CategoryID] = entry
}

// Remove drops the entry for the given category on the given day.
// The day key disappears once its last entry is removed.
func (s *EntrySheet) Remove(day int, categoryID string) {
	entries, ok := s.days[day]
	if !ok {
		return
	}
	if _, ok := entries[categoryID]; !ok {
		return
	}
	delete(entries, categoryID)
	ids := s.order[day]
	for i, id := range ids {
		if id == categoryID {
			s.order[day] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	s.pruneDay(day)
}

// ClearDay removes every entry for the given day, regardless of category.
func (s *EntrySheet) ClearDay(day int) {
	delete(s.days, day)
	delete(s.order, day)
}

// RemoveCategory drops every entry referencing the given category id
// across all days, pruning days whose list becomes empty. It returns
// the days that were touched.
func (s *EntrySheet) RemoveCategory(categoryID string) []int {
	var touched []int
	for day := range s.days {
		if _, ok := s.days[day][categoryID]; ok {
			touched = append(touched, day)
		}
	}
	sort.Ints(touched)
	for _, day := range touched {
		s.Remove(day, categoryID)
	}
	return touched
}

// Entries returns the entries recorded on the given day, in the order
// their categories were first recorded.
func (s *EntrySheet) Entries(day int) []DayEntry {
	ids := s.order[day]
	if len(ids) == 0 {
		return nil
	}
	entries := make([]DayEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, s.days[day][id])
	}
	return entries
}

// Days returns the days holding at least one entry, in ascending order.
func (s *EntrySheet) Days() []int {
	days := make([]int, 0, len(s.days))
	for day := range s.days {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// HasEntries reports whether the given day holds any entries.
func (s *EntrySheet) HasEntries(day int) bool {
	return len(s.days[day]) > 0
}

// Len returns the total number of entries across all days.
func (s *EntrySheet) Len() int {
	n := 0
	for _, entries := range s.days {
		n += len(entries)
	}
	return n
}

// pruneDay removes the day key once its entry list is empty.
func (s *EntrySheet) pruneDay(day int) {
	if len(s.days[day]) == 0 {
		delete(s.days, day)
		delete(s.order, day)
	}
}
