// Package calendar provides the month geometry the grid view and the
// week aggregations are built on. Everything here is a pure function
// of (year, month); weeks start on Sunday.
package calendar

import "time"

// WeekLength is the number of cells in a week row.
const WeekLength = 7

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of the given month.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Weekday returns the weekday of the given day of the month.
func Weekday(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekend reports whether the given day falls on the week's first or
// last weekday, the two weekend cells of a Sunday-start grid.
func IsWeekend(year int, month time.Month, day int) bool {
	wd := Weekday(year, month, day)
	return wd == time.Sunday || wd == time.Saturday
}

// Cells returns the flat cell sequence for the month grid: leading
// zeros for the weekday offset of day 1, then the day numbers, then
// trailing zeros so the length is a multiple of WeekLength. Zero marks
// an out-of-month cell.
func Cells(year int, month time.Month) []int {
	lead := int(FirstWeekday(year, month))
	days := DaysIn(year, month)

	total := lead + days
	if rem := total % WeekLength; rem != 0 {
		total += WeekLength - rem
	}

	cells := make([]int, total)
	for day := 1; day <= days; day++ {
		cells[lead+day-1] = day
	}
	return cells
}

// Weeks partitions the month's cell sequence into week rows of
// WeekLength cells each.
func Weeks(year int, month time.Month) [][]int {
	cells := Cells(year, month)
	weeks := make([][]int, 0, len(cells)/WeekLength)
	for i := 0; i < len(cells); i += WeekLength {
		weeks = append(weeks, cells[i:i+WeekLength])
	}
	return weeks
}

// WeekDays returns the in-month days of the given week row (0-based),
// skipping out-of-month cells.
func WeekDays(year int, month time.Month, week int) []int {
	weeks := Weeks(year, month)
	if week < 0 || week >= len(weeks) {
		return nil
	}
	var days []int
	for _, day := range weeks[week] {
		if day != 0 {
			days = append(days, day)
		}
	}
	return days
}

// MonthDays returns every day of the month in order.
func MonthDays(year int, month time.Month) []int {
	days := make([]int, DaysIn(year, month))
	for i := range days {
		days[i] = i + 1
	}
	return days
}
