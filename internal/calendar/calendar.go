// Package calendar builds weekday-aligned month grids and maps calendar dates
// onto a year's flat per-day series.
package calendar

import "time"

// monthDays holds month lengths for a common year, January first.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// WeekdayNames lists weekday labels in grid column order (0=Sunday).
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func validMonth(month int) bool {
	return month >= 0 && month < 12
}

// daysIn assumes month is already validated.
func daysIn(year, month int) int {
	if month == 1 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// DaysInMonth returns the number of days in month (0=January) of year.
func DaysInMonth(year, month int) (int, error) {
	if !validMonth(month) {
		return 0, &InvalidMonthError{Month: month}
	}
	return daysIn(year, month), nil
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// FirstWeekday returns the weekday of the 1st of month (0=January) using
// proleptic Gregorian rules.
func FirstWeekday(year, month int) (time.Weekday, error) {
	if !validMonth(month) {
		return 0, &InvalidMonthError{Month: month}
	}
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday(), nil
}

// MonthName returns the long English month name ("January").
func MonthName(month int) string {
	if !validMonth(month) {
		return ""
	}
	return time.Month(month + 1).String()
}

// ShortMonthName returns the three letter month name ("Jan").
func ShortMonthName(month int) string {
	name := MonthName(month)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}
