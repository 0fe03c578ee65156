package calendar

// DayOfYearIndex returns the zero-based ordinal of (month, day) within year:
// January 1st is 0 and December 31st is DaysInYear(year)-1.
//
// Series lookups must go through this index; day-of-month alone only lines up
// with the series in January.
func DayOfYearIndex(year, month, day int) (int, error) {
	if !validMonth(month) {
		return 0, &InvalidMonthError{Month: month}
	}
	if day < 1 || day > daysIn(year, month) {
		return 0, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	idx := day - 1
	for m := 0; m < month; m++ {
		idx += daysIn(year, m)
	}
	return idx, nil
}
