package calendar

import (
	"errors"
	"fmt"
)

// InvalidMonthError reports a month outside [0,11].
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d (expected 0..11)", e.Month)
}

// InvalidDateError reports a day of month that does not exist in that month.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s has no day %d in %d", MonthName(e.Month), e.Day, e.Year)
}

func IsInvalidMonth(err error) bool {
	var e *InvalidMonthError
	return errors.As(err, &e)
}

func IsInvalidDate(err error) bool {
	var e *InvalidDateError
	return errors.As(err, &e)
}
