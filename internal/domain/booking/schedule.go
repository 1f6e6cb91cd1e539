package booking

import (
	"fmt"
	"time"
)

const (
	DefaultWindowDays = 7
	codePrefix        = "BOOK"
)

// DateOf truncates t to its civil date, expressed as UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateWindow accepts dates in [today+1, today+windowDays].
func ValidateWindow(date, today time.Time, windowDays int) error {
	date, today = DateOf(date), DateOf(today)
	first := today.AddDate(0, 0, 1)
	last := today.AddDate(0, 0, windowDays)
	if date.Before(first) || date.After(last) {
		return ErrInvalidDateRange
	}
	return nil
}

// FormatCode renders "BOOK" + YYYYMMDD + a three digit sequence within the day.
func FormatCode(day time.Time, seq int) string {
	return fmt.Sprintf("%s%s%03d", codePrefix, day.Format("20060102"), seq)
}
