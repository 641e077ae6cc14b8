package utils

import (
	"fmt"
	"time"
)

// FormatOrderNo builds a human order number from the creation time and a
// per-day sequence, e.g. SC-20260828-0007. The caller supplies the sequence
// (orders already created that day plus one) so numbers survive restarts.
func FormatOrderNo(now time.Time, seq int) string {
	return fmt.Sprintf("SC-%s-%04d", now.Format("20060102"), seq)
}

// DayRange returns the half-open [start, end) bounds of the calendar day
// containing t, in t's location. Used to count a day's orders.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
