package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNo(t *testing.T) {
	created := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "SC-20260828-0001", FormatOrderNo(created, 1))
	assert.Equal(t, "SC-20260828-0042", FormatOrderNo(created, 42))
	assert.Equal(t, "SC-20260828-12345", FormatOrderNo(created, 12345))
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	at := time.Date(2026, 8, 28, 23, 59, 0, 0, loc)

	start, end := DayRange(at)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, loc), end)
	assert.True(t, at.After(start) && at.Before(end))
}
