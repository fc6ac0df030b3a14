package service_test

import (
	"testing"

	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc  string
		Date  string
		Error error
	}{
		{Desc: "canonical", Date: "2026-08-29", Error: nil},
		{Desc: "non-canonical spelling", Date: "2026-8-29", Error: errorvalues.ErrBadDateFormat},
		{Desc: "wrong order", Date: "29-08-2026", Error: errorvalues.ErrBadDateFormat},
		{Desc: "garbage", Date: "yesterday", Error: errorvalues.ErrBadDateFormat},
		{Desc: "empty", Date: "", Error: errorvalues.ErrBadDateFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := service.ParseDate(tc.Date)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestWeekStartOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Date     string
		Expected string
	}{
		{Desc: "wednesday maps to previous sunday", Date: "2026-08-26", Expected: "2026-08-23"},
		{Desc: "sunday maps to itself", Date: "2026-08-23", Expected: "2026-08-23"},
		{Desc: "saturday maps back six days", Date: "2026-08-29", Expected: "2026-08-23"},
		{Desc: "crosses a month boundary", Date: "2026-09-01", Expected: "2026-08-30"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := service.WeekStartOf(tc.Date)
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
	t.Run("bad date", func(t *testing.T) {
		_, err := service.WeekStartOf("not-a-date")
		assert.ErrorIs(t, err, errorvalues.ErrBadDateFormat)
	})
}

func TestDaysBefore(t *testing.T) {
	t.Parallel()
	got, err := service.DaysBefore("2026-08-29", 30)
	assert.NoError(t, err)
	assert.Equal(t, "2026-07-30", got)

	got, err = service.DaysBefore("2026-03-01", 1)
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-28", got)
}
