// Package aggregate buckets expenses and incomes into the series shown on
// the dashboard.
//
// All functions are pure. The current time is always passed in as now.
package aggregate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
)

var ErrUnknownPeriod = errors.New("unknown period, must be one of week, month, year")

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod parses a period keyword. Keywords are case-insensitive.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Window is a range of calendar days, both days inclusive.
type Window struct {
	From  time.Time `json:"from" example:"2024-03-04T00:00:00Z"`
	Until time.Time `json:"until" example:"2024-03-10T00:00:00Z"`
}

func (w Window) Contains(t time.Time) bool {
	d := types.DateOf(t)
	return !d.Before(w.From) && !d.After(w.Until)
}

// MonthWindow returns the month of now.
func MonthWindow(now time.Time) Window {
	month := types.MonthOf(now)
	return Window{
		From:  month.Time(),
		Until: month.AddDate(0, 1).Time().AddDate(0, 0, -1),
	}
}

// TrendWindow returns the days covered by the bar series for the period.
func TrendWindow(now time.Time, period Period) (Window, error) {
	today := types.DateOf(now)

	switch period {
	case PeriodWeek:
		return Window{From: today.AddDate(0, 0, -6), Until: today}, nil
	case PeriodMonth:
		return Window{From: types.MonthOf(now).Time(), Until: today}, nil
	case PeriodYear:
		month := types.MonthOf(now)
		return Window{
			From:  month.AddDate(0, -11).Time(),
			Until: month.AddDate(0, 1).Time().AddDate(0, 0, -1),
		}, nil
	}

	return Window{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
}

// CategoryWindow returns the days covered by the category series for the period.
//
// The window always ends with the calendar date of now.
func CategoryWindow(now time.Time, period Period) (Window, error) {
	today := types.DateOf(now)

	switch period {
	case PeriodWeek:
		dow := int(today.Weekday())
		offset := 1 - dow
		if dow == 0 {
			offset = -6
		}
		return Window{From: today.AddDate(0, 0, offset), Until: today}, nil
	case PeriodMonth:
		return Window{From: types.MonthOf(now).Time(), Until: today}, nil
	case PeriodYear:
		return Window{From: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), Until: today}, nil
	}

	return Window{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
}
