package service

import (
	"fmt"
	"time"
)

// MaxOccurrences caps every generated series.
const MaxOccurrences = 52

// Recurrence frequencies.
const (
	FrequencyDaily   = "DAILY"
	FrequencyWeekly  = "WEEKLY"
	FrequencyMonthly = "MONTHLY"
	FrequencyCustom  = "CUSTOM"
)

// RecurrenceConfig is the JSON payload stored on a recurring event.
type RecurrenceConfig struct {
	Frequency      string     `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY CUSTOM"`
	Interval       int        `json:"interval,omitempty"`
	DaysOfWeek     []int      `json:"days_of_week,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxOccurrences int        `json:"max_occurrences,omitempty"`
}

// GenerateOccurrences expands a recurrence config into the concrete start
// dates of the series, first occurrence included. The series stops at the
// config's end date, its max occurrence count, or the global cap, whichever
// comes first.
func GenerateOccurrences(start time.Time, cfg RecurrenceConfig) ([]time.Time, error) {
	limit := cfg.MaxOccurrences
	if limit <= 0 || limit > MaxOccurrences {
		limit = MaxOccurrences
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 1
	}

	within := func(t time.Time) bool {
		return cfg.EndDate == nil || !t.After(*cfg.EndDate)
	}

	switch cfg.Frequency {
	case FrequencyDaily:
		return stepSeries(start, limit, within, func(t time.Time) time.Time {
			return t.AddDate(0, 0, interval)
		}), nil
	case FrequencyWeekly:
		return stepSeries(start, limit, within, func(t time.Time) time.Time {
			return t.AddDate(0, 0, 7*interval)
		}), nil
	case FrequencyMonthly:
		return stepSeries(start, limit, within, func(t time.Time) time.Time {
			return t.AddDate(0, interval, 0)
		}), nil
	case FrequencyCustom:
		if len(cfg.DaysOfWeek) == 0 {
			return nil, fmt.Errorf("custom recurrence requires days_of_week")
		}
		return customSeries(start, limit, within, cfg.DaysOfWeek), nil
	default:
		return nil, fmt.Errorf("unknown recurrence frequency %q", cfg.Frequency)
	}
}

func stepSeries(start time.Time, limit int, within func(time.Time) bool, next func(time.Time) time.Time) []time.Time {
	out := make([]time.Time, 0, limit)
	for t := start; len(out) < limit && within(t); t = next(t) {
		out = append(out, t)
	}
	return out
}

// customSeries walks day by day emitting the requested weekdays
// (0 = Sunday). The start date itself is emitted only when its weekday is in
// the set.
func customSeries(start time.Time, limit int, within func(time.Time) bool, daysOfWeek []int) []time.Time {
	wanted := map[time.Weekday]bool{}
	for _, d := range daysOfWeek {
		if d >= 0 && d <= 6 {
			wanted[time.Weekday(d)] = true
		}
	}

	out := make([]time.Time, 0, limit)
	// Hard ceiling of two years of scanning so a sparse weekday set with no
	// end date cannot loop unbounded.
	for t, scanned := start, 0; len(out) < limit && scanned < 731 && within(t); t, scanned = t.AddDate(0, 0, 1), scanned+1 {
		if wanted[t.Weekday()] {
			out = append(out, t)
		}
	}
	return out
}
