package models

import "timetable-service/internal/pkg/clock"

// SchoolCalendar is the per-school timing configuration. It is owned and
// mutated by the external settings service; the scheduler fetches it fresh on
// every request and never writes it.
type SchoolCalendar struct {
	ID                    string     `bson:"_id,omitempty"`
	OpenTime              string     `bson:"openTime"`
	CloseTime             string     `bson:"closeTime"`
	TotalPeriods          int        `bson:"totalPeriods"`
	PeriodDurationMinutes int        `bson:"periodDurationMinutes"`
	BreakDurationMinutes  int        `bson:"breakDurationMinutes"`
	LunchBreak            LunchBreak `bson:"lunchBreak"`
}

type LunchBreak struct {
	Enabled         bool   `bson:"enabled"`
	StartTime       string `bson:"startTime"`
	DurationMinutes int    `bson:"durationMinutes"`
}

// CalendarWindow is the calendar with every wall-clock string resolved to a
// minute offset, the only form the conflict checker works with.
type CalendarWindow struct {
	OpenMinutes       int
	CloseMinutes      int
	BreakMinutes      int
	LunchEnabled      bool
	LunchStartMinutes int
	LunchEndMinutes   int
}

// ResolveWindow parses the calendar's wall-clock fields into minute offsets.
// A calendar that cannot be parsed is treated the same as a missing one: the
// school's timing is not usable until the settings service fixes it.
func (c *SchoolCalendar) ResolveWindow() (*CalendarWindow, error) {
	open, err := clock.ParseClockTime(c.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := clock.ParseClockTime(c.CloseTime)
	if err != nil {
		return nil, err
	}

	window := &CalendarWindow{
		OpenMinutes:  open,
		CloseMinutes: close,
		BreakMinutes: c.BreakDurationMinutes,
	}

	if c.LunchBreak.Enabled {
		lunchStart, err := clock.ParseClockTime(c.LunchBreak.StartTime)
		if err != nil {
			return nil, err
		}
		window.LunchEnabled = true
		window.LunchStartMinutes = lunchStart
		window.LunchEndMinutes = lunchStart + c.LunchBreak.DurationMinutes
	}

	return window, nil
}
