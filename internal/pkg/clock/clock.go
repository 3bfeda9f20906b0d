package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every minute offset produced by ParseClockTime.
const MinutesPerDay = 24 * 60

// ParseClockTime converts a 12-hour wall-clock string such as "09:00 AM" or
// "1:45 pm" into minutes since midnight. The leading zero on the hour is
// optional and the meridiem is case-insensitive. Every interval comparison in
// the scheduler runs on the returned offsets, never on the raw strings.
func ParseClockTime(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	fields := strings.Fields(trimmed)
	if len(fields) != 2 {
		return 0, fmt.Errorf("clock time %q must look like \"hh:mm AM\"", value)
	}

	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, fmt.Errorf("clock time %q has invalid meridiem %q", value, fields[1])
	}

	hourMinute := strings.Split(fields[0], ":")
	if len(hourMinute) != 2 {
		return 0, fmt.Errorf("clock time %q has invalid hh:mm part", value)
	}

	hour, err := strconv.Atoi(hourMinute[0])
	if err != nil {
		return 0, fmt.Errorf("clock time %q has non-numeric hour", value)
	}
	minute, err := strconv.Atoi(hourMinute[1])
	if err != nil {
		return 0, fmt.Errorf("clock time %q has non-numeric minute", value)
	}

	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("clock time %q hour must be between 1 and 12", value)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q minute must be between 0 and 59", value)
	}

	// 12 AM is midnight, 12 PM is noon.
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders a minutes-since-midnight offset back into the
// 12-hour form used in requests and conflict diagnostics.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem)
}
