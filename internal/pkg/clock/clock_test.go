package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("Valid Times", func(t *testing.T) {
		cases := []struct {
			input   string
			minutes int
		}{
			{"09:00 AM", 9 * 60},
			{"12:00 AM", 0},
			{"12:00 PM", 12 * 60},
			{"12:30 PM", 12*60 + 30},
			{"1:45 pm", 13*60 + 45},
			{"11:59 PM", 23*60 + 59},
			{"  08:15 AM  ", 8*60 + 15},
		}
		for _, c := range cases {
			minutes, err := ParseClockTime(c.input)
			assert.NoError(t, err, "input %q should parse", c.input)
			assert.Equal(t, c.minutes, minutes, "input %q", c.input)
		}
	})

	t.Run("Malformed Times", func(t *testing.T) {
		cases := []string{
			"",
			"9:00",
			"09:00AM extra",
			"13:00 PM",
			"0:30 AM",
			"09:60 AM",
			"09:-1 AM",
			"09:00 XM",
			"nine AM",
			"09.00 AM",
		}
		for _, input := range cases {
			_, err := ParseClockTime(input)
			assert.Error(t, err, "input %q should fail", input)
		}
	})
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{0, "12:00 AM"},
		{9 * 60, "09:00 AM"},
		{12 * 60, "12:00 PM"},
		{13*60 + 45, "01:45 PM"},
		{23*60 + 59, "11:59 PM"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FormatMinutes(c.minutes))
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, input := range []string{"08:00 AM", "12:00 PM", "03:40 PM", "12:00 AM"} {
		minutes, err := ParseClockTime(input)
		assert.NoError(t, err)
		assert.Equal(t, input, FormatMinutes(minutes))
	}
}
