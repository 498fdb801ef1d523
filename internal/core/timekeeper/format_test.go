package timekeeper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/timekeeper"
)

func TestFormatClock(t *testing.T) {
	tests := map[string]struct {
		seconds int
		exp     string
	}{
		"Full work phase.":      {seconds: 1500, exp: "25:00"},
		"Single digit values.":  {seconds: 65, exp: "01:05"},
		"Zero.":                 {seconds: 0, exp: "00:00"},
		"Negative is clamped.":  {seconds: -3, exp: "00:00"},
		"More than 99 minutes.": {seconds: 6000, exp: "100:00"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, timekeeper.FormatClock(test.seconds))
		})
	}
}

func TestFormatStudy(t *testing.T) {
	assert.Equal(t, "0 mins 0 secs", timekeeper.FormatStudy(0))
	assert.Equal(t, "25 mins 7 secs", timekeeper.FormatStudy(1507))
}
