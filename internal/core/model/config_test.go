package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
)

func TestDurationsNormalized(t *testing.T) {
	tests := map[string]struct {
		input    model.Durations
		expected model.Durations
	}{
		"Defaults should be kept.": {
			input:    model.DefaultDurations(),
			expected: model.Durations{Work: 25 * time.Minute, ShortBreak: 5 * time.Minute, LongBreak: 10 * time.Minute},
		},
		"Zero values should be clamped to one minute.": {
			input:    model.Durations{},
			expected: model.Durations{Work: time.Minute, ShortBreak: time.Minute, LongBreak: time.Minute},
		},
		"Negative values should be clamped to one minute.": {
			input:    model.Durations{Work: -5 * time.Minute, ShortBreak: -time.Second, LongBreak: 3 * time.Minute},
			expected: model.Durations{Work: time.Minute, ShortBreak: time.Minute, LongBreak: 3 * time.Minute},
		},
		"Partial minutes should be truncated.": {
			input:    model.Durations{Work: 90 * time.Second, ShortBreak: 30 * time.Second, LongBreak: 10*time.Minute + 59*time.Second},
			expected: model.Durations{Work: time.Minute, ShortBreak: time.Minute, LongBreak: 10 * time.Minute},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.input.Normalized())
		})
	}
}

func TestDurationsFromMinutes(t *testing.T) {
	got := model.DurationsFromMinutes(50, 0, 15)

	assert.Equal(t, model.Durations{Work: 50 * time.Minute, ShortBreak: time.Minute, LongBreak: 15 * time.Minute}, got)
}
