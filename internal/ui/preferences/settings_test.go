package preferences_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"
)

func TestDefaultSettings(t *testing.T) {
	settings := preferences.DefaultSettings()

	assert.Equal(t, model.DefaultDurations(), settings.Durations())
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
	assert.False(t, settings.LaunchAtLogin)
}

func TestSettingsDurationsAreNormalized(t *testing.T) {
	settings := preferences.Settings{Work: 0, ShortBreak: 3 * time.Minute, LongBreak: -time.Minute}

	assert.Equal(t, model.Durations{Work: time.Minute, ShortBreak: 3 * time.Minute, LongBreak: time.Minute}, settings.Durations())
}
