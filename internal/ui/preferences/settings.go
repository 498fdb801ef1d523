package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	SoundEnabled         bool
	NotificationsEnabled bool
	LaunchAtLogin        bool
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	defaults := model.DefaultDurations()
	return Settings{
		Work:                 defaults.Work,
		ShortBreak:           defaults.ShortBreak,
		LongBreak:            defaults.LongBreak,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		LaunchAtLogin:        false,
	}
}

// Durations converts settings to the timer configuration.
func (settings Settings) Durations() model.Durations {
	return model.Durations{
		Work:       settings.Work,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}.Normalized()
}
