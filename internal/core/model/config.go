package model

import "time"

const (
	DefaultWork       = 25 * time.Minute
	DefaultShortBreak = 5 * time.Minute
	DefaultLongBreak  = 10 * time.Minute

	// MinDuration is the smallest phase length accepted from the user.
	MinDuration = time.Minute
)

// Durations defines the length of every timer phase.
type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/10 minute schedule.
func DefaultDurations() Durations {
	return Durations{
		Work:       DefaultWork,
		ShortBreak: DefaultShortBreak,
		LongBreak:  DefaultLongBreak,
	}
}

// Normalized truncates every duration to whole minutes and clamps it to MinDuration.
func (durations Durations) Normalized() Durations {
	return Durations{
		Work:       clampMinutes(durations.Work),
		ShortBreak: clampMinutes(durations.ShortBreak),
		LongBreak:  clampMinutes(durations.LongBreak),
	}
}

// DurationsFromMinutes builds a normalized configuration from minute counts.
func DurationsFromMinutes(work, shortBreak, longBreak int) Durations {
	return Durations{
		Work:       time.Duration(work) * time.Minute,
		ShortBreak: time.Duration(shortBreak) * time.Minute,
		LongBreak:  time.Duration(longBreak) * time.Minute,
	}.Normalized()
}

func clampMinutes(value time.Duration) time.Duration {
	value = value.Truncate(time.Minute)
	if value < MinDuration {
		return MinDuration
	}
	return value
}
