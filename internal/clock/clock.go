// Package clock abstracts timers so countdown scheduling can be driven by a fake
// clock in tests.
package clock

import "time"

// Timer represents a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock provides time-related operations.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// System is the Clock backed by the standard library timers.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
