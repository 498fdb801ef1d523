package timekeeper

import (
	"time"

	"pomodoro/internal/clock"
)

// Dispatcher runs fn on the thread that owns the timer state.
type Dispatcher func(fn func())

// Scheduler calls onTick once per interval while active. Every callback is
// routed through the dispatcher, and callbacks armed before the latest Stop are
// dropped, so a pending tick can never land after a pause or reset.
type Scheduler struct {
	clock      clock.Clock
	interval   time.Duration
	dispatch   Dispatcher
	onTick     func()
	timer      clock.Timer
	generation uint64
	active     bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(clk clock.Clock, interval time.Duration, dispatch Dispatcher, onTick func()) *Scheduler {
	if clk == nil {
		clk = clock.System
	}
	if interval <= 0 {
		interval = time.Second
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Scheduler{
		clock:    clk,
		interval: interval,
		dispatch: dispatch,
		onTick:   onTick,
	}
}

// Start begins ticking. Calling Start on an active scheduler is a no-op.
func (scheduler *Scheduler) Start() {
	if scheduler.active {
		return
	}
	scheduler.active = true
	scheduler.generation++
	scheduler.arm(scheduler.generation)
}

// Stop cancels the pending tick.
func (scheduler *Scheduler) Stop() {
	if !scheduler.active {
		return
	}
	scheduler.active = false
	scheduler.generation++
	if scheduler.timer != nil {
		scheduler.timer.Stop()
		scheduler.timer = nil
	}
}

// Active reports whether the scheduler is ticking.
func (scheduler *Scheduler) Active() bool {
	return scheduler.active
}

func (scheduler *Scheduler) arm(generation uint64) {
	scheduler.timer = scheduler.clock.AfterFunc(scheduler.interval, func() {
		scheduler.dispatch(func() {
			scheduler.fire(generation)
		})
	})
}

func (scheduler *Scheduler) fire(generation uint64) {
	if !scheduler.active || generation != scheduler.generation {
		return
	}
	scheduler.arm(generation)
	if scheduler.onTick != nil {
		scheduler.onTick()
	}
}
