package timekeeper

import (
	"time"

	"pomodoro/internal/clock"
	"pomodoro/internal/core/model"
	"pomodoro/internal/log"
)

// ResetPrompt is the question asked before the timer is reset.
const ResetPrompt = "Are you sure you want to restart the timer?"

// Confirmer asks the user a yes/no question and reports the answer through done.
type Confirmer interface {
	Confirm(message string, done func(bool))
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string, done func(bool))

// Confirm implements Confirmer.
func (fn ConfirmFunc) Confirm(message string, done func(bool)) {
	fn(message, done)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
	// Dispatch hands tick callbacks to the UI thread. Defaults to a direct call.
	Dispatch Dispatcher
	Logger   log.Logger
}

// TimeKeeper owns the phase machine and its scheduler. All methods must be
// called from the thread Dispatch delivers to.
type TimeKeeper struct {
	machine   *Machine
	scheduler *Scheduler
	listeners []Listener
	logger    log.Logger
	closed    bool
}

// New creates a paused TimeKeeper at the start of a work phase.
func New(durations model.Durations, options Config) *TimeKeeper {
	if options.Logger == nil {
		options.Logger = log.Noop
	}

	keeper := &TimeKeeper{
		machine: NewMachine(durations),
		logger:  options.Logger.WithValues(log.Kv{"svc": "timekeeper.TimeKeeper"}),
	}
	keeper.scheduler = NewScheduler(options.Clock, options.TickInterval, options.Dispatch, keeper.tick)
	return keeper
}

// Subscribe registers an observer.
func (keeper *TimeKeeper) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	keeper.listeners = append(keeper.listeners, listener)
}

// Snapshot returns the current timer state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	return keeper.machine.Snapshot()
}

// Durations returns the active phase durations.
func (keeper *TimeKeeper) Durations() model.Durations {
	return keeper.machine.Durations()
}

// ToggleRunning starts a paused timer or pauses a running one.
func (keeper *TimeKeeper) ToggleRunning() {
	if keeper.machine.Snapshot().Running {
		keeper.Pause()
		return
	}
	keeper.Start()
}

// Start resumes the countdown of the current phase.
func (keeper *TimeKeeper) Start() {
	if keeper.closed || !keeper.machine.SetRunning(true) {
		return
	}
	keeper.scheduler.Start()
	snapshot := keeper.machine.Snapshot()
	keeper.logger.Debugf("timer resumed in %s with %d seconds left", snapshot.Phase, snapshot.SecondsRemaining)
	keeper.emit(EventResumed)
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.scheduler.Stop()
	if !keeper.machine.SetRunning(false) {
		return
	}
	keeper.logger.Debugf("timer paused")
	keeper.emit(EventPaused)
}

// SwitchPhase jumps to the target phase and stops the timer.
func (keeper *TimeKeeper) SwitchPhase(target Phase) {
	if !target.Valid() {
		keeper.logger.Warningf("ignoring switch to unknown phase %q", target)
		return
	}
	keeper.scheduler.Stop()
	keeper.machine.SwitchPhase(target)
	keeper.logger.Debugf("switched to %s", target)
	keeper.emit(EventPhaseSwitched)
}

// RequestReset asks the confirmer before restoring the initial state.
func (keeper *TimeKeeper) RequestReset(confirmer Confirmer) {
	if confirmer == nil {
		return
	}
	confirmer.Confirm(ResetPrompt, func(confirmed bool) {
		if !confirmed {
			keeper.logger.Debugf("reset declined")
			return
		}
		keeper.reset()
	})
}

// UpdateDurations applies new phase durations. Phases pick them up the next
// time they are entered.
func (keeper *TimeKeeper) UpdateDurations(durations model.Durations) {
	keeper.machine.SetDurations(durations)
	applied := keeper.machine.Durations()
	keeper.logger.Infof("durations updated: work=%s short=%s long=%s", applied.Work, applied.ShortBreak, applied.LongBreak)
	keeper.emit(EventConfigChanged)
}

// Close stops ticking and drops all observers.
func (keeper *TimeKeeper) Close() {
	keeper.scheduler.Stop()
	keeper.machine.SetRunning(false)
	keeper.listeners = nil
	keeper.closed = true
}

func (keeper *TimeKeeper) reset() {
	keeper.scheduler.Stop()
	keeper.machine.Reset()
	keeper.logger.Infof("timer reset")
	keeper.emit(EventReset)
}

func (keeper *TimeKeeper) tick() {
	if !keeper.machine.Tick() {
		keeper.scheduler.Stop()
		return
	}
	keeper.emit(EventTick)

	if !keeper.machine.Expired() {
		return
	}
	keeper.scheduler.Stop()
	phase, _ := keeper.machine.Expire()
	snapshot := keeper.machine.Snapshot()
	keeper.logger.Infof("entered %s after expiry (completed cycles: %d)", phase, snapshot.CompletedWorkCycles)
	keeper.emit(EventPhaseEntered)
}

func (keeper *TimeKeeper) emit(eventType EventType) {
	event := newEvent(eventType, keeper.machine.Snapshot())
	listeners := append([]Listener(nil), keeper.listeners...)
	for _, listener := range listeners {
		listener(event)
	}
}
