package timekeeper

import "pomodoro/internal/core/model"

// cyclesPerLongBreak is the number of completed work phases between long breaks.
const cyclesPerLongBreak = 4

// Snapshot is a read-only copy of the timer state.
type Snapshot struct {
	Phase               Phase
	SecondsRemaining    int
	Running             bool
	CompletedWorkCycles int
	StudySeconds        int
}

// Machine is the phase transition state machine. It performs no scheduling
// and holds no locks: callers own the single thread that mutates it.
type Machine struct {
	durations model.Durations
	state     Snapshot
}

// NewMachine creates a machine in the work phase with a full countdown.
func NewMachine(durations model.Durations) *Machine {
	machine := &Machine{durations: durations.Normalized()}
	machine.state = machine.initialState()
	return machine
}

// Snapshot returns the current state.
func (machine *Machine) Snapshot() Snapshot {
	return machine.state
}

// Durations returns the active configuration.
func (machine *Machine) Durations() model.Durations {
	return machine.durations
}

// PhaseSeconds returns the configured length of a phase in seconds.
func (machine *Machine) PhaseSeconds(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return int(machine.durations.ShortBreak.Seconds())
	case PhaseLongBreak:
		return int(machine.durations.LongBreak.Seconds())
	default:
		return int(machine.durations.Work.Seconds())
	}
}

// Tick advances the countdown by one second. It reports false and changes
// nothing when the timer is paused or already exhausted.
func (machine *Machine) Tick() bool {
	if !machine.state.Running || machine.state.SecondsRemaining <= 0 {
		return false
	}
	machine.state.SecondsRemaining--
	if machine.state.Phase == PhaseWork {
		machine.state.StudySeconds++
	}
	return true
}

// Expired reports whether the running countdown has reached zero.
func (machine *Machine) Expired() bool {
	return machine.state.Running && machine.state.SecondsRemaining == 0
}

// Expire performs the automatic transition out of an exhausted phase and
// returns the phase entered. It reports false when the countdown has not expired.
func (machine *Machine) Expire() (Phase, bool) {
	if !machine.Expired() {
		return machine.state.Phase, false
	}
	machine.state.Running = false

	next := PhaseWork
	if machine.state.Phase == PhaseWork {
		// Cadence follows the cumulative count, not breaks since the last long one.
		if (machine.state.CompletedWorkCycles+1)%cyclesPerLongBreak == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
		machine.state.CompletedWorkCycles++
	}

	machine.enter(next)
	return next, true
}

// SetRunning starts or pauses the countdown. It reports whether the state changed.
func (machine *Machine) SetRunning(running bool) bool {
	if machine.state.Running == running {
		return false
	}
	machine.state.Running = running
	return true
}

// SwitchPhase jumps to target with a full countdown and stops the timer.
// Cycle count and study time are kept.
func (machine *Machine) SwitchPhase(target Phase) bool {
	if !target.Valid() {
		return false
	}
	machine.state.Running = false
	machine.enter(target)
	return true
}

// Reset restores the initial state.
func (machine *Machine) Reset() {
	machine.state = machine.initialState()
}

// SetDurations replaces the configuration. The active countdown is only
// shortened when it exceeds the new length of the active phase.
func (machine *Machine) SetDurations(durations model.Durations) {
	machine.durations = durations.Normalized()
	if limit := machine.PhaseSeconds(machine.state.Phase); machine.state.SecondsRemaining > limit {
		machine.state.SecondsRemaining = limit
	}
}

func (machine *Machine) enter(phase Phase) {
	machine.state.Phase = phase
	machine.state.SecondsRemaining = machine.PhaseSeconds(phase)
}

func (machine *Machine) initialState() Snapshot {
	return Snapshot{
		Phase:            PhaseWork,
		SecondsRemaining: machine.PhaseSeconds(PhaseWork),
	}
}
