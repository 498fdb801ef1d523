package timekeeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

func newRunningMachine(durations model.Durations) *timekeeper.Machine {
	machine := timekeeper.NewMachine(durations)
	machine.SetRunning(true)
	return machine
}

func runToExpiry(t *testing.T, machine *timekeeper.Machine) timekeeper.Phase {
	t.Helper()
	machine.SetRunning(true)
	for machine.Tick() {
	}
	phase, ok := machine.Expire()
	require.True(t, ok)
	return phase
}

func TestMachineInitialState(t *testing.T) {
	machine := timekeeper.NewMachine(model.DefaultDurations())

	assert.Equal(t, timekeeper.Snapshot{
		Phase:            timekeeper.PhaseWork,
		SecondsRemaining: 1500,
	}, machine.Snapshot())
}

func TestMachineTickDecreasesUntilZero(t *testing.T) {
	machine := newRunningMachine(model.DurationsFromMinutes(1, 1, 1))

	previous := machine.Snapshot().SecondsRemaining
	for machine.Tick() {
		current := machine.Snapshot().SecondsRemaining
		require.Equal(t, previous-1, current)
		previous = current
	}

	assert.Equal(t, 0, machine.Snapshot().SecondsRemaining)
	assert.True(t, machine.Expired())

	// Further ticks are no-ops until the expiry transition runs.
	assert.False(t, machine.Tick())
	assert.Equal(t, 0, machine.Snapshot().SecondsRemaining)
	assert.Equal(t, 60, machine.Snapshot().StudySeconds)
}

func TestMachineTickWhilePausedIsNoop(t *testing.T) {
	machine := timekeeper.NewMachine(model.DefaultDurations())

	assert.False(t, machine.Tick())
	assert.Equal(t, 1500, machine.Snapshot().SecondsRemaining)
	assert.Equal(t, 0, machine.Snapshot().StudySeconds)
}

func TestMachineStudySecondsOnlyAccrueInWork(t *testing.T) {
	tests := map[string]struct {
		phase    timekeeper.Phase
		running  bool
		ticks    int
		expStudy int
	}{
		"Running work should accrue one second per tick.": {
			phase:    timekeeper.PhaseWork,
			running:  true,
			ticks:    42,
			expStudy: 42,
		},
		"Paused work should not accrue.": {
			phase:    timekeeper.PhaseWork,
			running:  false,
			ticks:    42,
			expStudy: 0,
		},
		"Running short break should not accrue.": {
			phase:    timekeeper.PhaseShortBreak,
			running:  true,
			ticks:    42,
			expStudy: 0,
		},
		"Running long break should not accrue.": {
			phase:    timekeeper.PhaseLongBreak,
			running:  true,
			ticks:    42,
			expStudy: 0,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			machine := timekeeper.NewMachine(model.DefaultDurations())
			machine.SwitchPhase(test.phase)
			machine.SetRunning(test.running)

			for i := 0; i < test.ticks; i++ {
				machine.Tick()
			}

			assert.Equal(t, test.expStudy, machine.Snapshot().StudySeconds)
		})
	}
}

func TestMachineFreshWorkPhaseExpiresIntoShortBreak(t *testing.T) {
	machine := newRunningMachine(model.DefaultDurations())

	for i := 0; i < 1500; i++ {
		require.True(t, machine.Tick())
	}
	require.Equal(t, 0, machine.Snapshot().SecondsRemaining)

	phase, ok := machine.Expire()
	require.True(t, ok)

	assert.Equal(t, timekeeper.PhaseShortBreak, phase)
	assert.Equal(t, timekeeper.Snapshot{
		Phase:               timekeeper.PhaseShortBreak,
		SecondsRemaining:    300,
		Running:             false,
		CompletedWorkCycles: 1,
		StudySeconds:        1500,
	}, machine.Snapshot())
}

func TestMachineExpireBeforeZeroIsRejected(t *testing.T) {
	machine := newRunningMachine(model.DefaultDurations())
	machine.Tick()

	phase, ok := machine.Expire()

	assert.False(t, ok)
	assert.Equal(t, timekeeper.PhaseWork, phase)
	assert.Equal(t, 1499, machine.Snapshot().SecondsRemaining)
}

func TestMachineLongBreakCadence(t *testing.T) {
	machine := timekeeper.NewMachine(model.DurationsFromMinutes(1, 1, 2))

	var sequence []timekeeper.Phase
	for i := 0; i < 16; i++ {
		sequence = append(sequence, runToExpiry(t, machine))
	}

	assert.Equal(t, []timekeeper.Phase{
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseLongBreak, timekeeper.PhaseWork,
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseShortBreak, timekeeper.PhaseWork,
		timekeeper.PhaseLongBreak, timekeeper.PhaseWork,
	}, sequence)
	assert.Equal(t, 8, machine.Snapshot().CompletedWorkCycles)
	assert.Equal(t, 60, machine.Snapshot().SecondsRemaining)
}

func TestMachineCadenceUsesCumulativeCycles(t *testing.T) {
	machine := timekeeper.NewMachine(model.DurationsFromMinutes(1, 1, 1))

	// Three work phases, then the user skips straight back to work twice.
	for i := 0; i < 3; i++ {
		require.Equal(t, timekeeper.PhaseShortBreak, runToExpiry(t, machine))
		machine.SwitchPhase(timekeeper.PhaseWork)
	}

	assert.Equal(t, timekeeper.PhaseLongBreak, runToExpiry(t, machine))
	assert.Equal(t, 4, machine.Snapshot().CompletedWorkCycles)
}

func TestMachineSwitchPhase(t *testing.T) {
	machine := newRunningMachine(model.DefaultDurations())
	for i := 0; i < 10; i++ {
		machine.Tick()
	}

	ok := machine.SwitchPhase(timekeeper.PhaseLongBreak)

	require.True(t, ok)
	assert.Equal(t, timekeeper.Snapshot{
		Phase:            timekeeper.PhaseLongBreak,
		SecondsRemaining: 600,
		Running:          false,
		StudySeconds:     10,
	}, machine.Snapshot())

	assert.False(t, machine.SwitchPhase(timekeeper.Phase("lunch")))
	assert.Equal(t, timekeeper.PhaseLongBreak, machine.Snapshot().Phase)
}

func TestMachineResetRestoresInitialState(t *testing.T) {
	machine := timekeeper.NewMachine(model.DurationsFromMinutes(1, 1, 1))
	for i := 0; i < 5; i++ {
		runToExpiry(t, machine)
	}
	machine.SetRunning(true)
	machine.Tick()

	machine.Reset()

	assert.Equal(t, timekeeper.Snapshot{
		Phase:            timekeeper.PhaseWork,
		SecondsRemaining: 60,
	}, machine.Snapshot())
}

func TestMachineSetDurations(t *testing.T) {
	tests := map[string]struct {
		phase        timekeeper.Phase
		durations    model.Durations
		expRemaining int
	}{
		"Changing another phase should not touch the countdown.": {
			phase:        timekeeper.PhaseWork,
			durations:    model.DurationsFromMinutes(25, 1, 1),
			expRemaining: 1500,
		},
		"Lengthening the active phase should not rescale the countdown.": {
			phase:        timekeeper.PhaseWork,
			durations:    model.DurationsFromMinutes(50, 5, 10),
			expRemaining: 1500,
		},
		"Shortening the active phase should clamp the countdown.": {
			phase:        timekeeper.PhaseShortBreak,
			durations:    model.DurationsFromMinutes(25, 2, 10),
			expRemaining: 120,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			machine := timekeeper.NewMachine(model.DefaultDurations())
			machine.SwitchPhase(test.phase)

			machine.SetDurations(test.durations)

			assert.Equal(t, test.expRemaining, machine.Snapshot().SecondsRemaining)
		})
	}
}

func TestMachineNewDurationsApplyOnNextEntry(t *testing.T) {
	machine := timekeeper.NewMachine(model.DefaultDurations())

	machine.SetDurations(model.Durations{Work: 25 * time.Minute, ShortBreak: 3 * time.Minute, LongBreak: 10 * time.Minute})
	machine.SwitchPhase(timekeeper.PhaseShortBreak)

	assert.Equal(t, 180, machine.Snapshot().SecondsRemaining)
}
