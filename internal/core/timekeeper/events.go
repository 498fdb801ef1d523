package timekeeper

// Phase represents the current timer mode.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Title returns the label shown on the phase tabs.
func (phase Phase) Title() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(phase)
	}
}

// Valid reports whether phase is one of the known phases.
func (phase Phase) Valid() bool {
	return phase == PhaseWork || phase == PhaseShortBreak || phase == PhaseLongBreak
}

// Cue selects the sound played for an event.
type Cue string

const (
	CueNone       Cue = ""
	CueStart      Cue = "start"
	CuePause      Cue = "pause"
	CueShortBreak Cue = "shortBreak"
	CueLongBreak  Cue = "longBreak"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick          EventType = "tick"
	EventPhaseEntered  EventType = "phase_entered"
	EventPaused        EventType = "paused"
	EventResumed       EventType = "resumed"
	EventPhaseSwitched EventType = "phase_switched"
	EventReset         EventType = "reset"
	EventConfigChanged EventType = "config_changed"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Phase    Phase
	Cue      Cue
	Snapshot Snapshot
}

// Listener receives events synchronously on the timer thread.
type Listener func(Event)

func phaseCue(phase Phase) Cue {
	switch phase {
	case PhaseShortBreak:
		return CueShortBreak
	case PhaseLongBreak:
		return CueLongBreak
	default:
		return CueStart
	}
}

func newEvent(eventType EventType, snapshot Snapshot) Event {
	event := Event{
		Type:     eventType,
		Phase:    snapshot.Phase,
		Snapshot: snapshot,
	}
	switch eventType {
	case EventPhaseEntered, EventResumed:
		event.Cue = phaseCue(snapshot.Phase)
	case EventPaused:
		event.Cue = CuePause
	}
	return event
}
