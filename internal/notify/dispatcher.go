package notify

import (
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/log"
)

// DispatcherConfig is the configuration of Dispatcher.
type DispatcherConfig struct {
	// Sound receives every cue.
	Sound Player
	// Desktop only receives cues of automatic phase changes.
	Desktop Player
	Logger  log.Logger
}

func (c *DispatcherConfig) defaults() {
	if c.Sound == nil {
		c.Sound = Mute
	}
	if c.Desktop == nil {
		c.Desktop = Mute
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "notify.Dispatcher"})
}

// Dispatcher forwards timer events to players. Player failures, including
// panics, are logged and never reach the timer.
type Dispatcher struct {
	sound          Player
	desktop        Player
	logger         log.Logger
	soundEnabled   bool
	desktopEnabled bool
}

// NewDispatcher returns a dispatcher with both outputs enabled.
func NewDispatcher(config DispatcherConfig) *Dispatcher {
	config.defaults()
	return &Dispatcher{
		sound:          config.Sound,
		desktop:        config.Desktop,
		logger:         config.Logger,
		soundEnabled:   true,
		desktopEnabled: true,
	}
}

// SetEnabled toggles the outputs.
func (dispatcher *Dispatcher) SetEnabled(sound, desktop bool) {
	dispatcher.soundEnabled = sound
	dispatcher.desktopEnabled = desktop
}

// Handle is a timekeeper.Listener.
func (dispatcher *Dispatcher) Handle(event timekeeper.Event) {
	if event.Cue == timekeeper.CueNone {
		return
	}
	if dispatcher.soundEnabled {
		dispatcher.play(dispatcher.sound, event.Cue, "sound")
	}
	if dispatcher.desktopEnabled && event.Type == timekeeper.EventPhaseEntered {
		dispatcher.play(dispatcher.desktop, event.Cue, "desktop")
	}
}

func (dispatcher *Dispatcher) play(player Player, cue timekeeper.Cue, output string) {
	defer func() {
		if r := recover(); r != nil {
			dispatcher.logger.Errorf("%s cue %q panicked: %v", output, cue, r)
		}
	}()

	if err := player.Play(cue); err != nil {
		dispatcher.logger.Warningf("%s cue %q failed: %v", output, cue, err)
	}
}
