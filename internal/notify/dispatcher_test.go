package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
	"pomodoro/internal/notify/notifymock"
)

func event(eventType timekeeper.EventType, cue timekeeper.Cue) timekeeper.Event {
	return timekeeper.Event{Type: eventType, Cue: cue}
}

func TestDispatcherHandle(t *testing.T) {
	tests := map[string]struct {
		event     timekeeper.Event
		mockSound func(m *notifymock.MockPlayer)
		mockDesk  func(m *notifymock.MockPlayer)
		soundOn   bool
		desktopOn bool
	}{
		"Phase entered should reach sound and desktop.": {
			event:     event(timekeeper.EventPhaseEntered, timekeeper.CueLongBreak),
			soundOn:   true,
			desktopOn: true,
			mockSound: func(m *notifymock.MockPlayer) {
				m.On("Play", timekeeper.CueLongBreak).Once().Return(nil)
			},
			mockDesk: func(m *notifymock.MockPlayer) {
				m.On("Play", timekeeper.CueLongBreak).Once().Return(nil)
			},
		},
		"Pause should only reach sound.": {
			event:     event(timekeeper.EventPaused, timekeeper.CuePause),
			soundOn:   true,
			desktopOn: true,
			mockSound: func(m *notifymock.MockPlayer) {
				m.On("Play", timekeeper.CuePause).Once().Return(nil)
			},
			mockDesk: func(m *notifymock.MockPlayer) {},
		},
		"Events without cue should be ignored.": {
			event:     event(timekeeper.EventTick, timekeeper.CueNone),
			soundOn:   true,
			desktopOn: true,
			mockSound: func(m *notifymock.MockPlayer) {},
			mockDesk:  func(m *notifymock.MockPlayer) {},
		},
		"Disabled outputs should not play.": {
			event:     event(timekeeper.EventPhaseEntered, timekeeper.CueStart),
			soundOn:   false,
			desktopOn: false,
			mockSound: func(m *notifymock.MockPlayer) {},
			mockDesk:  func(m *notifymock.MockPlayer) {},
		},
		"Player errors should be swallowed.": {
			event:     event(timekeeper.EventPhaseEntered, timekeeper.CueShortBreak),
			soundOn:   true,
			desktopOn: true,
			mockSound: func(m *notifymock.MockPlayer) {
				m.On("Play", timekeeper.CueShortBreak).Once().Return(errors.New("missing audio device"))
			},
			mockDesk: func(m *notifymock.MockPlayer) {
				m.On("Play", timekeeper.CueShortBreak).Once().Return(nil)
			},
		},
		"Player panics should be swallowed.": {
			event:     event(timekeeper.EventResumed, timekeeper.CueStart),
			soundOn:   true,
			desktopOn: true,
			mockSound: func(m *notifymock.MockPlayer) {
				m.On("Play", mock.Anything).Once().Run(func(mock.Arguments) { panic("driver crashed") })
			},
			mockDesk: func(m *notifymock.MockPlayer) {},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			sound := notifymock.NewMockPlayer(t)
			desktop := notifymock.NewMockPlayer(t)
			test.mockSound(sound)
			test.mockDesk(desktop)

			dispatcher := notify.NewDispatcher(notify.DispatcherConfig{Sound: sound, Desktop: desktop})
			dispatcher.SetEnabled(test.soundOn, test.desktopOn)

			assert.NotPanics(t, func() { dispatcher.Handle(test.event) })
		})
	}
}

func TestDispatcherDefaultsToMute(t *testing.T) {
	dispatcher := notify.NewDispatcher(notify.DispatcherConfig{})

	assert.NotPanics(t, func() {
		dispatcher.Handle(event(timekeeper.EventPhaseEntered, timekeeper.CueStart))
	})
}

func TestMultiJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	first := notifymock.NewMockPlayer(t)
	second := notifymock.NewMockPlayer(t)
	first.On("Play", timekeeper.CueStart).Once().Return(errA)
	second.On("Play", timekeeper.CueStart).Once().Return(nil)

	err := notify.Multi{first, nil, second}.Play(timekeeper.CueStart)

	assert.ErrorIs(t, err, errA)
}
