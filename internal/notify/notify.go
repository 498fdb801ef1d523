// Package notify turns timer events into sound cues and desktop notifications.
package notify

import (
	"errors"

	"pomodoro/internal/core/timekeeper"
)

// Player renders a cue. Implementations may fail; callers treat playback as best effort.
type Player interface {
	Play(cue timekeeper.Cue) error
}

// Mute is a Player that does nothing.
var Mute Player = mute{}

type mute struct{}

func (mute) Play(timekeeper.Cue) error { return nil }

// Multi plays a cue on every player and joins their errors.
type Multi []Player

// Play implements Player.
func (players Multi) Play(cue timekeeper.Cue) error {
	var errs []error
	for _, player := range players {
		if player == nil {
			continue
		}
		if err := player.Play(cue); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
