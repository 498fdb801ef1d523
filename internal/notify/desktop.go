package notify

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/core/timekeeper"
)

// Sender delivers desktop notifications. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

var cueMessages = map[timekeeper.Cue]string{
	timekeeper.CueStart:      "Break is over. Time to focus.",
	timekeeper.CuePause:      "Timer paused.",
	timekeeper.CueShortBreak: "Work phase done. Take a short break.",
	timekeeper.CueLongBreak:  "Four pomodoros done. Take a long break.",
}

// Desktop shows a system notification per cue.
type Desktop struct {
	sender Sender
	title  string
}

// NewDesktop creates a Desktop player with the given notification title.
func NewDesktop(sender Sender, title string) *Desktop {
	return &Desktop{sender: sender, title: title}
}

// Play implements Player.
func (desktop *Desktop) Play(cue timekeeper.Cue) error {
	message, ok := cueMessages[cue]
	if !ok || desktop.sender == nil {
		return nil
	}
	desktop.sender.SendNotification(fyne.NewNotification(desktop.title, message))
	return nil
}
