package notify_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
)

type fakeSender struct {
	sent []*fyne.Notification
}

func (sender *fakeSender) SendNotification(notification *fyne.Notification) {
	sender.sent = append(sender.sent, notification)
}

func TestDesktopPlay(t *testing.T) {
	sender := &fakeSender{}
	desktop := notify.NewDesktop(sender, "Pomodoro")

	require.NoError(t, desktop.Play(timekeeper.CueLongBreak))
	require.NoError(t, desktop.Play(timekeeper.CueNone))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Pomodoro", sender.sent[0].Title)
	assert.Contains(t, sender.sent[0].Content, "long break")
}

func TestDesktopWithoutSender(t *testing.T) {
	assert.NoError(t, notify.NewDesktop(nil, "Pomodoro").Play(timekeeper.CueStart))
}
