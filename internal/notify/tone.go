package notify

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"pomodoro/internal/core/timekeeper"
)

const (
	toneSampleRate = beep.SampleRate(44100)
	toneVolume     = 0.3
	toneGap        = 60 * time.Millisecond
)

type note struct {
	frequency float64
	length    time.Duration
}

var tonePatterns = map[timekeeper.Cue][]note{
	timekeeper.CueStart:      {{frequency: 523.25, length: 120 * time.Millisecond}, {frequency: 783.99, length: 200 * time.Millisecond}},
	timekeeper.CuePause:      {{frequency: 392.00, length: 180 * time.Millisecond}},
	timekeeper.CueShortBreak: {{frequency: 659.25, length: 150 * time.Millisecond}, {frequency: 523.25, length: 250 * time.Millisecond}},
	timekeeper.CueLongBreak: {
		{frequency: 783.99, length: 150 * time.Millisecond},
		{frequency: 659.25, length: 150 * time.Millisecond},
		{frequency: 523.25, length: 350 * time.Millisecond},
	},
}

// Tone plays a short synthesized chime per cue through the system speaker.
type Tone struct {
	once    sync.Once
	initErr error
	open    func() error
	output  func(beep.Streamer)
}

// NewTone returns a Tone bound to the default audio device. The device is
// opened lazily on the first cue.
func NewTone() *Tone {
	return &Tone{
		open: func() error {
			return speaker.Init(toneSampleRate, toneSampleRate.N(100*time.Millisecond))
		},
		output: func(streamer beep.Streamer) {
			speaker.Play(streamer)
		},
	}
}

// Play implements Player.
func (tone *Tone) Play(cue timekeeper.Cue) error {
	notes, ok := tonePatterns[cue]
	if !ok {
		return nil
	}

	tone.once.Do(func() {
		tone.initErr = tone.open()
	})
	if tone.initErr != nil {
		return fmt.Errorf("init speaker: %w", tone.initErr)
	}

	tone.output(melody(toneSampleRate, notes))
	return nil
}

func melody(sampleRate beep.SampleRate, notes []note) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes)*2)
	for i, current := range notes {
		if i > 0 {
			streamers = append(streamers, sine(sampleRate, 0, toneGap))
		}
		streamers = append(streamers, sine(sampleRate, current.frequency, current.length))
	}
	return beep.Seq(streamers...)
}

// sine returns a fixed-length sine wave. A zero frequency yields silence.
func sine(sampleRate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := sampleRate.N(length)
	step := frequency / float64(sampleRate)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		written := 0
		for i := range samples {
			if position >= total {
				break
			}
			value := toneVolume * math.Sin(2*math.Pi*step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
			written++
		}
		return written, true
	})
}
