// Package audio plays short synthesized tones in response to engine events.
// Playback is fire-and-forget: initialization or playback failures are
// logged and the game runs on silently.
package audio

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-bouncer/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player is the audio adapter. A zero-value Player is silent; use New.
type Player struct {
	enabled bool
	logger  *log.Logger
}

// New initializes the speaker and returns a player. If the audio device
// cannot be opened the player is returned in silent mode.
func New(logger *log.Logger) *Player {
	p := &Player{logger: logger}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		}
		return p
	}

	p.enabled = true
	return p
}

// Enabled reports whether the speaker was initialized.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Handle plays the sound associated with an engine event, if any.
// RotateBall is a presentation concern and makes no sound.
func (p *Player) Handle(ev engine.Event) {
	if !p.enabled {
		return
	}

	switch ev.Kind {
	case engine.EventBallJumped:
		p.tone(520, 60*time.Millisecond)
	case engine.EventItemCollected:
		p.tone(880, 90*time.Millisecond)
	case engine.EventGameOver:
		p.tone(130, 450*time.Millisecond)
	}
}

// tone queues a decaying sine of the given frequency and duration.
func (p *Player) tone(freq float64, d time.Duration) {
	speaker.Play(beep.Take(sampleRate.N(d), newToneStreamer(sampleRate, freq, d)))
}

// toneStreamer generates a sine wave with a linear decay envelope.
type toneStreamer struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func newToneStreamer(sr beep.SampleRate, freq float64, d time.Duration) *toneStreamer {
	return &toneStreamer{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
	}
}

// Stream fills samples with the enveloped sine wave.
func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		env := 1.0
		if t.total > 0 {
			env = 1.0 - float64(t.pos)/float64(t.total)
			if env < 0 {
				env = 0
			}
		}
		v := math.Sin(phase) * env * 0.25
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *toneStreamer) Err() error {
	return nil
}
