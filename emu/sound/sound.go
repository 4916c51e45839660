package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 240
	volume     = 0.25
)

// square is an endless square-wave streamer. beep only ships decoders, so
// the tone itself is generated here against the Streamer interface.
type square struct {
	phase float64
}

func (s *square) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := volume
		if s.phase >= 0.5 {
			v = -volume
		}
		samples[i][0] = v
		samples[i][1] = v
		s.phase += toneHz / float64(sampleRate)
		if s.phase >= 1 {
			s.phase--
		}
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// Beeper is the chip8 buzzer: a square wave that plays while the sound
// timer is nonzero and is silent otherwise.
type Beeper struct {
	ctrl *beep.Ctrl
}

// NewBeeper opens the speaker and parks the tone, paused.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	ctrl := &beep.Ctrl{Streamer: &square{}, Paused: true}
	speaker.Play(ctrl)
	return &Beeper{ctrl: ctrl}, nil
}

// Set turns the beep on or off. Called once per frame with the sound
// timer's state, so it has to be cheap and idempotent.
func (b *Beeper) Set(on bool) {
	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}
