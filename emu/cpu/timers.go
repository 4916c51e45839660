package cpu

import (
	"sync"
	"time"
)

// timerHz is the countdown cadence. Fixed by the CHIP-8 design and
// deliberately independent of how fast the driver steps the CPU.
const timerHz = 60

// Timers is the delay/sound countdown pair. It is the only state shared
// between the CPU and the timer goroutine, so every access goes through
// the mutex. One cell is built by the caller and handed to both sides.
type Timers struct {
	mu    sync.Mutex
	delay uint8
	sound uint8
}

func NewTimers() *Timers {
	return &Timers{}
}

// Run decrements both timers at 60Hz until stop closes. Meant to run as
// its own goroutine; the ticker is best effort, a late tick only degrades
// timing fidelity.
func (t *Timers) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / timerHz)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

// tick takes one off each nonzero timer. Never goes below zero.
func (t *Timers) tick() {
	t.mu.Lock()
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
	t.mu.Unlock()
}

// Delay reads the delay timer (FX07).
func (t *Timers) Delay() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delay
}

// SetDelay loads the delay timer (FX15).
func (t *Timers) SetDelay(v uint8) {
	t.mu.Lock()
	t.delay = v
	t.mu.Unlock()
}

// SetSound loads the sound timer (FX18).
func (t *Timers) SetSound(v uint8) {
	t.mu.Lock()
	t.sound = v
	t.mu.Unlock()
}

// SoundActive reports whether the beep should be playing.
func (t *Timers) SoundActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sound > 0
}
