package screen

import (
	"log"

	"chip8vm/emu/cpu"
	"chip8vm/emu/sound"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	// the chip8 screen is 64x32, way too small to look at directly
	scale = 10

	// the game sits on the left half, the overlay gets the right half
	windowWidth  = 2 * cpu.DisplayWidth * scale
	windowHeight = cpu.DisplayHeight * scale

	// steps the host runs at, frames the window presents at
	framesPerSecond = 60
	clockStepHz     = 60
	minClockHz      = 60
)

// Config is what the driver needs beyond the machine itself.
type Config struct {
	Title      string
	FontPath   string //overlay font, falls back to a built-in face
	ClockSpeed int    //cpu steps per second, Up/Down change it at runtime
}

// Window wraps the pixelgl window with the chip8 keypad mapping.
type Window struct {
	*pixelgl.Window
	keyMap  map[uint8]pixelgl.Button
	overlay *overlay
}

func newWindow(cfg Config) (*Window, error) {
	title := cfg.Title
	if title == "" {
		title = "chip8vm"
	}
	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	})
	if err != nil {
		return nil, err
	}

	return &Window{
		Window:  win,
		keyMap:  defaultKeyMap(),
		overlay: newOverlay(cfg.FontPath),
	}, nil
}

// Run is the driver loop. It owns the pause flag and the mutable step
// rate; the timer goroutine is started here and stopped on the way out.
// Returns nil when the user quits, or the fatal CPU error if the machine
// faulted (the screen stays up, frozen, until the user closes it).
func Run(emu *cpu.EMU, timers *cpu.Timers, cfg Config) error {
	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	beeper, err := sound.NewBeeper()
	if err != nil {
		// no audio device is not worth dying over
		log.Printf("audio disabled: %v", err)
	}

	stop := make(chan struct{})
	go timers.Run(stop)
	defer close(stop)

	clock := cfg.ClockSpeed
	if clock < minClockHz {
		clock = minClockHz
	}
	paused := false

	var fatal error
	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) {
			break
		}
		if win.JustPressed(pixelgl.KeySpace) {
			paused = !paused
		}
		// step rate only; the 60Hz timers don't care about these
		if win.JustPressed(pixelgl.KeyUp) {
			clock += clockStepHz
		}
		if win.JustPressed(pixelgl.KeyDown) && clock > minClockHz {
			clock -= clockStepHz
		}

		win.pollKeypad(emu)

		if !paused && fatal == nil {
			for i := 0; i < clock/framesPerSecond; i++ {
				if err := emu.Step(); err != nil {
					fatal = err
					log.Printf("cpu fault, freezing the machine: %v", err)
					break
				}
			}
		}

		if beeper != nil {
			beeper.Set(timers.SoundActive())
		}

		win.render(emu, paused, clock)
		win.Update()
	}
	return fatal
}

// pollKeypad pushes the current keyboard state into the machine, one
// chip8 key at a time.
func (w *Window) pollKeypad(emu *cpu.EMU) {
	for key, button := range w.keyMap {
		emu.SetKey(int(key), w.Pressed(button))
	}
}

// pixelOn is close to the purple the original used.
var pixelOn = pixel.RGB(198.0/255, 43.0/255, 248.0/255)

func (w *Window) render(emu *cpu.EMU, paused bool, clock int) {
	w.Clear(colornames.Black)

	imd := imdraw.New(nil)
	imd.Color = pixelOn
	d := emu.Display()
	for y := 0; y < cpu.DisplayHeight; y++ {
		for x := 0; x < cpu.DisplayWidth; x++ {
			if !d.Pixel(x, y) {
				continue
			}
			// pixel's origin is bottom-left, the chip8's is top-left
			px := float64(x) * scale
			py := float64(cpu.DisplayHeight-1-y) * scale
			imd.Push(pixel.V(px, py), pixel.V(px+scale, py+scale))
			imd.Rectangle(0)
		}
	}
	imd.Draw(w.Window)

	w.overlay.draw(w.Window, emu, paused, clock)
	d.ClearDirty()
}
