package screen

import (
	"fmt"
	"io/ioutil"
	"log"

	"chip8vm/emu/cpu"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// overlay draws the machine state (registers, stack, recent instructions)
// on the right half of the window. Purely informational, the game never
// touches this area.
type overlay struct {
	txt *text.Text
}

const (
	overlayLeft = cpu.DisplayWidth*scale + 12
	overlayTop  = windowHeight - 24
	fontSize    = 14
)

func newOverlay(fontPath string) *overlay {
	atlas := text.NewAtlas(loadFace(fontPath), text.ASCII)
	return &overlay{
		txt: text.New(pixel.V(overlayLeft, overlayTop), atlas),
	}
}

// loadFace parses the TTF at path. Any trouble falls back to the built-in
// bitmap face so the VM still comes up without the font file.
func loadFace(path string) font.Face {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Printf("overlay font %q not readable, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		log.Printf("overlay font %q not parseable, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: fontSize,
		DPI:  72,
	})
	if err != nil {
		log.Printf("overlay font %q has no usable face, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}

func (o *overlay) draw(win *pixelgl.Window, emu *cpu.EMU, paused bool, clock int) {
	o.txt.Clear()

	fmt.Fprintf(o.txt, "clock %d Hz", clock)
	if paused {
		fmt.Fprintf(o.txt, "  [paused]")
	}
	if emu.Halted() {
		fmt.Fprintf(o.txt, "  [halted]")
	}
	fmt.Fprintf(o.txt, "\n\n")

	v := emu.Registers()
	for i := 0; i < 16; i += 4 {
		fmt.Fprintf(o.txt, "V%X %02X   V%X %02X   V%X %02X   V%X %02X\n",
			i, v[i], i+1, v[i+1], i+2, v[i+2], i+3, v[i+3])
	}
	fmt.Fprintf(o.txt, "\nI  %04X   PC %04X\n", emu.IndexRegister(), emu.PC())

	fmt.Fprintf(o.txt, "\nstack")
	for _, addr := range emu.StackSnapshot() {
		fmt.Fprintf(o.txt, "  %04X", addr)
	}
	fmt.Fprintf(o.txt, "\n\nhistory")
	for _, opcode := range emu.History() {
		fmt.Fprintf(o.txt, "  %04X", opcode)
	}
	fmt.Fprintf(o.txt, "\n")

	o.txt.Draw(win, pixel.IM)
}
