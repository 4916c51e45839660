package cpu

import "testing"

func countSet(d *Display) int {
	n := 0
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Drawing the same sprite twice at the same spot must cancel out, with
// the collision flag up on the second pass.
func TestXorDrawIsItsOwnInverse(t *testing.T) {
	// I=0 points at the 0 glyph; draw it twice at (0,0)
	emu := testEMU(t, false, 0xA000, 0xD015, 0xD015)

	mustStep(t, emu)
	mustStep(t, emu)
	if emu.V[0xF] != 0 {
		t.Errorf("first draw on a clear screen collided")
	}
	if countSet(emu.display) == 0 {
		t.Fatalf("first draw set nothing")
	}
	if !emu.DisplayChanged() {
		t.Errorf("dirty flag down after a draw")
	}

	mustStep(t, emu)
	if emu.V[0xF] != 1 {
		t.Errorf("second identical draw did not collide")
	}
	if n := countSet(emu.display); n != 0 {
		t.Errorf("%d pixels left after the inverse draw", n)
	}
}

func TestSpriteWrapAtRightEdge(t *testing.T) {
	// one-row sprite 0xF0 drawn at x=63: four columns, three overflow
	emu := testEMU(t, true, 0xA000, 0x603F, 0xD011)

	mustStep(t, emu)
	mustStep(t, emu)
	mustStep(t, emu)

	if !emu.display.Pixel(63, 0) {
		t.Errorf("column at x=63 not drawn")
	}
	for x := 0; x < 3; x++ {
		if !emu.display.Pixel(x, 0) {
			t.Errorf("overflow column did not wrap to x=%d", x)
		}
	}
}

func TestSpriteClipAtRightEdge(t *testing.T) {
	emu := testEMU(t, false, 0xA000, 0x603F, 0xD011)

	mustStep(t, emu)
	mustStep(t, emu)
	mustStep(t, emu)

	if !emu.display.Pixel(63, 0) {
		t.Errorf("column at x=63 not drawn")
	}
	for x := 0; x < 3; x++ {
		if emu.display.Pixel(x, 0) {
			t.Errorf("clipped column leaked to x=%d", x)
		}
	}
	if got := countSet(emu.display); got != 1 {
		t.Errorf("%d pixels set, wanted just the one at x=63", got)
	}
}

func TestDirtyFlagLifecycle(t *testing.T) {
	emu := testEMU(t, false, 0xA000, 0xD011, 0x00E0)

	mustStep(t, emu)
	mustStep(t, emu)
	if !emu.DisplayChanged() {
		t.Fatalf("draw did not raise the dirty flag")
	}

	// the presenter clears it after a frame
	emu.Display().ClearDirty()
	if emu.DisplayChanged() {
		t.Fatalf("ClearDirty did not clear the flag")
	}

	mustStep(t, emu)
	if !emu.DisplayChanged() {
		t.Errorf("CLS on a lit screen did not raise the dirty flag")
	}
}

func TestXorPixelOutOfRange(t *testing.T) {
	d := newDisplay(false)
	if d.xorPixel(64, 0) {
		t.Errorf("clipped pixel reported a collision")
	}
	if d.Dirty() {
		t.Errorf("clipped pixel raised the dirty flag")
	}

	d = newDisplay(true)
	d.xorPixel(64, 32)
	if !d.Pixel(0, 0) {
		t.Errorf("wrapped pixel did not land at (0,0)")
	}
}
