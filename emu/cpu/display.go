package cpu

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer. All drawing goes through
// XOR composition. The dirty flag goes up whenever a pixel changes and
// the presenter clears it once a frame has been shown.
type Display struct {
	pixels [DisplayHeight][DisplayWidth]bool
	wrap   bool
	dirty  bool
}

func newDisplay(wrap bool) *Display {
	return &Display{wrap: wrap}
}

// Clear unsets every pixel.
func (d *Display) Clear() {
	for y := range d.pixels {
		for x := range d.pixels[y] {
			if d.pixels[y][x] {
				d.dirty = true
			}
			d.pixels[y][x] = false
		}
	}
}

// xorPixel flips the pixel at (x, y) and reports whether it went from set
// to unset, which is what the collision flag wants. With wrapping the
// coordinates are taken mod the screen size; without it, out-of-range
// pixels are dropped.
func (d *Display) xorPixel(x, y int) bool {
	if d.wrap {
		x %= DisplayWidth
		y %= DisplayHeight
	} else if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}

	was := d.pixels[y][x]
	d.pixels[y][x] = !was
	d.dirty = true
	return was
}

// Pixel reads a single pixel. Out-of-range reads are false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y][x]
}

// Dirty reports whether the buffer changed since ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty is called by the presenter after a frame goes out.
func (d *Display) ClearDirty() {
	d.dirty = false
}
