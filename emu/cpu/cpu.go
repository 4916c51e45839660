package cpu

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	memorySize = 4096
	romStart   = 0x200
	maxRomSize = memorySize - romStart
	stackDepth = 16

	// how many recent opcodes the overlay gets to see
	historySize = 12
)

// EMU is one CHIP-8 machine: memory, registers, stack, display, keypad.
// The two countdown timers live in a separate Timers cell because the
// timer goroutine shares them; everything else is only ever touched from
// the driver's goroutine.
type EMU struct {
	memory [memorySize]uint8
	V      [16]uint8
	I      uint16 //address register
	pc     uint16
	stack  [stackDepth]uint16
	sp     uint8 //frames currently on the stack

	display *Display
	keys    *Keypad
	timers  *Timers

	rng     *rand.Rand
	history [historySize]uint16 //recent opcodes, newest first
	fatal   error               //first fatal fault, set once
}

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// New builds an EMU with the font in reserved memory and the ROM loaded at
// 0x200. The timers cell is passed in so the caller can hand the same cell
// to the timer goroutine. wrapping picks sprite wrap-vs-clip at the screen
// borders and cannot change after construction.
func New(rom []byte, timers *Timers, wrapping bool) (*EMU, error) {
	if len(rom) > maxRomSize {
		return nil, fmt.Errorf("ROM too big: %d bytes, can't cross %d", len(rom), maxRomSize)
	}

	emu := &EMU{
		pc:      romStart,
		display: newDisplay(wrapping),
		keys:    &Keypad{},
		timers:  timers,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	emu.loadFont()
	copy(emu.memory[romStart:], rom)
	return emu, nil
}

func (emu *EMU) loadFont() {
	for i := 0; i < len(FontSet); i++ {
		emu.memory[i] = FontSet[i]
	}
}

// Step runs exactly one instruction: fetch the big-endian word at pc,
// advance pc past it, decode, execute. A fatal fault (unknown opcode,
// stack overflow/underflow, out-of-range memory access) is returned and
// latched; once halted, every further Step returns the same error without
// running anything.
func (emu *EMU) Step() error {
	if emu.fatal != nil {
		return emu.fatal
	}

	fetchPC := emu.pc
	if int(fetchPC)+1 >= memorySize {
		return emu.fault(&Error{Kind: ErrMemoryBounds, PC: fetchPC})
	}

	opcode := uint16(emu.memory[fetchPC])<<8 | uint16(emu.memory[fetchPC+1])
	emu.logInstr(opcode)

	// pc moves past the instruction before it runs, so calls push the
	// return address and skips/jumps are relative to the next word
	emu.pc += 2

	in, ok := decode(opcode)
	if !ok {
		return emu.fault(&Error{Kind: ErrDecode, Opcode: opcode, PC: fetchPC})
	}

	if err := emu.execute(in); err != nil {
		if cerr, ok := err.(*Error); ok {
			cerr.PC = fetchPC
		}
		return emu.fault(err)
	}
	return nil
}

func (emu *EMU) fault(err error) error {
	emu.fatal = err
	return err
}

// Halted reports whether a fatal fault has stopped the machine.
func (emu *EMU) Halted() bool {
	return emu.fatal != nil
}

// SetKey records a key state change coming from the input collaborator.
// Indices outside 0..15 are ignored.
func (emu *EMU) SetKey(key int, pressed bool) {
	emu.keys.SetKey(key, pressed)
}

// Display exposes the framebuffer for presentation.
func (emu *EMU) Display() *Display {
	return emu.display
}

// DisplayChanged reports whether any pixel changed since the last
// presented frame.
func (emu *EMU) DisplayChanged() bool {
	return emu.display.Dirty()
}

func (emu *EMU) logInstr(opcode uint16) {
	copy(emu.history[1:], emu.history[:historySize-1])
	emu.history[0] = opcode
}

// History returns the most recent opcodes, newest first. Overlay food.
func (emu *EMU) History() []uint16 {
	out := make([]uint16, historySize)
	copy(out, emu.history[:])
	return out
}

// Registers returns a copy of V0..VF.
func (emu *EMU) Registers() [16]uint8 {
	return emu.V
}

// PC returns the current program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// IndexRegister returns I.
func (emu *EMU) IndexRegister() uint16 {
	return emu.I
}

// StackSnapshot returns the live return addresses, bottom first.
func (emu *EMU) StackSnapshot() []uint16 {
	out := make([]uint16, emu.sp)
	copy(out, emu.stack[:emu.sp])
	return out
}
