package cpu

// opKind enumerates the CHIP-8 instruction set. Decode turns a raw word
// into one of these plus its operand fields; execute is a single switch
// over the kind. Keeping the two apart means either half can be tested
// on its own.
type opKind int

const (
	opCls opKind = iota // 00E0
	opRet               // 00EE
	opJump              // 1NNN
	opCall              // 2NNN
	opSkipEqNN          // 3XNN
	opSkipNeNN          // 4XNN
	opSkipEqXY          // 5XY0
	opLoadNN            // 6XNN
	opAddNN             // 7XNN
	opMove              // 8XY0
	opOr                // 8XY1
	opAnd               // 8XY2
	opXor               // 8XY3
	opAdd               // 8XY4
	opSub               // 8XY5
	opShr               // 8XY6
	opSubN              // 8XY7
	opShl               // 8XYE
	opSkipNeXY          // 9XY0
	opLoadI             // ANNN
	opJumpV0            // BNNN
	opRandom            // CXNN
	opDraw              // DXYN
	opSkipKey           // EX9E
	opSkipNoKey         // EXA1
	opGetDelay          // FX07
	opWaitKey           // FX0A
	opSetDelay          // FX15
	opSetSound          // FX18
	opAddI              // FX1E
	opFontChar          // FX29
	opBCD               // FX33
	opStoreRegs         // FX55
	opLoadRegs          // FX65
)

// instruction is a decoded word. Only the fields the opcode actually uses
// mean anything, the rest are just the raw bits sliced up.
type instruction struct {
	kind opKind
	x    uint8  //second nibble, a register index
	y    uint8  //third nibble, a register index
	n    uint8  //low nibble
	nn   uint8  //low byte
	nnn  uint16 //low 12 bits, an address
	raw  uint16
}

// decode slices the word into operand fields and classifies it. ok is
// false when the bit pattern matches nothing in the instruction set.
func decode(opcode uint16) (instruction, bool) {
	in := instruction{
		x:   uint8(opcode >> 8 & 0x0F),
		y:   uint8(opcode >> 4 & 0x0F),
		n:   uint8(opcode & 0x0F),
		nn:  uint8(opcode & 0xFF),
		nnn: opcode & 0x0FFF,
		raw: opcode,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			in.kind = opCls
		case 0x00EE:
			in.kind = opRet
		default:
			// 0NNN called RCA 1802 routines on the real thing; no
			// interpreter runs those
			return in, false
		}
	case 0x1000:
		in.kind = opJump
	case 0x2000:
		in.kind = opCall
	case 0x3000:
		in.kind = opSkipEqNN
	case 0x4000:
		in.kind = opSkipNeNN
	case 0x5000:
		if in.n != 0 {
			return in, false
		}
		in.kind = opSkipEqXY
	case 0x6000:
		in.kind = opLoadNN
	case 0x7000:
		in.kind = opAddNN
	case 0x8000:
		switch in.n {
		case 0x0:
			in.kind = opMove
		case 0x1:
			in.kind = opOr
		case 0x2:
			in.kind = opAnd
		case 0x3:
			in.kind = opXor
		case 0x4:
			in.kind = opAdd
		case 0x5:
			in.kind = opSub
		case 0x6:
			in.kind = opShr
		case 0x7:
			in.kind = opSubN
		case 0xE:
			in.kind = opShl
		default:
			return in, false
		}
	case 0x9000:
		if in.n != 0 {
			return in, false
		}
		in.kind = opSkipNeXY
	case 0xA000:
		in.kind = opLoadI
	case 0xB000:
		in.kind = opJumpV0
	case 0xC000:
		in.kind = opRandom
	case 0xD000:
		in.kind = opDraw
	case 0xE000:
		switch in.nn {
		case 0x9E:
			in.kind = opSkipKey
		case 0xA1:
			in.kind = opSkipNoKey
		default:
			return in, false
		}
	case 0xF000:
		switch in.nn {
		case 0x07:
			in.kind = opGetDelay
		case 0x0A:
			in.kind = opWaitKey
		case 0x15:
			in.kind = opSetDelay
		case 0x18:
			in.kind = opSetSound
		case 0x1E:
			in.kind = opAddI
		case 0x29:
			in.kind = opFontChar
		case 0x33:
			in.kind = opBCD
		case 0x55:
			in.kind = opStoreRegs
		case 0x65:
			in.kind = opLoadRegs
		default:
			return in, false
		}
	}
	return in, true
}
