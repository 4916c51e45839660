package cpu

// execute runs one decoded instruction against the machine state. pc has
// already moved past the instruction, so a skip is another +2 and the
// key-wait stall is a -2 rewind. Returned errors are fatal; execute fills
// in the opcode and the caller fills in the pc.
func (emu *EMU) execute(in instruction) error {
	const F = 0xF

	switch in.kind {
	case opCls:
		emu.display.Clear()

	case opRet:
		if emu.sp == 0 {
			return &Error{Kind: ErrStackUnderflow, Opcode: in.raw}
		}
		emu.sp--
		emu.pc = emu.stack[emu.sp]

	case opJump:
		emu.pc = in.nnn

	case opCall:
		if emu.sp == stackDepth {
			return &Error{Kind: ErrStackOverflow, Opcode: in.raw}
		}
		emu.stack[emu.sp] = emu.pc
		emu.sp++
		emu.pc = in.nnn

	case opSkipEqNN:
		if emu.V[in.x] == in.nn {
			emu.pc += 2
		}

	case opSkipNeNN:
		if emu.V[in.x] != in.nn {
			emu.pc += 2
		}

	case opSkipEqXY:
		if emu.V[in.x] == emu.V[in.y] {
			emu.pc += 2
		}

	case opLoadNN:
		emu.V[in.x] = in.nn

	case opAddNN:
		// wraps mod 256, no carry flag for the NN form
		emu.V[in.x] += in.nn

	case opMove:
		emu.V[in.x] = emu.V[in.y]

	case opOr:
		emu.V[in.x] |= emu.V[in.y]

	case opAnd:
		emu.V[in.x] &= emu.V[in.y]

	case opXor:
		emu.V[in.x] ^= emu.V[in.y]

	case opAdd:
		sum := uint16(emu.V[in.x]) + uint16(emu.V[in.y])
		emu.V[in.x] = uint8(sum)
		if sum > 0xFF {
			emu.V[F] = 1
		} else {
			emu.V[F] = 0
		}

	case opSub:
		// VF is 0 on borrow, 1 otherwise
		noBorrow := emu.V[in.x] >= emu.V[in.y]
		emu.V[in.x] -= emu.V[in.y]
		if noBorrow {
			emu.V[F] = 1
		} else {
			emu.V[F] = 0
		}

	case opShr:
		emu.V[F] = emu.V[in.x] & 0x01
		emu.V[in.x] >>= 1

	case opSubN:
		noBorrow := emu.V[in.y] >= emu.V[in.x]
		emu.V[in.x] = emu.V[in.y] - emu.V[in.x]
		if noBorrow {
			emu.V[F] = 1
		} else {
			emu.V[F] = 0
		}

	case opShl:
		emu.V[F] = emu.V[in.x] >> 7
		emu.V[in.x] <<= 1

	case opSkipNeXY:
		if emu.V[in.x] != emu.V[in.y] {
			emu.pc += 2
		}

	case opLoadI:
		emu.I = in.nnn

	case opJumpV0:
		// out-of-range targets fault on the next fetch, not here
		emu.pc = in.nnn + uint16(emu.V[0])

	case opRandom:
		emu.V[in.x] = uint8(emu.rng.Intn(256)) & in.nn

	case opDraw:
		return emu.draw(in)

	case opSkipKey:
		if emu.keys.IsPressed(int(emu.V[in.x])) {
			emu.pc += 2
		}

	case opSkipNoKey:
		if !emu.keys.IsPressed(int(emu.V[in.x])) {
			emu.pc += 2
		}

	case opGetDelay:
		emu.V[in.x] = emu.timers.Delay()

	case opWaitKey:
		// poll, don't block: rewind the pc so the same instruction runs
		// again next step, leaving the driver free to pump input between
		// stalled steps
		if key, ok := emu.keys.FirstPressed(); ok {
			emu.V[in.x] = key
		} else {
			emu.pc -= 2
		}

	case opSetDelay:
		emu.timers.SetDelay(emu.V[in.x])

	case opSetSound:
		emu.timers.SetSound(emu.V[in.x])

	case opAddI:
		emu.I += uint16(emu.V[in.x])

	case opFontChar:
		// glyphs sit at the bottom of memory, 5 bytes each
		emu.I = uint16(emu.V[in.x]) * 5

	case opBCD:
		if int(emu.I)+2 >= memorySize {
			return &Error{Kind: ErrMemoryBounds, Opcode: in.raw}
		}
		emu.memory[emu.I] = emu.V[in.x] / 100
		emu.memory[emu.I+1] = emu.V[in.x] % 100 / 10
		emu.memory[emu.I+2] = emu.V[in.x] % 10

	case opStoreRegs:
		if int(emu.I)+int(in.x) >= memorySize {
			return &Error{Kind: ErrMemoryBounds, Opcode: in.raw}
		}
		for i := uint16(0); i <= uint16(in.x); i++ {
			emu.memory[emu.I+i] = emu.V[i]
		}

	case opLoadRegs:
		if int(emu.I)+int(in.x) >= memorySize {
			return &Error{Kind: ErrMemoryBounds, Opcode: in.raw}
		}
		for i := uint16(0); i <= uint16(in.x); i++ {
			emu.V[i] = emu.memory[emu.I+i]
		}
	}
	return nil
}

// draw XORs an n-row sprite read from I onto the screen at (VX, VY).
// VF reports collision: 1 if any pixel went from set to unset.
func (emu *EMU) draw(in instruction) error {
	emu.V[0xF] = 0

	for row := 0; row < int(in.n); row++ {
		addr := int(emu.I) + row
		if addr >= memorySize {
			return &Error{Kind: ErrMemoryBounds, Opcode: in.raw}
		}
		sprite := emu.memory[addr]

		for col := 0; col < 8; col++ {
			if sprite>>(7-col)&1 == 0 {
				continue
			}
			x := int(emu.V[in.x]) + col
			y := int(emu.V[in.y]) + row
			if emu.display.xorPixel(x, y) {
				emu.V[0xF] = 1
			}
		}
	}
	return nil
}
