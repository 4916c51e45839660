package cpu

// Keypad holds the state of the 16 hex keys. The input collaborator sets
// them; the CPU reads them. Both run on the driver's goroutine, so no
// locking here.
type Keypad struct {
	keys [16]bool
}

// SetKey records whether a key is down. Out-of-range indices are ignored,
// the keypad only has 16 keys.
func (k *Keypad) SetKey(key int, pressed bool) {
	if key < 0 || key > 0xF {
		return
	}
	k.keys[key] = pressed
}

// IsPressed reports whether a key is down. Out-of-range is never pressed.
func (k *Keypad) IsPressed(key int) bool {
	if key < 0 || key > 0xF {
		return false
	}
	return k.keys[key]
}

// FirstPressed returns the lowest-numbered key currently down, for the
// key-wait instruction.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for i, pressed := range k.keys {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}
