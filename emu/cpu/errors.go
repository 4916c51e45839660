package cpu

import "fmt"

// ErrorKind tells the driver what class of fault stopped the machine.
type ErrorKind int

const (
	// ErrDecode means the fetched word matches no known instruction.
	ErrDecode ErrorKind = iota
	// ErrStackOverflow means a CALL went past the 16-deep stack.
	ErrStackOverflow
	// ErrStackUnderflow means a RET ran with nothing on the stack.
	ErrStackUnderflow
	// ErrMemoryBounds means an access landed outside the 4096 bytes.
	ErrMemoryBounds
)

// Error is a fatal CPU fault. It carries the offending opcode and the
// address it was fetched from, so the driver can show something useful
// instead of just dying.
type Error struct {
	Kind   ErrorKind
	Opcode uint16
	PC     uint16
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDecode:
		return fmt.Sprintf("unknown opcode %#04x at pc=%#04x", e.Opcode, e.PC)
	case ErrStackOverflow:
		return fmt.Sprintf("stack overflow on opcode %#04x at pc=%#04x", e.Opcode, e.PC)
	case ErrStackUnderflow:
		return fmt.Sprintf("stack underflow on opcode %#04x at pc=%#04x", e.Opcode, e.PC)
	case ErrMemoryBounds:
		return fmt.Sprintf("memory access out of range on opcode %#04x at pc=%#04x", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu fault %d on opcode %#04x at pc=%#04x", e.Kind, e.Opcode, e.PC)
}
