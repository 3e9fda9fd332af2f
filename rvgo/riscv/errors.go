package riscv

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput    = errors.New("malformed input")
	ErrIndexOutOfRange   = errors.New("bit index out of range")
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	ErrUnknownEncoding   = errors.New("unknown encoding")
)

// UnsupportedOpcodeError reports an opcode that matches none of the known instruction formats.
type UnsupportedOpcodeError struct {
	Opcode uint8
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode: %d (0b%07b)", e.Opcode, e.Opcode)
}

func (e *UnsupportedOpcodeError) Unwrap() error {
	return ErrUnsupportedOpcode
}

// UnknownEncodingError reports a function-selector combination
// that has no mnemonic within an otherwise recognized format.
type UnknownEncodingError struct {
	Format string
	Opcode uint8
	Funct3 uint8
	// Funct7 is only meaningful when HasFunct7 is set (R-format).
	Funct7    uint8
	HasFunct7 bool
}

func (e *UnknownEncodingError) Error() string {
	if e.HasFunct7 {
		return fmt.Sprintf("unknown %s-format encoding: opcode %d, func3 %d, func7 %d", e.Format, e.Opcode, e.Funct3, e.Funct7)
	}
	return fmt.Sprintf("unknown %s-format encoding: opcode %d, func3 %d", e.Format, e.Opcode, e.Funct3)
}

func (e *UnknownEncodingError) Unwrap() error {
	return ErrUnknownEncoding
}
