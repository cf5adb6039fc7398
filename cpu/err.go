package cpu

import (
	"errors"

	"github.com/ezrec/crt/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
)

// ErrOpcode tags an error with the instruction that caused it.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction '%v'", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax is a decode failure on a single line of program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
