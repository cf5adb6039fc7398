// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Assembler decodes program text into instructions, one per line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// valueOf returns the signed 32-bit value of a decimal word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// ParseLine decodes a single line of program text.
func (asm *Assembler) ParseLine(line string) (inst Instruction, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	switch words[0] {
	case OP_NOOP.String():
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		inst = Noop()
	case OP_ADDX.String():
		switch {
		case len(words) < 2:
			err = ErrOpcodeValueMissing
			return
		case len(words) > 2:
			err = ErrOpcodeExtraArgs
			return
		}
		var delta int
		delta, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		inst = AddX(delta)
	default:
		err = ErrOpcodeInvalid
		return
	}

	inst.Line = line
	return
}

// Parse parses an input stream into a Program.
// Decoding stops at the first bad line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var inst Instruction
		inst, err = asm.ParseLine(line)
		if err != nil {
			prog = nil
			return
		}
		inst.LineNo = lineno

		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
