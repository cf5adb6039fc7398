package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/crt/internal"
)

// Program is a decoded instruction stream.
type Program struct {
	Instructions []Instruction
}

// Join concatenates programs, in order, into a single program.
func Join(progs ...*Program) (prog *Program) {
	seqs := make([]iter.Seq[Instruction], 0, len(progs))
	for _, p := range progs {
		if p != nil {
			seqs = append(seqs, p.All())
		}
	}

	prog = &Program{
		Instructions: slices.Collect(internal.IterSeqConcat(seqs...)),
	}

	return
}

// All returns an iterator over the program's instructions.
func (prog *Program) All() iter.Seq[Instruction] {
	return slices.Values(prog.Instructions)
}

// Cycles returns the number of cycles needed to retire the whole program.
func (prog *Program) Cycles() (cycles int) {
	for inst := range prog.All() {
		cycles += inst.Op.Cost()
	}
	return
}

// Count returns the number of instructions with the given operation.
func (prog *Program) Count(op Op) int {
	return internal.IterSeqCount(prog.All(), func(inst Instruction) bool {
		return inst.Op == op
	})
}
