package cpu

import (
	"fmt"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP = Op(0) // noop
	OP_ADDX = Op(1) // addx
)

// Cycles needed to retire each operation.
var opCost = [...]int{
	OP_NOOP: 1,
	OP_ADDX: 2,
}

// Cost returns the number of cycles the operation takes to retire.
func (op Op) Cost() int {
	if op < 0 || int(op) >= len(opCost) {
		return 0
	}
	return opCost[op]
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op     Op     // Operation.
	Delta  int    // Operand of addx.
	LineNo int    // Source line number, 0 if not from source.
	Line   string // Source line text.
}

// Noop makes a noop instruction.
func Noop() Instruction {
	return Instruction{Op: OP_NOOP}
}

// AddX makes an addx instruction.
func AddX(delta int) Instruction {
	return Instruction{Op: OP_ADDX, Delta: delta}
}

func (inst Instruction) String() string {
	switch inst.Op {
	case OP_NOOP:
		return inst.Op.String()
	case OP_ADDX:
		return fmt.Sprintf("%v %d", inst.Op, inst.Delta)
	default:
		return inst.Op.String()
	}
}
