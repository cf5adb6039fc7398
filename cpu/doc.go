// Package cpu implements the instruction decoder and cycle simulator for the
// CRT controller.
//
// The CPU has a single signed register (X) and a cycle counter. It executes
// two instructions: noop, which retires in one cycle, and addx, which retires
// in two cycles and only then adds its operand to X. Observation probes are
// called once per cycle with the cycle number and the value of X during that
// cycle.
//
// The assembler decodes one instruction per line of program text.
package cpu
