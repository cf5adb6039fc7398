package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/crt/io"
)

// Probe is an observation hook called once per cycle.
type Probe io.Probe

const (
	X_RESET = 1 // Value of X after reset.
)

// Cpu is the simulation context for the CRT controller CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	X     int // Register X.
	Cycle int // Number of cycles started since reset.

	probes []Probe // Observation probes, in call order.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Attach adds observation probes. Probes are called in attach order.
func (cpu *Cpu) Attach(probes ...Probe) {
	for _, probe := range probes {
		if probe != nil {
			cpu.probes = append(cpu.probes, probe)
		}
	}
}

// Detach removes all observation probes.
func (cpu *Cpu) Detach() {
	cpu.probes = nil
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("cycle: %d\n    x: %d\n", cpu.Cycle, cpu.X)
}

// Reset the CPU state.
// - Sets X to its initial value.
// - Zeros the cycle counter.
// - Resets all probes.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.X = X_RESET
	cpu.Cycle = 0

	for _, probe := range cpu.probes {
		probe.Reset()
	}
}

// step runs a single cycle with the current value of X.
func (cpu *Cpu) step() (err error) {
	cpu.Cycle++

	if cpu.Verbose {
		log.Printf("cpu: cycle %d x %d", cpu.Cycle, cpu.X)
	}

	for _, probe := range cpu.probes {
		err = probe.Observe(cpu.Cycle, cpu.X)
		if err != nil {
			return
		}
	}

	return
}

// Execute retires a single decoded instruction.
// X is only updated after all cycles of the instruction have been observed.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %d: %v", cpu.Cycle, inst)
	}

	cost := inst.Op.Cost()
	if cost == 0 {
		return ErrOpcodeInvalid
	}

	for range cost {
		err = cpu.step()
		if err != nil {
			return
		}
	}

	switch inst.Op {
	case OP_NOOP:
		// pass
	case OP_ADDX:
		cpu.X += inst.Delta
	}

	return
}
