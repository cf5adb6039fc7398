// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/crt/cpu"
	"github.com/ezrec/crt/io"
)

// Emulator state. CPU + observation devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.

	Signal io.Signal // Signal strength accumulator.
	Crt    io.Crt    // CRT framebuffer.
	Tape   io.Tape   // Cycle trace; attached on Reset if Output is set.

	pc int // Index of the next instruction to retire.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset the emulator state, and rewind the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Program == nil {
		emu.Program = &cpu.Program{}
	}

	emu.Cpu.Detach()
	emu.Cpu.Attach(&emu.Crt, &emu.Signal)
	if emu.Tape.Output != nil {
		emu.Cpu.Attach(&emu.Tape)
	}

	emu.Cpu.Reset()
	emu.pc = 0

	if emu.Verbose {
		log.Printf("emulator: reset, %d instructions, %d cycles",
			len(emu.Program.Instructions), emu.Program.Cycles())
	}

	return
}

// Cycles returns the total cycles since a reset.
func (emu *Emulator) Cycles() int {
	return emu.Cpu.Cycle
}

// Pc returns the index of the next instruction to retire.
func (emu *Emulator) Pc() int {
	return emu.pc
}

// Done reports if the whole program has retired.
func (emu *Emulator) Done() bool {
	return emu.Program == nil || emu.pc >= len(emu.Program.Instructions)
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	if emu.Done() {
		return 0
	}

	return emu.Program.Instructions[emu.pc].LineNo
}

// Tick retires a single instruction of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Done() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Execute(emu.Program.Instructions[emu.pc])
	if err != nil {
		return
	}

	emu.pc++

	return
}

// Run ticks the emulator until the program has retired.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: done, cycle %d, signal %d", emu.Cpu.Cycle, emu.Signal.Total())
	}

	return
}
