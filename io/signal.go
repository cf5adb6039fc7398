package io

import (
	"slices"
)

// SIGNAL_CYCLES are the cycles sampled by default.
var SIGNAL_CYCLES = []int{20, 60, 100, 140, 180, 220}

// Signal accumulates signal strength, the product of the cycle number and X,
// over the sampled cycles.
type Signal struct {
	Cycles []int // Cycles to sample. If nil, SIGNAL_CYCLES are used.

	script *Script
	total  int
}

var _ Probe = (*Signal)(nil)

// SetScript replaces the sampled cycle set with a Starlark predicate over
// 'cycle' and 'x'. An empty expression restores the cycle set.
func (sig *Signal) SetScript(expr string) (err error) {
	if len(expr) == 0 {
		sig.script = nil
		return
	}

	script, err := CompileScript(expr)
	if err != nil {
		return
	}

	sig.script = script
	return
}

// Reset clears the accumulated total.
func (sig *Signal) Reset() {
	sig.total = 0
}

// Sampled reports if the cycle contributes to the total.
func (sig *Signal) Sampled(cycle int, x int) (ok bool, err error) {
	if sig.script != nil {
		return sig.script.Sample(cycle, x)
	}

	cycles := sig.Cycles
	if cycles == nil {
		cycles = SIGNAL_CYCLES
	}

	ok = slices.Contains(cycles, cycle)
	return
}

// Observe adds the signal strength of a sampled cycle to the total.
func (sig *Signal) Observe(cycle int, x int) (err error) {
	ok, err := sig.Sampled(cycle, x)
	if err != nil || !ok {
		return
	}

	sig.total += cycle * x
	return
}

// Total returns the accumulated signal strength.
func (sig *Signal) Total() int {
	return sig.total
}
