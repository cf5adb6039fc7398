package io

import (
	"fmt"
	"io"
)

// Tape writes a trace line of "cycle x" for every observed cycle.
type Tape struct {
	Output io.Writer

	lines int
}

var _ Probe = (*Tape)(nil)

// Reset is not possible on a tape; only the line counter is cleared.
func (tc *Tape) Reset() {
	tc.lines = 0
}

// Observe writes the cycle and X to the output.
func (tc *Tape) Observe(cycle int, x int) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d %d\n", cycle, x)
	if err != nil {
		return
	}

	tc.lines++
	return
}

// Lines returns the number of trace lines written since reset.
func (tc *Tape) Lines() int {
	return tc.lines
}
