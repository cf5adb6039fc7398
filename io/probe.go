// Package io provides the observation devices attached to the CRT controller
// CPU. Each device is a Probe: it is called once per cycle with the cycle
// number and the value of register X during that cycle.
//
// Devices include the signal strength accumulator (Signal), the 40x6 CRT
// framebuffer (Crt), and a per-cycle trace writer (Tape).
package io

// Probe defines the interface for all observation devices.
type Probe interface {
	// Reset returns the device to its power-on state.
	Reset()
	// Observe is called once per cycle. The cycle number is 1-based, and x
	// is the value of register X during that cycle.
	Observe(cycle int, x int) error
}
