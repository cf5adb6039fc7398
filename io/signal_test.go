package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_Default(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{}
	for cycle := 1; cycle <= 240; cycle++ {
		assert.NoError(sig.Observe(cycle, 2))
	}

	// 2 * (20 + 60 + 100 + 140 + 180 + 220)
	assert.Equal(1440, sig.Total())

	sig.Reset()
	assert.Equal(0, sig.Total())
}

func TestSignal_Sampled(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{}
	for _, cycle := range []int{20, 60, 100, 140, 180, 220} {
		ok, err := sig.Sampled(cycle, 0)
		assert.NoError(err)
		assert.True(ok, cycle)
	}
	for _, cycle := range []int{0, 1, 19, 21, 40, 221, 260} {
		ok, err := sig.Sampled(cycle, 0)
		assert.NoError(err)
		assert.False(ok, cycle)
	}
}

func TestSignal_NegativeX(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{}
	assert.NoError(sig.Observe(20, -3))
	assert.NoError(sig.Observe(60, 1))
	assert.Equal(0, sig.Total())
}

func TestSignal_Cycles(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{Cycles: []int{1, 3}}
	for cycle := 1; cycle <= 4; cycle++ {
		assert.NoError(sig.Observe(cycle, 10))
	}
	assert.Equal(10+30, sig.Total())

	// An empty, non-nil set samples nothing.
	sig = &Signal{Cycles: []int{}}
	assert.NoError(sig.Observe(20, 10))
	assert.Equal(0, sig.Total())
}

func TestSignal_Script(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{}
	assert.NoError(sig.SetScript("cycle % 40 == 20 and cycle <= 220"))
	for cycle := 1; cycle <= 240; cycle++ {
		assert.NoError(sig.Observe(cycle, 1))
	}
	assert.Equal(720, sig.Total())

	// Scripts see X too.
	sig.Reset()
	assert.NoError(sig.SetScript("x > 5"))
	assert.NoError(sig.Observe(3, 6))
	assert.NoError(sig.Observe(4, 5))
	assert.Equal(18, sig.Total())

	// Clearing the script restores the default set.
	sig.Reset()
	assert.NoError(sig.SetScript(""))
	assert.NoError(sig.Observe(3, 6))
	assert.NoError(sig.Observe(20, 1))
	assert.Equal(20, sig.Total())
}

func TestSignal_ScriptErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		expr string
		err  error
	}){
		{"blank", "   ", ErrScriptEmpty},
		{"multiline", "True\nFalse", ErrScriptMultiline},
		{"statement", "True; y = 1", ErrScriptMultiline},
		{"syntax", "cycle ==", nil},
		{"undefined", "cycles == 20", nil},
	}

	for _, entry := range table {
		sig := &Signal{}
		err := sig.SetScript(entry.expr)
		assert.Error(err, entry.name)

		var script_err *ErrScript
		assert.True(errors.As(err, &script_err), entry.name)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestSignal_ScriptRuntimeErrors(t *testing.T) {
	assert := assert.New(t)

	sig := &Signal{}
	assert.NoError(sig.SetScript("cycle"))
	err := sig.Observe(20, 1)
	assert.ErrorIs(err, ErrScriptResult)
	assert.Equal(0, sig.Total())

	assert.NoError(sig.SetScript("cycle // (x - 1) == 0"))
	err = sig.Observe(20, 1)
	var script_err *ErrScript
	assert.True(errors.As(err, &script_err))
	assert.Equal("cycle // (x - 1) == 0", script_err.Expr)
}
