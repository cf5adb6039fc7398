package io

import (
	"errors"

	"github.com/ezrec/crt/translate"
)

var f = translate.From

var (
	// Script errors
	ErrScriptEmpty     = errors.New(f("script empty"))
	ErrScriptMultiline = errors.New(f("script must be a single expression"))
	ErrScriptFunction  = errors.New(f("script did not define a sampler"))
	ErrScriptResult    = errors.New(f("script result is not a bool"))
)

// ErrScript indicates a failure compiling or running a sample script.
type ErrScript struct {
	Expr string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script '%v' %v", err.Expr, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
