package io

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script is a compiled Starlark sample predicate over 'cycle' and 'x'.
type Script struct {
	Expr string // Source expression.

	thread *starlark.Thread
	sample starlark.Callable
}

// CompileScript compiles a boolean Starlark expression, such as
// "cycle % 40 == 20", into a sample predicate.
func CompileScript(expr string) (script *Script, err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Expr: expr, Err: err}
			script = nil
		}
	}()

	expr = strings.TrimSpace(expr)
	if len(expr) == 0 {
		err = ErrScriptEmpty
		return
	}
	if strings.ContainsAny(expr, "\r\n;") {
		err = ErrScriptMultiline
		return
	}

	thread := &starlark.Thread{Name: "sample"}
	opts := syntax.FileOptions{}
	prog := "def sample(cycle, x):\n    return " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "sample", prog, nil)
	if err != nil {
		return
	}

	sample, ok := dict["sample"].(starlark.Callable)
	if !ok {
		err = ErrScriptFunction
		return
	}

	script = &Script{
		Expr:   expr,
		thread: thread,
		sample: sample,
	}

	return
}

// Sample evaluates the predicate for a single cycle.
func (script *Script) Sample(cycle int, x int) (ok bool, err error) {
	args := starlark.Tuple{starlark.MakeInt(cycle), starlark.MakeInt(x)}
	rc, err := starlark.Call(script.thread, script.sample, args, nil)
	if err != nil {
		err = &ErrScript{Expr: script.Expr, Err: err}
		return
	}

	st_bool, is_bool := rc.(starlark.Bool)
	if !is_bool {
		err = &ErrScript{Expr: script.Expr, Err: ErrScriptResult}
		return
	}

	ok = bool(st_bool)
	return
}
