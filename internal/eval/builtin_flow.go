// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

// scheduleProc splices a flow-operator procedure onto the execution
// stack with the same rules as name dispatch. Closures swap in their
// captured chain with a paired restore.
func scheduleProc(c *Context, proc value.Value) {
	switch p := proc.(type) {
	case value.Block:
		c.splice(p)
	case Closure:
		c.pushExec(RestoreEnv{Env: c.Dicts})
		c.Dicts = p.Env
		c.splice(p.Body)
	default:
		c.pushExec(proc)
	}
}

func opIf(c *Context) error {
	proc, err := c.Pop()
	if err != nil {
		return err
	}
	cond, err := c.Pop()
	if err != nil {
		return err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return fmt.Errorf("%w: if expected bool", ErrTypeCheck)
	}
	if b {
		scheduleProc(c, proc)
	}
	return nil
}

func opIfelse(c *Context) error {
	procElse, err := c.Pop()
	if err != nil {
		return err
	}
	procThen, err := c.Pop()
	if err != nil {
		return err
	}
	cond, err := c.Pop()
	if err != nil {
		return err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return fmt.Errorf("%w: ifelse expected bool", ErrTypeCheck)
	}
	if b {
		scheduleProc(c, procThen)
	} else {
		scheduleProc(c, procElse)
	}
	return nil
}

// opFor constructs a ForState with all three control values widened to
// Real and leaves iteration to the engine. A zero step is rejected up
// front with a range check; the engine's continue guard holds only for
// a positive or a negative step.
func opFor(c *Context) error {
	proc, err := c.Pop()
	if err != nil {
		return err
	}
	limit, err := c.Pop()
	if err != nil {
		return err
	}
	step, err := c.Pop()
	if err != nil {
		return err
	}
	initial, err := c.Pop()
	if err != nil {
		return err
	}

	cur, cok := asFloat(initial)
	stp, sok := asFloat(step)
	lim, lok := asFloat(limit)
	if !cok || !sok || !lok {
		return ErrTypeCheck
	}
	if stp == 0 {
		return ErrRangeCheck
	}

	c.pushExec(ForState{Current: cur, Step: stp, Limit: lim, Proc: proc})
	return nil
}

func opRepeat(c *Context) error {
	proc, err := c.Pop()
	if err != nil {
		return err
	}
	count, err := c.Pop()
	if err != nil {
		return err
	}
	n, ok := count.(value.Int)
	if !ok {
		return ErrTypeCheck
	}
	if n < 0 {
		return ErrRangeCheck
	}
	c.pushExec(RepeatState{Count: int64(n), Proc: proc})
	return nil
}

func opQuit(c *Context) error {
	return ErrQuit
}
