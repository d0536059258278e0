// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

// TraceFunc observes each value as it is popped off the execution
// stack, before dispatch.
type TraceFunc func(v value.Value)

// Interpreter drains the execution stack of a Context. Flow control
// never recurses into the host: procedures and loop iterations are
// spliced onto the execution stack and interpreted by the same flat
// loop, so recursion depth is bounded by that stack, not by host call
// depth.
type Interpreter struct {
	ctx   *Context
	trace TraceFunc
}

// NewInterpreter creates an interpreter over ctx.
func NewInterpreter(ctx *Context) *Interpreter {
	return &Interpreter{ctx: ctx}
}

// SetTrace installs a dispatch observer, or removes it when nil.
func (in *Interpreter) SetTrace(fn TraceFunc) { in.trace = fn }

// Context returns the interpreter's context.
func (in *Interpreter) Context() *Context { return in.ctx }

// Execute seeds the parsed program onto the execution stack in reverse
// order and drains it. The first error aborts: partial effects on the
// operand stack, the dictionary chain, and output remain, and the
// execution stack is cleared so a later Execute starts clean.
func (in *Interpreter) Execute(program []value.Value) error {
	ctx := in.ctx
	ctx.splice(program)

	for len(ctx.Exec) > 0 {
		v := ctx.Exec[len(ctx.Exec)-1]
		ctx.Exec = ctx.Exec[:len(ctx.Exec)-1]
		if in.trace != nil {
			in.trace(v)
		}
		if err := in.step(v); err != nil {
			ctx.Exec = ctx.Exec[:0]
			return err
		}
	}
	return nil
}

// step dispatches one execution-stack value.
func (in *Interpreter) step(v value.Value) error {
	ctx := in.ctx
	switch val := v.(type) {
	case value.Name:
		bound, ok := ctx.Lookup(string(val))
		if !ok {
			return fmt.Errorf("%w: %s", ErrUndefinedName, string(val))
		}
		return in.invoke(bound)

	case value.Block:
		// Block literals are data: they surface on the operand stack
		// and only execute through a name binding or a flow operator.
		// Under lexical scoping this is the capture point.
		if ctx.Lexical {
			ctx.Push(Closure{Body: val, Env: ctx.snapshotDicts()})
		} else {
			ctx.Push(val)
		}

	case ForState:
		cont := (val.Step > 0 && val.Current <= val.Limit) ||
			(val.Step < 0 && val.Current >= val.Limit)
		if cont {
			ctx.pushExec(ForState{
				Current: val.Current + val.Step,
				Step:    val.Step,
				Limit:   val.Limit,
				Proc:    val.Proc,
			})
			ctx.Push(value.Real(val.Current))
			scheduleProc(ctx, val.Proc)
		}

	case RepeatState:
		if val.Count > 0 {
			ctx.pushExec(RepeatState{Count: val.Count - 1, Proc: val.Proc})
			scheduleProc(ctx, val.Proc)
		}

	case RestoreEnv:
		ctx.Dicts = val.Env

	default:
		ctx.Push(v)
	}
	return nil
}

// invoke dispatches the value a name resolved to: native operators run,
// blocks splice with the chain untouched (dynamic scoping), closures
// swap in their captured chain, anything else is data.
func (in *Interpreter) invoke(bound value.Value) error {
	switch b := bound.(type) {
	case NativeOp:
		return b.Fn(in.ctx)
	case value.Block, Closure:
		scheduleProc(in.ctx, b)
	default:
		in.ctx.Push(bound)
	}
	return nil
}
