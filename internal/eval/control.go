// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/tinyps/internal/value"

// The variants in this file are owned by the engine. Native operators
// and closures surface on the operand stack; loop states and restore
// sentinels appear only on the execution stack.

// NativeOp is a built-in operator bound in the system dictionary.
type NativeOp struct {
	Name string
	Fn   func(*Context) error
}

func (NativeOp) String() string { return "--native-function--" }
func (NativeOp) Repr() string   { return "--native-function--" }

// Closure is an executable block with a captured snapshot of the
// dictionary chain, produced when a block literal is evaluated under
// lexical scoping. The snapshot holds dict handles: later mutation of
// those dicts is visible through it, later begin/end on the live chain
// is not.
type Closure struct {
	Body value.Block
	Env  []*value.Dict
}

func (Closure) String() string { return "--closure--" }
func (Closure) Repr() string   { return "--closure--" }

// ForState is the suspended iteration state of a numeric for loop. The
// engine re-pushes a successor state for each iteration, so loops
// consume execution-stack depth instead of host call depth.
type ForState struct {
	Current float64
	Step    float64
	Limit   float64
	Proc    value.Value
}

func (ForState) String() string { return "--for-loop--" }
func (ForState) Repr() string   { return "--for-loop--" }

// RepeatState is the suspended iteration state of a repeat loop.
type RepeatState struct {
	Count int64
	Proc  value.Value
}

func (RepeatState) String() string { return "--repeat-loop--" }
func (RepeatState) Repr() string   { return "--repeat-loop--" }

// RestoreEnv restores the dictionary chain when popped; one is pushed
// under every closure invocation.
type RestoreEnv struct {
	Env []*value.Dict
}

func (RestoreEnv) String() string { return "--restore-env--" }
func (RestoreEnv) Repr() string   { return "--restore-env--" }
