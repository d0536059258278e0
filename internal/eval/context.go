// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the three-stack execution engine and its
// built-in operators.
package eval

import (
	"io"
	"os"

	"nickandperla.net/tinyps/internal/store"
	"nickandperla.net/tinyps/internal/value"
)

// Context is the full interpreter state: the operand stack, the
// execution stack, the dictionary chain, and the scoping mode. The
// bottom of the chain is the system dictionary holding the built-in
// operators and the true/false constants.
type Context struct {
	Operands []value.Value
	Exec     []value.Value
	Dicts    []*value.Dict
	Lexical  bool

	out  io.Writer
	defs store.Store
}

// Option configures a Context.
type Option func(*Context)

// WithLexicalScoping switches the context from dynamic to lexical
// scoping: block literals capture the dictionary chain when evaluated.
func WithLexicalScoping() Option {
	return func(c *Context) { c.Lexical = true }
}

// WithOutput sets the writer used by print, = and ==.
func WithOutput(w io.Writer) Option {
	return func(c *Context) { c.out = w }
}

// WithDefinitionStore attaches a persistence store for the persist and
// unpersist operators. Without one they succeed as no-ops.
func WithDefinitionStore(s store.Store) Option {
	return func(c *Context) { c.defs = s }
}

// NewContext creates a context with the system dictionary populated.
func NewContext(opts ...Option) *Context {
	c := &Context{
		Dicts: []*value.Dict{value.NewDict(0)},
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	registerBuiltins(c)
	return c
}

// Push pushes v onto the operand stack.
func (c *Context) Push(v value.Value) {
	c.Operands = append(c.Operands, v)
}

// Pop removes and returns the top of the operand stack.
func (c *Context) Pop() (value.Value, error) {
	if len(c.Operands) == 0 {
		return nil, ErrStackUnderflow
	}
	v := c.Operands[len(c.Operands)-1]
	c.Operands = c.Operands[:len(c.Operands)-1]
	return v, nil
}

// Peek returns the top of the operand stack without removing it.
func (c *Context) Peek() (value.Value, error) {
	if len(c.Operands) == 0 {
		return nil, ErrStackUnderflow
	}
	return c.Operands[len(c.Operands)-1], nil
}

// Define inserts a binding into the top dictionary of the chain.
func (c *Context) Define(key string, v value.Value) {
	c.Dicts[len(c.Dicts)-1].Set(key, v)
}

// Lookup searches the dictionary chain from top to bottom and returns
// the first binding for name.
func (c *Context) Lookup(name string) (value.Value, bool) {
	for i := len(c.Dicts) - 1; i >= 0; i-- {
		if v, ok := c.Dicts[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// snapshotDicts returns a copy of the chain's handle list, insulated
// from later begin/end on the live chain.
func (c *Context) snapshotDicts() []*value.Dict {
	snap := make([]*value.Dict, len(c.Dicts))
	copy(snap, c.Dicts)
	return snap
}

// pushExec pushes v onto the execution stack.
func (c *Context) pushExec(v value.Value) {
	c.Exec = append(c.Exec, v)
}

// splice pushes a value sequence onto the execution stack in reverse
// order, so the first element runs next.
func (c *Context) splice(vals []value.Value) {
	for i := len(vals) - 1; i >= 0; i-- {
		c.Exec = append(c.Exec, vals[i])
	}
}
