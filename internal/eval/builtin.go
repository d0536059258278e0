// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

// registerBuiltins populates the system dictionary.
func registerBuiltins(c *Context) {
	ops := map[string]func(*Context) error{
		// Stack manipulation
		"exch":  opExch,
		"pop":   opPop,
		"copy":  opCopy,
		"dup":   opDup,
		"clear": opClear,
		"count": opCount,

		// Arithmetic
		"add":     opAdd,
		"sub":     opSub,
		"mul":     opMul,
		"div":     opDiv,
		"idiv":    opIdiv,
		"mod":     opMod,
		"abs":     opAbs,
		"neg":     opNeg,
		"ceiling": opCeiling,
		"floor":   opFloor,
		"round":   opRound,
		"sqrt":    opSqrt,

		// Dictionary
		"dict":      opDict,
		"length":    opLength,
		"maxlength": opMaxlength,
		"begin":     opBegin,
		"end":       opEnd,
		"def":       opDef,

		// String/array access
		"get":         opGet,
		"getinterval": opGetinterval,
		"putinterval": opPutinterval,

		// Comparison and bit
		"eq":  opEq,
		"ne":  opNe,
		"ge":  opGe,
		"gt":  opGt,
		"le":  opLe,
		"lt":  opLt,
		"and": opAnd,
		"not": opNot,
		"or":  opOr,

		// Flow control
		"if":     opIf,
		"ifelse": opIfelse,
		"for":    opFor,
		"repeat": opRepeat,
		"quit":   opQuit,

		// I/O
		"print": opPrint,
		"=":     opEqualsPrint,
		"==":    opEqualsEqualsPrint,

		// Definition persistence
		"persist":   opPersist,
		"unpersist": opUnpersist,
	}
	for name, fn := range ops {
		c.Define(name, NativeOp{Name: name, Fn: fn})
	}

	c.Define("true", value.Bool(true))
	c.Define("false", value.Bool(false))
}

// Stack manipulation

func opExch(c *Context) error {
	if len(c.Operands) < 2 {
		return ErrStackUnderflow
	}
	n := len(c.Operands)
	c.Operands[n-1], c.Operands[n-2] = c.Operands[n-2], c.Operands[n-1]
	return nil
}

func opPop(c *Context) error {
	_, err := c.Pop()
	return err
}

// opCopy implements the stack form: n copy duplicates the n values
// below the count. The composite forms (dict/array/string destination)
// are not implemented.
func opCopy(c *Context) error {
	top, err := c.Pop()
	if err != nil {
		return err
	}
	switch t := top.(type) {
	case value.Int:
		n := int(t)
		if n < 0 {
			return ErrRangeCheck
		}
		if len(c.Operands) < n {
			return ErrStackUnderflow
		}
		base := len(c.Operands) - n
		for i := 0; i < n; i++ {
			c.Push(c.Operands[base+i])
		}
		return nil
	case *value.Dict, *value.String, value.Array:
		if _, err := c.Pop(); err != nil {
			return err
		}
		return ErrCopyNotImplemented
	default:
		return fmt.Errorf("%w: copy expected int", ErrTypeCheck)
	}
}

func opDup(c *Context) error {
	v, err := c.Peek()
	if err != nil {
		return err
	}
	c.Push(v)
	return nil
}

func opClear(c *Context) error {
	c.Operands = c.Operands[:0]
	return nil
}

func opCount(c *Context) error {
	c.Push(value.Int(len(c.Operands)))
	return nil
}
