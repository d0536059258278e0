// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"math"

	"nickandperla.net/tinyps/internal/value"
)

// asFloat widens a numeric value to float64.
func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n), true
	case value.Real:
		return float64(n), true
	}
	return 0, false
}

// binaryNumeric pops two operands and applies the Int form when both
// are Ints, the Real form otherwise. Any Real operand promotes the
// result.
func binaryNumeric(c *Context, intFn func(a, b int64) value.Value, realFn func(a, b float64) value.Value) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}

	if ai, ok := a.(value.Int); ok {
		if bi, ok := b.(value.Int); ok {
			c.Push(intFn(int64(ai), int64(bi)))
			return nil
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return ErrTypeCheck
	}
	c.Push(realFn(af, bf))
	return nil
}

// unaryNumeric pops one operand and applies the variant-matching form.
func unaryNumeric(c *Context, intFn func(a int64) value.Value, realFn func(a float64) value.Value) error {
	a, err := c.Pop()
	if err != nil {
		return err
	}
	switch n := a.(type) {
	case value.Int:
		c.Push(intFn(int64(n)))
	case value.Real:
		c.Push(realFn(float64(n)))
	default:
		return ErrTypeCheck
	}
	return nil
}

func opAdd(c *Context) error {
	return binaryNumeric(c,
		func(a, b int64) value.Value { return value.Int(a + b) },
		func(a, b float64) value.Value { return value.Real(a + b) })
}

func opSub(c *Context) error {
	return binaryNumeric(c,
		func(a, b int64) value.Value { return value.Int(a - b) },
		func(a, b float64) value.Value { return value.Real(a - b) })
}

func opMul(c *Context) error {
	return binaryNumeric(c,
		func(a, b int64) value.Value { return value.Int(a * b) },
		func(a, b float64) value.Value { return value.Real(a * b) })
}

// opDiv is Real division regardless of operand variants.
func opDiv(c *Context) error {
	return binaryNumeric(c,
		func(a, b int64) value.Value { return value.Real(float64(a) / float64(b)) },
		func(a, b float64) value.Value { return value.Real(a / b) })
}

func opIdiv(c *Context) error {
	return intBinary(c, func(a, b int64) value.Value { return value.Int(a / b) })
}

func opMod(c *Context) error {
	return intBinary(c, func(a, b int64) value.Value { return value.Int(a % b) })
}

// intBinary pops two operands that must both be Ints.
func intBinary(c *Context, fn func(a, b int64) value.Value) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}
	ai, aok := a.(value.Int)
	bi, bok := b.(value.Int)
	if !aok || !bok {
		return ErrTypeCheck
	}
	c.Push(fn(int64(ai), int64(bi)))
	return nil
}

func opAbs(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value {
			if a < 0 {
				return value.Int(-a)
			}
			return value.Int(a)
		},
		func(a float64) value.Value { return value.Real(math.Abs(a)) })
}

func opNeg(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value { return value.Int(-a) },
		func(a float64) value.Value { return value.Real(-a) })
}

// ceiling and floor return Real in all cases; Int inputs convert.
func opCeiling(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value { return value.Real(float64(a)) },
		func(a float64) value.Value { return value.Real(math.Ceil(a)) })
}

func opFloor(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value { return value.Real(float64(a)) },
		func(a float64) value.Value { return value.Real(math.Floor(a)) })
}

// opRound is variant-preserving; Reals round half away from zero.
func opRound(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value { return value.Int(a) },
		func(a float64) value.Value { return value.Real(math.Round(a)) })
}

func opSqrt(c *Context) error {
	return unaryNumeric(c,
		func(a int64) value.Value { return value.Real(math.Sqrt(float64(a))) },
		func(a float64) value.Value { return value.Real(math.Sqrt(a)) })
}
