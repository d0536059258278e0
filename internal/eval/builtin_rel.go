// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/tinyps/internal/value"

// valueEqual extends value.Equal to the engine-owned variants: native
// operators compare by name, closures by body.
func valueEqual(a, b value.Value) bool {
	switch av := a.(type) {
	case NativeOp:
		bv, ok := b.(NativeOp)
		return ok && av.Name == bv.Name
	case Closure:
		bv, ok := b.(Closure)
		return ok && value.Equal(av.Body, bv.Body)
	}
	return value.Equal(a, b)
}

func opEq(c *Context) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}
	c.Push(value.Bool(valueEqual(a, b)))
	return nil
}

func opNe(c *Context) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}
	c.Push(value.Bool(!valueEqual(a, b)))
	return nil
}

// ordered pops two operands and pushes cmp(a, b) for numeric pairs with
// Int/Real cross-promotion, or for two strings compared lexicographically.
func ordered(c *Context, cmp func(lt, eq bool) bool) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}

	if as, ok := a.(*value.String); ok {
		bs, ok := b.(*value.String)
		if !ok {
			return ErrTypeCheck
		}
		at, bt := as.Text(), bs.Text()
		c.Push(value.Bool(cmp(at < bt, at == bt)))
		return nil
	}

	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return ErrTypeCheck
	}
	c.Push(value.Bool(cmp(af < bf, af == bf)))
	return nil
}

func opLt(c *Context) error {
	return ordered(c, func(lt, eq bool) bool { return lt })
}

func opLe(c *Context) error {
	return ordered(c, func(lt, eq bool) bool { return lt || eq })
}

func opGt(c *Context) error {
	return ordered(c, func(lt, eq bool) bool { return !lt && !eq })
}

func opGe(c *Context) error {
	return ordered(c, func(lt, eq bool) bool { return !lt })
}

// bitwiseOrLogical pops two operands: Bool pairs take the logical form,
// Int pairs the bitwise form.
func bitwiseOrLogical(c *Context, boolFn func(a, b bool) bool, intFn func(a, b int64) int64) error {
	b, err := c.Pop()
	if err != nil {
		return err
	}
	a, err := c.Pop()
	if err != nil {
		return err
	}
	switch av := a.(type) {
	case value.Bool:
		bv, ok := b.(value.Bool)
		if !ok {
			return ErrTypeCheck
		}
		c.Push(value.Bool(boolFn(bool(av), bool(bv))))
	case value.Int:
		bv, ok := b.(value.Int)
		if !ok {
			return ErrTypeCheck
		}
		c.Push(value.Int(intFn(int64(av), int64(bv))))
	default:
		return ErrTypeCheck
	}
	return nil
}

func opAnd(c *Context) error {
	return bitwiseOrLogical(c,
		func(a, b bool) bool { return a && b },
		func(a, b int64) int64 { return a & b })
}

func opOr(c *Context) error {
	return bitwiseOrLogical(c,
		func(a, b bool) bool { return a || b },
		func(a, b int64) int64 { return a | b })
}

func opNot(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case value.Bool:
		c.Push(value.Bool(!t))
	case value.Int:
		c.Push(value.Int(^int64(t)))
	default:
		return ErrTypeCheck
	}
	return nil
}
