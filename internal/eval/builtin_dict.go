// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

func opDict(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	n, ok := v.(value.Int)
	if !ok {
		return ErrTypeCheck
	}
	c.Push(value.NewDict(int(n)))
	return nil
}

func opLength(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case *value.Dict:
		c.Push(value.Int(t.Len()))
	case *value.String:
		c.Push(value.Int(t.Len()))
	case value.Array:
		c.Push(value.Int(len(t)))
	case value.Block:
		c.Push(value.Int(len(t)))
	case Closure:
		c.Push(value.Int(len(t.Body)))
	default:
		return ErrTypeCheck
	}
	return nil
}

func opMaxlength(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	d, ok := v.(*value.Dict)
	if !ok {
		return ErrTypeCheck
	}
	c.Push(value.Int(d.MaxLen()))
	return nil
}

func opBegin(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	d, ok := v.(*value.Dict)
	if !ok {
		return ErrTypeCheck
	}
	c.Dicts = append(c.Dicts, d)
	return nil
}

func opEnd(c *Context) error {
	// The system dictionary stays.
	if len(c.Dicts) <= 1 {
		return ErrDictStackUnderflow
	}
	c.Dicts = c.Dicts[:len(c.Dicts)-1]
	return nil
}

func opDef(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	key, err := c.Pop()
	if err != nil {
		return err
	}
	switch k := key.(type) {
	case value.Name:
		c.Define(string(k), v)
	case value.LiteralName:
		c.Define(string(k), v)
	default:
		return fmt.Errorf("%w: def expected name key", ErrTypeCheck)
	}
	return nil
}
