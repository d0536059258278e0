// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/tinyps/internal/value"

func opGet(c *Context) error {
	idx, err := c.Pop()
	if err != nil {
		return err
	}
	container, err := c.Pop()
	if err != nil {
		return err
	}
	i, ok := idx.(value.Int)
	if !ok {
		return ErrTypeCheck
	}
	switch t := container.(type) {
	case *value.String:
		if i < 0 || int(i) >= t.Len() {
			return ErrRangeCheck
		}
		c.Push(value.Int(t.At(int(i))))
	case value.Array:
		if i < 0 || int(i) >= len(t) {
			return ErrRangeCheck
		}
		c.Push(t[int(i)])
	default:
		return ErrTypeCheck
	}
	return nil
}

func opGetinterval(c *Context) error {
	cnt, err := c.Pop()
	if err != nil {
		return err
	}
	idx, err := c.Pop()
	if err != nil {
		return err
	}
	container, err := c.Pop()
	if err != nil {
		return err
	}

	s, ok := container.(*value.String)
	if !ok {
		return ErrTypeCheck
	}
	i, iok := idx.(value.Int)
	n, nok := cnt.(value.Int)
	if !iok || !nok {
		return ErrTypeCheck
	}
	if i < 0 || n < 0 || int(i)+int(n) > s.Len() {
		return ErrRangeCheck
	}
	c.Push(s.Slice(int(i), int(n)))
	return nil
}

// opPutinterval mutates the destination string in place; the change is
// visible through every alias of it.
func opPutinterval(c *Context) error {
	src, err := c.Pop()
	if err != nil {
		return err
	}
	idx, err := c.Pop()
	if err != nil {
		return err
	}
	dst, err := c.Pop()
	if err != nil {
		return err
	}

	d, dok := dst.(*value.String)
	s, sok := src.(*value.String)
	if !dok || !sok {
		return ErrTypeCheck
	}
	i, ok := idx.(value.Int)
	if !ok {
		return ErrTypeCheck
	}
	if i < 0 || int(i)+s.Len() > d.Len() {
		return ErrRangeCheck
	}
	d.SetInterval(int(i), s)
	return nil
}
