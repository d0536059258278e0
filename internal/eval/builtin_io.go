// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

// opPrint writes raw string content, no newline.
func opPrint(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	s, ok := v.(*value.String)
	if !ok {
		return ErrTypeCheck
	}
	_, err = fmt.Fprint(c.out, s.Text())
	return err
}

// opEqualsPrint is the = operator: human form plus newline.
func opEqualsPrint(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, v.String())
	return err
}

// opEqualsEqualsPrint is the == operator: representation form plus
// newline.
func opEqualsEqualsPrint(c *Context) error {
	v, err := c.Pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, v.Repr())
	return err
}
