// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/tinyps/internal/value"
)

// popDefName pops the operand naming a binding for persist/unpersist:
// a literal name or a string.
func popDefName(c *Context) (string, error) {
	v, err := c.Pop()
	if err != nil {
		return "", err
	}
	switch n := v.(type) {
	case value.LiteralName:
		return string(n), nil
	case *value.String:
		return n.Text(), nil
	default:
		return "", fmt.Errorf("%w: persist expected name", ErrTypeCheck)
	}
}

// opPersist writes the named binding to the definition store as
// re-parseable source. Without a store attached it is a no-op.
func opPersist(c *Context) error {
	name, err := popDefName(c)
	if err != nil {
		return err
	}
	if c.defs == nil {
		return nil
	}
	bound, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefinedName, name)
	}
	src, err := FormatDefinition(name, bound)
	if err != nil {
		return err
	}
	return c.defs.Put(name, src)
}

// opUnpersist removes the named definition from the store.
func opUnpersist(c *Context) error {
	name, err := popDefName(c)
	if err != nil {
		return err
	}
	if c.defs == nil {
		return nil
	}
	return c.defs.Delete(name)
}

// FormatDefinition renders a binding as source text that, executed
// through the normal pipeline, recreates it: /name <repr> def.
// Persistable values are exactly those whose representation form
// re-parses to an equal value; a closure serializes by body and
// recaptures its chain on reload.
func FormatDefinition(name string, v value.Value) (string, error) {
	body, err := serializable(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s %s def", name, body), nil
}

func serializable(v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Int, value.Real, value.Bool, *value.String, value.LiteralName, value.Block:
		return v.Repr(), nil
	case Closure:
		return t.Body.Repr(), nil
	default:
		return "", fmt.Errorf("%w: value cannot be persisted", ErrTypeCheck)
	}
}
