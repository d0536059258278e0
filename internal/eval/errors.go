// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "errors"

// Operator and engine failures. The message text is part of the
// observable surface, so the sentinels keep the canonical casing.
var (
	ErrStackUnderflow     = errors.New("Stack underflow")
	ErrDictStackUnderflow = errors.New("Dict stack underflow")
	ErrTypeCheck          = errors.New("Type check error")
	ErrRangeCheck         = errors.New("Range check error")
	ErrUndefinedName      = errors.New("Undefined name")
	ErrCopyNotImplemented = errors.New("Object copy not implemented")
)

// ErrQuit is returned by the quit operator. Embedders decide what
// termination means; the CLI maps it to exit code 0.
var ErrQuit = errors.New("quit")
