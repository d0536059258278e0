// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser lowers token streams to executable value sequences.
//
// The parser is purely structural: literals map to their value variant,
// brackets lower to the executable names "[" and "]", and braces open a
// recursive sub-parse wrapped in a Block. No name is looked up here.
package parser

import (
	"errors"
	"fmt"

	"nickandperla.net/tinyps/internal/scanner"
	"nickandperla.net/tinyps/internal/token"
	"nickandperla.net/tinyps/internal/value"
)

// Parse errors.
var (
	ErrUnexpectedRBrace = errors.New("Unexpected }")
	ErrUnexpectedEOF    = errors.New("Unexpected end of input")
)

// Parse reads tokens from scan until end of input and returns the
// resulting value sequence.
func Parse(scan *scanner.Scanner) ([]value.Value, error) {
	return parseSequence(scan, false)
}

// ParseString parses a complete program from source text.
func ParseString(src string) ([]value.Value, error) {
	return Parse(scanner.NewFromString(src))
}

func parseSequence(scan *scanner.Scanner, insideBlock bool) ([]value.Value, error) {
	var seq []value.Value
	for {
		item, err := scan.Next()
		if err != nil {
			return nil, err
		}

		switch item.Kind {
		case token.EOF:
			if insideBlock {
				return nil, fmt.Errorf("%w, expected }", ErrUnexpectedEOF)
			}
			return seq, nil
		case token.Int:
			seq = append(seq, value.Int(item.Int))
		case token.Real:
			seq = append(seq, value.Real(item.Real))
		case token.String:
			seq = append(seq, value.NewString(item.Text))
		case token.Name:
			seq = append(seq, value.Name(item.Text))
		case token.LiteralName:
			seq = append(seq, value.LiteralName(item.Text))
		case token.LBracket:
			seq = append(seq, value.Name("["))
		case token.RBracket:
			seq = append(seq, value.Name("]"))
		case token.LBrace:
			block, err := parseSequence(scan, true)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value.Block(block))
		case token.RBrace:
			if insideBlock {
				return seq, nil
			}
			return nil, fmt.Errorf("%w at line %d", ErrUnexpectedRBrace, item.Line)
		}
	}
}
