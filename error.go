// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import "fmt"

// A ParseError describes a syntax error in JSON input. Line and Column give
// the position of the next unread character at the moment the error was
// raised, before any diagnostic consumption. Remainder holds everything
// that was still unread at that point.
type ParseError struct {
	Line, Column int

	Message   string
	Remainder string
}

// NewParseError records the current position of p, then drains the rest of
// its input into the error's Remainder. The drain is destructive: after the
// call, p is at end of input.
func NewParseError(p *Producer, msg string) *ParseError {
	e := &ParseError{Line: p.Line(), Column: p.Column(), Message: msg}
	e.Remainder = p.Drain()
	return e
}

// Error satisfies the error interface. The rendered form is exactly
//
//	<line>:<column>: <message>until_eof="<remainder>"
//
// with no separator between the message and the until_eof tag, and the
// remainder reproduced verbatim. Consumers match on this literal shape.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %suntil_eof=\"%s\"", e.Line, e.Column, e.Message, e.Remainder)
}
