// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrEndOfInput is reported by Peek and Next when no characters remain in
// the input.
var ErrEndOfInput = errors.New("end of input")

// A Producer delivers characters from an input stream one at a time, with
// single-character lookahead, and tracks the position of the next unread
// character for diagnostics.
type Producer struct {
	r   *bufio.Reader
	eof bool

	line, col int // position of the next unread character, 1-based
}

// NewProducer constructs a producer that consumes input from r.
func NewProducer(r io.Reader) *Producer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Producer{r: br, line: 1, col: 1}
}

// Peek returns the next character without consuming it. At the end of the
// input it reports ErrEndOfInput.
func (p *Producer) Peek() (byte, error) {
	bs, err := p.r.Peek(1)
	if err == io.EOF {
		p.eof = true
		return 0, ErrEndOfInput
	} else if err != nil {
		return 0, err
	}
	return bs[0], nil
}

// Next consumes and returns the next character, advancing the column by
// one, or on a newline resetting the column to 1 and advancing the line.
// At the end of the input it reports ErrEndOfInput.
func (p *Producer) Next() (byte, error) {
	ch, err := p.r.ReadByte()
	if err == io.EOF {
		p.eof = true
		return 0, ErrEndOfInput
	} else if err != nil {
		return 0, err
	}
	if ch == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return ch, nil
}

// SkipSpace advances past a run of space, tab, carriage-return, and newline
// characters. When consume is false the skip is deferred and the producer
// is left untouched: that form marks boundaries where whitespace is
// significant, such as immediately after the opening quote of a string
// literal, where a space is string content rather than token separation.
// Whitespace is only ever insignificant between structural tokens, never
// inside a string literal.
func (p *Producer) SkipSpace(consume bool) {
	if !consume {
		return
	}
	for {
		ch, err := p.Peek()
		if err != nil || !isSpace(ch) {
			return
		}
		p.Next()
	}
}

// EOF reports whether the input is exhausted.
func (p *Producer) EOF() bool {
	if !p.eof {
		if _, err := p.r.Peek(1); err == io.EOF {
			p.eof = true
		}
	}
	return p.eof
}

// Line reports the 1-based line number of the next unread character.
func (p *Producer) Line() int { return p.line }

// Column reports the 1-based column of the next unread character within its
// line.
func (p *Producer) Column() int { return p.col }

// Drain consumes all remaining characters and returns them. After Drain
// returns, the producer is at end of input.
func (p *Producer) Drain() string {
	var sb strings.Builder
	for {
		ch, err := p.Next()
		if err != nil {
			return sb.String()
		}
		sb.WriteByte(ch)
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
