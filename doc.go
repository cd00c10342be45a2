// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Package jparse implements the character stream and error type underlying a
// recursive-descent JSON parser.
//
// # Producers
//
// The Producer type delivers characters from an input stream one at a time
// with single-character lookahead. Construct a producer from an io.Reader
// and use Peek to inspect and Next to consume the input:
//
//	p := jparse.NewProducer(input)
//	for !p.EOF() {
//	   ch, err := p.Next()
//	   ...
//	}
//
// A producer tracks the 1-based line and column of the next unread
// character, which the parser uses to locate syntax errors. A producer is
// exclusively owned by the single parse that constructed it: it is not safe
// for concurrent use and must not be reused once a parse has finished with
// it.
//
// # Errors
//
// Parse failures are reported as a *ParseError recording the position at
// the moment of failure. Constructing a ParseError drains whatever input
// remains in its producer into the error message, so a failed parse always
// leaves its producer at end of input.
//
// The tree-building parser itself lives in the ast subpackage.
package jparse
