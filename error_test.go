// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse_test

import (
	"strings"
	"testing"

	"github.com/lyzalabs/jparse"
)

func TestParseError(t *testing.T) {
	p := jparse.NewProducer(strings.NewReader("abc\ndef"))
	p.Next() // consume 'a'

	err := jparse.NewParseError(p, "expected value")
	if err.Line != 1 || err.Column != 2 {
		t.Errorf("Position: got %d:%d, want 1:2", err.Line, err.Column)
	}
	if got, want := err.Remainder, "bc\ndef"; got != want {
		t.Errorf("Remainder: got %q, want %q", got, want)
	}
	if !p.EOF() {
		t.Error("Producer not drained: EOF is false")
	}

	// The rendered message has a fixed shape, with no separator before the
	// until_eof tag and the remainder reproduced verbatim.
	const want = "1:2: expected valueuntil_eof=\"bc\ndef\""
	if got := err.Error(); got != want {
		t.Errorf("Error:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestParseErrorEmptyRemainder(t *testing.T) {
	p := jparse.NewProducer(strings.NewReader(""))
	err := jparse.NewParseError(p, "expected key")
	if got, want := err.Error(), `1:1: expected keyuntil_eof=""`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}
