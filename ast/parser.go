// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lyzalabs/jparse"
	"github.com/lyzalabs/jparse/internal/escape"

	"go4.org/mem"
)

// Parse parses a complete JSON document from r. The root of a document must
// be an object: a bare array or scalar at top level is a parse error. In
// case of error, the returned error has concrete type [*jparse.ParseError].
func Parse(r io.Reader) (Object, error) { return NewParser(r).Parse() }

// ParseString parses a complete JSON document from s.
func ParseString(s string) (Object, error) { return Parse(strings.NewReader(s)) }

// MustParseString is ParseString for known-good input: it panics if s does
// not parse.
func MustParseString(s string) Object {
	obj, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return obj
}

// A Parser consumes characters from a producer and builds the value tree of
// a JSON document. Each grammar production is one method, and productions
// call each other in direct mutual recursion, so the call depth tracks the
// nesting depth of the input. Use SetMaxDepth to bound that depth for
// untrusted input.
//
// A Parser is for a single use: after Parse or ParseValue has returned, the
// parser and its producer are exhausted and must not be reused.
type Parser struct {
	src    *jparse.Producer
	decode bool

	maxDepth int // 0 means no limit
	depth    int
}

// NewParser constructs a parser that consumes input from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{src: jparse.NewProducer(r)}
}

// NewParserWithProducer constructs a parser that consumes input from p.
// The parser takes exclusive ownership of p.
func NewParserWithProducer(p *jparse.Producer) *Parser { return &Parser{src: p} }

// DecodeEscapes configures the parser to decode (true) or pass through
// (false) backslash escapes in string literals. The default is
// pass-through, in which the backslash is consumed and the character after
// it is kept verbatim: \" and \\ produce the intended character, but \n
// produces the letter n rather than a newline, and \uXXXX the five letters
// uXXXX. When decoding is enabled, the standard JSON escapes are
// interpreted instead.
func (p *Parser) DecodeEscapes(ok bool) { p.decode = ok }

// SetMaxDepth bounds the nesting depth of arrays and objects the parser
// will accept. Input nested more deeply fails with a parse error rather
// than consuming call stack in proportion to its nesting. A limit of 0, the
// default, means no bound.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses a complete JSON document from the input. It skips leading
// insignificant whitespace and then parses exactly one object: the document
// root must be an object. In case of error, the returned error has concrete
// type [*jparse.ParseError] and the input is fully consumed.
func (p *Parser) Parse() (obj Object, err error) {
	defer p.recoverParseError(&err)
	p.src.SkipSpace(true)
	return p.parseObject(), nil
}

// ParseValue parses a single JSON value of any type from the input. It
// accepts the bare arrays and scalars that Parse rejects at the document
// root.
func (p *Parser) ParseValue() (v Value, err error) {
	defer p.recoverParseError(&err)
	p.src.SkipSpace(true)
	return p.parseValue(), nil
}

// Productions signal failure by panicking with a *jparse.ParseError, which
// the entry points recover and return. Any other panic is re-raised.
func (p *Parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		perr, ok := serr.(*jparse.ParseError)
		if !ok {
			panic(serr)
		}
		*errp = perr
	}
}

func (p *Parser) fail(msg string) {
	panic(jparse.NewParseError(p.src, msg))
}

func (p *Parser) failf(msg string, args ...any) {
	p.fail(fmt.Sprintf(msg, args...))
}

// has reports whether the next unread character is c. At end of input it
// reports false.
func (p *Parser) has(c byte) bool {
	ch, err := p.src.Peek()
	return err == nil && ch == c
}

// mayHave consumes the next character if it is c, and reports whether it
// did so.
func (p *Parser) mayHave(c byte) bool {
	if p.has(c) {
		p.src.Next()
		return true
	}
	return false
}

// expect consumes the next character and requires it to be c. Running out
// of input counts as a mismatch against the no-character sentinel.
func (p *Parser) expect(c byte) {
	ch, err := p.src.Next()
	if err != nil {
		p.failf("expected %q (code=%d), got no character", c, c)
	} else if ch != c {
		p.failf("expected %q (code=%d), got %q (code=%d)", c, c, ch, ch)
	}
}

// matchWord consumes the keyword w character by character, so a mismatch
// reports the exact character that broke the match.
func (p *Parser) matchWord(w mem.RO) {
	for i := 0; i < w.Len(); i++ {
		p.expect(w.At(i))
	}
}

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
	kwNull  = mem.S("null")
)

// parseValue dispatches on one character of lookahead to the production for
// the value that follows, and skips any insignificant whitespace after it
// so that callers never re-check for leading whitespace.
func (p *Parser) parseValue() Value {
	ch, err := p.src.Peek()
	if err != nil {
		p.fail("expected value")
	}

	var v Value
	switch {
	case ch == '"':
		v = p.parseString()
	case ch == '[':
		v = p.parseArray()
	case ch == '{':
		v = p.parseObject()
	case ch == 't' || ch == 'f':
		v = p.parseBool()
	case ch == 'n':
		v = p.parseNull()
	case ch == '-' || isDigit(ch):
		v = p.parseNumber()
	default:
		p.fail("expected value")
	}
	p.src.SkipSpace(true)
	return v
}

// parseString parses a quoted string literal. Whitespace after the opening
// quote is string content, so the skip at that boundary is deferred;
// insignificant whitespace is skipped only after the closing quote.
func (p *Parser) parseString() String {
	var buf bytes.Buffer

	p.expect('"')
	p.src.SkipSpace(false)
	for !p.has('"') {
		esc := p.mayHave('\\')
		ch, err := p.src.Next()
		if err != nil {
			p.fail(`expected '"' (code=34), got no character`)
		}
		if esc {
			buf.WriteByte('\\')
		}
		buf.WriteByte(ch)
	}
	p.expect('"')
	p.src.SkipSpace(true)

	if p.decode {
		dec, err := escape.Unquote(mem.B(buf.Bytes()))
		if err != nil {
			p.failf("invalid string escape: %v", err)
		}
		return String(dec)
	}
	return String(escape.Literal(mem.B(buf.Bytes())))
}

// parseBool parses the keyword true or false.
func (p *Parser) parseBool() Bool {
	if p.has('t') {
		p.matchWord(kwTrue)
		return Bool(true)
	} else if p.has('f') {
		p.matchWord(kwFalse)
		return Bool(false)
	}
	p.fail("expected boolean")
	return false
}

// parseNull parses the keyword null.
func (p *Parser) parseNull() Null {
	if p.has('n') {
		p.matchWord(kwNull)
	} else {
		p.fail("expected null")
	}
	return Null{}
}

// parseNumber parses a number. The integer and fractional digits are
// converted to a float in one step; the exponent, if present, is then
// applied as a separate multiplication by a power of ten, and a leading
// minus sign is applied last. The staged arithmetic can differ in the last
// ulp from a fused conversion of the whole literal, and that order is part
// of the contract.
func (p *Parser) parseNumber() Number {
	neg := p.mayHave('-')

	var num []byte
	if p.has('0') {
		// A leading zero must be the whole integer part: 0.1 is fine, 01 is
		// malformed.
		ch, _ := p.src.Next()
		num = append(num, ch)
		if p.hasDigit() {
			p.fail("expected number")
		}
	} else if p.hasDigit() {
		for p.hasDigit() {
			ch, _ := p.src.Next()
			num = append(num, ch)
		}
	} else {
		p.fail("expected number")
	}

	if p.mayHave('.') {
		num = append(num, '.')
		if !p.hasDigit() {
			p.fail("expected number")
		}
		for p.hasDigit() {
			ch, _ := p.src.Next()
			num = append(num, ch)
		}
	}

	val, err := strconv.ParseFloat(string(num), 64)
	if err != nil {
		p.failf("expected number, got %q", num)
	}

	if p.has('e') || p.has('E') {
		p.src.Next()
		sign := 1.0
		if p.mayHave('-') {
			sign = -1
		} else {
			p.mayHave('+') // an explicit plus is the default
		}
		var exp []byte
		for p.hasDigit() {
			ch, _ := p.src.Next()
			exp = append(exp, ch)
		}
		if len(exp) == 0 {
			p.fail("expected number")
		}
		e, _ := strconv.ParseFloat(string(exp), 64)
		val *= math.Pow(10, sign*e)
	}

	if neg {
		val = -val
	}
	return Number(val)
}

// parseArray parses a bracketed list of values.
func (p *Parser) parseArray() Array {
	p.enter()
	defer p.leave()

	a := Array{}
	p.expect('[')
	p.src.SkipSpace(true)
	if p.mayHave(']') {
		p.src.SkipSpace(true)
		return a
	}
	for {
		a.Append(p.parseValue())
		if !p.mayHave(',') {
			break
		}
		p.src.SkipSpace(true)
	}
	p.expect(']')
	p.src.SkipSpace(true)
	return a
}

// parseObject parses a braced collection of key-value members. Keys must be
// quoted strings; a duplicate key replaces the existing member's value in
// place.
func (p *Parser) parseObject() Object {
	p.enter()
	defer p.leave()

	o := Object{}
	p.expect('{')
	p.src.SkipSpace(true)
	if p.mayHave('}') {
		p.src.SkipSpace(true)
		return o
	}
	for {
		if !p.has('"') {
			p.fail("expected key")
		}
		key := p.parseString()
		p.expect(':')
		p.src.SkipSpace(true)
		o.Set(string(key), p.parseValue())
		if !p.mayHave(',') {
			break
		}
		p.src.SkipSpace(true)
	}
	p.expect('}')
	p.src.SkipSpace(true)
	return o
}

func (p *Parser) enter() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.failf("nesting exceeds %d levels", p.maxDepth)
	}
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) hasDigit() bool {
	ch, err := p.src.Peek()
	return err == nil && isDigit(ch)
}

// isDigit is a stateless check against the ASCII digit range.
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
