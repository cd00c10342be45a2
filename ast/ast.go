// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Package ast defines a tree of typed values representing a JSON document,
// and a parser that constructs such trees from JSON source.
package ast

// A Kind identifies which variant of the JSON grammar a Value represents.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // the null constant
	BoolKind               // true or false
	NumberKind             // a number
	StringKind             // a quoted string
	ArrayKind              // an array of values
	ObjectKind             // a collection of key-value members
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "boolean",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid"
	}
	return kindStr[v]
}

// A Value is a node in a parsed JSON document. The concrete types are Null,
// Bool, Number, String, Array, and Object; the set is closed. A value is
// built bottom-up during parsing and is not modified after the production
// that built it returns, apart from object key overwrite (see Object.Set).
type Value interface{ Kind() Kind }

// Null represents the JSON null constant. It carries no data.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// A Number is a JSON number. All numbers, integer or fractional, are
// carried as double-precision floats.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// A String is a JSON string value. Its contents are the characters consumed
// from the source, after escape handling.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// An Array is an ordered sequence of values. An array owns its elements,
// and insertion order is preserved.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Append appends v to the end of a.
func (a *Array) Append(v Value) { *a = append(*a, v) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs a member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// An Object is a collection of key-value members with unique keys. Members
// are kept in the order their keys were first inserted. An object owns its
// values.
type Object []*Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Find returns the member of o with the given key, or nil if none.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set sets key to value in o. If the key is already present, its value is
// replaced in place and the member keeps the position where the key was
// first inserted (last write wins on the value, not on the order).
func (o *Object) Set(key string, value Value) {
	if m := o.Find(key); m != nil {
		m.Value = value
		return
	}
	*o = append(*o, &Member{Key: key, Value: value})
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }
