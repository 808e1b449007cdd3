// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

import (
	"fmt"

	"go4.org/mem"
)

// A Value is a view of a single classified JSON value. It does not own the
// text it refers to: a Value is valid only as long as the document buffer it
// was derived from is valid and unmodified.
//
// The zero Value has kind Invalid.
type Value struct {
	kind Kind
	raw  mem.RO
	pos  int // offset of raw in the root document
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the exact source text of v, including delimiters: quotes for a
// string, braces or brackets for an object or array.
func (v Value) Raw() mem.RO { return v.raw }

// Span reports the location of v in the root document.
func (v Value) Span() Span { return Span{Pos: v.pos, End: v.pos + v.raw.Len()} }

// String returns a copy of the source text of v.
func (v Value) String() string { return v.raw.StringCopy() }

// IsNull reports whether v is a null constant.
func (v Value) IsNull() bool { return v.kind == Null }

// AsString returns the contents of a string value with its quotation marks
// removed. Escape sequences are not decoded. It reports false if v is not a
// string.
func (v Value) AsString() (mem.RO, bool) {
	if v.kind != String {
		return mem.RO{}, false
	}
	return v.raw.Slice(1, v.raw.Len()-1), true
}

// AsBool reports the value of a Boolean. The second result is false if v is
// not a Boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != Boolean {
		return false, false
	}
	return v.raw.EqualString("true"), true
}

// Int64 is shorthand for AsNumber[int64](v).
func (v Value) Int64() (int64, bool) { return AsNumber[int64](v) }

// Float64 is shorthand for AsNumber[float64](v).
func (v Value) Float64() (float64, bool) { return AsNumber[float64](v) }

// Object returns a cursor over the members of an object value. If v is not an
// object, the cursor is not ready and its Err method reports ErrWrongKind.
func (v Value) Object() *ObjectCursor {
	c := new(ObjectCursor)
	if v.kind != Object {
		c.err = fmt.Errorf("%w: got %v, want object", ErrWrongKind, v.kind)
		return c
	}
	c.start(v.raw, v.pos)
	return c
}

// Array returns a cursor positioned at the first element of an array value.
// If v is not an array, the cursor is not valid and its Err method reports
// ErrWrongKind.
func (v Value) Array() *ArrayCursor {
	if v.kind != Array {
		return &ArrayCursor{
			off: offDone,
			err: fmt.Errorf("%w: got %v, want array", ErrWrongKind, v.kind),
		}
	}
	return newArrayCursor(v.raw.SliceFrom(1), v.pos+1)
}

// Numeric is the set of types AsNumber can decode to.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AsNumber decodes a number value as a T. It reports false if v is not a
// number, or if v is negative and T is unsigned.
//
// Digits are accumulated without overflow checking. If T is an integer type,
// any fractional part is discarded. Non-digit characters other than a leading
// sign and the decimal point are ignored.
func AsNumber[T Numeric](v Value) (T, bool) {
	var n T
	if v.kind != Number {
		return n, false
	}
	isFloat := T(1)/T(2) != 0
	neg := v.raw.Len() != 0 && v.raw.At(0) == '-'
	if neg && n-1 > n {
		return n, false // unsigned
	}

	var dec bool
	scale := T(1)
loop:
	for i := 0; i < v.raw.Len(); i++ {
		switch ch := v.raw.At(i); {
		case isDigit(ch):
			n = n*10 + T(ch-'0')
			if dec {
				scale *= 10
			}
		case ch == '.':
			if !isFloat {
				break loop
			}
			dec = true
		}
	}
	n /= scale
	if neg {
		n = -n
	}
	return n, true
}

// A Member is a single key-value pair of an object.
type Member struct {
	Value

	// Key is the text of the member name without its quotation marks.
	// Escape sequences are not decoded.
	Key mem.RO
}
