// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

import "go4.org/mem"

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// Classify reports the kind of the value at the front of src, and the offset
// in src of the first byte after the value. Leading whitespace is skipped and
// counted in the offset.
//
// Classify does not validate the contents of the value. A quote preceded by a
// backslash never terminates a string, so a string whose final character is
// an escaped backslash (as in "a\\") is not recognized as closed.
func Classify(src mem.RO) (Kind, int, error) {
	kind, _, end, err := scan(src, 0)
	return kind, end, err
}

// ClassifyString is a convenience wrapper for Classify on a string.
func ClassifyString(s string) (Kind, int, error) { return Classify(mem.S(s)) }

// Scan classifies the value at the front of src and returns a view of it,
// along with the offset in src of the first byte after the value.
func Scan(src mem.RO) (Value, int, error) {
	kind, start, end, err := scan(src, 0)
	if err != nil {
		return Value{}, 0, err
	}
	return Value{kind: kind, raw: src.Slice(start, end), pos: start}, end, nil
}

// scan classifies the value at the front of src, returning its kind and the
// offsets of its first byte and of the first byte following it. Error offsets
// are reported relative to base.
func scan(src mem.RO, base int) (Kind, int, int, error) {
	start := skipSpace(src, 0)
	if start >= src.Len() {
		return Invalid, 0, 0, syntaxError(base+start, ErrEmptyValue)
	}

	switch ch := src.At(start); {
	case ch == '"':
		i := start + 1
		for i < src.Len() && (src.At(i) != '"' || src.At(i-1) == '\\') {
			i++
		}
		if i >= src.Len() {
			return Invalid, 0, 0, syntaxError(base+start, ErrUnterminatedString)
		}
		return String, start, i + 1, nil

	case isNumStart(ch):
		i := start + 1
		for i < src.Len() && isNumRune(src.At(i)) {
			i++
		}
		return Number, start, i, nil

	case ch == '{':
		end, ok := scanNested(src, start, '{', '}')
		if !ok {
			return Invalid, 0, 0, syntaxError(base+start, ErrUnbalancedObject)
		}
		return Object, start, end, nil

	case ch == '[':
		end, ok := scanNested(src, start, '[', ']')
		if !ok {
			return Invalid, 0, 0, syntaxError(base+start, ErrUnbalancedArray)
		}
		return Array, start, end, nil
	}

	// Handle constants: true, false, null
	rest := src.SliceFrom(start)
	switch {
	case mem.HasPrefix(rest, litTrue):
		return Boolean, start, start + litTrue.Len(), nil
	case mem.HasPrefix(rest, litFalse):
		return Boolean, start, start + litFalse.Len(), nil
	case mem.HasPrefix(rest, litNull):
		return Null, start, start + litNull.Len(), nil
	}
	return Invalid, 0, 0, syntaxError(base+start, ErrInvalidLiteral)
}

// scanNested finds the end of the object or array whose opening delimiter is
// at src[start]. Delimiters inside quoted strings are not counted. It reports
// the offset after the matching close delimiter, or false if the input ends
// before it is found.
func scanNested(src mem.RO, start int, lb, rb byte) (int, bool) {
	var depth int
	var inString bool
	for i := start + 1; i < src.Len(); i++ {
		switch ch := src.At(i); {
		case ch == '"' && src.At(i-1) != '\\':
			inString = !inString
		case inString:
			// skip
		case ch == lb:
			depth++
		case ch == rb:
			depth--
			if depth < 0 {
				return i + 1, true
			}
		}
	}
	return src.Len(), false
}

// skipSpace returns the offset of the first non-whitespace byte of src at or
// after i, or src.Len() if there is none.
func skipSpace(src mem.RO, i int) int {
	for i < src.Len() && isSpace(src.At(i)) {
		i++
	}
	return i
}

// lastNonSpace returns the offset of the last non-whitespace byte of src, or
// -1 if there is none.
func lastNonSpace(src mem.RO) int {
	i := src.Len() - 1
	for i >= 0 && isSpace(src.At(i)) {
		i--
	}
	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || ch == '.' || isDigit(ch) }
func isNumRune(ch byte) bool  { return ch == '.' || isDigit(ch) }
