// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

import (
	"errors"
	"fmt"
)

// Errors reported by the classifier and the cursors. Positional failures are
// wrapped in a *SyntaxError; use errors.Is to test for a specific cause.
var (
	ErrMalformedRoot      = errors.New("root is not an object")
	ErrEmptyValue         = errors.New("empty value")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalancedObject   = errors.New("unbalanced object")
	ErrUnbalancedArray    = errors.New("unbalanced array")
	ErrInvalidLiteral     = errors.New("invalid literal")
	ErrKeyNotFound        = errors.New("key not found")
	ErrColonNotFound      = errors.New("colon not found")

	ErrWrongKind  = errors.New("wrong value kind")
	ErrIndexRange = errors.New("index out of range")
)

// SyntaxError is the concrete type of errors reported for malformed input.
// Offset is relative to the start of the root document the failing cursor was
// derived from.
type SyntaxError struct {
	Offset int

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", s.err.Error(), s.Offset)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

func syntaxError(pos int, err error) *SyntaxError { return &SyntaxError{Offset: pos, err: err} }
