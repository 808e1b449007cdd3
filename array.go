// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

import (
	"iter"

	"go4.org/mem"
)

// offDone marks an array cursor whose last element has been delivered.
const offDone = -1

// An ArrayCursor iterates over the elements of a JSON array without copying
// the underlying text. A new cursor is positioned at the first element, if
// there is one:
//
//	for c := v.Array(); c.Valid(); c.Next() {
//	   log.Printf("[%d] %v", c.Index(), c.Value())
//	}
//
// The same concurrency rules apply as for an ObjectCursor.
type ArrayCursor struct {
	body mem.RO // array text following the opening bracket
	base int    // offset of body in the root document
	off  int    // offset of the next element in body, or offDone
	idx  int    // ordinal of the current element

	cur   Value
	valid bool
	err   error
}

// NewArrayCursor constructs a cursor over the elements of an array, given the
// text following its opening bracket. The closing bracket ends iteration, and
// may be omitted.
func NewArrayCursor(body mem.RO) *ArrayCursor { return newArrayCursor(body, 0) }

func newArrayCursor(body mem.RO, base int) *ArrayCursor {
	c := &ArrayCursor{body: body, base: base}
	c.load()
	return c
}

// Valid reports whether c is positioned at an element.
func (c *ArrayCursor) Valid() bool { return c.valid }

// Value returns the current element. It returns the zero Value if c is not
// valid.
func (c *ArrayCursor) Value() Value { return c.cur }

// Index reports the 0-based position of the current element in the array.
func (c *ArrayCursor) Index() int { return c.idx }

// Err reports the error that stopped c, or nil if c has not failed. When c is
// no longer valid, a nil Err means the array ended cleanly.
func (c *ArrayCursor) Err() error { return c.err }

// Next advances c to the following element and reports whether it is valid.
// Once c is invalid, it remains so until it is rewound.
func (c *ArrayCursor) Next() bool {
	if !c.valid {
		return false
	}
	c.idx++
	c.load()
	return c.valid
}

// Rewind repositions c at the first element of the array.
func (c *ArrayCursor) Rewind() {
	if c.body.Len() == 0 && c.err != nil {
		return // not derived from an array
	}
	c.off, c.idx, c.err = 0, 0, nil
	c.load()
}

// Elements returns an iterator over the current and remaining elements of c.
// It does not rewind c.
func (c *ArrayCursor) Elements() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for ; c.valid; c.Next() {
			if !yield(c.cur) {
				return
			}
		}
	}
}

// load classifies the element at c.off and updates the cursor state.
func (c *ArrayCursor) load() {
	c.cur, c.valid = Value{}, false
	if c.off == offDone {
		return
	}
	if p := skipSpace(c.body, c.off); p >= c.body.Len() || c.body.At(p) == ']' {
		c.off = offDone // empty array
		return
	}

	kind, start, end, err := scan(c.body.SliceFrom(c.off), c.base+c.off)
	if err != nil {
		c.err = err
		return
	}
	c.cur = Value{
		kind: kind,
		raw:  c.body.Slice(c.off+start, c.off+end),
		pos:  c.base + c.off + start,
	}
	c.valid = true

	// Advance past the separator, if any. A missing comma is tolerated.
	p := skipSpace(c.body, c.off+end)
	if p < c.body.Len() && c.body.At(p) == ',' {
		p = skipSpace(c.body, p+1)
	}
	if p >= c.body.Len() || c.body.At(p) == ']' {
		c.off = offDone
	} else {
		c.off = p
	}
}
