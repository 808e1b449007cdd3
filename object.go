// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

import (
	"fmt"
	"iter"

	"go4.org/mem"
)

// An ObjectCursor iterates over the members of a JSON object without copying
// the underlying text. Construct a cursor with NewObjectCursor or Parse, and
// call Next to fetch each member in source order:
//
//	c, err := minjson.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//	for m, ok := c.Next(); ok; m, ok = c.Next() {
//	   log.Printf("%s: %v %s", m.Key.StringCopy(), m.Kind(), m.Raw().StringCopy())
//	}
//	if c.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", c.Err())
//	}
//
// A cursor is not safe for concurrent use, but any number of cursors may read
// the same document concurrently, provided the document is not modified.
type ObjectCursor struct {
	started bool // Start succeeded
	ready   bool // more members may follow

	body mem.RO // object text, braces removed
	base int    // offset of body in the root document
	off  int    // offset of the next member in body
	err  error
}

// NewObjectCursor constructs a cursor over the object in text. If text is not
// an object, the cursor is not ready and Err reports the reason.
func NewObjectCursor(text mem.RO) *ObjectCursor {
	c := new(ObjectCursor)
	c.Start(text)
	return c
}

// Parse constructs a cursor over the object in data. It reports an error
// wrapping ErrMalformedRoot if data, apart from leading and trailing
// whitespace, does not begin with "{" and end with "}".
func Parse(data []byte) (*ObjectCursor, error) {
	c := new(ObjectCursor)
	return c, c.Start(mem.B(data))
}

// ParseString is a convenience wrapper for Parse on a string.
func ParseString(s string) (*ObjectCursor, error) {
	c := new(ObjectCursor)
	return c, c.Start(mem.S(s))
}

// MustParse is as ParseString, but panics if s is not an object.
func MustParse(s string) *ObjectCursor {
	c, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("minjson: invalid root: %v", err))
	}
	return c
}

// Start resets c to iterate over the object in text, and reports whether
// text is an object. Only the outer braces are checked.
func (c *ObjectCursor) Start(text mem.RO) error { return c.start(text, 0) }

func (c *ObjectCursor) start(text mem.RO, base int) error {
	*c = ObjectCursor{}
	from := skipSpace(text, 0)
	to := lastNonSpace(text)
	if from >= text.Len() || text.At(from) != '{' {
		c.err = syntaxError(base+from, fmt.Errorf("%w: missing %q", ErrMalformedRoot, '{'))
		return c.err
	} else if to <= from || text.At(to) != '}' {
		c.err = syntaxError(base+to+1, fmt.Errorf("%w: missing %q", ErrMalformedRoot, '}'))
		return c.err
	}
	c.body = text.Slice(from+1, to)
	c.base = base + from + 1
	c.started = true
	c.ready = true
	return nil
}

// Ready reports whether c may have further members to deliver.
func (c *ObjectCursor) Ready() bool { return c.ready }

// Err reports the error that stopped c, or nil if c has not failed. After
// Next reports false, a nil Err means the object ended cleanly.
func (c *ObjectCursor) Err() error { return c.err }

// Rewind resets c to the first member of its object. It has no effect on a
// cursor whose construction failed.
func (c *ObjectCursor) Rewind() {
	if !c.started {
		return
	}
	c.off = 0
	c.ready = true
	c.err = nil
}

// Next returns the next member of the object and true, or false if c is not
// ready. The member that completes the object is returned normally; the
// following call reports false.
//
// Keys are delimited by the next two quotation marks, so a key containing an
// escaped quote is not handled correctly.
func (c *ObjectCursor) Next() (Member, bool) {
	if !c.ready {
		return Member{}, false
	}

	ks := mem.IndexByte(c.body.SliceFrom(c.off), '"')
	if ks < 0 {
		if p := skipSpace(c.body, c.off); p < c.body.Len() {
			return c.fail(p, ErrKeyNotFound)
		}
		c.ready = false
		return Member{}, false
	}
	ks += c.off

	ke := mem.IndexByte(c.body.SliceFrom(ks+1), '"')
	if ke < 0 {
		return c.fail(ks, ErrKeyNotFound)
	}
	ke += ks + 1

	colon := mem.IndexByte(c.body.SliceFrom(ke+1), ':')
	if colon < 0 {
		return c.fail(ke+1, ErrColonNotFound)
	}
	vs := ke + 1 + colon + 1

	kind, start, end, err := scan(c.body.SliceFrom(vs), c.base+vs)
	if err != nil {
		c.ready = false
		c.err = err
		return Member{}, false
	}
	m := Member{
		Value: Value{
			kind: kind,
			raw:  c.body.Slice(vs+start, vs+end),
			pos:  c.base + vs + start,
		},
		Key: c.body.Slice(ks+1, ke),
	}

	c.off = skipSpace(c.body, vs+end)
	if c.off < c.body.Len() && c.body.At(c.off) == ',' {
		c.off = skipSpace(c.body, c.off+1)
	} else {
		c.ready = false
	}
	return m, true
}

func (c *ObjectCursor) fail(p int, err error) (Member, bool) {
	c.ready = false
	c.err = syntaxError(c.base+p, err)
	return Member{}, false
}

// Members returns an iterator over the remaining members of c. It does not
// rewind c.
func (c *ObjectCursor) Members() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for {
			m, ok := c.Next()
			if !ok || !yield(m) {
				return
			}
		}
	}
}

// Find rewinds c and returns the value of the first member whose key equals
// key. If no such member exists, Find reports an error wrapping
// ErrKeyNotFound; if the object is malformed, it reports the syntax error.
// Keys are compared without decoding escapes.
func (c *ObjectCursor) Find(key string) (Value, error) {
	c.Rewind()
	for m := range c.Members() {
		if m.Key.EqualString(key) {
			return m.Value, nil
		}
	}
	if c.err != nil {
		return Value{}, c.err
	}
	return Value{}, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
}
