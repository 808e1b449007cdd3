// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package minjson implements a single-pass, zero-copy decoder for JSON
// objects and arrays.
//
// The decoder does not build a syntax tree. Instead, it classifies one value
// at a time, reporting its Kind and the exact extent of its source text, and
// exposes cursors that walk the members of an object or the elements of an
// array. All results are views of the caller's buffer (see [go4.org/mem]);
// the buffer must not be modified while any view derived from it is in use.
//
// # Classification
//
// Classify reports the kind and end offset of the value at the front of its
// input. Objects and arrays are measured by counting their delimiters,
// ignoring delimiters that occur inside quoted strings:
//
//	kind, end, err := minjson.ClassifyString(`{"a": "}"} tail`)
//	// kind == minjson.Object, end == 10
//
// # Cursors
//
// The root of a document must be an object. Construct an ObjectCursor with
// Parse and call Next to fetch its members. To descend into a nested value,
// call the Object or Array method of the member; the cursors never recurse on
// their own:
//
//	c, err := minjson.ParseString(`{"a": 1, "b": [true, null]}`)
//	if err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//	for m, ok := c.Next(); ok; m, ok = c.Next() {
//	   if m.Kind() == minjson.Array {
//	      for e := m.Array(); e.Valid(); e.Next() {
//	         log.Printf("%s[%d] = %v", m.Key.StringCopy(), e.Index(), e.Value())
//	      }
//	   }
//	}
//
// When Next reports false, Err distinguishes a clean end of input (nil) from a
// syntax error, which has concrete type *minjson.SyntaxError.
//
// # Limitations
//
// The decoder trades conformance for speed. It does not decode escape
// sequences, does not accept exponents in numbers, and does not check for
// duplicate keys or invalid encodings. A quotation mark preceded by a
// backslash is always treated as escaped, so a string ending in an escaped
// backslash is not recognized.
package minjson
