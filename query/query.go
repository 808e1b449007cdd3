// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package query implements structural queries over JSON values using
// minjson cursors.
//
// A query describes a path from a value to one of its descendants, such as
// an object member or array element. Evaluating a query walks the source text
// with cursors and returns a view of the selected value; no syntax tree is
// constructed. For example, given the JSON value:
//
//	{"list": [{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]}
//
// the query
//
//	query.Path("list", 1, "c", "d")
//
// yields the value "true".
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/minjson"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error.
func Eval(root minjson.Value, q Query) (minjson.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a JSON value.
type Query interface {
	eval(minjson.Value) (minjson.Value, error)
}

// Path traverses a sequence of nested object keys or array indices from the
// root.  If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// Key selects the value of the first member of an object with the given key.
func Key(key string) Query { return objKey(key) }

type objKey string

func (o objKey) eval(v minjson.Value) (minjson.Value, error) {
	if v.Kind() != minjson.Object {
		return minjson.Value{}, fmt.Errorf("key %q: %w: got %v, want object", o, minjson.ErrWrongKind, v.Kind())
	}
	return v.Object().Find(string(o))
}

// Index selects the element at offset i of an array. Negative offsets count
// backward from the end (-1 is last, -2 second last).
func Index(i int) Query { return nthQuery(i) }

type nthQuery int

func (nq nthQuery) eval(v minjson.Value) (minjson.Value, error) {
	if v.Kind() != minjson.Array {
		return minjson.Value{}, fmt.Errorf("index %d: %w: got %v, want array", nq, minjson.ErrWrongKind, v.Kind())
	}
	c := v.Array()
	idx := int(nq)
	if idx < 0 {
		n, err := countElements(c)
		if err != nil {
			return minjson.Value{}, err
		}
		idx += n
		c.Rewind()
	}
	for ; c.Valid(); c.Next() {
		if c.Index() == idx {
			return c.Value(), nil
		}
	}
	if err := c.Err(); err != nil {
		return minjson.Value{}, err
	}
	return minjson.Value{}, fmt.Errorf("index %d: %w", nq, minjson.ErrIndexRange)
}

func countElements(c *minjson.ArrayCursor) (int, error) {
	var n int
	for range c.Elements() {
		n++
	}
	return n, c.Err()
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v minjson.Value) (minjson.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return minjson.Value{}, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives.  The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v minjson.Value) (minjson.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return minjson.Value{}, errors.New("no matching alternatives")
}

// Exists returns a function that reports whether its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) func(minjson.Value) bool {
	q := Path(keys...)
	return func(v minjson.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Len reports the length of v.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string, the length is the number of bytes between the quotes.
// For null, the length is zero.
func Len(v minjson.Value) (int, error) {
	switch v.Kind() {
	case minjson.Object:
		c := v.Object()
		var n int
		for range c.Members() {
			n++
		}
		return n, c.Err()
	case minjson.Array:
		return countElements(v.Array())
	case minjson.String:
		s, _ := v.AsString()
		return s.Len(), nil
	case minjson.Null:
		return 0, nil
	}
	return 0, fmt.Errorf("cannot take length of %v", v.Kind())
}

// Recur applies q to root and to each of its recursive descendants, and
// returns the results that q selected without error, in lexical order.
func Recur(root minjson.Value, q Query) ([]minjson.Value, error) {
	var out []minjson.Value

	stk := []minjson.Value{root}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.eval(next); err == nil {
			out = append(out, r)
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		kids, err := children(next)
		if err != nil {
			return out, err
		}
		for i := len(kids) - 1; i >= 0; i-- {
			stk = append(stk, kids[i])
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no matches")
	}
	return out, nil
}

// children returns the member values of an object or the elements of an
// array, or nil for any other value.
func children(v minjson.Value) ([]minjson.Value, error) {
	var out []minjson.Value
	switch v.Kind() {
	case minjson.Object:
		c := v.Object()
		for m := range c.Members() {
			out = append(out, m.Value)
		}
		return out, c.Err()
	case minjson.Array:
		c := v.Array()
		for e := range c.Elements() {
			out = append(out, e)
		}
		return out, c.Err()
	}
	return nil, nil
}
