// Package testutil defines support code for unit tests.
package testutil

import "github.com/creachadair/minjson"

// Pair is a comparable record of a member or element delivered by a cursor.
// Key is empty for array elements.
type Pair struct {
	Key  string
	Kind minjson.Kind
	Raw  string
}

// Members consumes the remaining members of c and returns them in order.
func Members(c *minjson.ObjectCursor) []Pair {
	var out []Pair
	for m := range c.Members() {
		out = append(out, Pair{Key: m.Key.StringCopy(), Kind: m.Kind(), Raw: m.String()})
	}
	return out
}

// Elements consumes the remaining elements of c and returns them in order.
func Elements(c *minjson.ArrayCursor) []Pair {
	var out []Pair
	for v := range c.Elements() {
		out = append(out, Pair{Kind: v.Kind(), Raw: v.String()})
	}
	return out
}
