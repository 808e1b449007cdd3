// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package minjson

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // no value
	String              // quoted string
	Number              // number: digits with an optional fraction
	Object              // object: { ... }
	Array               // array: [ ... ]
	Boolean             // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid",
	String:  "string",
	Number:  "number",
	Object:  "object",
	Array:   "array",
	Boolean: "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}
