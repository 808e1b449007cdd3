// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jwcc supports JSON With Commas and Comments (JWCC) input, as
// defined by https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// The minjson cursors do not understand comments: quotation marks and
// delimiters inside a comment would corrupt the extent of the values around
// it. This package rewrites JWCC into standard JSON first, replacing each
// comment and trailing comma with spaces so that every remaining byte keeps
// its original offset. Spans and error offsets reported by cursors over the
// result therefore refer to the original input.
package jwcc

import (
	"fmt"

	"github.com/creachadair/minjson"
	"github.com/tailscale/hujson"
)

// Standardize returns a copy of data in which comments and trailing commas
// have been replaced by whitespace. It reports an error if data is not valid
// JWCC.
func Standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(append([]byte(nil), data...))
	if err != nil {
		return nil, fmt.Errorf("standardize: %w", err)
	}
	return std, nil
}

// Parse standardizes data and returns a cursor over the resulting object.
// The cursor refers to the standardized copy, not to data.
func Parse(data []byte) (*minjson.ObjectCursor, error) {
	std, err := Standardize(data)
	if err != nil {
		return nil, err
	}
	return minjson.Parse(std)
}
