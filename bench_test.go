package minjson_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/creachadair/minjson"
	"go4.org/mem"
)

// benchInput constructs an object with n members of assorted kinds.
func benchInput(n int) []byte {
	var buf strings.Builder
	buf.WriteString("{\n")
	for i := range n {
		if i > 0 {
			buf.WriteString(",\n")
		}
		switch i % 4 {
		case 0:
			fmt.Fprintf(&buf, "  \"k%d\": \"value number %d with {braces}\"", i, i)
		case 1:
			fmt.Fprintf(&buf, "  \"k%d\": %d.%d", i, i, i%7)
		case 2:
			fmt.Fprintf(&buf, "  \"k%d\": [%d, true, null, {\"x\": \"]\"}]", i, i)
		case 3:
			fmt.Fprintf(&buf, "  \"k%d\": {\"a\": {\"b\": [%d]}, \"c\": false}", i, i)
		}
	}
	buf.WriteString("\n}\n")
	return []byte(buf.String())
}

func BenchmarkCursor(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("jsonparser", func(b *testing.B) {
		for b.Loop() {
			err := jsonparser.ObjectEach(input, func(_, value []byte, vt jsonparser.ValueType, _ int) error {
				if vt == jsonparser.Array {
					jsonparser.ArrayEach(value, func([]byte, jsonparser.ValueType, int, error) {})
				}
				return nil
			})
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Cursor", func(b *testing.B) {
		c := minjson.NewObjectCursor(mem.B(input))
		var n int
		for b.Loop() {
			c.Rewind()
			for m, ok := c.Next(); ok; m, ok = c.Next() {
				if m.Kind() == minjson.Array {
					for range m.Array().Elements() {
						n++
					}
				}
			}
			if err := c.Err(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
		b.Logf("Visited %d array elements", n)
	})
}
