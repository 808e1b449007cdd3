package minjson

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return loc.First.String() + "-" + loc.Last.String()
}

// LocationOf computes the line and column offsets of sp in doc. Offsets
// outside doc are clamped to its bounds.
func LocationOf(doc mem.RO, sp Span) Location {
	sp.Pos = min(max(sp.Pos, 0), doc.Len())
	sp.End = min(max(sp.End, sp.Pos), doc.Len())

	loc := Location{Span: sp}
	lc := LineCol{Line: 1}
	for i := 0; ; i++ {
		if i == sp.Pos {
			loc.First = lc
		}
		if i == sp.End {
			loc.Last = lc
			return loc
		}
		if doc.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
}
