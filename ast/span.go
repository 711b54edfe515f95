// Package ast defines the node tree produced by the block scanner and
// inline parser, along with the span/position bookkeeping threaded
// through both.
package ast

import "fmt"

// Position is a single point in the source, at character granularity.
type Position struct {
	Offset int // byte offset into the source
	Line   int // 1-based line number
	Column int // 1-based column, counted in characters not bytes
}

// Span is a half-open byte range [Start.Offset, End.Offset) together with
// its line/column bookends. A parent's Span always contains every Span of
// its descendants.
type Span struct {
	Start Position
	End   Position
}

// Len returns the byte length of the span.
func (s Span) Len() int { return s.End.Offset - s.Start.Offset }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.End.Offset <= s.Start.Offset }

// Contains reports whether s fully contains o.
func (s Span) Contains(o Span) bool {
	return s.Start.Offset <= o.Start.Offset && o.End.Offset <= s.End.Offset
}

// Union returns the smallest span containing both s and o. Either span may
// be the zero value, in which case the other is returned unchanged.
func (s Span) Union(o Span) Span {
	if s == (Span{}) {
		return o
	}
	if o == (Span{}) {
		return s
	}
	u := s
	if o.Start.Offset < u.Start.Offset {
		u.Start = o.Start
	}
	if o.End.Offset > u.End.Offset {
		u.End = o.End
	}
	return u
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("[%v-%v)", s.Start, s.End)
}
