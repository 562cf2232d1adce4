// Package span tracks source positions through the pattern parser and the
// locale resolver so errors can point back at the offending text.
package span

import "fmt"

// Span is a half-open byte range [Start, End) in a pattern string, plus the
// 1-based line/column of Start.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// String renders the span as "line:column".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	start, end := a, b
	if b.Start < a.Start {
		start, end = b, a
	}
	return Span{Start: start.Start, End: end.End, Line: start.Line, Column: start.Column}
}
