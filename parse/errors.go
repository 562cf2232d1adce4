package parse

import (
	"fmt"

	"github.com/aretext/messageformat/span"
)

// ErrorKind tags the variants spec.md §7 groups under ParseError, plus the
// separately-named SelectMissingOther (a plural/ordinal/select block
// without an `other` case is reported with KindMissingOther either way;
// only the Error's Message names which kind of block it was).
type ErrorKind int

const (
	KindMismatchedBrace ErrorKind = iota
	KindUnterminatedQuote
	KindMissingOther
	KindBadOffset
	KindMalformedSkeleton
	KindUnknownTag
	KindRecursionLimit
)

func (k ErrorKind) String() string {
	switch k {
	case KindMismatchedBrace:
		return "mismatched brace"
	case KindUnterminatedQuote:
		return "unterminated quote"
	case KindMissingOther:
		return "missing other case"
	case KindBadOffset:
		return "malformed offset"
	case KindMalformedSkeleton:
		return "malformed skeleton"
	case KindUnknownTag:
		return "unbalanced tag"
	case KindRecursionLimit:
		return "recursion limit exceeded"
	default:
		return "parse error"
	}
}

// Error is a parse-time failure. Parsing halts at the first Error found;
// the engine does not attempt partial recovery (spec.md §7).
type Error struct {
	Span    span.Span
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Kind, e.Span)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.Message)
}
