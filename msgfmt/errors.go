package msgfmt

import (
	"github.com/aretext/messageformat/engine"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/parse"
)

// The facade re-exports its collaborators' error types directly (spec.md
// §7's taxonomy spans the parser, the locale resolver and the engine) so a
// caller can errors.As against a single msgfmt.* name without reaching
// into the internal packages.
type (
	// InvalidLocaleError is returned from New when the requested locale
	// cannot be resolved and no fallback was configured.
	InvalidLocaleError = locale.InvalidLocaleError
	// ParseError is returned from Format/FormatComplex/FormatHTML when the
	// pattern itself is malformed.
	ParseError = parse.Error
	// MissingVariableError is returned when strict-variables is set and an
	// argument the pattern references is absent.
	MissingVariableError = engine.MissingVariableError
	// FormatError wraps a value-conversion or sub-formatter failure at
	// format time.
	FormatError = engine.FormatError
)

// SelectMissingOtherError names a select/plural/ordinal block without an
// `other` case. Nothing in this module returns it: the parser rejects such
// a pattern with a ParseError of kind parse.KindMissingOther, and when an
// AST built elsewhere reaches format time without an `other` case the
// engine reports it as a FormatError.
type SelectMissingOtherError struct {
	Name string
}

func (e *SelectMissingOtherError) Error() string {
	return "messageformat: block for \"" + e.Name + "\" has no other case"
}
