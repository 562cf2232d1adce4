// Package engine dispatches a parsed ast.Message against an argument map and
// a locale, implementing the format contract spec.md §2/§4 describes: a
// typed format(ctx, out) call per element, writing into a shared output
// buffer in pattern order.
package engine

import "github.com/aretext/messageformat/locale"

// Args is the flat name -> value argument map a format call consumes
// (spec.md §3 "Argument model"). Supported value kinds: any Go integer or
// float type, string (literal text, or a decimal representation when the
// placeholder needs a number), bool, time.Time, time.Duration, and a slice
// of values for list placeholders.
type Args map[string]any

// TagHandler transforms a Tag element's already-formatted inner content
// (spec.md §4.8).
type TagHandler func(inner string) string

// CustomFormatter formats a value for a Custom element's registered TYPE
// (spec.md §4.9).
type CustomFormatter func(value any, style string, hasStyle bool, loc *locale.Data) (string, error)

// Context carries everything a format call needs beyond the AST itself
// (spec.md §2: "ctx carries locale, culture, pluralizer, ordinalizer,
// custom-formatter/tag-handler maps, CLDR provider handle, and the argument
// map"). A Context is built fresh per format call; it is not shared across
// concurrent calls (the pluralStack it carries is call-local mutable state).
type Context struct {
	Locale   *locale.Data
	Provider locale.Provider

	Args            Args
	StrictVariables bool

	CustomFormatters map[string]CustomFormatter
	TagHandlers      map[string]TagHandler

	// pluralStack holds the offset-adjusted value of each enclosing
	// plural/ordinal, innermost last, so `#` substitution (spec.md §4.5
	// point 5) always renders the nearest enclosing plural's value; a
	// nested plural/ordinal shadows an outer one for `#` inside its own
	// child, which falling back to the slice's tail implements for free.
	pluralStack []float64
}

func (c *Context) pushPlural(v float64) {
	c.pluralStack = append(c.pluralStack, v)
}

func (c *Context) popPlural() {
	c.pluralStack = c.pluralStack[:len(c.pluralStack)-1]
}

func (c *Context) currentPlural() (float64, bool) {
	if len(c.pluralStack) == 0 {
		return 0, false
	}
	return c.pluralStack[len(c.pluralStack)-1], true
}

func (c *Context) lookup(name string) (any, bool) {
	v, ok := c.Args[name]
	return v, ok
}
