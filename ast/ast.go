// Package ast defines the immutable pattern tree a parsed message compiles
// to (spec.md §3): literals, argument placeholders, the built-in selector
// and subformat elements, and rich-text tags. Every node carries a source
// span for error reporting. Style and skeleton resolution happens once at
// parse time — Number and DateTime nodes carry pre-parsed numfmt.Options /
// datefmt.Skeleton values rather than raw style strings, so a cached AST
// never re-parses a skeleton on repeated formatting.
package ast

import (
	"github.com/aretext/messageformat/datefmt"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/numfmt"
	"github.com/aretext/messageformat/span"
)

// Element is any node in a parsed pattern tree.
type Element interface {
	Span() span.Span
}

// Message is an ordered sequence of elements: the parsed form of one
// pattern or one case's child pattern.
type Message []Element

// Literal is verbatim, already-unescaped text.
type Literal struct {
	Text string
	Sp   span.Span
}

func (l Literal) Span() span.Span { return l.Sp }

// Pound is the distinguished `#` literal inside a plural/ordinal child: at
// format time it renders the enclosing plural's offset-adjusted value using
// the locale's default number format. A quoted `'#'` parses as an ordinary
// Literal instead, never as Pound.
type Pound struct {
	Sp span.Span
}

func (p Pound) Span() span.Span { return p.Sp }

// Argument substitutes args[Name]'s string form.
type Argument struct {
	Name string
	Sp   span.Span
}

func (a Argument) Span() span.Span { return a.Sp }

// NumberStyleKind selects how a Number element resolves its format options.
type NumberStyleKind int

const (
	NumberStyleInteger NumberStyleKind = iota
	NumberStyleCurrency
	NumberStylePercent
	NumberStyleSkeleton
	NumberStyleCustom
)

// Number is a `{name, number, ...}` placeholder.
type Number struct {
	Name    string
	Style   NumberStyleKind
	Options numfmt.Options // populated for Integer/Currency/Percent/Skeleton
	Custom  string         // populated for NumberStyleCustom
	Sp      span.Span
}

func (n Number) Span() span.Span { return n.Sp }

// DateTimeKind distinguishes date, time and combined datetime placeholders.
type DateTimeKind int

const (
	KindDate DateTimeKind = iota
	KindTime
	KindDateTime
)

// DateStyleKind selects how a Date/Time/DateTime element resolves its layout.
type DateStyleKind int

const (
	DateStyleShort DateStyleKind = iota
	DateStyleMedium
	DateStyleLong
	DateStyleFull
	DateStyleSkeleton
	DateStyleCustom
)

// DateTime is a `{name, date|time|datetime, ...}` placeholder.
type DateTime struct {
	Name     string
	Kind     DateTimeKind
	Style    DateStyleKind
	Skeleton datefmt.Skeleton // populated for DateStyleSkeleton
	Custom   string           // populated for DateStyleCustom; a host-pattern string, passed through verbatim (spec.md §9 Open Question)
	Sp       span.Span
}

func (d DateTime) Span() span.Span { return d.Sp }

// DateRange is a `{start, daterange, end, ...}`-shaped placeholder: two
// argument names and a shared style/skeleton for both ends.
type DateRange struct {
	StartName string
	EndName   string
	Style     DateStyleKind
	Skeleton  datefmt.Skeleton
	Custom    string
	Sp        span.Span
}

func (d DateRange) Span() span.Span { return d.Sp }

// Case is one `KEY {child}` arm of a Plural/Ordinal/Select block.
type Case struct {
	Key        string // the select label, or the plural category name
	IsExact    bool   // true when the original key was "=<number>"
	ExactValue float64
	Child      Message
	Sp         span.Span
}

// Plural is a `{name, plural, ...}` or `{name, selectordinal, ...}` block;
// IsOrdinal distinguishes the two (spec.md §3: "Ordinal has the same
// shape").
type Plural struct {
	Name      string
	IsOrdinal bool
	HasOffset bool
	Offset    float64
	Cases     []Case
	Sp        span.Span
}

func (p Plural) Span() span.Span { return p.Sp }

// Select is a `{name, select, ...}` block.
type Select struct {
	Name  string
	Cases []Case
	Sp    span.Span
}

func (s Select) Span() span.Span { return s.Sp }

// List is a `{name, list, ...}` placeholder.
type List struct {
	Name  string
	Style locale.ListStyle
	Width locale.ListWidth
	Sp    span.Span
}

func (l List) Span() span.Span { return l.Sp }

// NumericMode controls RelativeTime's special-cased near-zero phrasing.
type NumericMode int

const (
	NumericAuto NumericMode = iota
	NumericAlways
)

// RelativeTime is a `{name, relativeTime, ...}` placeholder.
type RelativeTime struct {
	Name    string
	Field   locale.RelativeTimeField
	Width   locale.RelativeTimeWidth
	Numeric NumericMode
	Sp      span.Span
}

func (r RelativeTime) Span() span.Span { return r.Sp }

// DurationStyleKind selects how a Duration element renders its fields.
type DurationStyleKind int

const (
	DurationStyleLong DurationStyleKind = iota
	DurationStyleShort
	DurationStyleNarrow
	DurationStyleTimer
	DurationStyleTemplate
)

// Duration is a `{name, duration, ...}` placeholder.
type Duration struct {
	Name     string
	Style    DurationStyleKind
	Template string // populated for DurationStyleTemplate, e.g. "{hours}h {minutes}m"
	Sp       span.Span
}

func (d Duration) Span() span.Span { return d.Sp }

// NumberRange is a `{start, numberRange, end, ...}`-shaped placeholder.
type NumberRange struct {
	StartName   string
	EndName     string
	Options     numfmt.Options
	HasOptions  bool
	Sp          span.Span
}

func (n NumberRange) Span() span.Span { return n.Sp }

// Tag is a rich-text `<name>...</name>` element; recognized only when the
// parser's ignore-tag flag is false.
type Tag struct {
	Name  string
	Child Message
	Sp    span.Span
}

func (t Tag) Span() span.Span { return t.Sp }

// Custom is a placeholder whose TYPE is not one of the built-ins.
type Custom struct {
	Name        string
	FormatterID string
	Style       string
	HasStyle    bool
	Sp          span.Span
}

func (c Custom) Span() span.Span { return c.Sp }
