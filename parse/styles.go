package parse

import (
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/datefmt"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/numfmt"
	"github.com/aretext/messageformat/span"
)

// buildNumber resolves a `number` placeholder's style/skeleton, per
// spec.md §6: `integer`, `currency`, `percent`, `::<skeleton>`, or an
// implementation-defined custom format string.
func (p *parser) buildNumber(name, raw string, sp span.Span) (ast.Element, error) {
	raw = strings.TrimSpace(raw)
	n := ast.Number{Name: name, Sp: sp}
	switch {
	case raw == "":
		n.Style = ast.NumberStyleInteger
		n.Options = numfmt.Default()
	case raw == "integer":
		n.Style = ast.NumberStyleInteger
		n.Options = numfmt.Default()
		n.Options.MaxFractionDigits = 0
		n.Options.FractionDigitsSet = true
	case raw == "currency":
		// Bare `currency` (no skeleton) doesn't carry a currency code in
		// the pattern text; implementation-defined per spec.md §6. This
		// project defaults it to USD rather than rejecting the pattern —
		// patterns needing another currency should use `::currency/<code>`.
		n.Style = ast.NumberStyleCurrency
		n.Options = numfmt.Default()
		n.Options.CurrencyCode = "USD"
	case raw == "percent":
		n.Style = ast.NumberStylePercent
		n.Options = numfmt.Default()
		n.Options.IsPercent = true
		n.Options.MaxFractionDigits = 0
		n.Options.FractionDigitsSet = true
	case strings.HasPrefix(raw, "::"):
		opts, err := numfmt.ParseSkeleton(raw[2:])
		if err != nil {
			return nil, &Error{Span: sp, Kind: KindMalformedSkeleton, Message: err.Error()}
		}
		n.Style = ast.NumberStyleSkeleton
		n.Options = opts
		if opts.CurrencyCode != "" {
			n.Style = ast.NumberStyleCurrency
		} else if opts.IsPercent {
			n.Style = ast.NumberStylePercent
		}
	default:
		if opts, err := numfmt.ParseSkeleton(raw); err == nil {
			n.Style = ast.NumberStyleSkeleton
			n.Options = opts
		} else {
			n.Style = ast.NumberStyleCustom
			n.Custom = raw
			n.Options = numfmt.Default()
		}
	}
	return n, nil
}

// buildDateTime resolves a date/time/datetime placeholder's style.
func (p *parser) buildDateTime(name string, kind ast.DateTimeKind, raw string, sp span.Span) (ast.Element, error) {
	style, sk, custom, err := p.resolveDateStyle(raw, sp)
	if err != nil {
		return nil, err
	}
	return ast.DateTime{Name: name, Kind: kind, Style: style, Skeleton: sk, Custom: custom, Sp: sp}, nil
}

func (p *parser) resolveDateStyle(raw string, sp span.Span) (ast.DateStyleKind, datefmt.Skeleton, string, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "" || raw == "medium":
		return ast.DateStyleMedium, datefmt.Skeleton{}, "", nil
	case raw == "short":
		return ast.DateStyleShort, datefmt.Skeleton{}, "", nil
	case raw == "long":
		return ast.DateStyleLong, datefmt.Skeleton{}, "", nil
	case raw == "full":
		return ast.DateStyleFull, datefmt.Skeleton{}, "", nil
	case strings.HasPrefix(raw, "::"):
		sk := datefmt.ParseSkeleton(raw[2:], p.loc)
		return ast.DateStyleSkeleton, sk, "", nil
	default:
		// A custom date/time style string is treated as a host-pattern
		// string, passed through verbatim (spec.md §9 Open Question).
		return ast.DateStyleCustom, datefmt.Skeleton{}, raw, nil
	}
}

// buildDateRange resolves a `{startName, daterange, endName[, style]}`
// placeholder.
func (p *parser) buildDateRange(startName, raw string, sp span.Span) (ast.Element, error) {
	parts := splitTopLevelCommas(raw)
	if len(parts) == 0 || parts[0] == "" {
		return nil, &Error{Span: sp, Kind: KindMismatchedBrace, Message: "daterange requires an end argument name"}
	}
	endName := parts[0]
	var styleRaw string
	if len(parts) > 1 {
		styleRaw = parts[1]
	}
	style, sk, custom, err := p.resolveDateStyle(styleRaw, sp)
	if err != nil {
		return nil, err
	}
	return ast.DateRange{StartName: startName, EndName: endName, Style: style, Skeleton: sk, Custom: custom, Sp: sp}, nil
}

// buildNumberRange resolves a `{startName, numberRange, endName[, skeleton]}`
// placeholder.
func (p *parser) buildNumberRange(startName, raw string, sp span.Span) (ast.Element, error) {
	parts := splitTopLevelCommas(raw)
	if len(parts) == 0 || parts[0] == "" {
		return nil, &Error{Span: sp, Kind: KindMismatchedBrace, Message: "numberRange requires an end argument name"}
	}
	nr := ast.NumberRange{StartName: startName, EndName: parts[0], Sp: sp}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		raw := strings.TrimSpace(parts[1])
		raw = strings.TrimPrefix(raw, "::")
		opts, err := numfmt.ParseSkeleton(raw)
		if err != nil {
			return nil, &Error{Span: sp, Kind: KindMalformedSkeleton, Message: err.Error()}
		}
		nr.Options = opts
		nr.HasOptions = true
	}
	return nr, nil
}

// buildList resolves a `list` placeholder's style/width tokens
// (spec.md §6): combined freely, default conjunction/long.
func (p *parser) buildList(name, raw string, sp span.Span) (ast.Element, error) {
	l := ast.List{Name: name, Style: locale.ListStyleConjunction, Width: locale.ListWidthLong, Sp: sp}
	for _, tok := range strings.Fields(raw) {
		switch tok {
		case "conjunction":
			l.Style = locale.ListStyleConjunction
		case "disjunction":
			l.Style = locale.ListStyleDisjunction
		case "unit":
			l.Style = locale.ListStyleUnit
		case "long":
			l.Width = locale.ListWidthLong
		case "short":
			l.Width = locale.ListWidthShort
		case "narrow":
			l.Width = locale.ListWidthNarrow
		}
	}
	return l, nil
}

// buildRelativeTime resolves `<field> [<style> [<numeric-mode>]]`.
func (p *parser) buildRelativeTime(name, raw string, sp span.Span) (ast.Element, error) {
	toks := strings.Fields(raw)
	rt := ast.RelativeTime{Name: name, Width: locale.RelativeTimeWidthLong, Numeric: ast.NumericAuto, Sp: sp}
	if len(toks) == 0 {
		return nil, &Error{Span: sp, Kind: KindMismatchedBrace, Message: "relativeTime requires a field"}
	}
	rt.Field = locale.RelativeTimeField(toks[0])
	if len(toks) > 1 {
		switch toks[1] {
		case "long":
			rt.Width = locale.RelativeTimeWidthLong
		case "short":
			rt.Width = locale.RelativeTimeWidthShort
		case "narrow":
			rt.Width = locale.RelativeTimeWidthNarrow
		}
	}
	if len(toks) > 2 && toks[2] == "always" {
		rt.Numeric = ast.NumericAlways
	}
	return rt, nil
}

// buildDuration resolves `long`/`short`/`narrow`/`timer` or a
// `{hours}`-style template.
func (p *parser) buildDuration(name, raw string, sp span.Span) (ast.Element, error) {
	raw = strings.TrimSpace(raw)
	d := ast.Duration{Name: name, Sp: sp}
	switch raw {
	case "", "long":
		d.Style = ast.DurationStyleLong
	case "short":
		d.Style = ast.DurationStyleShort
	case "narrow":
		d.Style = ast.DurationStyleNarrow
	case "timer":
		d.Style = ast.DurationStyleTimer
	default:
		d.Style = ast.DurationStyleTemplate
		d.Template = raw
	}
	return d, nil
}

// buildCustom builds a Custom element for an unrecognized TYPE.
func (p *parser) buildCustom(name, typeTok, raw string, sp span.Span) (ast.Element, error) {
	c := ast.Custom{Name: name, FormatterID: typeTok, Sp: sp}
	if raw != "" {
		c.Style = raw
		c.HasStyle = true
	}
	return c, nil
}
