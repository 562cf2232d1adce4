package engine

import (
	"fmt"
	"strings"

	"github.com/aretext/messageformat/ast"
)

// Format renders msg into out under ctx, dispatching each element in
// pattern order (spec.md §5 "Ordering": "elements are rendered strictly in
// pattern order; there is no speculative or parallel rendering").
func Format(msg ast.Message, ctx *Context, out *strings.Builder) error {
	for _, elem := range msg {
		if err := formatElement(elem, ctx, out); err != nil {
			return err
		}
	}
	return nil
}

// FormatToString is a convenience wrapper that formats msg into a pooled
// buffer and returns its contents as a string.
func FormatToString(msg ast.Message, ctx *Context) (string, error) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)
	if err := Format(msg, ctx, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatElement is the exhaustive type switch spec.md §9's "Dynamic
// dispatch on element type" redesign note asks for in place of the source's
// class hierarchy + virtual dispatch.
func formatElement(elem ast.Element, ctx *Context, out *strings.Builder) error {
	switch e := elem.(type) {
	case ast.Literal:
		formatLiteral(e, out)
	case ast.Pound:
		return formatPound(e, ctx, out)
	case ast.Argument:
		return formatArgument(e, ctx, out)
	case ast.Number:
		return formatNumber(e, ctx, out)
	case ast.DateTime:
		return formatDateTime(e, ctx, out)
	case ast.DateRange:
		return formatDateRange(e, ctx, out)
	case ast.Plural:
		return formatPlural(e, ctx, out)
	case ast.Select:
		return formatSelect(e, ctx, out)
	case ast.List:
		return formatList(e, ctx, out)
	case ast.RelativeTime:
		return formatRelativeTime(e, ctx, out)
	case ast.Duration:
		return formatDuration(e, ctx, out)
	case ast.NumberRange:
		return formatNumberRange(e, ctx, out)
	case ast.Tag:
		return formatTag(e, ctx, out)
	case ast.Custom:
		return formatCustom(e, ctx, out)
	default:
		return &FormatError{Reason: fmt.Sprintf("unhandled element type %T", elem)}
	}
	return nil
}
