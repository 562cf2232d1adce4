package engine

import (
	"fmt"
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
)

// formatPlural implements spec.md §4.5: an exact-match (`=N`) case compares
// against the argument's raw value before offset is applied; otherwise the
// offset-adjusted value's plural/ordinal category selects a case, falling
// back to `other`. Inside the chosen case, `#` renders the value actually
// used to select it (raw for an exact match, offset-adjusted otherwise).
func formatPlural(p ast.Plural, ctx *Context, out *strings.Builder) error {
	raw, v, err := numericArgValue(ctx, p.Name)
	if err != nil {
		return err
	}

	for _, c := range p.Cases {
		if c.IsExact && c.ExactValue == v {
			return formatPluralCase(c, v, ctx, out)
		}
	}

	adjusted := v
	if p.HasOffset {
		adjusted = v - p.Offset
	}
	var pctx locale.PluralContext
	if p.HasOffset {
		pctx = locale.PluralContextFromFloat(adjusted)
	} else {
		pctx = pluralContextForValue(raw)
	}

	categorize := ctx.Locale.PluralCategory
	if p.IsOrdinal {
		categorize = ctx.Locale.OrdinalCategory
	}
	category := string(categorize(pctx))

	var other *ast.Case
	for i := range p.Cases {
		c := &p.Cases[i]
		if c.IsExact {
			continue
		}
		if c.Key == category {
			return formatPluralCase(*c, adjusted, ctx, out)
		}
		if c.Key == "other" {
			other = c
		}
	}
	if other == nil {
		return &FormatError{Reason: fmt.Sprintf("plural/ordinal block for %q has no other case", p.Name)}
	}
	return formatPluralCase(*other, adjusted, ctx, out)
}

func formatPluralCase(c ast.Case, poundValue float64, ctx *Context, out *strings.Builder) error {
	ctx.pushPlural(poundValue)
	defer ctx.popPlural()
	return Format(c.Child, ctx, out)
}

// numericArgValue returns both the argument's original dynamic value (for
// precise plural-operand derivation) and its signed float64 form.
func numericArgValue(ctx *Context, name string) (any, float64, error) {
	v, ok := ctx.lookup(name)
	if !ok {
		if ctx.StrictVariables {
			return nil, 0, &MissingVariableError{Name: name}
		}
		return nil, 0, nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, 0, &FormatError{Reason: fmt.Sprintf("argument %q is not numeric", name)}
	}
	return v, f, nil
}
