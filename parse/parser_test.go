package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/parse"
)

func mustLocale(t *testing.T, code string) *locale.Data {
	t.Helper()
	d, ok := locale.DefaultProvider{}.TryGetLocale(code)
	require.True(t, ok)
	return d
}

func TestParseLiteralWithQuoteEscapes(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("It''s '{'braced'}'", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	lit, ok := msg[0].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "It's {braced}", lit.Text)
}

func TestParseArgumentPlaceholder(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("Hello, {name}!", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 3)
	assert.Equal(t, ast.Literal{Text: "Hello, ", Sp: msg[0].Span()}, msg[0])
	arg, ok := msg[1].(ast.Argument)
	require.True(t, ok)
	assert.Equal(t, "name", arg.Name)
}

func TestParsePluralRequiresOther(t *testing.T) {
	loc := mustLocale(t, "en")
	_, err := parse.Parse("{count, plural, one {# item}}", loc, false)
	require.Error(t, err)
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.KindMissingOther, perr.Kind)
}

func TestParsePluralOffset(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("{n, plural, offset:2 other {#}}", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	p, ok := msg[0].(ast.Plural)
	require.True(t, ok)
	assert.True(t, p.HasOffset)
	assert.Equal(t, 2.0, p.Offset)
}

func TestParseSelectOrdinal(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("{p, selectordinal, one {#st} other {#th}}", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	p, ok := msg[0].(ast.Plural)
	require.True(t, ok)
	assert.True(t, p.IsOrdinal)
}

func TestParseExactMatchCaseKey(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("{n, plural, =0 {none} other {#}}", loc, false)
	require.NoError(t, err)
	p := msg[0].(ast.Plural)
	require.Len(t, p.Cases, 2)
	assert.True(t, p.Cases[0].IsExact)
	assert.Equal(t, 0.0, p.Cases[0].ExactValue)
}

func TestParseMismatchedBraceIsError(t *testing.T) {
	loc := mustLocale(t, "en")
	_, err := parse.Parse("Hello, {name!", loc, false)
	require.Error(t, err)
}

func TestParseUnknownTypeProducesCustom(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("{x, spellout}", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	c, ok := msg[0].(ast.Custom)
	require.True(t, ok)
	assert.Equal(t, "spellout", c.FormatterID)
}

func TestParseTagRecognition(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("<b>{name}</b>", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	tag, ok := msg[0].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "b", tag.Name)
	require.Len(t, tag.Child, 1)
}

func TestParseNestedDifferentlyNamedTags(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("<b>hello <i>world</i>!</b>", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	outer, ok := msg[0].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "b", outer.Name)
	require.Len(t, outer.Child, 3)

	lit1, ok := outer.Child[0].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "hello ", lit1.Text)

	inner, ok := outer.Child[1].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "i", inner.Name)
	require.Len(t, inner.Child, 1)
	innerLit, ok := inner.Child[0].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "world", innerLit.Text)

	lit2, ok := outer.Child[2].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "!", lit2.Text)
}

func TestParseNestedSameNamedTags(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("<b>x<b>y</b>z</b>", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 1)
	outer, ok := msg[0].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "b", outer.Name)
	require.Len(t, outer.Child, 3)

	inner, ok := outer.Child[1].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
	innerLit, ok := inner.Child[0].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "y", innerLit.Text)
}

func TestParseIgnoreTagPassesThroughLiteral(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("<b>{name}</b>", loc, true)
	require.NoError(t, err)
	// With ignoreTag, "<b>" and "</b>" are ordinary literal text around the
	// argument placeholder rather than a Tag element (spec.md §6).
	require.Len(t, msg, 3)
	lit, ok := msg[0].(ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "<b>", lit.Text)
	_, ok = msg[1].(ast.Argument)
	require.True(t, ok)
}

func TestParseSpanLineColumn(t *testing.T) {
	loc := mustLocale(t, "en")
	msg, err := parse.Parse("line one\n{name}", loc, false)
	require.NoError(t, err)
	require.Len(t, msg, 2)
	arg, ok := msg[1].(ast.Argument)
	require.True(t, ok)
	assert.Equal(t, 2, arg.Span().Line)
}
