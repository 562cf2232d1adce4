package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/engine"
	"github.com/aretext/messageformat/locale"
)

func mustLocale(t *testing.T, code string) *locale.Data {
	t.Helper()
	d, ok := locale.DefaultProvider{}.TryGetLocale(code)
	require.True(t, ok)
	return d
}

func newCtx(t *testing.T, args engine.Args) *engine.Context {
	return &engine.Context{
		Locale:   mustLocale(t, "en"),
		Provider: locale.DefaultProvider{},
		Args:     args,
	}
}

func TestFormatDurationTimer(t *testing.T) {
	ctx := newCtx(t, engine.Args{"d": 3725 * time.Second})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Duration{Name: "d", Style: ast.DurationStyleTimer}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "1:02:05", out.String())
}

func TestFormatDurationTemplate(t *testing.T) {
	ctx := newCtx(t, engine.Args{"d": int64(3725)})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Duration{
		Name:     "d",
		Style:    ast.DurationStyleTemplate,
		Template: "{hours}h {minutes}m {seconds}s",
	}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "1h 2m 5s", out.String())
}

func TestFormatDurationISO8601String(t *testing.T) {
	ctx := newCtx(t, engine.Args{"d": "PT1H2M5S"})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Duration{Name: "d", Style: ast.DurationStyleTimer}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "1:02:05", out.String())
}

func TestFormatRelativeTimeNamed(t *testing.T) {
	ctx := newCtx(t, engine.Args{"d": 0})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.RelativeTime{
		Name:    "d",
		Field:   locale.RelativeTimeDay,
		Width:   locale.RelativeTimeWidthLong,
		Numeric: ast.NumericAuto,
	}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "today", out.String())
}

func TestFormatRelativeTimeNumericAlwaysSkipsNamedValue(t *testing.T) {
	ctx := newCtx(t, engine.Args{"d": -1})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.RelativeTime{
		Name:    "d",
		Field:   locale.RelativeTimeDay,
		Width:   locale.RelativeTimeWidthLong,
		Numeric: ast.NumericAlways,
	}}, ctx, &out)
	require.NoError(t, err)
	assert.NotEqual(t, "yesterday", out.String())
}

func TestFormatTagWithHandler(t *testing.T) {
	ctx := newCtx(t, engine.Args{"name": "World"})
	ctx.TagHandlers = map[string]engine.TagHandler{
		"b": func(inner string) string { return "<strong>" + inner + "</strong>" },
	}
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Tag{
		Name:  "b",
		Child: ast.Message{ast.Literal{Text: "hi "}, ast.Argument{Name: "name"}},
	}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "<strong>hi World</strong>", out.String())
}

func TestFormatTagWithoutHandlerStripsTag(t *testing.T) {
	ctx := newCtx(t, engine.Args{})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Tag{
		Name:  "b",
		Child: ast.Message{ast.Literal{Text: "plain"}},
	}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "plain", out.String())
}

func TestFormatCustomWithHandler(t *testing.T) {
	ctx := newCtx(t, engine.Args{"n": 42.0})
	ctx.CustomFormatters = map[string]engine.CustomFormatter{
		"spellout": func(value any, style string, hasStyle bool, loc *locale.Data) (string, error) {
			return "forty-two", nil
		},
	}
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Custom{Name: "n", FormatterID: "spellout"}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "forty-two", out.String())
}

func TestFormatCustomWithoutHandlerFallsBackToStringForm(t *testing.T) {
	ctx := newCtx(t, engine.Args{"n": 42.0})
	var out strings.Builder
	err := engine.Format(ast.Message{ast.Custom{Name: "n", FormatterID: "spellout"}}, ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, "42", out.String())
}
