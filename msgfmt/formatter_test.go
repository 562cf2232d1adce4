package msgfmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/engine"
	"github.com/aretext/messageformat/msgfmt"
)

func mustFormatter(t *testing.T, locale string) *msgfmt.Formatter {
	t.Helper()
	f, err := msgfmt.New(locale, msgfmt.Options{})
	require.NoError(t, err)
	return f
}

func TestSimpleSubstitution(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("Hello, {name}!", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", got)
}

func TestPluralWithPound(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format(
		"{count, plural, one {# notification} other {# notifications}}",
		map[string]any{"count": 5},
	)
	require.NoError(t, err)
	assert.Equal(t, "5 notifications", got)
}

func TestPluralOffsetAndExact(t *testing.T) {
	f := mustFormatter(t, "en")
	pattern := "{count, plural, offset:1 =0 {Nobody is attending} =1 {Only {host} is attending} one {{host} and # other person are attending} other {{host} and # other people are attending}}"

	got, err := f.Format(pattern, map[string]any{"count": 2, "host": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice and 1 other person are attending", got)

	got, err = f.Format(pattern, map[string]any{"count": 5, "host": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice and 4 other people are attending", got)

	got, err = f.Format(pattern, map[string]any{"count": 1, "host": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Only Alice is attending", got)
}

func TestOrdinal(t *testing.T) {
	f := mustFormatter(t, "en")
	pattern := "{p, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}"

	got, err := f.Format(pattern, map[string]any{"p": 3})
	require.NoError(t, err)
	assert.Equal(t, "3rd", got)

	got, err = f.Format(pattern, map[string]any{"p": 4})
	require.NoError(t, err)
	assert.Equal(t, "4th", got)
}

func TestSelectWithBoolean(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format(
		"{active, select, true {Active} false {Inactive} other {Unknown}}",
		map[string]any{"active": true},
	)
	require.NoError(t, err)
	assert.Equal(t, "Active", got)
}

func TestSelectMissingVariableFallsBackToOtherNotNull(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format(
		"{x, select, null {N} other {O}}",
		map[string]any{},
	)
	require.NoError(t, err)
	assert.Equal(t, "O", got)
}

func TestSelectExplicitNilMatchesNullCase(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format(
		"{x, select, null {N} other {O}}",
		map[string]any{"x": nil},
	)
	require.NoError(t, err)
	assert.Equal(t, "N", got)
}

func TestDateTimeSkeletonForced24Hour(t *testing.T) {
	d := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)

	f, err := msgfmt.New("en", msgfmt.Options{})
	require.NoError(t, err)
	got, err := f.Format("{t, time, ::J}", map[string]any{"t": d})
	require.NoError(t, err)
	assert.Equal(t, "14", got)
}

func TestNumberSkeletonCurrency(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{price, number, ::currency/USD}", map[string]any{"price": 99.99})
	require.NoError(t, err)
	assert.Equal(t, "$99.99", got)
}

func TestNumberSkeletonCompact(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{n, number, ::compact-short}", map[string]any{"n": 1500000})
	require.NoError(t, err)
	assert.Equal(t, "1.5M", got)
}

func TestDateSkeletonQuarter(t *testing.T) {
	d := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	en := mustFormatter(t, "en")
	got, err := en.Format("{d, date, ::QQQQ}", map[string]any{"d": d})
	require.NoError(t, err)
	assert.Equal(t, "3rd quarter", got)

	de := mustFormatter(t, "de")
	got, err = de.Format("{d, date, ::QQQQ}", map[string]any{"d": d})
	require.NoError(t, err)
	assert.Equal(t, "3. Quartal", got)
}

func TestDayOfYear(t *testing.T) {
	f := mustFormatter(t, "en")

	got, err := f.Format("{d, date, ::D}", map[string]any{"d": time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, "366", got)

	got, err = f.Format("{d, date, ::D}", map[string]any{"d": time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, "365", got)
}

func TestWeekOfYearISO(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{d, date, ::w}", map[string]any{"d": time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, "25", got)
}

func TestList(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{items, list}", map[string]any{"items": []string{"Apple", "Banana", "Cherry"}})
	require.NoError(t, err)
	assert.Equal(t, "Apple, Banana, and Cherry", got)
}

func TestFormatHTMLEscaping(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.FormatHTML(
		"<b>Hello {name}</b>",
		map[string]any{"name": "<script>alert('xss')</script>"},
	)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello &lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;</b>", got)
}

func TestLiteralQuoteEscapes(t *testing.T) {
	f := mustFormatter(t, "en")

	got, err := f.Format("Use '{' and '}'", nil)
	require.NoError(t, err)
	assert.Equal(t, "Use { and }", got)

	got, err = f.Format("It''s", nil)
	require.NoError(t, err)
	assert.Equal(t, "It's", got)
}

func TestFormatComplexFlattensNestedArgs(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.FormatComplex("Hello, {user__firstName}!", map[string]any{
		"user": map[string]any{"firstName": "Ada"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", got)
}

func TestMissingVariableStrict(t *testing.T) {
	f, err := msgfmt.New("en", msgfmt.Options{StrictVariables: true})
	require.NoError(t, err)

	_, err = f.Format("Hello, {name}!", map[string]any{})
	require.Error(t, err)
	var missing *msgfmt.MissingVariableError
	assert.ErrorAs(t, err, &missing)
}

func TestMissingVariableLenient(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("Hello, {name}!", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Hello, !", got)
}

func TestInvalidLocaleWithoutFallback(t *testing.T) {
	_, err := msgfmt.New("xx-YY", msgfmt.Options{})
	require.Error(t, err)
	var invalid *msgfmt.InvalidLocaleError
	assert.ErrorAs(t, err, &invalid)
}

func TestLocaleResolutionFallsBackToBase(t *testing.T) {
	f, err := msgfmt.New("en-ZZ", msgfmt.Options{})
	require.NoError(t, err)
	assert.Equal(t, "en", f.Locale())

	got, err := f.Format("Hello, {name}!", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", got)
}

func TestTagHandler(t *testing.T) {
	f, err := msgfmt.New("en", msgfmt.Options{
		TagHandlers: map[string]engine.TagHandler{
			"b": func(inner string) string { return "**" + inner + "**" },
		},
	})
	require.NoError(t, err)
	got, err := f.Format("<b>{name}</b>", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "**World**", got)
}

func TestNumberCustomStyleAppendsLiteralStyleText(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{n, number, mySpecialStyle}", map[string]any{"n": 42})
	require.NoError(t, err)
	assert.Equal(t, "42 (mySpecialStyle)", got)
}

func TestDurationTimerStyle(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{d, duration, timer}", map[string]any{"d": 3725 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "1:02:05", got)
}

func TestRelativeTimeNamed(t *testing.T) {
	f := mustFormatter(t, "en")
	got, err := f.Format("{d, relativeTime, day}", map[string]any{"d": -1})
	require.NoError(t, err)
	assert.Equal(t, "yesterday", got)
}
