package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/locale"
)

func TestEnglishPluralCategory(t *testing.T) {
	p := locale.DefaultProvider{}
	en, ok := p.TryGetLocale("en")
	require.True(t, ok)

	assert.Equal(t, locale.CategoryOne, en.PluralCategory(locale.PluralContextFromInt(1)))
	assert.Equal(t, locale.CategoryOther, en.PluralCategory(locale.PluralContextFromInt(0)))
	assert.Equal(t, locale.CategoryOther, en.PluralCategory(locale.PluralContextFromInt(5)))
}

func TestEnglishOrdinalCategory(t *testing.T) {
	p := locale.DefaultProvider{}
	en, _ := p.TryGetLocale("en")

	cases := map[int64]locale.Category{
		1: locale.CategoryOne, 2: locale.CategoryTwo, 3: locale.CategoryFew,
		4: locale.CategoryOther, 11: locale.CategoryOther, 21: locale.CategoryOne,
	}
	for n, want := range cases {
		assert.Equal(t, want, en.OrdinalCategory(locale.PluralContextFromInt(n)), "n=%d", n)
	}
}

func TestArabicPluralCategorySixWay(t *testing.T) {
	p := locale.DefaultProvider{}
	ar, ok := p.TryGetLocale("ar")
	require.True(t, ok)

	cases := map[int64]locale.Category{
		0: locale.CategoryZero, 1: locale.CategoryOne, 2: locale.CategoryTwo,
		5: locale.CategoryFew, 100: locale.CategoryOther, 11: locale.CategoryMany,
	}
	for n, want := range cases {
		assert.Equal(t, want, ar.PluralCategory(locale.PluralContextFromInt(n)), "n=%d", n)
	}
}

func TestRussianPluralCategory(t *testing.T) {
	p := locale.DefaultProvider{}
	ru, ok := p.TryGetLocale("ru")
	require.True(t, ok)

	cases := map[int64]locale.Category{
		1: locale.CategoryOne, 2: locale.CategoryFew, 5: locale.CategoryMany,
		11: locale.CategoryMany, 21: locale.CategoryOne,
	}
	for n, want := range cases {
		assert.Equal(t, want, ru.PluralCategory(locale.PluralContextFromInt(n)), "n=%d", n)
	}
}

func TestPluralContextFromDecimalString(t *testing.T) {
	ctx := locale.PluralContextFromDecimalString("1.50")
	assert.Equal(t, int64(1), ctx.I)
	assert.Equal(t, 2, ctx.V)
	assert.Equal(t, int64(50), ctx.F)
	assert.Equal(t, 1, ctx.W)
	assert.Equal(t, int64(5), ctx.T)
}

func TestResolverExactBaseFallback(t *testing.T) {
	p := locale.DefaultProvider{}
	r := locale.NewResolver(p, "en")

	d, code, err := r.Resolve("de")
	require.NoError(t, err)
	assert.Equal(t, "de", code)
	assert.Equal(t, "de", d.Code)

	d, code, err = r.Resolve("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "de", code)
	assert.Equal(t, "de", d.Code)

	d, code, err = r.Resolve("xx-YY")
	require.NoError(t, err)
	assert.Equal(t, "en", code)
	assert.Equal(t, "en", d.Code)
}

func TestResolverInvalidLocaleWithNoFallback(t *testing.T) {
	p := locale.DefaultProvider{}
	r := locale.NewResolver(p, "")

	_, _, err := r.Resolve("xx-YY")
	require.Error(t, err)

	var invalidErr *locale.InvalidLocaleError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "xx-YY", invalidErr.Requested)
}

func TestShapeDigits(t *testing.T) {
	assert.Equal(t, "١٢٣", locale.ShapeDigits("123", "arab"))
	assert.Equal(t, "123", locale.ShapeDigits("123", "latn"))
	assert.Equal(t, "123", locale.ShapeDigits("123", "unknown-system"))
}
