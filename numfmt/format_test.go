package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/numfmt"
)

func mustLocale(t *testing.T, code string) *locale.Data {
	t.Helper()
	d, ok := locale.DefaultProvider{}.TryGetLocale(code)
	require.True(t, ok)
	return d
}

func TestParseSkeletonCurrency(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("currency/USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", opts.CurrencyCode)
}

func TestFormatCurrencyUSD(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("currency/USD")
	require.NoError(t, err)
	got := numfmt.Format(99.99, opts, mustLocale(t, "en"))
	assert.Equal(t, "$99.99", got)
}

func TestFormatCompactShort(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("compact-short")
	require.NoError(t, err)
	assert.Equal(t, "1.5M", numfmt.Format(1500000, opts, mustLocale(t, "en")))
	assert.Equal(t, "2M", numfmt.Format(2000000, opts, mustLocale(t, "en")))
	assert.Equal(t, "999", numfmt.Format(999, opts, mustLocale(t, "en")))
}

func TestFormatPercent(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("percent")
	require.NoError(t, err)
	opts.MaxFractionDigits = 0
	opts.FractionDigitsSet = true
	assert.Equal(t, "50%", numfmt.Format(0.5, opts, mustLocale(t, "en")))
}

func TestFormatGroupingAlways(t *testing.T) {
	opts, err := numfmt.ParseSkeleton(",! .00")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", numfmt.Format(1234.5, opts, mustLocale(t, "en")))
}

func TestFormatSignAccountingAlwaysAddsPlus(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("sign-accounting-always .0")
	require.NoError(t, err)
	assert.Equal(t, "+5.0", numfmt.Format(5, opts, mustLocale(t, "en")))
	assert.Equal(t, "(5.0)", numfmt.Format(-5, opts, mustLocale(t, "en")))
}

func TestFormatScientific(t *testing.T) {
	opts, err := numfmt.ParseSkeleton("scientific")
	require.NoError(t, err)
	assert.Equal(t, "1.23E+4", numfmt.Format(12345, opts, mustLocale(t, "en")))
}

func TestFormatDigitShapingArabic(t *testing.T) {
	opts := numfmt.Default()
	opts.MaxFractionDigits = 0
	got := numfmt.Format(123, opts, mustLocale(t, "ar"))
	assert.Equal(t, "١٢٣", got)
}
