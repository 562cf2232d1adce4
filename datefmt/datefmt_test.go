package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/datefmt"
	"github.com/aretext/messageformat/locale"
)

func mustLocale(t *testing.T, code string) *locale.Data {
	t.Helper()
	d, ok := locale.DefaultProvider{}.TryGetLocale(code)
	require.True(t, ok)
	return d
}

func TestQuarterWideEnglish(t *testing.T) {
	loc := mustLocale(t, "en")
	sk := datefmt.ParseSkeleton("QQQQ", loc)
	d := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "3rd quarter", sk.Render(d, loc))
}

func TestQuarterWideGerman(t *testing.T) {
	loc := mustLocale(t, "de")
	sk := datefmt.ParseSkeleton("QQQQ", loc)
	d := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "3. Quartal", sk.Render(d, loc))
}

func TestDayOfYear(t *testing.T) {
	loc := mustLocale(t, "en")
	sk := datefmt.ParseSkeleton("D", loc)
	assert.Equal(t, "366", sk.Render(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), loc))
	assert.Equal(t, "365", sk.Render(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), loc))
}

func TestWeekOfYearEnglish(t *testing.T) {
	loc := mustLocale(t, "en")
	sk := datefmt.ParseSkeleton("w", loc)
	assert.Equal(t, "25", sk.Render(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), loc))
}

func TestWeekOfYearStaysWithinYearBoundaryGerman(t *testing.T) {
	loc := mustLocale(t, "de")
	sk := datefmt.ParseSkeleton("w", loc)
	assert.Equal(t, "53", sk.Render(time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), loc))
}

func TestYMMMdLayout(t *testing.T) {
	// Per spec.md §4.4, only the hour/minute/second colon and the
	// date-field/time-field space are inserted automatically; adjacent
	// date-only fields concatenate with no separator unless the skeleton
	// supplies one itself.
	loc := mustLocale(t, "en")
	sk := datefmt.ParseSkeleton("yMMMd", loc)
	assert.Equal(t, "2024Jul15", sk.Render(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), loc))
}

func TestHourMinuteSeparator(t *testing.T) {
	loc := mustLocale(t, "en")
	sk := datefmt.ParseSkeleton("Hms", loc)
	assert.Equal(t, "15:4:5", sk.Render(time.Date(2024, 7, 15, 15, 4, 5, 0, time.UTC), loc))
}
