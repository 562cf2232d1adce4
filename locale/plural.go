package locale

import (
	"strconv"
	"strings"
)

// Category is one of the CLDR plural/ordinal categories.
type Category string

const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

// PluralContext carries the CLDR plural operands computed from a numeric
// value's decimal representation (spec.md §4.5):
//
//	n - absolute value
//	i - integer part
//	v - count of visible fraction digits, with trailing zeros
//	w - count of visible fraction digits, without trailing zeros
//	f - fraction digits as an integer, with trailing zeros
//	t - fraction digits as an integer, without trailing zeros
//	c - compact exponent (0 unless the formatter supplied one)
//	e - same as c, the CLDR spec keeps both names
type PluralContext struct {
	N float64
	I int64
	V int
	W int
	F int64
	T int64
	C int
	E int
}

// PluralContextFromInt builds a context for an exact integer value.
func PluralContextFromInt(n int64) PluralContext {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	return PluralContext{N: float64(abs), I: abs}
}

// PluralContextFromFloat builds a context from a float64 by going through
// its canonical decimal string, so that trailing-zero tracking (v vs w,
// f vs t) matches what a human would read off the literal.
func PluralContextFromFloat(f float64) PluralContext {
	s := trimFloat(f)
	return PluralContextFromDecimalString(s)
}

// PluralContextFromDecimalString derives operands lexically from a decimal
// literal (optionally signed), so callers that already have a
// caller-supplied decimal string (e.g. a currency amount) don't round-trip
// through binary floating point.
func PluralContextFromDecimalString(s string) PluralContext {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")

	intPart, fracPart, hasFrac := s, "", false
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart, hasFrac = s[:idx], s[idx+1:], true
	}
	if intPart == "" {
		intPart = "0"
	}

	var ctx PluralContext
	ctx.I = parseDigitsAsInt(intPart)
	ctx.N = parseFullDecimal(intPart, fracPart)

	if hasFrac {
		ctx.V = len(fracPart)
		ctx.F = parseDigitsAsInt(fracPart)
		trimmed := strings.TrimRight(fracPart, "0")
		ctx.W = len(trimmed)
		ctx.T = parseDigitsAsInt(trimmed)
	}
	return ctx
}

func parseDigitsAsInt(digits string) int64 {
	var n int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

func parseFullDecimal(intPart, fracPart string) float64 {
	n := float64(parseDigitsAsInt(intPart))
	if fracPart == "" {
		return n
	}
	scale := 1.0
	for range fracPart {
		scale *= 10
	}
	return n + float64(parseDigitsAsInt(fracPart))/scale
}

func trimFloat(f float64) string {
	if f < 0 {
		f = -f
	}
	// FormatFloat with 'f'/-1 gives the shortest round-trippable decimal,
	// matching how a plain numeric literal in a pattern argument would be
	// read.
	return strconv.FormatFloat(f, 'f', -1, 64)
}
