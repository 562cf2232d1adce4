// Package datefmt implements the ICU datetime skeleton parser and
// post-processor (spec.md §4.4): translating ICU field characters into a
// host time.Format layout, with marker codepoints standing in for fields
// (day-of-year, quarter, week-of-year) the host layout can't express, and a
// post-processing pass that replaces those markers once the date is known.
package datefmt

import (
	"strings"

	"github.com/aretext/messageformat/locale"
)

// Skeleton is a parsed ICU datetime skeleton: a host-ready time.Format
// layout, possibly containing marker runs that Render must post-process.
type Skeleton struct {
	Layout string
}

// fieldKind buckets a skeleton field character by what class of separator
// rule applies to it (spec.md §4.4: ":" between hour/minute/second, a
// space between a date field and a time field).
type fieldKind int

const (
	fieldDate fieldKind = iota
	fieldTime
	fieldOther
)

// ParseSkeleton converts an ICU datetime skeleton string into a Skeleton.
// The skeleton is a run of field characters, e.g. "yMMMd" or "QQQQ"; unlike
// number skeletons there are no whitespace-separated tokens here, it's a
// single run read left to right, counting repeated characters.
func ParseSkeleton(skeleton string, loc *locale.Data) Skeleton {
	runes := []rune(skeleton)
	var b strings.Builder
	lastKind := fieldOther
	i := 0
	for i < len(runes) {
		ch := runes[i]
		j := i
		for j < len(runes) && runes[j] == ch {
			j++
		}
		count := j - i
		kind := kindOf(ch)
		if b.Len() > 0 {
			if lastKind == fieldTime && kind == fieldTime && isHMS(ch) {
				b.WriteString(":")
			} else if lastKind == fieldDate && kind == fieldTime {
				b.WriteString(" ")
			}
		}
		b.WriteString(translateField(ch, count, loc))
		if kind != fieldOther {
			lastKind = kind
		}
		i = j
	}
	return Skeleton{Layout: b.String()}
}

func isHMS(ch rune) bool {
	switch ch {
	case 'h', 'H', 'j', 'J', 'k', 'K', 'm', 's':
		return true
	default:
		return false
	}
}

func kindOf(ch rune) fieldKind {
	switch ch {
	case 'y', 'M', 'L', 'd', 'E', 'c', 'G', 'Q', 'q', 'w', 'D':
		return fieldDate
	case 'j', 'J', 'h', 'H', 'k', 'K', 'm', 's', 'S', 'a':
		return fieldTime
	default:
		return fieldOther
	}
}

// translateField emits the host layout fragment for one run of `count`
// repeated field characters, per the CLDR field semantics spec.md §4.4
// names. Fields outside Go's time.Format vocabulary (quarter, week-of-year,
// day-of-year) are emitted as marker runs whose length carries the
// requested zero-pad width for the fields in paddedByRunLength.
func translateField(ch rune, count int, loc *locale.Data) string {
	switch ch {
	case 'y':
		if count == 2 {
			return "06"
		}
		return "2006"
	case 'M', 'L':
		switch {
		case count == 1:
			return "1"
		case count == 2:
			return "01"
		case count == 3:
			return "Jan"
		default:
			return "January"
		}
	case 'd':
		if count == 1 {
			return "2"
		}
		return "02"
	case 'D':
		return strings.Repeat(string(markerDayOfYear), count)
	case 'E', 'c':
		if count <= 3 {
			return "Mon"
		}
		return "Monday"
	case 'j':
		if loc != nil && loc.Dates.PreferredHourCycle == "h24" {
			return translateField('H', count, loc)
		}
		return translateField('h', count, loc)
	case 'J':
		// Unlike 'j', 'J' is always forced 24-hour regardless of the
		// locale's preferred hour cycle.
		return translateField('H', count, loc)
	case 'h':
		if count == 1 {
			return "3"
		}
		return "03"
	case 'H', 'k', 'K':
		// Go's reference layout has no non-padded 24-hour token and no
		// 0-11/1-24 variants; "15" (zero-padded 24-hour) is the closest
		// available approximation for all of H/k/K.
		return "15"
	case 'm':
		if count == 1 {
			return "4"
		}
		return "04"
	case 's':
		if count == 1 {
			return "5"
		}
		return "05"
	case 'S':
		return "." + strings.Repeat("0", count)
	case 'a':
		return "PM"
	case 'G':
		// No era support in Go's reference layout or in this locale
		// bundle; every date renders in the current era.
		return "AD"
	case 'Q':
		if count <= 2 {
			return strings.Repeat(string(markerQuarterNumeric), count)
		}
		return string(quarterMarker(count, false))
	case 'q':
		if count <= 2 {
			return strings.Repeat(string(markerQuarterNumeric), count)
		}
		return string(quarterMarker(count, true))
	case 'w':
		return strings.Repeat(string(markerWeekOfYear), count)
	case 'z', 'Z', 'x', 'X', 'V':
		return "MST"
	default:
		return string(ch)
	}
}

func quarterMarker(count int, standalone bool) rune {
	switch {
	case count == 3 && !standalone:
		return markerQuarterFormatAbbrev
	case count == 3 && standalone:
		return markerQuarterStandAbbrev
	case count == 4 && !standalone:
		return markerQuarterFormatWide
	case count == 4 && standalone:
		return markerQuarterStandWide
	case !standalone:
		return markerQuarterFormatNarrow
	default:
		return markerQuarterStandNarrow
	}
}
