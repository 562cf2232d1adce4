package numfmt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseSkeleton lexes a whitespace-separated ICU number skeleton (the text
// following "::" in a pattern's style position) into Options, starting
// from Default(). spec.md §4.3 lists the token grammar.
func ParseSkeleton(skeleton string) (Options, error) {
	opts := Default()
	for _, tok := range strings.Fields(skeleton) {
		if err := applyToken(&opts, tok); err != nil {
			return opts, errors.Wrapf(err, "number skeleton token %q", tok)
		}
	}
	return opts, nil
}

func applyToken(o *Options, tok string) error {
	switch {
	case tok == "percent":
		o.IsPercent = true
		return nil
	case tok == "permille":
		o.IsPermille = true
		return nil
	case tok == "ordinal":
		o.IsOrdinal = true
		return nil
	case tok == "scientific":
		o.Notation = NotationScientific
		return nil
	case tok == "engineering":
		o.Notation = NotationEngineering
		return nil
	case tok == "compact-short":
		o.Notation = NotationCompactShort
		return nil
	case tok == "compact-long":
		o.Notation = NotationCompactLong
		return nil
	case tok == "currency-symbol":
		o.CurrencyDisplay = CurrencyDisplaySymbol
		return nil
	case tok == "currency-narrow-symbol":
		o.CurrencyDisplay = CurrencyDisplayNarrowSymbol
		return nil
	case strings.HasPrefix(tok, "sign-"):
		return applySignToken(o, tok)
	case strings.HasPrefix(tok, "group-"):
		return applyGroupToken(o, tok)
	case strings.HasPrefix(tok, "unit-width-"):
		return applyUnitWidthToken(o, tok)
	case tok == "%":
		o.IsPercent = true
		return nil
	case tok == "K":
		o.Notation = NotationCompactShort
		return nil
	case tok == "KK":
		o.Notation = NotationCompactLong
		return nil
	case tok == "+!":
		o.SignDisplay = SignAlways
		return nil
	case tok == "+_":
		o.SignDisplay = SignNever
		return nil
	case tok == "+?":
		o.SignDisplay = SignExceptZero
		return nil
	case tok == "()":
		o.SignDisplay = SignAccounting
		return nil
	case tok == ",_":
		o.Grouping = GroupingOff
		return nil
	case tok == ",?":
		o.Grouping = GroupingMin2
		return nil
	case tok == ",!":
		o.Grouping = GroupingAlways
		return nil
	case strings.HasPrefix(tok, "currency/"):
		o.CurrencyCode = cases.Upper(language.Und).String(strings.TrimPrefix(tok, "currency/"))
		return nil
	case strings.HasPrefix(tok, "scale/"):
		v, err := strconv.ParseFloat(strings.TrimPrefix(tok, "scale/"), 64)
		if err != nil {
			return errors.Wrap(err, "invalid scale")
		}
		o.Scale = v
		return nil
	case strings.HasPrefix(tok, "unit/"):
		o.UnitID = strings.TrimPrefix(tok, "unit/")
		return nil
	case strings.HasPrefix(tok, "measure-unit/"):
		o.UnitID = stripUnitNamespace(strings.TrimPrefix(tok, "measure-unit/"))
		return nil
	case strings.HasPrefix(tok, "integer-width/"):
		return applyIntegerWidthToken(o, strings.TrimPrefix(tok, "integer-width/"))
	case strings.HasPrefix(tok, "."):
		return applyFractionPrecisionToken(o, tok)
	case strings.HasPrefix(tok, "@"):
		return applySignificantPrecisionToken(o, tok)
	case isAllDigits(tok):
		// A bare run of "0"s sets minimum integer digits (spec.md §4.3
		// Precision: "a bare run of 0s as a whole token sets minimum
		// integer digits").
		if strings.Count(tok, "0") == len(tok) {
			o.MinIntegerDigits = len(tok)
			return nil
		}
		return errors.New("unrecognized token")
	default:
		return errors.New("unrecognized token")
	}
}

func stripUnitNamespace(id string) string {
	if i := strings.IndexByte(id, '-'); i >= 0 {
		return id[i+1:]
	}
	return id
}

func applySignToken(o *Options, tok string) error {
	switch tok {
	case "sign-always":
		o.SignDisplay = SignAlways
	case "sign-never":
		o.SignDisplay = SignNever
	case "sign-except-zero":
		o.SignDisplay = SignExceptZero
	case "sign-accounting":
		o.SignDisplay = SignAccounting
	case "sign-accounting-always":
		o.SignDisplay = SignAccountingAlways
	case "sign-accounting-except-zero":
		o.SignDisplay = SignAccountingExceptZero
	default:
		return errors.New("unrecognized sign token")
	}
	return nil
}

func applyGroupToken(o *Options, tok string) error {
	switch tok {
	case "group-off":
		o.Grouping = GroupingOff
	case "group-min2":
		o.Grouping = GroupingMin2
	case "group-auto":
		o.Grouping = GroupingAuto
	case "group-always":
		o.Grouping = GroupingAlways
	default:
		return errors.New("unrecognized group token")
	}
	return nil
}

func applyUnitWidthToken(o *Options, tok string) error {
	switch tok {
	case "unit-width-short":
		o.UnitWidth = "short"
	case "unit-width-narrow":
		o.UnitWidth = "narrow"
	case "unit-width-full-name":
		o.UnitWidth = "long"
	case "unit-width-iso-code":
		o.UnitWidth = "iso-code"
	default:
		return errors.New("unrecognized unit-width token")
	}
	return nil
}

func applyIntegerWidthToken(o *Options, rest string) error {
	rest = strings.TrimPrefix(rest, "*")
	if !isAllDigits(rest) || rest == "" {
		return errors.New("invalid integer-width token")
	}
	o.MinIntegerDigits = len(rest)
	return nil
}

// applyFractionPrecisionToken parses the "." family: a sequence of '0',
// '#' and an optional trailing '*' (unbounded max) or '+' (synonym here).
func applyFractionPrecisionToken(o *Options, tok string) error {
	body := tok[1:]
	minDigits := 0
	maxDigits := 0
	unbounded := false

	for _, r := range body {
		switch r {
		case '0':
			minDigits++
			maxDigits++
		case '#':
			maxDigits++
		case '*', '+':
			unbounded = true
		default:
			return errors.New("invalid fraction precision token")
		}
	}

	o.MinFractionDigits = minDigits
	if unbounded {
		o.MaxFractionDigits = -1
	} else {
		o.MaxFractionDigits = maxDigits
	}
	o.FractionDigitsSet = true
	o.UseSignificant = false
	return nil
}

// applySignificantPrecisionToken parses the "@" family: a run of '@'
// (minimum significant digits) optionally followed by '#' (additional
// maximum significant digits).
func applySignificantPrecisionToken(o *Options, tok string) error {
	min, max := 0, 0
	for _, r := range tok {
		switch r {
		case '@':
			min++
			max++
		case '#':
			max++
		default:
			return errors.New("invalid significant-digits token")
		}
	}
	o.MinSignificantDigits = min
	o.MaxSignificantDigits = max
	o.UseSignificant = true
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
