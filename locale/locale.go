// Package locale abstracts the CLDR-derived data a message formatter needs:
// plural/ordinal categorization, currency and unit display, list
// connectors, date/quarter/week tables, interval patterns and relative-time
// phrasings. Data is populated from precompiled per-locale tables (see
// gen/gen_tables.go); there is no runtime CLDR/JSON ingestion in this
// package, per spec.md §1 Non-goals.
package locale

// NumberSymbols carries the locale's decimal formatting symbols.
type NumberSymbols struct {
	Decimal       string
	Group         string
	Percent       string
	Permille      string
	Plus          string
	Minus         string
	Exponential   string
	NumberingSys  string // e.g. "latn", "arab"
	PrimaryGroup  int    // digits between group separators near the decimal point
	SecondaryGroup int   // digits between group separators further out
}

// CurrencyData resolves a currency code to locale-specific display forms.
type CurrencyData struct {
	// Pattern contains "{0}" for the number and "{1}" for the symbol/code,
	// e.g. "{1}{0}" for en ("$99.99") or "{0} {1}" for many European
	// locales ("99,99 €").
	Pattern       string
	Symbols       map[string]string               // code -> symbol, e.g. "USD" -> "$"
	NarrowSymbols map[string]string               // code -> narrow symbol
	DisplayNames  map[string]map[Category]string  // code -> category -> plural-aware display name
}

// UnitData resolves a measurement unit id to locale-specific patterns.
type UnitData struct {
	// Patterns[width][category] contains "{0}" for the number.
	Patterns map[UnitWidth]map[Category]string
}

// UnitWidth is the CLDR unit-display width.
type UnitWidth string

const (
	UnitWidthLong     UnitWidth = "long"
	UnitWidthShort    UnitWidth = "short"
	UnitWidthNarrow   UnitWidth = "narrow"
	UnitWidthISOCode  UnitWidth = "iso-code"
)

// ListStyle is the CLDR list-pattern style.
type ListStyle string

const (
	ListStyleConjunction ListStyle = "conjunction"
	ListStyleDisjunction ListStyle = "disjunction"
	ListStyleUnit        ListStyle = "unit"
)

// ListWidth is the CLDR list-pattern width.
type ListWidth string

const (
	ListWidthLong   ListWidth = "long"
	ListWidthShort  ListWidth = "short"
	ListWidthNarrow ListWidth = "narrow"
)

// ListPatterns holds the four-pattern family CLDR defines for composing a
// list of any length (spec.md §4.6).
type ListPatterns struct {
	Start  string // "{0}, {1}" style, first of 3+
	Middle string // "{0}, {1}" style, interior of 4+
	End    string // "{0}, and {1}" style, last of 3+
	Two    string // "{0} and {1}" style, exactly 2 items
}

// QuarterNames holds format and standalone quarter names by width.
type QuarterNames struct {
	Format     map[QuarterWidth][4]string
	Standalone map[QuarterWidth][4]string
}

// QuarterWidth is the CLDR quarter-name width.
type QuarterWidth string

const (
	QuarterWidthWide        QuarterWidth = "wide"
	QuarterWidthAbbreviated QuarterWidth = "abbreviated"
	QuarterWidthNarrow      QuarterWidth = "narrow"
)

// WeekRules controls how week-of-year is computed (spec.md §4.4, §9).
type WeekRules struct {
	FirstDayOfWeek int // 0=Sunday .. 6=Saturday
	MinDaysInFirstWeek int
}

// DatePatterns holds the host-ready (Go time.Format layout) patterns for
// date/time/datetime at each named style.
type DatePatterns struct {
	DateShort, DateMedium, DateLong, DateFull string
	TimeShort, TimeMedium, TimeLong, TimeFull string
	DateTimeShort, DateTimeMedium, DateTimeLong, DateTimeFull string
	// PreferredHourCycle is "h12" or "h24", used to resolve the `j` skeleton field.
	PreferredHourCycle string
}

// IntervalData resolves date/number range joining patterns.
type IntervalData struct {
	// BySkeletonField maps the ICU skeleton's greatest differing field
	// (e.g. "y", "M", "d", "h") to a "{0} - {1}"-shaped pattern tailored
	// to that field; Fallback is used when no specific entry applies.
	BySkeletonField map[string]string
	Fallback        string
	NumberFallback  string
}

// RelativeTimeField names the CLDR relative-time field.
type RelativeTimeField string

const (
	RelativeTimeSecond RelativeTimeField = "second"
	RelativeTimeMinute RelativeTimeField = "minute"
	RelativeTimeHour   RelativeTimeField = "hour"
	RelativeTimeDay    RelativeTimeField = "day"
	RelativeTimeWeek   RelativeTimeField = "week"
	RelativeTimeMonth  RelativeTimeField = "month"
	RelativeTimeQuarter RelativeTimeField = "quarter"
	RelativeTimeYear   RelativeTimeField = "year"
)

// RelativeTimeWidth is the CLDR relative-time width.
type RelativeTimeWidth string

const (
	RelativeTimeWidthLong   RelativeTimeWidth = "long"
	RelativeTimeWidthShort  RelativeTimeWidth = "short"
	RelativeTimeWidthNarrow RelativeTimeWidth = "narrow"
)

// RelativeTimeData holds the future/past patterns and the special-cased
// "named" relative values (yesterday/today/tomorrow and similar) for one
// field+width.
type RelativeTimeData struct {
	// Past/Future[category] contain "{0}" for the formatted absolute value.
	Past   map[Category]string
	Future map[Category]string
	// Named maps a small integer offset (-1, 0, 1, ...) to a fixed phrase,
	// e.g. Named[-1] = "yesterday".
	Named map[int]string
}

// DurationUnitData holds the unit-list patterns duration formatting
// composes fields with (spec.md §4.7).
type DurationUnitData struct {
	// FieldPatterns[width][field][category] -> "{0} hours" style pattern.
	FieldPatterns map[UnitWidth]map[string]map[Category]string
	// ListPattern joins the formatted fields, same shape as ListPatterns.
	ListPattern ListPatterns
}

// Data is the full precompiled locale bundle, equivalent to one CLDR
// locale's worth of formatting data plus the two precompiled pure
// functions (PluralCategory/OrdinalCategory) CLDR's plural-rule grammar
// compiles down to.
type Data struct {
	Code string

	PluralCategory  func(PluralContext) Category
	OrdinalCategory func(PluralContext) Category

	Numbers  NumberSymbols
	Currency CurrencyData
	Units    map[string]UnitData

	Lists map[ListStyle]map[ListWidth]ListPatterns

	Dates     DatePatterns
	Quarters  QuarterNames
	Weeks     WeekRules
	Intervals IntervalData

	RelativeTimes map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData
	Durations     DurationUnitData

	// MonthNamesWide/DayNamesWide list the locale's wide month and weekday
	// names. Nothing in this module reads them: the DateTime formatter
	// renders month and weekday names through time.Format, which produces
	// English names.
	MonthNamesWide []string
	DayNamesWide   []string
}

// Spellout is the interface for the (externally implemented, spec.md §1
// Out of scope) RBNF spellout evaluator used only by the `spellout`
// custom-formatter element. This package never returns a non-nil value for
// it; a host wiring the `spellout` type registers its own implementation
// with the engine's custom-formatter map instead.
type Spellout interface {
	Spell(n float64) string
}

// Provider is the external interface a locale data source must satisfy
// (spec.md §6). The precompiled registry in this package implements it
// directly; a host application may provide its own (e.g. to add locales)
// by implementing the same interface.
type Provider interface {
	TryGetLocale(code string) (*Data, bool)
	TryGetSpellout(code string) (Spellout, bool)
	TryGetRelativeTime(code string, field RelativeTimeField, width RelativeTimeWidth) (RelativeTimeData, bool)
	TryGetList(code string, style ListStyle) (map[ListWidth]ListPatterns, bool)
	TryGetDateRange(code string) (IntervalData, bool)
	TryGetUnit(code string, unitID string) (UnitData, bool)
	TryGetNumberSystemDigits(system string) ([10]rune, bool)
	AvailableLocales() []string
}
