package locale

func init() {
	register(englishData())
}

func englishPluralCategory(ctx PluralContext) Category {
	if ctx.I == 1 && ctx.V == 0 {
		return CategoryOne
	}
	return CategoryOther
}

func englishOrdinalCategory(ctx PluralContext) Category {
	mod10 := ctx.I % 10
	mod100 := ctx.I % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return CategoryOne
	case mod10 == 2 && mod100 != 12:
		return CategoryTwo
	case mod10 == 3 && mod100 != 13:
		return CategoryFew
	default:
		return CategoryOther
	}
}

func englishData() *Data {
	return &Data{
		Code:            "en",
		PluralCategory:  englishPluralCategory,
		OrdinalCategory: englishOrdinalCategory,
		Numbers: NumberSymbols{
			Decimal: ".", Group: ",", Percent: "%", Permille: "‰",
			Plus: "+", Minus: "-", Exponential: "E",
			NumberingSys: "latn", PrimaryGroup: 3, SecondaryGroup: 3,
		},
		Currency: CurrencyData{
			Pattern:         "{1}{0}",
			Symbols:         map[string]string{"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥"},
			NarrowSymbols:   map[string]string{"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥"},
			DisplayNames: map[string]map[Category]string{
				"USD": {CategoryOne: "US dollar", CategoryOther: "US dollars"},
				"EUR": {CategoryOne: "euro", CategoryOther: "euros"},
			},
		},
		Units: map[string]UnitData{
			"kilometer": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong:   {CategoryOne: "{0} kilometer", CategoryOther: "{0} kilometers"},
				UnitWidthShort:  {CategoryOne: "{0} km", CategoryOther: "{0} km"},
				UnitWidthNarrow: {CategoryOne: "{0}km", CategoryOther: "{0}km"},
			}},
			"hour": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong:   {CategoryOne: "{0} hour", CategoryOther: "{0} hours"},
				UnitWidthShort:  {CategoryOne: "{0} hr", CategoryOther: "{0} hrs"},
				UnitWidthNarrow: {CategoryOne: "{0}h", CategoryOther: "{0}h"},
			}},
			"minute": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong:   {CategoryOne: "{0} minute", CategoryOther: "{0} minutes"},
				UnitWidthShort:  {CategoryOne: "{0} min", CategoryOther: "{0} min"},
				UnitWidthNarrow: {CategoryOne: "{0}m", CategoryOther: "{0}m"},
			}},
			"second": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong:   {CategoryOne: "{0} second", CategoryOther: "{0} seconds"},
				UnitWidthShort:  {CategoryOne: "{0} sec", CategoryOther: "{0} sec"},
				UnitWidthNarrow: {CategoryOne: "{0}s", CategoryOther: "{0}s"},
			}},
			"day":   {Patterns: map[UnitWidth]map[Category]string{UnitWidthLong: {CategoryOne: "{0} day", CategoryOther: "{0} days"}}},
			"month": {Patterns: map[UnitWidth]map[Category]string{UnitWidthLong: {CategoryOne: "{0} month", CategoryOther: "{0} months"}}},
			"year":  {Patterns: map[UnitWidth]map[Category]string{UnitWidthLong: {CategoryOne: "{0} year", CategoryOther: "{0} years"}}},
		},
		Lists: map[ListStyle]map[ListWidth]ListPatterns{
			ListStyleConjunction: {
				ListWidthLong:  {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, and {1}", Two: "{0} and {1}"},
				ListWidthShort: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, & {1}", Two: "{0} & {1}"},
			},
			ListStyleDisjunction: {
				ListWidthLong: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, or {1}", Two: "{0} or {1}"},
			},
			ListStyleUnit: {
				ListWidthLong:  {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, {1}", Two: "{0}, {1}"},
				ListWidthShort: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, {1}", Two: "{0}, {1}"},
			},
		},
		Dates: DatePatterns{
			DateShort: "1/2/06", DateMedium: "Jan 2, 2006", DateLong: "January 2, 2006", DateFull: "Monday, January 2, 2006",
			TimeShort: "3:04 PM", TimeMedium: "3:04:05 PM", TimeLong: "3:04:05 PM MST", TimeFull: "3:04:05 PM MST",
			DateTimeShort: "1/2/06, 3:04 PM", DateTimeMedium: "Jan 2, 2006, 3:04:05 PM",
			DateTimeLong: "January 2, 2006 at 3:04:05 PM MST", DateTimeFull: "Monday, January 2, 2006 at 3:04:05 PM MST",
			PreferredHourCycle: "h12",
		},
		Quarters: QuarterNames{
			Format: map[QuarterWidth][4]string{
				QuarterWidthWide:        {"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
				QuarterWidthAbbreviated: {"Q1", "Q2", "Q3", "Q4"},
				QuarterWidthNarrow:      {"1", "2", "3", "4"},
			},
			Standalone: map[QuarterWidth][4]string{
				QuarterWidthWide:        {"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
				QuarterWidthAbbreviated: {"Q1", "Q2", "Q3", "Q4"},
				QuarterWidthNarrow:      {"1", "2", "3", "4"},
			},
		},
		Weeks: WeekRules{FirstDayOfWeek: 0, MinDaysInFirstWeek: 1},
		Intervals: IntervalData{
			BySkeletonField: map[string]string{
				"y": "{0} – {1}", "M": "{0} – {1}", "d": "{0} – {1}", "h": "{0} – {1}",
			},
			Fallback:       "{0} – {1}",
			NumberFallback: "{0}–{1}",
		},
		RelativeTimes: map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData{
			RelativeTimeDay: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} day ago", CategoryOther: "{0} days ago"},
				Future: map[Category]string{CategoryOne: "in {0} day", CategoryOther: "in {0} days"},
				Named:  map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
			}},
			RelativeTimeHour: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} hour ago", CategoryOther: "{0} hours ago"},
				Future: map[Category]string{CategoryOne: "in {0} hour", CategoryOther: "in {0} hours"},
			}},
			RelativeTimeMinute: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} minute ago", CategoryOther: "{0} minutes ago"},
				Future: map[Category]string{CategoryOne: "in {0} minute", CategoryOther: "in {0} minutes"},
			}},
			RelativeTimeWeek: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} week ago", CategoryOther: "{0} weeks ago"},
				Future: map[Category]string{CategoryOne: "in {0} week", CategoryOther: "in {0} weeks"},
				Named:  map[int]string{-1: "last week", 0: "this week", 1: "next week"},
			}},
			RelativeTimeMonth: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} month ago", CategoryOther: "{0} months ago"},
				Future: map[Category]string{CategoryOne: "in {0} month", CategoryOther: "in {0} months"},
				Named:  map[int]string{-1: "last month", 0: "this month", 1: "next month"},
			}},
			RelativeTimeYear: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "{0} year ago", CategoryOther: "{0} years ago"},
				Future: map[Category]string{CategoryOne: "in {0} year", CategoryOther: "in {0} years"},
				Named:  map[int]string{-1: "last year", 0: "this year", 1: "next year"},
			}},
		},
		Durations: DurationUnitData{
			FieldPatterns: map[UnitWidth]map[string]map[Category]string{
				UnitWidthLong: {
					"hour":   {CategoryOne: "{0} hour", CategoryOther: "{0} hours"},
					"minute": {CategoryOne: "{0} minute", CategoryOther: "{0} minutes"},
					"second": {CategoryOne: "{0} second", CategoryOther: "{0} seconds"},
				},
			},
			ListPattern: ListPatterns{Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0}, and {1}", Two: "{0} and {1}"},
		},
		MonthNamesWide: []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		DayNamesWide:   []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	}
}
