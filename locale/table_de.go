package locale

func init() {
	register(germanData())
}

func germanPluralCategory(ctx PluralContext) Category {
	if ctx.I == 1 && ctx.V == 0 {
		return CategoryOne
	}
	return CategoryOther
}

func germanOrdinalCategory(ctx PluralContext) Category {
	return CategoryOther
}

func germanData() *Data {
	return &Data{
		Code:            "de",
		PluralCategory:  germanPluralCategory,
		OrdinalCategory: germanOrdinalCategory,
		Numbers: NumberSymbols{
			Decimal: ",", Group: ".", Percent: "%", Permille: "‰",
			Plus: "+", Minus: "-", Exponential: "E",
			NumberingSys: "latn", PrimaryGroup: 3, SecondaryGroup: 3,
		},
		Currency: CurrencyData{
			Pattern:         "{0} {1}",
			Symbols:         map[string]string{"USD": "$", "EUR": "€", "GBP": "£"},
			NarrowSymbols:   map[string]string{"EUR": "€"},
			DisplayNames: map[string]map[Category]string{
				"EUR": {CategoryOne: "Euro", CategoryOther: "Euro"},
			},
		},
		Units: map[string]UnitData{
			"kilometer": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong: {CategoryOne: "{0} Kilometer", CategoryOther: "{0} Kilometer"},
			}},
			"hour": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong: {CategoryOne: "{0} Stunde", CategoryOther: "{0} Stunden"},
			}},
			"minute": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong: {CategoryOne: "{0} Minute", CategoryOther: "{0} Minuten"},
			}},
		},
		Lists: map[ListStyle]map[ListWidth]ListPatterns{
			ListStyleConjunction: {
				ListWidthLong: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} und {1}", Two: "{0} und {1}"},
			},
			ListStyleDisjunction: {
				ListWidthLong: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} oder {1}", Two: "{0} oder {1}"},
			},
		},
		Dates: DatePatterns{
			DateShort: "02.01.06", DateMedium: "02.01.2006", DateLong: "2. January 2006", DateFull: "Monday, 2. January 2006",
			TimeShort: "15:04", TimeMedium: "15:04:05", TimeLong: "15:04:05 MST", TimeFull: "15:04:05 MST",
			DateTimeShort: "02.01.06, 15:04", DateTimeMedium: "02.01.2006, 15:04:05",
			DateTimeLong: "2. January 2006 um 15:04:05 MST", DateTimeFull: "Monday, 2. January 2006 um 15:04:05 MST",
			PreferredHourCycle: "h24",
		},
		Quarters: QuarterNames{
			Format: map[QuarterWidth][4]string{
				QuarterWidthWide:        {"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
				QuarterWidthAbbreviated: {"Q1", "Q2", "Q3", "Q4"},
				QuarterWidthNarrow:      {"1", "2", "3", "4"},
			},
			Standalone: map[QuarterWidth][4]string{
				QuarterWidthWide:        {"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
				QuarterWidthAbbreviated: {"Q1", "Q2", "Q3", "Q4"},
				QuarterWidthNarrow:      {"1", "2", "3", "4"},
			},
		},
		Weeks: WeekRules{FirstDayOfWeek: 1, MinDaysInFirstWeek: 4},
		Intervals: IntervalData{
			Fallback:       "{0} – {1}",
			NumberFallback: "{0}–{1}",
		},
		RelativeTimes: map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData{
			RelativeTimeDay: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "vor {0} Tag", CategoryOther: "vor {0} Tagen"},
				Future: map[Category]string{CategoryOne: "in {0} Tag", CategoryOther: "in {0} Tagen"},
				Named:  map[int]string{-1: "gestern", 0: "heute", 1: "morgen"},
			}},
		},
		Durations: DurationUnitData{
			FieldPatterns: map[UnitWidth]map[string]map[Category]string{
				UnitWidthLong: {
					"hour":   {CategoryOne: "{0} Stunde", CategoryOther: "{0} Stunden"},
					"minute": {CategoryOne: "{0} Minute", CategoryOther: "{0} Minuten"},
					"second": {CategoryOne: "{0} Sekunde", CategoryOther: "{0} Sekunden"},
				},
			},
			ListPattern: ListPatterns{Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} und {1}", Two: "{0} und {1}"},
		},
		MonthNamesWide: []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		DayNamesWide:   []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	}
}
