package locale

func init() {
	register(arabicData())
}

// arabicPluralCategory implements CLDR's six-way Arabic cardinal rule, the
// richest plural system in common use and a good counterpoint to English's
// two-way system in tests.
func arabicPluralCategory(ctx PluralContext) Category {
	mod100 := ctx.I % 100
	switch {
	case ctx.N == 0:
		return CategoryZero
	case ctx.N == 1:
		return CategoryOne
	case ctx.N == 2:
		return CategoryTwo
	case mod100 >= 3 && mod100 <= 10:
		return CategoryFew
	case mod100 >= 11 && mod100 <= 99:
		return CategoryMany
	default:
		return CategoryOther
	}
}

func arabicOrdinalCategory(ctx PluralContext) Category {
	return CategoryOther
}

func arabicData() *Data {
	return &Data{
		Code:            "ar",
		PluralCategory:  arabicPluralCategory,
		OrdinalCategory: arabicOrdinalCategory,
		Numbers: NumberSymbols{
			Decimal: "٫", Group: "٬", Percent: "٪", Permille: "؉",
			Plus: "+", Minus: "-", Exponential: "اس",
			NumberingSys: "arab", PrimaryGroup: 3, SecondaryGroup: 3,
		},
		Currency: CurrencyData{
			Pattern:         "{0} {1}",
			Symbols:         map[string]string{"USD": "US$", "SAR": "ر.س.‏"},
		},
		Lists: map[ListStyle]map[ListWidth]ListPatterns{
			ListStyleConjunction: {
				ListWidthLong: {Start: "{0}، {1}", Middle: "{0}، {1}", End: "{0}، و{1}", Two: "{0} و{1}"},
			},
		},
		Dates: DatePatterns{
			DateShort: "02/01/06", DateMedium: "2 Jan 2006", DateLong: "2 January 2006", DateFull: "Monday, 2 January 2006",
			TimeShort: "3:04 PM", TimeMedium: "3:04:05 PM", TimeLong: "3:04:05 PM MST", TimeFull: "3:04:05 PM MST",
			DateTimeShort: "02/01/06, 3:04 PM", DateTimeMedium: "2 Jan 2006, 3:04:05 PM",
			DateTimeLong: "2 January 2006 at 3:04:05 PM MST", DateTimeFull: "Monday, 2 January 2006 at 3:04:05 PM MST",
			PreferredHourCycle: "h12",
		},
		Quarters: QuarterNames{
			Format: map[QuarterWidth][4]string{
				QuarterWidthWide: {"الربع الأول", "الربع الثاني", "الربع الثالث", "الربع الرابع"},
			},
			Standalone: map[QuarterWidth][4]string{
				QuarterWidthWide: {"الربع الأول", "الربع الثاني", "الربع الثالث", "الربع الرابع"},
			},
		},
		Weeks: WeekRules{FirstDayOfWeek: 6, MinDaysInFirstWeek: 1},
		Intervals: IntervalData{
			Fallback:       "{0} – {1}",
			NumberFallback: "{0}–{1}",
		},
		RelativeTimes: map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData{},
		Durations: DurationUnitData{
			FieldPatterns: map[UnitWidth]map[string]map[Category]string{},
			ListPattern:   ListPatterns{Start: "{0}، {1}", Middle: "{0}، {1}", End: "{0}، و{1}", Two: "{0} و{1}"},
		},
	}
}
