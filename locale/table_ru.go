package locale

func init() {
	register(russianData())
}

// russianPluralCategory implements CLDR's Slavic one/few/many/other rule,
// which (unlike English) distinguishes "few" (2-4) from "many" (5+, and
// the 11-14 exception) for integers.
func russianPluralCategory(ctx PluralContext) Category {
	if ctx.V != 0 {
		return CategoryOther
	}
	mod10 := ctx.I % 10
	mod100 := ctx.I % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return CategoryOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return CategoryFew
	case mod10 == 0 || (mod10 >= 5 && mod10 <= 9) || (mod100 >= 11 && mod100 <= 14):
		return CategoryMany
	default:
		return CategoryOther
	}
}

func russianOrdinalCategory(ctx PluralContext) Category {
	return CategoryOther
}

func russianData() *Data {
	return &Data{
		Code:            "ru",
		PluralCategory:  russianPluralCategory,
		OrdinalCategory: russianOrdinalCategory,
		Numbers: NumberSymbols{
			Decimal: ",", Group: " ", Percent: "%", Permille: "‰",
			Plus: "+", Minus: "-", Exponential: "E",
			NumberingSys: "latn", PrimaryGroup: 3, SecondaryGroup: 3,
		},
		Currency: CurrencyData{
			Pattern:         "{0} {1}",
			Symbols:         map[string]string{"RUB": "₽", "USD": "$"},
		},
		Lists: map[ListStyle]map[ListWidth]ListPatterns{
			ListStyleConjunction: {
				ListWidthLong: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} и {1}", Two: "{0} и {1}"},
			},
		},
		Dates: DatePatterns{
			DateShort: "02.01.06", DateMedium: "2 янв. 2006", DateLong: "2 January 2006", DateFull: "Monday, 2 January 2006",
			TimeShort: "15:04", TimeMedium: "15:04:05", TimeLong: "15:04:05 MST", TimeFull: "15:04:05 MST",
			DateTimeShort: "02.01.06, 15:04", DateTimeMedium: "2 янв. 2006, 15:04:05",
			DateTimeLong: "2 January 2006, 15:04:05 MST", DateTimeFull: "Monday, 2 January 2006, 15:04:05 MST",
			PreferredHourCycle: "h24",
		},
		Quarters: QuarterNames{
			Format: map[QuarterWidth][4]string{
				QuarterWidthWide: {"1-й квартал", "2-й квартал", "3-й квартал", "4-й квартал"},
			},
			Standalone: map[QuarterWidth][4]string{
				QuarterWidthWide: {"1-й квартал", "2-й квартал", "3-й квартал", "4-й квартал"},
			},
		},
		Weeks: WeekRules{FirstDayOfWeek: 1, MinDaysInFirstWeek: 4},
		Intervals: IntervalData{
			Fallback:       "{0} – {1}",
			NumberFallback: "{0}–{1}",
		},
		RelativeTimes: map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData{},
		Durations: DurationUnitData{
			FieldPatterns: map[UnitWidth]map[string]map[Category]string{},
			ListPattern:   ListPatterns{Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} и {1}", Two: "{0} и {1}"},
		},
	}
}
