package locale

func init() {
	register(frenchData())
}

func frenchPluralCategory(ctx PluralContext) Category {
	if ctx.I == 0 || ctx.I == 1 {
		return CategoryOne
	}
	return CategoryOther
}

func frenchOrdinalCategory(ctx PluralContext) Category {
	if ctx.N == 1 {
		return CategoryOne
	}
	return CategoryOther
}

func frenchData() *Data {
	return &Data{
		Code:            "fr",
		PluralCategory:  frenchPluralCategory,
		OrdinalCategory: frenchOrdinalCategory,
		Numbers: NumberSymbols{
			Decimal: ",", Group: " ", Percent: "%", Permille: "‰",
			Plus: "+", Minus: "-", Exponential: "E",
			NumberingSys: "latn", PrimaryGroup: 3, SecondaryGroup: 3,
		},
		Currency: CurrencyData{
			Pattern:         "{0} {1}",
			Symbols:         map[string]string{"EUR": "€", "USD": "$"},
			NarrowSymbols:   map[string]string{"EUR": "€"},
		},
		Units: map[string]UnitData{
			"kilometer": {Patterns: map[UnitWidth]map[Category]string{
				UnitWidthLong: {CategoryOne: "{0} kilomètre", CategoryOther: "{0} kilomètres"},
			}},
		},
		Lists: map[ListStyle]map[ListWidth]ListPatterns{
			ListStyleConjunction: {
				ListWidthLong: {Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} et {1}", Two: "{0} et {1}"},
			},
		},
		Dates: DatePatterns{
			DateShort: "02/01/06", DateMedium: "2 janv. 2006", DateLong: "2 January 2006", DateFull: "Monday 2 January 2006",
			TimeShort: "15:04", TimeMedium: "15:04:05", TimeLong: "15:04:05 MST", TimeFull: "15:04:05 MST",
			DateTimeShort: "02/01/06 15:04", DateTimeMedium: "2 janv. 2006 15:04:05",
			DateTimeLong: "2 January 2006 à 15:04:05 MST", DateTimeFull: "Monday 2 January 2006 à 15:04:05 MST",
			PreferredHourCycle: "h24",
		},
		Quarters: QuarterNames{
			Format: map[QuarterWidth][4]string{
				QuarterWidthWide: {"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
			},
			Standalone: map[QuarterWidth][4]string{
				QuarterWidthWide: {"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
			},
		},
		Weeks: WeekRules{FirstDayOfWeek: 1, MinDaysInFirstWeek: 4},
		Intervals: IntervalData{
			Fallback:       "{0} – {1}",
			NumberFallback: "{0}–{1}",
		},
		RelativeTimes: map[RelativeTimeField]map[RelativeTimeWidth]RelativeTimeData{
			RelativeTimeDay: {RelativeTimeWidthLong: {
				Past:   map[Category]string{CategoryOne: "il y a {0} jour", CategoryOther: "il y a {0} jours"},
				Future: map[Category]string{CategoryOne: "dans {0} jour", CategoryOther: "dans {0} jours"},
				Named:  map[int]string{-1: "hier", 0: "aujourd’hui", 1: "demain"},
			}},
		},
		Durations: DurationUnitData{
			FieldPatterns: map[UnitWidth]map[string]map[Category]string{
				UnitWidthLong: {
					"hour":   {CategoryOne: "{0} heure", CategoryOther: "{0} heures"},
					"minute": {CategoryOne: "{0} minute", CategoryOther: "{0} minutes"},
					"second": {CategoryOne: "{0} seconde", CategoryOther: "{0} secondes"},
				},
			},
			ListPattern: ListPatterns{Start: "{0}, {1}", Middle: "{0}, {1}", End: "{0} et {1}", Two: "{0} et {1}"},
		},
		MonthNamesWide: []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		DayNamesWide:   []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	}
}
