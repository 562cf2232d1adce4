package locale

import "sort"

// registry is the process-wide, lazily-populated table of precompiled
// locale data. spec.md §5 requires lazy-per-locale materialization to be
// idempotent and thread-safe; since every table here is a package-level
// var built by an init() func (no I/O, no recursion into the registry),
// "lazy" degenerates to "materialized once at package init" which trivially
// satisfies both properties.
var registry = map[string]*Data{}

func register(d *Data) {
	registry[d.Code] = d
}

// DefaultProvider is the built-in Provider backed by the tables compiled
// into this package (table_en.go, table_de.go, ...).
type DefaultProvider struct{}

var _ Provider = DefaultProvider{}

func (DefaultProvider) TryGetLocale(code string) (*Data, bool) {
	d, ok := registry[code]
	return d, ok
}

func (DefaultProvider) TryGetSpellout(code string) (Spellout, bool) {
	return nil, false
}

func (p DefaultProvider) TryGetRelativeTime(code string, field RelativeTimeField, width RelativeTimeWidth) (RelativeTimeData, bool) {
	d, ok := p.TryGetLocale(code)
	if !ok {
		return RelativeTimeData{}, false
	}
	byWidth, ok := d.RelativeTimes[field]
	if !ok {
		return RelativeTimeData{}, false
	}
	rt, ok := byWidth[width]
	return rt, ok
}

func (p DefaultProvider) TryGetList(code string, style ListStyle) (map[ListWidth]ListPatterns, bool) {
	d, ok := p.TryGetLocale(code)
	if !ok {
		return nil, false
	}
	byWidth, ok := d.Lists[style]
	return byWidth, ok
}

func (p DefaultProvider) TryGetDateRange(code string) (IntervalData, bool) {
	d, ok := p.TryGetLocale(code)
	if !ok {
		return IntervalData{}, false
	}
	return d.Intervals, true
}

func (p DefaultProvider) TryGetUnit(code string, unitID string) (UnitData, bool) {
	d, ok := p.TryGetLocale(code)
	if !ok {
		return UnitData{}, false
	}
	u, ok := d.Units[unitID]
	return u, ok
}

func (DefaultProvider) TryGetNumberSystemDigits(system string) ([10]rune, bool) {
	t, ok := digitTables[system]
	return t, ok
}

func (DefaultProvider) AvailableLocales() []string {
	out := make([]string, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
