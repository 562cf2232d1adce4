package locale

// digitTables maps a CLDR numbering system name to its ten decimal digits,
// used by the "digit shaping" pass described in spec.md §4.3 point 7.
var digitTables = map[string][10]rune{
	"latn": {'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	"arab": {'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'},
}

// ShapeDigits rewrites ASCII digits 0-9 in s into the digits of the given
// numbering system. Unknown systems, or "latn" itself, leave s unchanged.
func ShapeDigits(s string, system string) string {
	table, ok := digitTables[system]
	if !ok || system == "latn" {
		return s
	}
	out := []rune(s)
	for i, r := range out {
		if r >= '0' && r <= '9' {
			out[i] = table[r-'0']
		}
	}
	return string(out)
}
