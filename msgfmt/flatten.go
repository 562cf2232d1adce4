package msgfmt

import (
	"github.com/aretext/messageformat/engine"
)

// flattenSeparator is the facade convenience spec.md §6/§9 describes:
// "Nested maps...are flattened by the facade before invoking format" using
// "__" between levels, e.g. "user.firstName" under key "user__firstName".
// The engine itself only ever sees a flat engine.Args map.
const flattenSeparator = "__"

// Flatten converts a possibly-nested map (map[string]any values may
// themselves be map[string]any) into the flat engine.Args the core format
// dispatch consumes. A []any or []string leaf is kept as-is so list
// placeholders still see an iterable of already-formatted scalars
// (spec.md §4.6: "Items are assumed already locale-formatted strings").
func Flatten(args map[string]any) engine.Args {
	out := make(engine.Args, len(args))
	flattenInto(out, "", args)
	return out
}

func flattenInto(out engine.Args, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + flattenSeparator + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}
