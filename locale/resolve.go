package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// InvalidLocaleError is returned when a requested locale cannot be resolved
// against a Provider and no fallback was configured (spec.md §4, §7).
type InvalidLocaleError struct {
	Requested string
	Available []string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("locale: cannot resolve %q (available: %s)", e.Requested, strings.Join(e.Available, ", "))
}

// Resolver chains exact -> base language -> configured fallback, per
// spec.md §6 "Locale fallback wire semantics". Base-language detection
// uses golang.org/x/text/language so that non-canonical tags (e.g.
// "EN_us", "en-Latn-US") resolve to the same base as their canonical form.
type Resolver struct {
	provider Provider
	fallback string
}

// NewResolver builds a Resolver over the given provider with an optional
// fallback locale code (empty string disables the fallback step).
func NewResolver(provider Provider, fallback string) *Resolver {
	return &Resolver{provider: provider, fallback: fallback}
}

// Resolve implements the exact -> base -> fallback chain. The returned
// code is whichever step matched; it is not necessarily equal to requested.
func (r *Resolver) Resolve(requested string) (*Data, string, error) {
	if d, ok := r.provider.TryGetLocale(requested); ok {
		return d, requested, nil
	}

	if base := baseLanguage(requested); base != "" && base != requested {
		if d, ok := r.provider.TryGetLocale(base); ok {
			return d, base, nil
		}
	}

	if r.fallback != "" {
		if d, ok := r.provider.TryGetLocale(r.fallback); ok {
			return d, r.fallback, nil
		}
	}

	return nil, "", &InvalidLocaleError{Requested: requested, Available: r.provider.AvailableLocales()}
}

// baseLanguage returns the base language subtag of a BCP-47-ish locale
// code ("de-DE" -> "de"), tolerating tags golang.org/x/text/language can't
// parse by falling back to a plain split on '-'/'_'.
func baseLanguage(code string) string {
	if tag, err := language.Parse(code); err == nil {
		base, conf := tag.Base()
		if conf != language.No {
			return base.String()
		}
	}
	if i := strings.IndexAny(code, "-_"); i > 0 {
		return code[:i]
	}
	return ""
}
