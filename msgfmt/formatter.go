// Package msgfmt is the Formatter Facade spec.md §6 specifies: binds a
// resolved locale to its pluralizer/ordinalizer, exposes Format /
// FormatComplex / FormatHTML, and owns the variable-flattening and
// HTML-escaping helpers that are facade conveniences rather than core
// engine behavior (spec.md §9).
package msgfmt

import (
	"github.com/pkg/errors"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/cache"
	"github.com/aretext/messageformat/engine"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/parse"
)

// Options configures a Formatter at construction time (spec.md §6:
// "options carries CLDR provider handle, optional fallback locale,
// custom-formatter map, tag-handler map, and a flag for strict
// variables").
type Options struct {
	// Provider supplies locale data; DefaultProvider{} if nil.
	Provider locale.Provider
	// Fallback is consulted after exact and base-language resolution fail.
	Fallback string
	// StrictVariables makes a missing argument a MissingVariableError
	// instead of silently rendering empty / "other" / zero.
	StrictVariables bool
	// CacheCapacity is the pattern->AST cache's capacity; 0 uses
	// cache.DefaultCapacity, a negative value disables the cache
	// (spec.md §4.2: "Cache may be disabled by configuration").
	CacheCapacity int
	// CustomFormatters backs `{name, TYPE, ...}` placeholders whose TYPE
	// isn't one of the built-ins (spec.md §4.9).
	CustomFormatters map[string]engine.CustomFormatter
	// TagHandlers backs rich-text `<name>...</name>` elements (spec.md
	// §4.8).
	TagHandlers map[string]engine.TagHandler
}

// Formatter binds one resolved locale to the engine machinery spec.md §3
// "Lifecycle" describes: "immutable references to locale data, a culture
// handle, the pluralizer/ordinalizer functions for its locale, and
// configured custom-formatter and tag-handler maps; safe for shared
// concurrent use after construction."
type Formatter struct {
	locale   *locale.Data
	resolved string
	provider locale.Provider
	strict   bool
	cache    *cache.Cache
	tagCache *cache.Cache // separate cache for ignoreTag=true parses

	customFormatters map[string]engine.CustomFormatter
	tagHandlers      map[string]engine.TagHandler
}

// New constructs a Formatter for requestedLocale. Resolution follows
// spec.md §4/§6: exact match, then base language, then opts.Fallback; if
// none resolve, construction fails with InvalidLocaleError.
func New(requestedLocale string, opts Options) (*Formatter, error) {
	provider := opts.Provider
	if provider == nil {
		provider = locale.DefaultProvider{}
	}

	resolver := locale.NewResolver(provider, opts.Fallback)
	data, resolved, err := resolver.Resolve(requestedLocale)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve locale %q", requestedLocale)
	}

	capacity := opts.CacheCapacity
	if capacity == 0 {
		capacity = cache.DefaultCapacity
	}

	return &Formatter{
		locale:           data,
		resolved:         resolved,
		provider:         provider,
		strict:           opts.StrictVariables,
		cache:            cache.New(capacity),
		tagCache:         cache.New(capacity),
		customFormatters: opts.CustomFormatters,
		tagHandlers:      opts.TagHandlers,
	}, nil
}

// Locale returns the locale code that was actually resolved (which may
// differ from what was requested, e.g. "de" resolved from "de-AT" with no
// Austria-specific override).
func (f *Formatter) Locale() string { return f.resolved }

// Format implements spec.md §6's main operation: parse (or reuse a cached
// parse of) pattern, then render it against args.
func (f *Formatter) Format(pattern string, args map[string]any) (string, error) {
	return f.format(pattern, args, false)
}

// FormatComplex is Format, but args may contain nested map[string]any
// values, flattened with "__" between levels before formatting (spec.md
// §6).
func (f *Formatter) FormatComplex(pattern string, args map[string]any) (string, error) {
	return f.format(pattern, Flatten(args), false)
}

// FormatHTML is Format, but string argument values are HTML-escaped via an
// unescape-then-escape round trip, and the parser's tag recognition is
// disabled so literal HTML in the pattern passes through verbatim (spec.md
// §6).
func (f *Formatter) FormatHTML(pattern string, args map[string]any) (string, error) {
	escaped := make(map[string]any, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok {
			escaped[k] = escapeHTMLValue(s)
			continue
		}
		escaped[k] = v
	}
	return f.format(pattern, escaped, true)
}

func (f *Formatter) format(pattern string, args map[string]any, ignoreTag bool) (string, error) {
	msg, err := f.parse(pattern, ignoreTag)
	if err != nil {
		return "", err
	}

	ctx := &engine.Context{
		Locale:           f.locale,
		Provider:         f.provider,
		Args:             engine.Args(args),
		StrictVariables:  f.strict,
		CustomFormatters: f.customFormatters,
		TagHandlers:      f.tagHandlers,
	}
	out, err := engine.FormatToString(msg, ctx)
	if err != nil {
		return "", errors.Wrapf(err, "format pattern %q", pattern)
	}
	return out, nil
}

func (f *Formatter) parse(pattern string, ignoreTag bool) (ast.Message, error) {
	c := f.cache
	if ignoreTag {
		c = f.tagCache
	}
	if msg, ok := c.Get(pattern, ignoreTag); ok {
		return msg, nil
	}
	msg, err := parse.Parse(pattern, f.locale, ignoreTag)
	if err != nil {
		return nil, errors.Wrap(err, "parse pattern")
	}
	c.Put(pattern, ignoreTag, msg)
	return msg, nil
}
