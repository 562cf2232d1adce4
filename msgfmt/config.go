package msgfmt

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aretext/messageformat/engine"
	"github.com/aretext/messageformat/locale"
)

// BundleConfig is the YAML-loadable surface over Options spec.md's own
// Options type can't express declaratively: a fallback locale, the
// strict-variables flag, cache capacity, and the *names* of custom
// formatters/tag handlers to wire in from a caller-supplied registry
// (spec.md §4.8/§4.9 leave registration itself to the host; this is the
// ambient config-file surface every teacher repo in the pack ships one
// of, following `aretext/config.Config`'s "plain struct + Apply(overlay)"
// shape).
type BundleConfig struct {
	FallbackLocale   string   `yaml:"fallbackLocale"`
	StrictVariables  bool     `yaml:"strictVariables"`
	CacheCapacity    int      `yaml:"cacheCapacity"`
	CustomFormatters []string `yaml:"customFormatters"`
	TagHandlers      []string `yaml:"tagHandlers"`
}

// Apply overrides c's values with any non-zero values from overlay,
// mirroring aretext/config.Config.Apply.
func (c *BundleConfig) Apply(overlay BundleConfig) {
	if overlay.FallbackLocale != "" {
		c.FallbackLocale = overlay.FallbackLocale
	}
	if overlay.StrictVariables {
		c.StrictVariables = overlay.StrictVariables
	}
	if overlay.CacheCapacity != 0 {
		c.CacheCapacity = overlay.CacheCapacity
	}
	if len(overlay.CustomFormatters) > 0 {
		c.CustomFormatters = overlay.CustomFormatters
	}
	if len(overlay.TagHandlers) > 0 {
		c.TagHandlers = overlay.TagHandlers
	}
}

// ConfigPath returns the default location for a BundleConfig file,
// mirroring aretext/app.ConfigPath's use of xdg.ConfigFile.
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("messageformat", "config.yaml"))
}

// LoadConfig reads and unmarshals a BundleConfig from path.
func LoadConfig(path string) (BundleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BundleConfig{}, errors.Wrapf(err, "os.ReadFile")
	}
	var cfg BundleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BundleConfig{}, errors.Wrapf(err, "yaml.Unmarshal")
	}
	return cfg, nil
}

// ToOptions resolves cfg's named custom-formatter/tag-handler entries
// against the given registries into an Options ready for New. Names in cfg
// that aren't present in a registry are skipped silently, the same
// "missing rule is not an error" posture aretext/config.RuleSet.Validate
// takes toward unrecognized glob patterns.
func (c BundleConfig) ToOptions(provider locale.Provider, formatters map[string]engine.CustomFormatter, tagHandlers map[string]engine.TagHandler) Options {
	opts := Options{
		Provider:         provider,
		Fallback:         c.FallbackLocale,
		StrictVariables:  c.StrictVariables,
		CacheCapacity:    c.CacheCapacity,
		CustomFormatters: make(map[string]engine.CustomFormatter, len(c.CustomFormatters)),
		TagHandlers:      make(map[string]engine.TagHandler, len(c.TagHandlers)),
	}
	for _, name := range c.CustomFormatters {
		if fn, ok := formatters[name]; ok {
			opts.CustomFormatters[name] = fn
		}
	}
	for _, name := range c.TagHandlers {
		if fn, ok := tagHandlers[name]; ok {
			opts.TagHandlers[name] = fn
		}
	}
	return opts
}
