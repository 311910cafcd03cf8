package textformat

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Config captures date-time context setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Resolver      FallbackResolver
	Logger        *slog.Logger

	names          map[string]Names
	namesFiles     []string
	namesOverrides map[string]string
	platform       bool
	loaded         map[string]Names
	registryOnce   sync.Once
	registry       *ContextRegistry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := cfg.loadNames(); err != nil {
		return nil, err
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}

	if cfg.DefaultLocale != "" {
		if _, ok := cfg.loaded[cfg.DefaultLocale]; !ok && !cfg.platform {
			return nil, fmt.Errorf("textformat: default locale %q has no names", cfg.DefaultLocale)
		}
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when resolution fails
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales restricts the registry to the given locales. Without it every
// loaded locale is registered.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithNames registers explicit name tables for locale
func WithNames(locale string, names Names) Option {
	return func(c *Config) error {
		locale = normalizeLocale(locale)
		if locale == "" {
			return fmt.Errorf("textformat: names registered without a locale")
		}
		if err := names.Validate(); err != nil {
			return fmt.Errorf("textformat: names for %q: %w", locale, err)
		}
		if c.names == nil {
			c.names = make(map[string]Names)
		}
		c.names[locale] = names
		c.registry = nil
		return nil
	}
}

// WithNamesFile adds a JSON or YAML "locales" document
func WithNamesFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		c.namesFiles = append(c.namesFiles, path)
		c.registry = nil
		return nil
	}
}

// WithNamesOverride adds a file holding the names of a single locale
func WithNamesOverride(locale, path string) Option {
	return func(c *Config) error {
		if c.namesOverrides == nil {
			c.namesOverrides = make(map[string]string)
		}
		c.namesOverrides[locale] = path
		c.registry = nil
		return nil
	}
}

// WithPlatformLocales enables deriving names for locales without tables
func WithPlatformLocales(enabled bool) Option {
	return func(c *Config) error {
		c.platform = enabled
		c.registry = nil
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// Names returns the name tables loaded for the registry
func (cfg *Config) Names() map[string]Names {
	if cfg == nil {
		return nil
	}
	result := make(map[string]Names, len(cfg.loaded))
	for locale, names := range cfg.loaded {
		result[locale] = names
	}
	return result
}

// Registry returns the context registry built from the configuration
func (cfg *Config) Registry() *ContextRegistry {
	if cfg == nil {
		return nil
	}
	cfg.registryOnce.Do(func() {
		cfg.registry = NewContextRegistry(
			WithRegistryNames(cfg.registeredNames()),
			WithRegistryResolver(cfg.Resolver),
			WithRegistryDefaultLocale(cfg.DefaultLocale),
			WithRegistryPlatformLocales(cfg.platform),
			WithRegistryLogger(cfg.Logger),
		)
	})
	return cfg.registry
}

// DateTimeFormat binds layout to the context resolved for locale
func (cfg *Config) DateTimeFormat(locale, layout string) (*DateTimeFormat, error) {
	return cfg.Registry().DateTimeFormat(locale, layout)
}

func (cfg *Config) loadNames() error {
	loader := NewNamesLoader(cfg.namesFiles...)
	for locale, path := range cfg.namesOverrides {
		loader.AddOverride(locale, path)
	}

	loaded, err := loader.Load()
	if err != nil {
		return err
	}
	for locale, names := range cfg.names {
		loaded[locale] = names
	}

	cfg.loaded = loaded
	cfg.Logger.Debug("names loaded", "locales", len(loaded), "files", len(cfg.namesFiles))
	return nil
}

func (cfg *Config) registeredNames() map[string]Names {
	if len(cfg.Locales) == 0 {
		return cfg.Names()
	}

	result := make(map[string]Names, len(cfg.Locales)+1)
	for _, locale := range cfg.Locales {
		if names, ok := cfg.loaded[locale]; ok {
			result[locale] = names
		}
	}
	if names, ok := cfg.loaded[cfg.DefaultLocale]; ok {
		result[cfg.DefaultLocale] = names
	}
	return result
}
