package textformat

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// ContextRegistry resolves date-time contexts by locale, walking explicit
// fallback chains and locale parents before deriving names from platform
// locale data.
type ContextRegistry struct {
	mu            sync.RWMutex
	contexts      map[string]*Context
	derived       map[string]*Context
	resolver      FallbackResolver
	defaultLocale string
	platform      bool
	logger        *slog.Logger
}

type contextRegistryConfig struct {
	resolver      FallbackResolver
	defaultLocale string
	platform      bool
	logger        *slog.Logger
	names         map[string]Names
}

type ContextRegistryOption func(*contextRegistryConfig)

func WithRegistryResolver(resolver FallbackResolver) ContextRegistryOption {
	return func(c *contextRegistryConfig) {
		c.resolver = resolver
	}
}

func WithRegistryDefaultLocale(locale string) ContextRegistryOption {
	return func(c *contextRegistryConfig) {
		c.defaultLocale = normalizeLocale(locale)
	}
}

// WithRegistryPlatformLocales enables deriving contexts for unregistered locales.
func WithRegistryPlatformLocales(enabled bool) ContextRegistryOption {
	return func(c *contextRegistryConfig) {
		c.platform = enabled
	}
}

func WithRegistryLogger(logger *slog.Logger) ContextRegistryOption {
	return func(c *contextRegistryConfig) {
		c.logger = logger
	}
}

// WithRegistryNames seeds the registry with name tables keyed by locale.
func WithRegistryNames(names map[string]Names) ContextRegistryOption {
	return func(c *contextRegistryConfig) {
		if c.names == nil {
			c.names = make(map[string]Names, len(names))
		}
		for locale, n := range names {
			c.names[locale] = n
		}
	}
}

// NewContextRegistry builds a registry. The English context is always
// registered under "en".
func NewContextRegistry(opts ...ContextRegistryOption) *ContextRegistry {
	cfg := contextRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	registry := &ContextRegistry{
		contexts:      map[string]*Context{"en": ContextFromNames("en", EnglishNames)},
		derived:       make(map[string]*Context),
		resolver:      cfg.resolver,
		defaultLocale: cfg.defaultLocale,
		platform:      cfg.platform,
		logger:        logger,
	}

	locales := make([]string, 0, len(cfg.names))
	for locale := range cfg.names {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	for _, locale := range locales {
		registry.Register(locale, cfg.names[locale])
	}

	return registry
}

// Register binds names to locale, replacing any previous context.
func (r *ContextRegistry) Register(locale string, names Names) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	r.RegisterContext(locale, ContextFromNames(locale, names))
}

// RegisterContext binds an existing context to locale.
func (r *ContextRegistry) RegisterContext(locale string, ctx *Context) {
	locale = normalizeLocale(locale)
	if locale == "" || ctx == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contexts == nil {
		r.contexts = make(map[string]*Context)
	}
	r.contexts[locale] = ctx
	r.derived = make(map[string]*Context)
}

// Locales lists the registered locales.
func (r *ContextRegistry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.contexts))
	for locale := range r.contexts {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Context resolves the context for locale. Registered contexts of the locale
// and its fallbacks win over derived ones; the default locale is the last
// resort.
func (r *ContextRegistry) Context(locale string) (*Context, bool) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = r.defaultLocale
	}
	candidates := r.candidateLocales(locale)

	r.mu.RLock()
	for _, candidate := range candidates {
		if ctx, ok := r.contexts[candidate]; ok {
			r.mu.RUnlock()
			return ctx, true
		}
	}
	r.mu.RUnlock()

	if r.platform {
		for _, candidate := range candidates {
			if ctx, ok := r.derive(candidate); ok {
				return ctx, true
			}
		}
	}

	if r.defaultLocale != "" && r.defaultLocale != locale {
		r.mu.RLock()
		ctx, ok := r.contexts[r.defaultLocale]
		r.mu.RUnlock()
		if ok {
			r.logger.Debug("date-time context falls back to default locale",
				"locale", locale, "default", r.defaultLocale)
			return ctx, true
		}
	}

	return nil, false
}

// DateTimeFormat resolves the context for locale and binds layout to it.
func (r *ContextRegistry) DateTimeFormat(locale, layout string) (*DateTimeFormat, error) {
	ctx, ok := r.Context(locale)
	if !ok {
		return nil, fmt.Errorf("textformat: no date-time context for locale %q", locale)
	}
	return NewDateTimeFormatFromLayout(ctx, layout)
}

func (r *ContextRegistry) derive(locale string) (*Context, bool) {
	r.mu.RLock()
	cached, seen := r.derived[locale]
	r.mu.RUnlock()
	if seen {
		return cached, cached != nil
	}

	ctx, ok := ContextFromLocale(locale)
	if !ok {
		r.logger.Debug("locale names unavailable", "locale", locale)
		ctx = nil
	}

	r.mu.Lock()
	r.derived[locale] = ctx
	r.mu.Unlock()

	return ctx, ok
}

func (r *ContextRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(locale) {
			if fallback == "" || containsLocale(chain, fallback) {
				continue
			}
			chain = append(chain, fallback)
		}
	}
	for _, parent := range localeParentChain(locale) {
		if !containsLocale(chain, parent) {
			chain = append(chain, parent)
		}
	}
	return chain
}
