package textformat

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-textformat/calendar"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(
		WithLocales("fr", "en", "en"),
		WithDefaultLocale("fr"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != "fr" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}

	expected := []string{"en", "fr"}
	if len(cfg.Locales) != len(expected) {
		t.Fatalf("Locales length = %d, want %d", len(cfg.Locales), len(expected))
	}
	for i, locale := range expected {
		if cfg.Locales[i] != locale {
			t.Fatalf("Locales[%d] = %q, want %q", i, cfg.Locales[i], locale)
		}
	}

	if cfg.Resolver == nil {
		t.Fatal("expected fallback resolver")
	}
	if cfg.Logger == nil {
		t.Fatal("expected default logger")
	}

	got := cfg.Registry().Locales()
	if strings.Join(got, ",") != "en,fr" {
		t.Fatalf("registry locales = %v", got)
	}
}

func TestNewConfigDefaultLocaleFromLocales(t *testing.T) {
	cfg, err := NewConfig(WithLocales("es", "de"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLocale != "de" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestNewConfigRejectsUnknownDefault(t *testing.T) {
	if _, err := NewConfig(WithDefaultLocale("xx")); err == nil {
		t.Fatal("expected error for default locale without names")
	}
	if _, err := NewConfig(WithDefaultLocale("xx"), WithPlatformLocales(true)); err != nil {
		t.Fatalf("platform locales should allow derived defaults: %v", err)
	}
}

func TestConfigWithNames(t *testing.T) {
	custom := EnglishNames
	custom.DayPeriods = [2]string{"a.m.", "p.m."}

	cfg, err := NewConfig(WithNames("en-CA", custom))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	format, err := cfg.DateTimeFormat("en_CA", "KK:mm a")
	if err != nil {
		t.Fatalf("DateTimeFormat: %v", err)
	}
	out, err := format.Format(calendar.Date(1970, 1, 1, 15, 0, 0, 0, 0))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "03:00 p.m." {
		t.Fatalf("Format = %q", out)
	}

	broken := EnglishNames
	broken.ShortWeekdays[0] = ""
	if _, err := NewConfig(WithNames("en-CA", broken)); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := NewConfig(WithNames("", EnglishNames)); err == nil {
		t.Fatal("expected missing locale error")
	}
}

func TestConfigWithNamesFiles(t *testing.T) {
	cfg, err := NewConfig(
		WithNamesFile(filepath.Join("testdata", "names.json")),
		WithNamesOverride("fr", filepath.Join("testdata", "names_fr_override.yaml")),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	names := cfg.Names()
	if names["it"].LongMonths[0] != "gennaio" {
		t.Fatalf("it January = %q", names["it"].LongMonths[0])
	}
	if names["fr"].LongMonths[0] != "JANVIER" {
		t.Fatalf("fr January = %q", names["fr"].LongMonths[0])
	}

	if _, err := NewConfig(WithNamesFile(filepath.Join("testdata", "absent.json"))); err == nil {
		t.Fatal("expected load error")
	}
}

func TestConfigWithFallbackOption(t *testing.T) {
	cfg, err := NewConfig(
		WithLocales("en", "es"),
		WithDefaultLocale("en"),
		WithFallback("ca", "es"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	chain := cfg.Resolver.Resolve("ca")
	if len(chain) != 1 || chain[0] != "es" {
		t.Fatalf("Resolve(ca) = %v", chain)
	}

	ctx, ok := cfg.Registry().Context("ca")
	if !ok || ctx.Names().LongMonths[0] != "enero" {
		t.Fatalf("ca should fall back to es, got %v", ctx)
	}
}

func TestConfigWithFallbackKeepsCustomResolver(t *testing.T) {
	custom := resolverFunc(func(locale string) []string { return []string{"de"} })

	cfg, err := NewConfig(
		WithFallbackResolver(custom),
		WithFallback("ca", "es"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if chain := cfg.Resolver.Resolve("ca"); len(chain) != 1 || chain[0] != "de" {
		t.Fatalf("custom resolver should be kept, got %v", chain)
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := NewConfig(WithDefaultLocale("en"), WithLogger(logger))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if _, ok := cfg.Registry().Context("pt-BR"); !ok {
		t.Fatal("expected default locale fallback")
	}

	if !strings.Contains(buf.String(), "names loaded") {
		t.Fatalf("log output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "falls back to default locale") {
		t.Fatalf("log output = %q", buf.String())
	}
}

type resolverFunc func(locale string) []string

func (f resolverFunc) Resolve(locale string) []string {
	return f(locale)
}

func TestConfigRegistryConcurrentAccess(t *testing.T) {
	cfg, err := NewConfig(WithLocales("en", "fr"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	const workers = 8
	registries := make([]*ContextRegistry, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registries[i] = cfg.Registry()
			if _, err := cfg.DateTimeFormat("fr", "d MMMM yyyy"); err != nil {
				t.Errorf("DateTimeFormat: %v", err)
			}
		}(i)
	}
	wg.Wait()

	for i, registry := range registries {
		if registry == nil || registry != registries[0] {
			t.Fatalf("worker %d got registry %p, want %p", i, registry, registries[0])
		}
	}
}
