package textformat

import (
	"strings"
	"sync"
	"testing"
)

func TestContextRegistryResolution(t *testing.T) {
	names, err := DefaultNames()
	if err != nil {
		t.Fatalf("DefaultNames: %v", err)
	}

	resolver := NewStaticFallbackResolver()
	resolver.Set("gl", "es")

	registry := NewContextRegistry(
		WithRegistryNames(map[string]Names{"fr": names["fr"], "es": names["es"]}),
		WithRegistryResolver(resolver),
		WithRegistryDefaultLocale("en"),
	)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "fr", want: "janvier"},
		{locale: "fr-CA", want: "janvier"},
		{locale: "fr_CA", want: "janvier"},
		{locale: "gl", want: "enero"},
		{locale: "es-419", want: "enero"},
		{locale: "ja", want: "January"},
		{locale: "", want: "January"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			ctx, ok := registry.Context(tt.locale)
			if !ok {
				t.Fatalf("Context(%q) not found", tt.locale)
			}
			if got := ctx.Names().LongMonths[0]; got != tt.want {
				t.Fatalf("Context(%q) January = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestContextRegistryWithoutDefault(t *testing.T) {
	registry := NewContextRegistry()
	if _, ok := registry.Context("ja"); ok {
		t.Fatal("unexpected context for ja")
	}
	if _, ok := registry.Context("en-GB"); !ok {
		t.Fatal("en-GB should resolve to the built-in en context")
	}
}

func TestContextRegistryRegister(t *testing.T) {
	registry := NewContextRegistry()

	custom := EnglishNames
	custom.LongMonths[0] = "Janvier"
	registry.Register("en", custom)
	registry.Register("", custom)
	registry.RegisterContext("xx", nil)

	ctx, ok := registry.Context("en")
	if !ok || ctx.Names().LongMonths[0] != "Janvier" {
		t.Fatalf("Register should replace the context, got %v", ctx)
	}
	if strings.Join(registry.Locales(), ",") != "en" {
		t.Fatalf("Locales = %v", registry.Locales())
	}
}

func TestContextRegistryPlatformLocales(t *testing.T) {
	registry := NewContextRegistry(WithRegistryPlatformLocales(true))

	ctx, ok := registry.Context("fr-FR")
	if !ok {
		t.Fatal("expected derived French context")
	}
	again, _ := registry.Context("fr-FR")
	if ctx != again {
		t.Fatal("derived contexts should be cached")
	}

	if _, ok := registry.Context("qaa"); ok {
		t.Fatal("private-use locale should not resolve")
	}
}

func TestContextRegistryDateTimeFormat(t *testing.T) {
	registry := NewContextRegistry()

	format, err := registry.DateTimeFormat("en", "yyyy-MM-dd")
	if err != nil {
		t.Fatalf("DateTimeFormat: %v", err)
	}
	if format.Layout() != "yyyy-MM-dd" {
		t.Fatalf("Layout = %q", format.Layout())
	}

	if _, err := registry.DateTimeFormat("ja", "yyyy"); err == nil {
		t.Fatal("expected missing context error")
	}
	if _, err := registry.DateTimeFormat("en", "yyyy-QQ"); err == nil {
		t.Fatal("expected layout error")
	}
}

func TestContextRegistryConcurrentAccess(t *testing.T) {
	registry := NewContextRegistry(WithRegistryDefaultLocale("en"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				registry.Register("en-GB", EnglishNames)
				return
			}
			if _, ok := registry.Context("en-GB"); !ok {
				t.Errorf("Context(en-GB) not found")
			}
		}(i)
	}
	wg.Wait()
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("es_MX", "es", "es-MX", "en", "es", "")

	chain := resolver.Resolve("es-MX")
	if strings.Join(chain, ",") != "es,en" {
		t.Fatalf("Resolve = %v", chain)
	}

	chain[0] = "mutated"
	if resolver.Resolve("es-MX")[0] != "es" {
		t.Fatal("Resolve should return a copy")
	}

	if resolver.Resolve("fr") != nil {
		t.Fatal("unknown locale should have no chain")
	}

	var nilResolver *StaticFallbackResolver
	if nilResolver.Resolve("es") != nil {
		t.Fatal("nil resolver should resolve nothing")
	}
}

func TestLocaleParentChain(t *testing.T) {
	if got := strings.Join(localeParentChain("fr-CA"), ","); got != "fr" {
		t.Fatalf("fr-CA parents = %q", got)
	}
	if got := localeParentChain("en"); len(got) != 0 {
		t.Fatalf("en parents = %v", got)
	}
	if got := normalizeLocales([]string{" es_MX", "en", "es-MX", ""}); strings.Join(got, ",") != "en,es-MX" {
		t.Fatalf("normalizeLocales = %v", got)
	}
}
