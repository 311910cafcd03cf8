package textformat

import (
	"bytes"
	"testing"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

type pageData struct {
	Locale string
	Amount float64
	When   time.Time
}

func TestTemplateHelpers(t *testing.T) {
	cfg, err := NewConfig(WithLocales("en", "fr"), WithDefaultLocale("en"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	tmpl := template.Must(template.New("page").Funcs(TemplateHelpers(cfg, "")).Parse(
		`{{format_fixed "french" 2 .Amount}}|{{format_date . "d MMMM yyyy" .When}}|{{locale_number "de" 1 .Amount}}`))

	data := pageData{
		Locale: "fr",
		Amount: 1234.5,
		When:   time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "1 234,50|20 septembre 2024|1.234,5"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}
}

func TestFormatNumberHelper(t *testing.T) {
	helpers := TemplateHelpers(nil, "")
	formatNumber := helpers["format_number"].(func(string, any) (string, error))

	tests := []struct {
		value any
		want  string
	}{
		{value: 1234567, want: "1,234,567"},
		{value: int64(-5), want: "-5"},
		{value: 0.5, want: "0.5"},
		{value: "1000.25", want: "1,000.25"},
		{value: decimal.RequireFromString("12.3456"), want: "12.346"},
	}
	for _, tt := range tests {
		got, err := formatNumber("uk", tt.value)
		if err != nil {
			t.Fatalf("format_number(%v): %v", tt.value, err)
		}
		if got != tt.want {
			t.Fatalf("format_number(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}

	if _, err := formatNumber("klingon", 1); err == nil {
		t.Fatal("expected unknown style error")
	}
	if _, err := formatNumber("uk", []int{1}); err == nil {
		t.Fatal("expected invalid value error")
	}

	formatDate := helpers["format_date"].(func(any, string, time.Time) (string, error))
	if _, err := formatDate("en", "yyyy", time.Now()); err == nil {
		t.Fatal("format_date without config should fail")
	}
}

func TestExtractLocale(t *testing.T) {
	tests := []struct {
		data any
		want string
	}{
		{data: nil, want: "en"},
		{data: "fr", want: "fr"},
		{data: map[string]any{"Locale": "es"}, want: "es"},
		{data: map[string]string{"Locale": "de"}, want: "de"},
		{data: &pageData{Locale: "it"}, want: "it"},
		{data: (*pageData)(nil), want: "en"},
		{data: 42, want: "en"},
	}
	for _, tt := range tests {
		if got := extractLocale(tt.data, "", "en"); got != tt.want {
			t.Fatalf("extractLocale(%v) = %q, want %q", tt.data, got, tt.want)
		}
	}
}
