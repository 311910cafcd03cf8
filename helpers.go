package textformat

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-textformat/calendar"
)

// TemplateHelpers returns text/template helper functions bound to cfg. The
// locale of locale-aware helpers is read from the template data under
// localeKey ("Locale" when empty).
func TemplateHelpers(cfg *Config, localeKey string) map[string]any {
	defaultLocale := "en"
	if cfg != nil && cfg.DefaultLocale != "" {
		defaultLocale = cfg.DefaultLocale
	}

	return map[string]any{
		"format_number": func(style string, value any) (string, error) {
			format, ok := Preset(style)
			if !ok {
				return "", fmt.Errorf("textformat: unknown number style %q", style)
			}
			return formatAny(format, value)
		},

		"format_fixed": func(style string, decimals int, value any) (string, error) {
			format, ok := Preset(style)
			if !ok {
				return "", fmt.Errorf("textformat: unknown number style %q", style)
			}
			return formatAny(format.WithNDecimals(decimals), value)
		},

		"locale_number": func(data any, decimals int, value any) (string, error) {
			locale := extractLocale(data, localeKey, defaultLocale)
			format, ok := NumberFormatFromLocale(locale)
			if !ok {
				format = PlainNumber
			}
			return formatAny(format.WithNDecimals(decimals), value)
		},

		"format_date": func(data any, layout string, value time.Time) (string, error) {
			if cfg == nil {
				return "", fmt.Errorf("textformat: format_date requires a config")
			}
			locale := extractLocale(data, localeKey, defaultLocale)
			format, err := cfg.DateTimeFormat(locale, layout)
			if err != nil {
				return "", err
			}
			return format.Format(calendar.New(value))
		},
	}
}

func formatAny(format NumberFormat, value any) (string, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return format.Format(v)
	case float64:
		return format.FormatFloat(v)
	case float32:
		return format.FormatFloat(float64(v))
	case int:
		return format.FormatInt(int64(v))
	case int64:
		return format.FormatInt(v)
	case int32:
		return format.FormatInt(int64(v))
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
		}
		return format.Format(parsed)
	default:
		return "", fmt.Errorf("%w: cannot format %T as a number", ErrInvalidValue, value)
	}
}

// extractLocale reads the locale from template data: a string, a map entry or
// a struct field named localeKey.
func extractLocale(data any, localeKey, fallback string) string {
	if data == nil {
		return fallback
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fallback
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return fallback
}
