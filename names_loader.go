package textformat

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/default_names.yaml
var defaultNamesYAML []byte

type rawNames struct {
	ShortWeekdays []string `json:"short_weekdays" yaml:"short_weekdays"`
	LongWeekdays  []string `json:"long_weekdays" yaml:"long_weekdays"`
	ShortMonths   []string `json:"short_months" yaml:"short_months"`
	LongMonths    []string `json:"long_months" yaml:"long_months"`
	DayPeriods    []string `json:"day_periods" yaml:"day_periods"`
}

type namesDocument struct {
	Locales map[string]rawNames `json:"locales" yaml:"locales"`
}

// NamesLoader loads locale name tables from the embedded defaults and from
// JSON or YAML files.
type NamesLoader struct {
	paths     []string
	overrides map[string]string
}

// NewNamesLoader creates a loader. Each path holds a "locales" document.
func NewNamesLoader(paths ...string) *NamesLoader {
	return &NamesLoader{
		paths:     append([]string(nil), paths...),
		overrides: make(map[string]string),
	}
}

// AddOverride registers a file holding the names of a single locale.
func (l *NamesLoader) AddOverride(locale, path string) {
	if l.overrides == nil {
		l.overrides = make(map[string]string)
	}
	l.overrides[normalizeLocale(locale)] = path
}

// Load merges the embedded defaults, the documents and the overrides, later
// sources taking precedence.
func (l *NamesLoader) Load() (map[string]Names, error) {
	result, err := DefaultNames()
	if err != nil {
		return nil, err
	}
	if l == nil {
		return result, nil
	}

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("textformat: read %s: %w", path, err)
		}
		doc, err := decodeNamesDocument(path, data)
		if err != nil {
			return nil, fmt.Errorf("textformat: decode %s: %w", path, err)
		}
		for locale, names := range doc {
			result[locale] = names
		}
	}

	for locale, path := range l.overrides {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("textformat: read names override for %q: %w", locale, err)
		}
		var raw rawNames
		if err := unmarshalByExtension(path, data, &raw); err != nil {
			return nil, fmt.Errorf("textformat: decode names override for %q: %w", locale, err)
		}
		names, err := raw.toNames()
		if err != nil {
			return nil, fmt.Errorf("textformat: names override for %q: %w", locale, err)
		}
		result[locale] = names
	}

	return result, nil
}

// DefaultNames returns the embedded name tables keyed by locale.
func DefaultNames() (map[string]Names, error) {
	names, err := decodeNamesDocument("default_names.yaml", defaultNamesYAML)
	if err != nil {
		return nil, fmt.Errorf("parse default names: %w", err)
	}
	return names, nil
}

func decodeNamesDocument(path string, data []byte) (map[string]Names, error) {
	var doc namesDocument
	if err := unmarshalByExtension(path, data, &doc); err != nil {
		return nil, err
	}

	result := make(map[string]Names, len(doc.Locales))
	for locale, raw := range doc.Locales {
		names, err := raw.toNames()
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		result[normalizeLocale(locale)] = names
	}
	return result, nil
}

func unmarshalByExtension(path string, data []byte, out any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported extension %s", ext)
	}
}

func (r rawNames) toNames() (Names, error) {
	var names Names
	if err := copyNames("short_weekdays", names.ShortWeekdays[:], r.ShortWeekdays); err != nil {
		return Names{}, err
	}
	if err := copyNames("long_weekdays", names.LongWeekdays[:], r.LongWeekdays); err != nil {
		return Names{}, err
	}
	if err := copyNames("short_months", names.ShortMonths[:], r.ShortMonths); err != nil {
		return Names{}, err
	}
	if err := copyNames("long_months", names.LongMonths[:], r.LongMonths); err != nil {
		return Names{}, err
	}
	if err := copyNames("day_periods", names.DayPeriods[:], r.DayPeriods); err != nil {
		return Names{}, err
	}
	return names, names.Validate()
}

func copyNames(field string, dst, src []string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%s: expected %d names, got %d", field, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
