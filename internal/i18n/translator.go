// Package i18n loads the localized message tables once at startup and serves
// them through an immutable Translator.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m3rciful/barbot/internal/settings"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Languages lists the locales every table set must provide.
var Languages = []settings.Language{settings.English, settings.Ukrainian}

// Translator resolves message ids to localized text. It is safe for
// concurrent use because tables are never mutated after construction.
type Translator struct {
	tables   map[settings.Language]map[string]string
	fallback settings.Language
}

// Default builds a Translator from the tables compiled into the binary.
func Default() (*Translator, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return New(sub)
}

// New reads "<lang>.yaml" for every supported language from fsys.
// Nested YAML maps are flattened into dotted ids ("button.back").
// Every locale must define exactly the ids of the English table.
func New(fsys fs.FS) (*Translator, error) {
	t := &Translator{
		tables:   make(map[settings.Language]map[string]string, len(Languages)),
		fallback: settings.English,
	}
	for _, lang := range Languages {
		data, err := fs.ReadFile(fsys, string(lang)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", lang, err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", lang, err)
		}
		table := make(map[string]string)
		if err := flatten("", raw, table); err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", lang, err)
		}
		t.tables[lang] = table
	}
	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return t, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		id := k
		if prefix != "" {
			id = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[id] = val
		case map[string]any:
			if err := flatten(id, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("message %q must be a string, got %T", id, v)
		}
	}
	return nil
}

func (t *Translator) checkComplete() error {
	base := t.tables[t.fallback]
	for _, lang := range Languages {
		var missing []string
		for id := range base {
			if _, ok := t.tables[lang][id]; !ok {
				missing = append(missing, id)
			}
		}
		for id := range t.tables[lang] {
			if _, ok := base[id]; !ok {
				missing = append(missing, "+"+id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return fmt.Errorf("i18n: locale %s differs from %s: %s", lang, t.fallback, strings.Join(missing, ", "))
		}
	}
	return nil
}

// T returns the text for id in lang, formatted with args when given.
// Unknown languages fall back to English; unknown ids render as the id.
func (t *Translator) T(lang settings.Language, id string, args ...any) string {
	msg, ok := t.tables[lang][id]
	if !ok {
		msg, ok = t.tables[t.fallback][id]
	}
	if !ok {
		return id
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// YesNo returns the localized boolean labels.
func (t *Translator) YesNo(lang settings.Language) (yes, no string) {
	return t.T(lang, "common.yes"), t.T(lang, "common.no")
}

// Bool renders v with the localized boolean labels.
func (t *Translator) Bool(lang settings.Language, v bool) string {
	yes, no := t.YesNo(lang)
	if v {
		return yes
	}
	return no
}

// Has reports whether id exists in the English table.
func (t *Translator) Has(id string) bool {
	_, ok := t.tables[t.fallback][id]
	return ok
}
