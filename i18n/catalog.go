// Package i18n loads translation catalogs and resolves labels for the filter form.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	ErrNoLocales           = errors.New("no locale files found")
	ErrUnsupportedFallback = errors.New("fallback language has no locale file")
)

// TFunc looks up a label by key. Unknown keys are returned unchanged.
type TFunc func(key string) string

// Catalog holds flat key→label maps per language.
type Catalog struct {
	messages map[string]map[string]string
	tags     []language.Tag // tags[0] is always the fallback
	matcher  language.Matcher
	fallback string
}

// NewDefaultCatalog loads the locales compiled into the binary.
func NewDefaultCatalog(fallback string) (*Catalog, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return LoadCatalog(sub, fallback)
}

// LoadCatalog reads every <lang>.yaml file at the root of fsys.
func LoadCatalog(fsys fs.FS, fallback string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	messages := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("invalid locale file name %q: %w", entry.Name(), err)
		}

		raw, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
		}
		labels := make(map[string]string)
		if err := yaml.Unmarshal(raw, &labels); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
		}
		messages[lang] = labels
	}

	if len(messages) == 0 {
		return nil, ErrNoLocales
	}
	if _, ok := messages[fallback]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFallback, fallback)
	}

	langs := make([]string, 0, len(messages))
	for lang := range messages {
		if lang != fallback {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	tags := make([]language.Tag, 0, len(messages))
	tags = append(tags, language.MustParse(fallback))
	for _, lang := range langs {
		tags = append(tags, language.MustParse(lang))
	}

	return &Catalog{
		messages: messages,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}, nil
}

// Languages returns the supported languages, fallback first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

func (c *Catalog) Fallback() string {
	return c.fallback
}

// Match picks the supported language for an Accept-Language header or a bare tag.
func (c *Catalog) Match(accept string) string {
	if strings.TrimSpace(accept) == "" {
		return c.fallback
	}
	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return c.fallback
	}
	_, index, confidence := c.matcher.Match(desired...)
	if confidence == language.No {
		return c.fallback
	}
	return c.tags[index].String()
}

// Translator returns the label lookup for lang. Unsupported languages use the fallback.
func (c *Catalog) Translator(lang string) TFunc {
	primary, ok := c.messages[lang]
	if !ok {
		primary = c.messages[c.fallback]
	}
	fallback := c.messages[c.fallback]

	return func(key string) string {
		if label, ok := primary[key]; ok {
			return label
		}
		if label, ok := fallback[key]; ok {
			return label
		}
		return key
	}
}
