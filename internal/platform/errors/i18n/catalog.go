// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogs = map[string]*Catalog{
		BaseLocale: NewCatalog(BaseLocale, enUSMessages),
		"ru-RU":    NewCatalog("ru-RU", ruRUMessages),
	}

	builtinTags = []language.Tag{language.AmericanEnglish, language.Russian}
	matcher     = language.NewMatcher(builtinTags)
)

// GetCatalog returns the catalog for the given locale.
// An exact locale match wins; otherwise the closest built-in language is used,
// falling back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := catalogs[requested]; ok {
		return c
	}

	_, index, confidence := matcher.Match(language.Make(requested))
	if confidence == language.No {
		index = 0
	}
	resolved := BaseLocale
	if builtinTags[index] == language.Russian {
		resolved = "ru-RU"
	}
	return catalogs[resolved]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata so output is
// consistent (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}
