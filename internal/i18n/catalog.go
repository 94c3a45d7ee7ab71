package i18n

import (
	"fmt"
	"net/http"
	"strings"
)

// Locale identifies a supported display language.
type Locale string

const (
	RU Locale = "ru"
	EN Locale = "en"
)

// Locales returns the supported locales.
func Locales() []Locale { return []Locale{RU, EN} }

// ParseLocale resolves a language tag such as "en-US" into a Locale.
func ParseLocale(value string) (Locale, bool) {
	tag := strings.ToLower(strings.TrimSpace(value))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case RU:
		return RU, true
	case EN:
		return EN, true
	default:
		return "", false
	}
}

// Catalog maps (locale, key) pairs to display strings. It is immutable after
// construction.
type Catalog struct {
	fallback Locale
	tables   map[Locale]map[string]string
}

// NewCatalog builds a catalog over the built-in tables. Lookups for a locale
// without a table use fallback.
func NewCatalog(fallback Locale) (*Catalog, error) {
	if _, ok := builtin[fallback]; !ok {
		return nil, fmt.Errorf("i18n: unsupported fallback locale %q", fallback)
	}
	return &Catalog{fallback: fallback, tables: builtin}, nil
}

// Default returns the catalog's fallback locale.
func (c *Catalog) Default() Locale { return c.fallback }

// Label returns the string for key in locale, the fallback locale's string
// when the locale lacks it, and the key itself otherwise.
func (c *Catalog) Label(locale Locale, key string) string {
	if table, ok := c.tables[locale]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := c.tables[c.fallback][key]; ok {
		return v
	}
	return key
}

// Labelf formats the string for key with args.
func (c *Catalog) Labelf(locale Locale, key string, args ...any) string {
	return fmt.Sprintf(c.Label(locale, key), args...)
}

// FromRequest picks the locale for r: the lang query parameter, then the
// lang cookie, then the first supported Accept-Language tag, then the
// catalog default.
func (c *Catalog) FromRequest(r *http.Request) Locale {
	if r == nil {
		return c.fallback
	}
	if loc, ok := ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}
	if cookie, err := r.Cookie("lang"); err == nil {
		if loc, ok := ParseLocale(cookie.Value); ok {
			return loc
		}
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(part, ";")
		if loc, ok := ParseLocale(tag); ok {
			return loc
		}
	}
	return c.fallback
}
