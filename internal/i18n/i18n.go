// Package i18n provides the display-language layer for the site: a locale
// enumeration with text directionality and a compiled-in translation bundle.
// Language resolution and lookup never fail; a missing key is returned
// verbatim so untranslated content stays visible instead of blank.
package i18n

import "strings"

// Locale identifies a selectable display language.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHebrew  Locale = "he"
)

// DefaultLocale is used when no valid preference is present.
const DefaultLocale = LocaleEnglish

// Direction is the document-level text direction of a locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Locales lists every supported locale, default first.
func Locales() []Locale {
	return []Locale{LocaleEnglish, LocaleHebrew}
}

// ParseLocale validates a locale code. Unknown or empty codes resolve to
// the default locale with ok=false.
func ParseLocale(code string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(code))) {
	case LocaleEnglish:
		return LocaleEnglish, true
	case LocaleHebrew:
		return LocaleHebrew, true
	default:
		return DefaultLocale, false
	}
}

func (l Locale) Direction() Direction {
	if l == LocaleHebrew {
		return DirectionRTL
	}
	return DirectionLTR
}

func (l Locale) IsRTL() bool {
	return l.Direction() == DirectionRTL
}

// Bundle is an immutable locale -> key -> string mapping.
type Bundle struct {
	tables map[Locale]map[string]string
}

// NewBundle returns the bundle backed by the compiled-in tables.
func NewBundle() *Bundle {
	return &Bundle{tables: translations}
}

// T looks up key in the given locale. Misses fall back to the default
// locale, then to the key itself. Pure and side-effect free.
func (b *Bundle) T(locale Locale, key string) string {
	if table, ok := b.tables[locale]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if locale != DefaultLocale {
		if v, ok := b.tables[DefaultLocale][key]; ok {
			return v
		}
	}
	return key
}

// Func binds T to a locale for use by page assembly.
func (b *Bundle) Func(locale Locale) func(string) string {
	return func(key string) string {
		return b.T(locale, key)
	}
}

// Keys returns every key present in the default locale table.
func (b *Bundle) Keys() []string {
	table := b.tables[DefaultLocale]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}
