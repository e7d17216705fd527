package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		code string
		want Locale
		ok   bool
	}{
		{"en", LocaleEnglish, true},
		{"EN", LocaleEnglish, true},
		{" he ", LocaleHebrew, true},
		{"fr", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLocale(tt.code)
		assert.Equal(t, tt.ok, ok, "code %q", tt.code)
		if tt.ok {
			assert.Equal(t, tt.want, got, "code %q", tt.code)
		}
	}
}

func TestLocaleDirection(t *testing.T) {
	assert.Equal(t, DirectionLTR, LocaleEnglish.Direction())
	assert.False(t, LocaleEnglish.IsRTL())

	assert.Equal(t, DirectionRTL, LocaleHebrew.Direction())
	assert.True(t, LocaleHebrew.IsRTL())
}

func TestBundleTranslationTablesMatch(t *testing.T) {
	bundle := NewBundle()
	keys := bundle.Keys()
	require.NotEmpty(t, keys)

	for _, key := range keys {
		for _, locale := range Locales() {
			value := bundle.T(locale, key)
			assert.NotEmpty(t, value, "key %q locale %q", key, locale)
			assert.NotEqual(t, key, value, "key %q untranslated in %q", key, locale)
		}
	}
}

func TestBundleFallsBackToKey(t *testing.T) {
	bundle := NewBundle()

	assert.Equal(t, "no.such.key", bundle.T(LocaleEnglish, "no.such.key"))
	assert.Equal(t, "no.such.key", bundle.T(LocaleHebrew, "no.such.key"))
}

func TestBundleFunc(t *testing.T) {
	bundle := NewBundle()
	t1 := bundle.Func(LocaleHebrew)

	assert.Equal(t, bundle.T(LocaleHebrew, "nav.home"), t1("nav.home"))
	assert.NotEqual(t, bundle.T(LocaleEnglish, "nav.home"), t1("nav.home"))
}
