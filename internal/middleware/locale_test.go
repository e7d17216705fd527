package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"opatija/backend/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func localeProbe(t *testing.T) (*gin.Engine, *i18n.Locale) {
	t.Helper()

	var got i18n.Locale
	engine := gin.New()
	engine.Use(Locale(i18n.DefaultLocale))
	engine.GET("/probe", func(c *gin.Context) {
		got = LocaleFromContext(c)
		c.Status(http.StatusOK)
	})
	return engine, &got
}

func TestLocaleDefault(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, i18n.LocaleEnglish, *got)
}

func TestLocaleFromCookie(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "language", Value: "he"})
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, i18n.LocaleHebrew, *got)
}

func TestLocaleFromAcceptLanguage(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Accept-Language", "he-IL,he;q=0.9,en;q=0.8")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, i18n.LocaleHebrew, *got)
}

func TestLocaleInvalidCookieFallsThroughToHeader(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "language", Value: "xx"})
	req.Header.Set("Accept-Language", "he-IL,he;q=0.9")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, i18n.LocaleHebrew, *got, "unparseable cookie does not mask the header")
}

func TestLocaleQueryOverridePersistsCookie(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe?lang=he", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, i18n.LocaleHebrew, *got)

	var persisted bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "language" && cookie.Value == "he" {
			persisted = true
		}
	}
	assert.True(t, persisted, "explicit override stored in the language cookie")
}

func TestLocaleIgnoresUnknownOverride(t *testing.T) {
	engine, got := localeProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: "language", Value: "he"})
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, i18n.LocaleHebrew, *got, "invalid override leaves cookie choice in effect")
}
