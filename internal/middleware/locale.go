package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"opatija/backend/internal/i18n"
)

const (
	localeContextKey = "locale"
	localeCookieName = "language"
	localeCookieAge  = 60 * 60 * 24 * 365
)

// Locale resolves the request language: an explicit ?lang override wins,
// then the language cookie, then the Accept-Language header, then the
// configured default. Explicit overrides are persisted back to the cookie.
func Locale(defaultLocale i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := defaultLocale

		if parsed, ok := cookieLocale(c); ok {
			locale = parsed
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			if parsed, ok := matchAcceptLanguage(header); ok {
				locale = parsed
			}
		}

		if lang := c.Query("lang"); lang != "" {
			if parsed, ok := i18n.ParseLocale(lang); ok {
				locale = parsed
				c.SetCookie(localeCookieName, string(parsed), localeCookieAge, "/", "", false, false)
			}
		}

		c.Set(localeContextKey, locale)

		c.Next()
	}
}

// LocaleFromContext returns the locale resolved by the Locale middleware,
// falling back to the default when the middleware did not run.
func LocaleFromContext(c *gin.Context) i18n.Locale {
	if val, ok := c.Get(localeContextKey); ok {
		if locale, ok := val.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}

// SetLocaleCookie persists an explicit language choice.
func SetLocaleCookie(c *gin.Context, locale i18n.Locale) {
	c.SetCookie(localeCookieName, string(locale), localeCookieAge, "/", "", false, false)
}

func cookieLocale(c *gin.Context) (i18n.Locale, bool) {
	cookie, err := c.Cookie(localeCookieName)
	if err != nil {
		return "", false
	}
	return i18n.ParseLocale(cookie)
}

func matchAcceptLanguage(header string) (i18n.Locale, bool) {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if idx := strings.Index(tag, "-"); idx >= 0 {
			tag = tag[:idx]
		}
		if locale, ok := i18n.ParseLocale(tag); ok {
			return locale, true
		}
	}
	return "", false
}
