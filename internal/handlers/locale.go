package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opatija/backend/internal/i18n"
	"opatija/backend/internal/middleware"
)

type setLocaleRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLocale persists an explicit language choice in the language cookie.
func (h HandlerSet) SetLocale(c *gin.Context) {
	var req setLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	locale, ok := i18n.ParseLocale(req.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_language"})
		return
	}

	middleware.SetLocaleCookie(c, locale)

	c.JSON(http.StatusOK, gin.H{
		"language": string(locale),
		"dir":      string(locale.Direction()),
		"rtl":      locale.IsRTL(),
	})
}
