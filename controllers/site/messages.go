package sitecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/i18n"
	"github.com/kevin997/Olku-Olkanda/middleware"
)

// GET /site/:locale/messages
// LocaleMessages serves the message bundle for a validated locale.
func LocaleMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Default
		if v, ok := c.Get(middleware.LocaleKey); ok {
			locale = v.(i18n.Locale)
		}

		c.JSON(http.StatusOK, gin.H{
			"locale":   locale,
			"messages": i18n.Messages(locale),
		})
	}
}
