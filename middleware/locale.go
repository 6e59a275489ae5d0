package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/i18n"
)

// LocaleKey is the context key the validated locale is stored under.
const LocaleKey = "locale"

// ValidateLocale rejects requests whose :locale path segment is not a
// supported language with a 404, and stores the validated locale in the
// request context otherwise.
func ValidateLocale(c *gin.Context) {
	tag := c.Param("locale")
	if !i18n.Supported(tag) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locale not found"})
		c.Abort()
		return
	}
	c.Set(LocaleKey, i18n.Locale(tag))
	c.Next()
}
