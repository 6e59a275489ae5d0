package sitecontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/sitemap.xml", Sitemap("https://olkunda.com"))

	siteGroup := r.Group("/site/:locale")
	siteGroup.Use(middleware.ValidateLocale)
	siteGroup.GET("/messages", LocaleMessages())
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSitemap(t *testing.T) {
	r := newRouter()
	w := get(r, "/sitemap.xml")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, "<loc>https://olkunda.com</loc>")
	assert.Contains(t, body, "<loc>https://olkunda.com/fr</loc>")
	assert.Contains(t, body, "<loc>https://olkunda.com/en</loc>")
	assert.Contains(t, body, `hreflang="fr"`)
	assert.Contains(t, body, `hreflang="en"`)
	assert.Contains(t, body, "http://www.sitemaps.org/schemas/sitemap/0.9")
}

func TestLocaleMessages(t *testing.T) {
	r := newRouter()

	t.Run("french bundle", func(t *testing.T) {
		w := get(r, "/site/fr/messages")
		require.Equal(t, http.StatusOK, w.Code)

		var out struct {
			Locale   string            `json:"locale"`
			Messages map[string]string `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "fr", out.Locale)
		assert.Equal(t, "Votre panier", out.Messages["cart.title"])
	})

	t.Run("english bundle", func(t *testing.T) {
		w := get(r, "/site/en/messages")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"locale":"en"`)
	})

	t.Run("unknown locale is a 404", func(t *testing.T) {
		w := get(r, "/site/de/messages")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
