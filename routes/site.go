package routes

import (
	"github.com/gin-gonic/gin"
	sitecontroller "github.com/kevin997/Olku-Olkanda/controllers/site"
	"github.com/kevin997/Olku-Olkanda/middleware"
)

// SetupSiteRoutes registers the localized site metadata endpoints and the
// sitemap. Requires the locale middleware on localized paths.
func SetupSiteRoutes(r *gin.Engine, cfg Config) {
	r.GET("/sitemap.xml", sitecontroller.Sitemap(cfg.BaseURL))

	siteGroup := r.Group("/site/:locale")
	siteGroup.Use(middleware.ValidateLocale)
	{
		siteGroup.GET("/messages", sitecontroller.LocaleMessages()) // GET /site/:locale/messages
	}
}
