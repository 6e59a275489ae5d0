package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/catalog"
)

// Config carries the externally configured values handlers need.
type Config struct {
	// WhatsAppPhone is the digits-only business number checkout links target.
	WhatsAppPhone string
	// BaseURL is the public site URL used in the sitemap.
	BaseURL string
}

// SetupRoutes is the single entry-point that wires up the catalog, cart, and
// site route groups.
func SetupRoutes(r *gin.Engine, cat *catalog.Catalog, store *cart.Store, cfg Config) {
	// Catalog browsing + inquiry links
	SetupCatalogRoutes(r, cat, cfg)

	// Cart sessions + checkout handoff
	SetupCartRoutes(r, cat, store, cfg)

	// Localized site metadata (message bundles, sitemap)
	SetupSiteRoutes(r, cfg)
}
