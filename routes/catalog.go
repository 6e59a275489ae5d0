package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/catalog"
	catalogController "github.com/kevin997/Olku-Olkanda/controllers/catalog"
	checkoutController "github.com/kevin997/Olku-Olkanda/controllers/checkout"
)

// SetupCatalogRoutes registers all "/api/products" and "/api/categories"
// endpoints. The catalog is public and read-only.
func SetupCatalogRoutes(r *gin.Engine, cat *catalog.Catalog, cfg Config) {
	api := r.Group("/api")
	{
		api.GET("/products", catalogController.GetProducts(cat))                                    // GET /api/products?category=&in_stock=
		api.GET("/products/export", catalogController.ExportProductsToExcel(cat))                   // GET /api/products/export
		api.GET("/products/:id", catalogController.GetProductByID(cat))                             // GET /api/products/:id
		api.GET("/products/:id/inquiry", checkoutController.ProductInquiry(cat, cfg.WhatsAppPhone)) // GET /api/products/:id/inquiry?lang=
		api.GET("/categories", catalogController.GetAllCategories(cat))                             // GET /api/categories
	}
}
