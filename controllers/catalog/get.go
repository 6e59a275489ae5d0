package catalogcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/catalog"
	"github.com/kevin997/Olku-Olkanda/models"
	"github.com/kevin997/Olku-Olkanda/pricing"
)

// GetProducts returns the catalog, optionally filtered.
// Query params: category (one of the six sections), in_stock (bool).
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := cat.All()

		if v := c.Query("category"); v != "" {
			category := models.Category(v)
			if !category.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			products = cat.ByCategory(category)
		}

		if v := c.Query("in_stock"); v != "" {
			inStock, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid in_stock"})
				return
			}
			filtered := make([]models.Product, 0, len(products))
			for _, p := range products {
				if p.InStock == inStock {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product with its display price.
// URL param: /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := cat.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":         product,
			"formatted_price": pricing.Format(product.Price, product.Currency),
		})
	}
}

// GetAllCategories returns the categories present in the catalog, first-seen
// order, with their display labels.
func GetAllCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		type categoryView struct {
			ID    models.Category `json:"id"`
			Label string          `json:"label"`
		}

		categories := cat.Categories()
		out := make([]categoryView, 0, len(categories))
		for _, cc := range categories {
			out = append(out, categoryView{ID: cc, Label: models.CategoryLabels[cc]})
		}
		c.JSON(http.StatusOK, out)
	}
}
