package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/catalog"
	cartControllers "github.com/kevin997/Olku-Olkanda/controllers/cart"
	checkoutController "github.com/kevin997/Olku-Olkanda/controllers/checkout"
)

// SetupCartRoutes registers the session and cart endpoints. Carts are
// anonymous per-session values; there is no login.
func SetupCartRoutes(r *gin.Engine, cat *catalog.Catalog, store *cart.Store, cfg Config) {
	api := r.Group("/api")
	{
		api.POST("/session", cartControllers.CreateSession(store)) // POST /api/session

		cartGroup := api.Group("/cart/:cart_id")
		{
			cartGroup.GET("", cartControllers.GetCart(store))                             // GET    /api/cart/:cart_id
			cartGroup.DELETE("", cartControllers.ClearCart(store))                        // DELETE /api/cart/:cart_id
			cartGroup.POST("/items", cartControllers.AddCartItem(cat, store))             // POST   /api/cart/:cart_id/items
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(store))    // PUT    /api/cart/:cart_id/items/:product_id
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(store)) // DELETE /api/cart/:cart_id/items/:product_id

			cartGroup.POST("/checkout", checkoutController.Checkout(store, cfg.WhatsAppPhone)) // POST /api/cart/:cart_id/checkout?lang=
		}
	}
}
