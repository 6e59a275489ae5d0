package checkoutcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/catalog"
	"github.com/kevin997/Olku-Olkanda/i18n"
	"github.com/kevin997/Olku-Olkanda/whatsapp"
)

// POST /api/cart/:cart_id/checkout?lang=
// Checkout serializes the cart into a WhatsApp order message and returns the
// wa.me link. Opening the link is the client's job; nothing is sent from
// here. An empty cart cannot be checked out.
func Checkout(store *cart.Store, phone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")

		current := store.Get(id)
		if len(current) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		locale := i18n.Resolve(c.Query("lang"))
		c.JSON(http.StatusOK, gin.H{
			"url":     whatsapp.CheckoutLink(current, phone, locale),
			"message": whatsapp.CheckoutMessage(current, locale),
		})
	}
}

// GET /api/products/:id/inquiry?lang=
// ProductInquiry returns the wa.me link asking the store about one product.
func ProductInquiry(cat *catalog.Catalog, phone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cat.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		locale := i18n.Resolve(c.Query("lang"))
		c.JSON(http.StatusOK, gin.H{
			"url":     whatsapp.InquiryLink(product, phone, locale),
			"message": whatsapp.InquiryMessage(product, locale),
		})
	}
}
