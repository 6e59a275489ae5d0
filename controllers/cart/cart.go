package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/catalog"
	"github.com/kevin997/Olku-Olkanda/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateItemInput struct {
	// Quantity is a pointer so that an explicit 0 (remove) can be told apart
	// from a missing field.
	Quantity *int `json:"quantity" binding:"required"`
}

type cartView struct {
	CartID    string      `json:"cart_id"`
	Items     models.Cart `json:"items"`
	Total     int64       `json:"total"`
	ItemCount int         `json:"item_count"`
}

func viewOf(id string, c models.Cart) cartView {
	if c == nil {
		c = models.Cart{}
	}
	return cartView{
		CartID:    id,
		Items:     c,
		Total:     cart.Total(c),
		ItemCount: cart.ItemCount(c),
	}
}

// POST /api/session
// CreateSession opens a new browsing session with an empty cart.
func CreateSession(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := store.Create()
		c.JSON(http.StatusCreated, gin.H{"cart_id": id})
	}
}

// GET /api/cart/:cart_id
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")
		c.JSON(http.StatusOK, viewOf(id, store.Get(id)))
	}
}

// POST /api/cart/:cart_id/items
// AddCartItem adds one unit of a product. The product must exist in the
// catalog and be in stock; the cart itself never checks stock.
func AddCartItem(cat *catalog.Catalog, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}

		next := store.Apply(id, func(current models.Cart) models.Cart {
			return cart.Add(current, product)
		})
		c.JSON(http.StatusOK, viewOf(id, next))
	}
}

// PUT /api/cart/:cart_id/items/:product_id
// UpdateCartItem replaces an item's quantity. Zero or less removes the item;
// an unknown product id leaves the cart unchanged.
func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")
		productID := c.Param("product_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		next := store.Apply(id, func(current models.Cart) models.Cart {
			return cart.UpdateQuantity(current, productID, *input.Quantity)
		})
		c.JSON(http.StatusOK, viewOf(id, next))
	}
}

// DELETE /api/cart/:cart_id/items/:product_id
// DeleteCartItem removes an item. Removing an absent item still succeeds, so
// a double click on the remove button never errors.
func DeleteCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")
		productID := c.Param("product_id")

		next := store.Apply(id, func(current models.Cart) models.Cart {
			return cart.Remove(current, productID)
		})
		c.JSON(http.StatusOK, viewOf(id, next))
	}
}

// DELETE /api/cart/:cart_id
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("cart_id")
		store.Clear(id)
		c.JSON(http.StatusOK, viewOf(id, models.Cart{}))
	}
}
