// Package cart holds the pure cart transformations. Every function takes the
// current cart value and returns a new one without touching its input, so the
// holder of a cart can publish the result atomically.
package cart

import "github.com/kevin997/Olku-Olkanda/models"

// Add returns c with one more unit of p. An item already holding p's ID keeps
// its position and gains a unit; otherwise a fresh item with quantity 1 is
// appended. Stock is not checked here, gating the action is the caller's job.
func Add(c models.Cart, p models.Product) models.Cart {
	next := make(models.Cart, 0, len(c)+1)
	found := false
	for _, item := range c {
		if item.Product.ID == p.ID {
			item.Quantity++
			found = true
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, models.CartItem{Product: p, Quantity: 1})
	}
	return next
}

// Remove returns c without the item matching productID. Removing an absent
// ID is a no-op, so repeated removes are safe.
func Remove(c models.Cart, productID string) models.Cart {
	next := make(models.Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// UpdateQuantity returns c with the matching item's quantity replaced.
// A quantity of zero or less removes the item. An absent ID leaves the cart
// unchanged; this never creates an item.
func UpdateQuantity(c models.Cart, productID string, quantity int) models.Cart {
	if quantity <= 0 {
		return Remove(c, productID)
	}
	next := make(models.Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID == productID {
			item.Quantity = quantity
		}
		next = append(next, item)
	}
	return next
}

// Total sums price × quantity over the whole cart. An empty cart totals 0.
func Total(c models.Cart) int64 {
	var total int64
	for _, item := range c {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities, not the number of distinct products.
func ItemCount(c models.Cart) int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}
