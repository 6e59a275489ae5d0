// Package catalog exposes the static product table. The catalog is built once
// at startup and never mutated afterwards.
package catalog

import "github.com/kevin997/Olku-Olkanda/models"

type Catalog struct {
	products []models.Product
}

// New builds a catalog over the given products, kept in declaration order.
func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the store's product table.
func Default() *Catalog {
	return New(defaultProducts)
}

// All returns every product in declaration order. The returned slice is a
// copy; callers cannot reach the underlying table through it.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks a product up by its stable identifier.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory filters the table, preserving declaration order.
func (c *Catalog) ByCategory(category models.Category) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories present in the catalog, in
// first-seen order.
func (c *Catalog) Categories() []models.Category {
	seen := make(map[models.Category]bool, len(models.AllCategories))
	var out []models.Category
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
