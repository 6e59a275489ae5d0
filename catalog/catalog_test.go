package catalog

import (
	"testing"

	"github.com/kevin997/Olku-Olkanda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]models.Product{
		{ID: "bed-1", Category: models.CategoryBeds, Price: 100},
		{ID: "chair-1", Category: models.CategoryChairs, Price: 200},
		{ID: "bed-2", Category: models.CategoryBeds, Price: 300},
		{ID: "table-1", Category: models.CategoryTables, Price: 400},
	})
}

func TestByID(t *testing.T) {
	cat := testCatalog()

	p, ok := cat.ByID("chair-1")
	require.True(t, ok)
	assert.Equal(t, int64(200), p.Price)

	_, ok = cat.ByID("missing")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	cat := testCatalog()

	beds := cat.ByCategory(models.CategoryBeds)
	require.Len(t, beds, 2)
	// declaration order
	assert.Equal(t, "bed-1", beds[0].ID)
	assert.Equal(t, "bed-2", beds[1].ID)

	assert.Empty(t, cat.ByCategory(models.CategoryDecor))
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	cat := testCatalog()
	assert.Equal(t, []models.Category{
		models.CategoryBeds,
		models.CategoryChairs,
		models.CategoryTables,
	}, cat.Categories())
}

func TestAllReturnsCopy(t *testing.T) {
	cat := testCatalog()

	all := cat.All()
	all[0].Price = 999999

	again := cat.All()
	assert.Equal(t, int64(100), again[0].Price)
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	products := cat.All()
	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		assert.True(t, p.Category.Valid(), "product %s has unknown category %q", p.ID, p.Category)
		assert.GreaterOrEqual(t, p.Price, int64(0))
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}

	chair, ok := cat.ByID("chair-001")
	require.True(t, ok)
	assert.Equal(t, int64(45000), chair.Price)
}
