package catalogcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/catalog"
	"github.com/kevin997/Olku-Olkanda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProducts = []models.Product{
	{ID: "bed-1", Name: "Lit", Category: models.CategoryBeds, Price: 380000, Currency: "FCFA", InStock: true},
	{ID: "chair-1", Name: "Chaise", Category: models.CategoryChairs, Price: 45000, Currency: "FCFA", InStock: true},
	{ID: "chair-2", Name: "Fauteuil", Category: models.CategoryChairs, Price: 125000, Currency: "FCFA", InStock: false},
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.New(testProducts)

	r := gin.New()
	r.GET("/api/products", GetProducts(cat))
	r.GET("/api/products/export", ExportProductsToExcel(cat))
	r.GET("/api/products/:id", GetProductByID(cat))
	r.GET("/api/categories", GetAllCategories(cat))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProducts(t *testing.T) {
	r := newRouter()

	t.Run("lists everything in declaration order", func(t *testing.T) {
		w := get(t, r, "/api/products")
		require.Equal(t, http.StatusOK, w.Code)

		var out []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 3)
		assert.Equal(t, "bed-1", out[0].ID)
	})

	t.Run("filters by category", func(t *testing.T) {
		w := get(t, r, "/api/products?category=chairs")
		require.Equal(t, http.StatusOK, w.Code)

		var out []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "chair-1", out[0].ID)
		assert.Equal(t, "chair-2", out[1].ID)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		w := get(t, r, "/api/products?category=garden")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("filters by stock", func(t *testing.T) {
		w := get(t, r, "/api/products?category=chairs&in_stock=true")
		require.Equal(t, http.StatusOK, w.Code)

		var out []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "chair-1", out[0].ID)
	})

	t.Run("rejects malformed in_stock", func(t *testing.T) {
		w := get(t, r, "/api/products?in_stock=maybe")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProductByID(t *testing.T) {
	r := newRouter()

	t.Run("found", func(t *testing.T) {
		w := get(t, r, "/api/products/chair-1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"formatted_price":"45 000 FCFA"`)
	})

	t.Run("not found", func(t *testing.T) {
		w := get(t, r, "/api/products/ghost")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetAllCategories(t *testing.T) {
	r := newRouter()
	w := get(t, r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		ID    models.Category `json:"id"`
		Label string          `json:"label"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, models.CategoryBeds, out[0].ID)
	assert.Equal(t, "Lits", out[0].Label)
	assert.Equal(t, models.CategoryChairs, out[1].ID)
	assert.Equal(t, "Chaises", out[1].Label)
}

func TestExportProductsToExcel(t *testing.T) {
	r := newRouter()
	w := get(t, r, "/api/products/export")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotZero(t, w.Body.Len())
}
