package models

// Category is the closed set of catalog sections. Products only ever carry
// one of the six constants below.
type Category string

const (
	CategoryBeds    Category = "beds"
	CategorySofas   Category = "sofas"
	CategoryChairs  Category = "chairs"
	CategoryTables  Category = "tables"
	CategoryStorage Category = "storage"
	CategoryDecor   Category = "decor"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryBeds,
	CategorySofas,
	CategoryChairs,
	CategoryTables,
	CategoryStorage,
	CategoryDecor,
}

// CategoryLabels holds the French display label for each category.
var CategoryLabels = map[Category]string{
	CategoryBeds:    "Lits",
	CategorySofas:   "Canapés",
	CategoryChairs:  "Chaises",
	CategoryTables:  "Tables",
	CategoryStorage: "Rangement",
	CategoryDecor:   "Décoration",
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"` // whole FCFA, no subdivision
	Currency    string   `json:"currency"`
	Image       string   `json:"image"`
	InStock     bool     `json:"in_stock"`
}
