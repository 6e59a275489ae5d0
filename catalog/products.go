package catalog

import "github.com/kevin997/Olku-Olkanda/models"

// defaultProducts is the storefront's product table. Prices are whole FCFA.
var defaultProducts = []models.Product{
	// Beds
	{
		ID:          "bed-001",
		Name:        "Lit King Size Moderne",
		Category:    models.CategoryBeds,
		Price:       450000,
		Currency:    "FCFA",
		Image:       "/products/bed-1.jpg",
		Description: "Lit king size avec tête de lit capitonnée",
		InStock:     true,
	},
	{
		ID:          "bed-002",
		Name:        "Lit Queen Élégant",
		Category:    models.CategoryBeds,
		Price:       380000,
		Currency:    "FCFA",
		Image:       "/products/bed-2.jpg",
		Description: "Lit queen avec rangement intégré",
		InStock:     true,
	},
	{
		ID:          "bed-003",
		Name:        "Lit Simple Confort",
		Category:    models.CategoryBeds,
		Price:       180000,
		Currency:    "FCFA",
		Image:       "/products/bed-3.jpg",
		Description: "Lit simple avec matelas orthopédique",
		InStock:     true,
	},
	// Sofas
	{
		ID:          "sofa-001",
		Name:        "Canapé 3 Places Premium",
		Category:    models.CategorySofas,
		Price:       550000,
		Currency:    "FCFA",
		Image:       "/products/sofa-1.jpg",
		Description: "Canapé en cuir véritable 3 places",
		InStock:     true,
	},
	{
		ID:          "sofa-002",
		Name:        "Canapé d'Angle Moderne",
		Category:    models.CategorySofas,
		Price:       780000,
		Currency:    "FCFA",
		Image:       "/products/sofa-2.jpg",
		Description: "Canapé d'angle convertible avec coffre",
		InStock:     true,
	},
	{
		ID:          "sofa-003",
		Name:        "Canapé 2 Places Compact",
		Category:    models.CategorySofas,
		Price:       320000,
		Currency:    "FCFA",
		Image:       "/products/sofa-3.jpg",
		Description: "Canapé 2 places en tissu doux",
		InStock:     true,
	},
	// Chairs
	{
		ID:          "chair-001",
		Name:        "Chaise Salle à Manger",
		Category:    models.CategoryChairs,
		Price:       45000,
		Currency:    "FCFA",
		Image:       "/products/chair-1.jpg",
		Description: "Chaise en bois massif avec coussin",
		InStock:     true,
	},
	{
		ID:          "chair-002",
		Name:        "Fauteuil Bureau Ergonomique",
		Category:    models.CategoryChairs,
		Price:       125000,
		Currency:    "FCFA",
		Image:       "/products/chair-2.jpg",
		Description: "Fauteuil de bureau avec support lombaire",
		InStock:     true,
	},
	// Tables
	{
		ID:          "table-001",
		Name:        "Table à Manger 6 Places",
		Category:    models.CategoryTables,
		Price:       280000,
		Currency:    "FCFA",
		Image:       "/products/table-1.jpg",
		Description: "Table en bois massif pour 6 personnes",
		InStock:     true,
	},
	{
		ID:          "table-002",
		Name:        "Table Basse Moderne",
		Category:    models.CategoryTables,
		Price:       95000,
		Currency:    "FCFA",
		Image:       "/products/table-2.jpg",
		Description: "Table basse avec plateau en verre",
		InStock:     true,
	},
}
