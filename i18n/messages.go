package i18n

// bundles holds the flat message maps served to the storefront front end.
var bundles = map[Locale]map[string]string{
	French: {
		"header.title":               "Olkunda Ameublement",
		"header.contact":             "Contact",
		"hero.badge":                 "Meubles de qualité au Cameroun",
		"hero.title":                 "Meublez votre",
		"hero.subtitle":              "Des lits, canapés et meubles élégants, livrés partout au Cameroun.",
		"hero.collection":            "Voir la collection",
		"hero.contactUs":             "Contactez-nous",
		"hero.quality":               "Garantie 2 ans",
		"hero.rotatingWords.home":    "maison",
		"hero.rotatingWords.living":  "salon",
		"hero.rotatingWords.bedroom": "chambre",
		"hero.rotatingWords.kitchen": "cuisine",
		"hero.rotatingWords.office":  "bureau",
		"cart.title":                 "Votre panier",
		"cart.empty":                 "Votre panier est vide",
		"cart.total":                 "Total",
		"cart.checkout":              "Commander sur WhatsApp",
		"product.outOfStock":         "Rupture de stock",
		"product.inquire":            "Demander plus d'infos",
		"cta.title":                  "Prêt à meubler votre intérieur?",
		"cta.subtitle":               "Commandez directement sur WhatsApp, livraison rapide.",
		"cta.orderWhatsApp":          "Commander sur WhatsApp",
		"cta.viewProducts":           "Voir les produits",
		"footer.description":         "Meubles de qualité, prix compétitifs, garantie 2 ans.",
		"footer.categories":          "Catégories",
		"footer.contact":             "Contact",
		"footer.copyright":           "© Olkunda Ameublement. Tous droits réservés.",
	},
	English: {
		"header.title":               "Olkunda Furniture",
		"header.contact":             "Contact",
		"hero.badge":                 "Quality furniture in Cameroon",
		"hero.title":                 "Furnish your",
		"hero.subtitle":              "Elegant beds, sofas and furniture, delivered throughout Cameroon.",
		"hero.collection":            "View the collection",
		"hero.contactUs":             "Contact us",
		"hero.quality":               "2-year warranty",
		"hero.rotatingWords.home":    "home",
		"hero.rotatingWords.living":  "living room",
		"hero.rotatingWords.bedroom": "bedroom",
		"hero.rotatingWords.kitchen": "kitchen",
		"hero.rotatingWords.office":  "office",
		"cart.title":                 "Your cart",
		"cart.empty":                 "Your cart is empty",
		"cart.total":                 "Total",
		"cart.checkout":              "Order on WhatsApp",
		"product.outOfStock":         "Out of stock",
		"product.inquire":            "Ask for more info",
		"cta.title":                  "Ready to furnish your home?",
		"cta.subtitle":               "Order directly on WhatsApp, fast delivery.",
		"cta.orderWhatsApp":          "Order on WhatsApp",
		"cta.viewProducts":           "View products",
		"footer.description":         "Quality furniture, competitive prices, 2-year warranty.",
		"footer.categories":          "Categories",
		"footer.contact":             "Contact",
		"footer.copyright":           "© Olkunda Furniture. All rights reserved.",
	},
}

// Messages returns the message bundle for l. Unknown locales get the default
// bundle.
func Messages(l Locale) map[string]string {
	if b, ok := bundles[l]; ok {
		return b
	}
	return bundles[Default]
}
