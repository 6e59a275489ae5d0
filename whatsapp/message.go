// Package whatsapp builds the wa.me deep links the store uses in place of a
// payment flow: the whole cart as an order message, or a single product as an
// inquiry. Opening the link is the caller's concern; nothing here performs
// network I/O.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/i18n"
	"github.com/kevin997/Olku-Olkanda/models"
	"github.com/kevin997/Olku-Olkanda/pricing"
)

// DefaultPhone is the business WhatsApp number, digits only.
const DefaultPhone = "237697111394"

type templates struct {
	orderGreeting   string
	totalLabel      string
	inquiryGreeting string
	priceLabel      string
	inquiryClosing  string
}

var messageTemplates = map[i18n.Locale]templates{
	i18n.French: {
		orderGreeting:   "Bonjour! Je souhaite commander:",
		totalLabel:      "Total",
		inquiryGreeting: "Bonjour! Je suis intéressé(e) par:",
		priceLabel:      "Prix",
		inquiryClosing:  "Pouvez-vous me donner plus d'informations?",
	},
	i18n.English: {
		orderGreeting:   "Hello! I would like to order:",
		totalLabel:      "Total",
		inquiryGreeting: "Hello! I am interested in:",
		priceLabel:      "Price",
		inquiryClosing:  "Could you give me more information?",
	},
}

// CheckoutMessage renders the whole cart as an order message: one line per
// item, then the grand total. The caller must not pass an empty cart.
func CheckoutMessage(c models.Cart, locale i18n.Locale) string {
	t := messageTemplates[i18n.Resolve(string(locale))]

	lines := make([]string, 0, len(c))
	for _, item := range c {
		lines = append(lines, fmt.Sprintf("%s x%d - %s",
			item.Product.Name, item.Quantity,
			pricing.Format(item.Product.Price, item.Product.Currency)))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s: %s",
		t.orderGreeting,
		strings.Join(lines, "\n"),
		t.totalLabel,
		pricing.Format(cart.Total(c), pricing.DefaultCurrency))
}

// CheckoutLink returns the wa.me deep link carrying the cart's order message.
// An empty phone falls back to the business number.
func CheckoutLink(c models.Cart, phone string, locale i18n.Locale) string {
	return link(phone, CheckoutMessage(c, locale))
}

// InquiryMessage renders the fixed single-product information request.
func InquiryMessage(p models.Product, locale i18n.Locale) string {
	t := messageTemplates[i18n.Resolve(string(locale))]
	return fmt.Sprintf("%s\n\n%s\n%s: %s\n\n%s",
		t.inquiryGreeting,
		p.Name,
		t.priceLabel, pricing.Format(p.Price, p.Currency),
		t.inquiryClosing)
}

// InquiryLink returns the wa.me deep link for a single-product inquiry.
func InquiryLink(p models.Product, phone string, locale i18n.Locale) string {
	return link(phone, InquiryMessage(p, locale))
}

func link(phone, text string) string {
	if phone == "" {
		phone = DefaultPhone
	}
	return "https://wa.me/" + phone + "?text=" + encode(text)
}

// encode percent-encodes message text for the text query parameter. Spaces
// must come out as %20, not +, or WhatsApp shows literal plus signs.
func encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
