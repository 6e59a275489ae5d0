// Package i18n resolves the storefront's two display locales. The locale only
// ever affects displayed text, never cart behaviour.
package i18n

// Locale is a supported language tag.
type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
)

// Default is the locale used when none is given or the given one is unknown.
const Default = French

// Locales lists the supported locales, default first.
var Locales = []Locale{French, English}

// Supported reports whether tag names a supported locale.
func Supported(tag string) bool {
	for _, l := range Locales {
		if string(l) == tag {
			return true
		}
	}
	return false
}

// Resolve maps an arbitrary tag to a supported locale, falling back to the
// default for anything unrecognized (including the empty string).
func Resolve(tag string) Locale {
	if Supported(tag) {
		return Locale(tag)
	}
	return Default
}
