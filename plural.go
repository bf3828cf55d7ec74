package messageformat

import (
	"math"
	"strings"
)

// PluralRule maps a non-negative magnitude to a CLDR plural category.
type PluralRule func(n float64) string

// Plural category constants as defined by Unicode CLDR. Not all languages
// use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategory returns the CLDR cardinal category for a number in the
// given locale. The magnitude is the absolute value of n; non-finite input
// always yields "other". Unknown locales fall back to the English rule.
func PluralCategory(locale string, n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return PluralOther
	}
	return cardinalRule(locale)(math.Abs(n))
}

// pluralOneOther covers English, German, Dutch, Spanish, Italian, and the
// other languages that only distinguish exactly one from everything else.
var pluralOneOther PluralRule = func(n float64) string {
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

// pluralNone covers Japanese, Chinese, Korean, and the other languages with
// no grammatical plural.
var pluralNone PluralRule = func(float64) string {
	return PluralOther
}

// pluralFrench treats everything below two as singular.
var pluralFrench PluralRule = func(n float64) string {
	if n < 2 {
		return PluralOne
	}
	return PluralOther
}

// pluralEastSlavic covers Russian, Ukrainian, and Belarusian: category
// depends on the last one or two digits, with the teens always "many".
var pluralEastSlavic PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)
	mod10, mod100 := i%10, i%100

	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

var pluralPolish PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)
	mod10, mod100 := i%10, i%100

	switch {
	case i == 1:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// pluralCzech covers Czech and Slovak.
var pluralCzech PluralRule = func(n float64) string {
	switch {
	case n == 1:
		return PluralOne
	case n >= 2 && n <= 4 && n == math.Trunc(n):
		return PluralFew
	default:
		return PluralOther
	}
}

var pluralArabic PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)

	switch {
	case i == 0:
		return PluralZero
	case i == 1:
		return PluralOne
	case i == 2:
		return PluralTwo
	case i%100 >= 3 && i%100 <= 10:
		return PluralFew
	case i%100 >= 11 && i%100 <= 99:
		return PluralMany
	default:
		return PluralOther
	}
}

var pluralWelsh PluralRule = func(n float64) string {
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	case 3:
		return PluralFew
	case 6:
		return PluralMany
	default:
		return PluralOther
	}
}

var pluralBreton PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)
	mod10, mod100 := i%10, i%100

	switch {
	case mod10 == 1 && mod100 != 11 && mod100 != 71 && mod100 != 91:
		return PluralOne
	case mod10 == 2 && mod100 != 12 && mod100 != 72 && mod100 != 92:
		return PluralTwo
	case (mod10 == 3 || mod10 == 4 || mod10 == 9) &&
		!(mod100 >= 10 && mod100 <= 19) && !(mod100 >= 70 && mod100 <= 79) && !(mod100 >= 90 && mod100 <= 99):
		return PluralFew
	case i != 0 && i%1000000 == 0:
		return PluralMany
	default:
		return PluralOther
	}
}

var pluralScottishGaelic PluralRule = func(n float64) string {
	switch {
	case n == 1 || n == 11:
		return PluralOne
	case n == 2 || n == 12:
		return PluralTwo
	case n == math.Trunc(n) && ((n >= 3 && n <= 10) || (n >= 13 && n <= 19)):
		return PluralFew
	default:
		return PluralOther
	}
}

var pluralSlovenian PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	switch int64(n) % 100 {
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	case 3, 4:
		return PluralFew
	default:
		return PluralOther
	}
}

var pluralLithuanian PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralMany
	}
	i := int64(n)
	mod10, mod100 := i%10, i%100

	switch {
	case mod10 == 1 && (mod100 < 11 || mod100 > 19):
		return PluralOne
	case mod10 >= 2 && mod10 <= 9 && (mod100 < 11 || mod100 > 19):
		return PluralFew
	default:
		return PluralOther
	}
}

var pluralLatvian PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)

	switch {
	case i == 0:
		return PluralZero
	case i%10 == 1 && i%100 != 11:
		return PluralOne
	default:
		return PluralOther
	}
}

var pluralIrish PluralRule = func(n float64) string {
	switch {
	case n == 1:
		return PluralOne
	case n == 2:
		return PluralTwo
	case n == math.Trunc(n) && n >= 3 && n <= 6:
		return PluralFew
	case n == math.Trunc(n) && n >= 7 && n <= 10:
		return PluralMany
	default:
		return PluralOther
	}
}

var pluralRomanian PluralRule = func(n float64) string {
	if n == 1 {
		return PluralOne
	}
	if n != math.Trunc(n) {
		return PluralFew
	}
	mod100 := int64(n) % 100
	if n == 0 || (mod100 >= 1 && mod100 <= 19) {
		return PluralFew
	}
	return PluralOther
}

// cardinalRule returns the cardinal rule for a locale tag, matching on the
// base language. Unknown languages get the English rule.
func cardinalRule(locale string) PluralRule {
	switch baseLanguage(locale) {
	case "ru", "uk", "be":
		return pluralEastSlavic
	case "pl":
		return pluralPolish
	case "cs", "sk":
		return pluralCzech
	case "fr":
		return pluralFrench
	case "ar":
		return pluralArabic
	case "cy":
		return pluralWelsh
	case "br":
		return pluralBreton
	case "gd":
		return pluralScottishGaelic
	case "sl":
		return pluralSlovenian
	case "lt":
		return pluralLithuanian
	case "lv":
		return pluralLatvian
	case "ga":
		return pluralIrish
	case "ro", "mo":
		return pluralRomanian
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return pluralNone
	default:
		return pluralOneOther
	}
}

// baseLanguage strips the region and script from a locale tag
// (e.g. "en-US" -> "en") and lowercases the result.
func baseLanguage(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}

// requiredCategories records, per base language, the categories authored
// content must supply. Languages absent from the table require one/other.
var requiredCategories = map[string][]string{
	"ru": {PluralOne, PluralFew, PluralMany, PluralOther},
	"uk": {PluralOne, PluralFew, PluralMany, PluralOther},
	"be": {PluralOne, PluralFew, PluralMany, PluralOther},
	"pl": {PluralOne, PluralFew, PluralMany, PluralOther},
	"cs": {PluralOne, PluralFew, PluralOther},
	"sk": {PluralOne, PluralFew, PluralOther},
	"ar": {PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther},
	"cy": {PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther},
	"br": {PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther},
	"gd": {PluralOne, PluralTwo, PluralFew, PluralOther},
	"sl": {PluralOne, PluralTwo, PluralFew, PluralOther},
	"lt": {PluralOne, PluralFew, PluralOther},
	"lv": {PluralZero, PluralOne, PluralOther},
	"ga": {PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther},
	"ro": {PluralOne, PluralFew, PluralOther},
	"ja": {PluralOther},
	"zh": {PluralOther},
	"ko": {PluralOther},
	"th": {PluralOther},
	"vi": {PluralOther},
	"id": {PluralOther},
	"ms": {PluralOther},
}

// RequiredCategories returns the plural categories a locale's authored
// content must cover. The result is a copy; the underlying table is never
// mutated at runtime. Intended for authoring tools; the compiler does not
// consult it.
func RequiredCategories(locale string) []string {
	if cats, ok := requiredCategories[baseLanguage(locale)]; ok {
		out := make([]string, len(cats))
		copy(out, cats)
		return out
	}
	return []string{PluralOne, PluralOther}
}
