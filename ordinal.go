package messageformat

import "math"

// OrdinalCategory returns the CLDR ordinal category for a number in the
// given locale, used by selectordinal constructs ("1st", "2nd", "3rd").
// The magnitude is the absolute value of n; non-finite input and locales
// without ordinal distinctions yield "other".
func OrdinalCategory(locale string, n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return PluralOther
	}
	return ordinalRule(locale)(math.Abs(n))
}

// ordinalEnglish distinguishes -st, -nd, -rd, and -th suffixes: the last
// digit decides, except for the teens which are always "other".
var ordinalEnglish PluralRule = func(n float64) string {
	if n != math.Trunc(n) {
		return PluralOther
	}
	i := int64(n)
	mod10, mod100 := i%10, i%100

	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 == 2 && mod100 != 12:
		return PluralTwo
	case mod10 == 3 && mod100 != 13:
		return PluralFew
	default:
		return PluralOther
	}
}

var ordinalWelsh PluralRule = func(n float64) string {
	switch n {
	case 0, 7, 8, 9:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	case 3, 4:
		return PluralFew
	case 5, 6:
		return PluralMany
	default:
		return PluralOther
	}
}

func ordinalRule(locale string) PluralRule {
	switch baseLanguage(locale) {
	case "en":
		return ordinalEnglish
	case "cy":
		return ordinalWelsh
	default:
		return pluralNone
	}
}
