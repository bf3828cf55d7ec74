package messageformat

// dateTimeLayouts holds the Go time layouts for the four ICU date/time
// styles, indexed short, medium, long, full.
type dateTimeLayouts struct {
	date [4]string
	time [4]string
}

var layoutEnUS = dateTimeLayouts{
	date: [4]string{"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006"},
	time: [4]string{"3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST"},
}

// localeLayouts maps locale tags to their layouts. Lookup tries the exact
// tag, then the base language, then falls back to en-US.
var localeLayouts = map[string]dateTimeLayouts{
	"en": layoutEnUS,
	"en-GB": {
		date: [4]string{"02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"de": {
		date: [4]string{"02.01.06", "02.01.2006", "2. Jan 2006", "2. Jan 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"fr": {
		date: [4]string{"02/01/2006", "2 Jan 2006", "2 Jan 2006", "2 Jan 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"es": {
		date: [4]string{"2/1/06", "2 Jan 2006", "2 Jan 2006", "2 Jan 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"ja": {
		date: [4]string{"2006/01/02", "2006/01/02", "2006年1月2日", "2006年1月2日"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"zh": {
		date: [4]string{"2006-01-02", "2006-01-02", "2006年1月2日", "2006年1月2日"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"ru": {
		date: [4]string{"02.01.2006", "2 Jan 2006", "2 Jan 2006", "2 Jan 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
	"pl": {
		date: [4]string{"02.01.2006", "2 Jan 2006", "2 Jan 2006", "2 Jan 2006"},
		time: [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
	},
}

func layoutsFor(locale string) dateTimeLayouts {
	if l, ok := localeLayouts[locale]; ok {
		return l
	}
	if l, ok := localeLayouts[baseLanguage(locale)]; ok {
		return l
	}
	return layoutEnUS
}

// styleIndex maps a style name to its layout slot. Unknown and empty
// styles use medium, matching the ICU default.
func styleIndex(style string) int {
	switch style {
	case StyleShort:
		return 0
	case StyleMedium:
		return 1
	case StyleLong:
		return 2
	case StyleFull:
		return 3
	default:
		return 1
	}
}
