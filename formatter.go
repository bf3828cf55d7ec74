package messageformat

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Styles understood by the built-in formatters.
const (
	StyleInteger  = "integer"
	StyleCurrency = "currency"
	StylePercent  = "percent"
	StyleShort    = "short"
	StyleMedium   = "medium"
	StyleLong     = "long"
	StyleFull     = "full"
)

// Formatter renders a single argument value for the format context's
// locale. Formatters never fail: a value they cannot interpret renders as
// its plain stringification.
type Formatter interface {
	Format(value any, style string, ctx Context) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(value any, style string, ctx Context) string

func (f FormatterFunc) Format(value any, style string, ctx Context) string {
	return f(value, style, ctx)
}

// Registry is a name-keyed lookup table of formatters, pre-populated with
// number, date, time, plural, select, and selectordinal. Registration
// replaces by name and is meant for the setup phase, before concurrent
// formatting begins.
type Registry struct {
	formatters map[string]Formatter
	mu         sync.RWMutex
}

// NewRegistry creates a registry seeded with the built-in formatters.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]Formatter, 8)}

	r.Register("number", FormatterFunc(formatNumber))
	r.Register("date", FormatterFunc(formatDate))
	r.Register("time", FormatterFunc(formatTime))
	r.Register("plural", FormatterFunc(formatPluralCategory))
	r.Register("selectordinal", FormatterFunc(formatOrdinalCategory))
	r.Register("select", FormatterFunc(formatSelect))

	return r
}

// Register sets or replaces the formatter for a name. Empty names and nil
// formatters are ignored.
func (r *Registry) Register(name string, f Formatter) {
	if name == "" || f == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[name] = f
}

// Formatter returns the formatter registered under name.
func (r *Registry) Formatter(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[name]
	return f, ok
}

func printerFor(locale string) *message.Printer {
	return message.NewPrinter(language.Make(locale))
}

// formatNumber renders numbers with locale-correct grouping and decimal
// separators. Styles: default grouped decimal, integer, currency (uses the
// context's currency code, defaulting to USD), and percent (multiplies by
// 100, at most two fraction digits, no forced trailing zeros).
func formatNumber(value any, style string, ctx Context) string {
	n, ok := toNumber(value)
	if !ok {
		return stringify(value)
	}

	p := printerFor(ctx.Locale)

	switch style {
	case StyleInteger:
		return p.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
	case StylePercent:
		return p.Sprint(number.Percent(n, number.MaxFractionDigits(2)))
	case StyleCurrency:
		return formatCurrencyAmount(p, n, ctx.Currency)
	default:
		return p.Sprint(number.Decimal(n))
	}
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"RUB": "₽",
	"UAH": "₴",
	"PLN": "zł",
	"BRL": "R$",
	"INR": "₹",
	"CAD": "CA$",
	"AUD": "A$",
}

// currencySymbolAfter marks currencies conventionally written after the
// amount.
var currencySymbolAfter = map[string]bool{
	"EUR": true,
	"RUB": true,
	"UAH": true,
	"PLN": true,
}

// currencyDigits overrides the default two fraction digits.
var currencyDigits = map[string]int{
	"JPY": 0,
	"KRW": 0,
}

func formatCurrencyAmount(p *message.Printer, n float64, code string) string {
	if n < 0 {
		return "-" + formatCurrencyAmount(p, -n, code)
	}

	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	iso := unit.String()

	scale := 2
	if d, ok := currencyDigits[iso]; ok {
		scale = d
	}
	num := p.Sprint(number.Decimal(n, number.Scale(scale)))

	sym, ok := currencySymbols[iso]
	switch {
	case !ok:
		return iso + " " + num
	case currencySymbolAfter[iso]:
		return num + " " + sym
	default:
		return sym + num
	}
}

// formatDate renders dates with the locale's layout for the requested
// style (short, medium, long, full; medium when unspecified). Values that
// cannot be interpreted as a date render as their plain stringification.
func formatDate(value any, style string, ctx Context) string {
	t, ok := toTime(value)
	if !ok {
		return stringify(value)
	}
	return t.Format(layoutsFor(ctx.Locale).date[styleIndex(style)])
}

func formatTime(value any, style string, ctx Context) string {
	t, ok := toTime(value)
	if !ok {
		return stringify(value)
	}
	return t.Format(layoutsFor(ctx.Locale).time[styleIndex(style)])
}

// formatPluralCategory resolves a number to its cardinal category name.
// The compiler routes plural case selection through this formatter.
func formatPluralCategory(value any, _ string, ctx Context) string {
	n, ok := toNumber(value)
	if !ok {
		return PluralOther
	}
	return PluralCategory(ctx.Locale, n)
}

func formatOrdinalCategory(value any, _ string, ctx Context) string {
	n, ok := toNumber(value)
	if !ok {
		return PluralOther
	}
	return OrdinalCategory(ctx.Locale, n)
}

// formatSelect is the passthrough formatter backing select dispatch.
func formatSelect(value any, _ string, _ Context) string {
	return stringify(value)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
