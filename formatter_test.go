package messageformat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/messageformat"
)

func builtinFormatter(t *testing.T, name string) messageformat.Formatter {
	t.Helper()
	f, ok := messageformat.NewRegistry().Formatter(name)
	require.True(t, ok, "built-in formatter %q must be registered", name)
	return f
}

func TestRegistryBuiltins(t *testing.T) {
	t.Parallel()

	reg := messageformat.NewRegistry()
	for _, name := range []string{"number", "date", "time", "plural", "selectordinal", "select"} {
		_, ok := reg.Formatter(name)
		assert.True(t, ok, "missing built-in %q", name)
	}

	_, ok := reg.Formatter("nope")
	assert.False(t, ok)
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	reg := messageformat.NewRegistry()
	upper := messageformat.FormatterFunc(func(value any, _ string, _ messageformat.Context) string {
		return "custom"
	})

	reg.Register("custom", upper)
	f, ok := reg.Formatter("custom")
	require.True(t, ok)
	assert.Equal(t, "custom", f.Format("x", "", messageformat.Context{}))

	// Replacement by name.
	reg.Register("number", upper)
	f, ok = reg.Formatter("number")
	require.True(t, ok)
	assert.Equal(t, "custom", f.Format(5, "", messageformat.Context{}))

	// Empty names and nil formatters are ignored.
	reg.Register("", upper)
	_, ok = reg.Formatter("")
	assert.False(t, ok)

	reg.Register("custom", nil)
	_, ok = reg.Formatter("custom")
	assert.True(t, ok)
}

func TestNumberFormatter(t *testing.T) {
	t.Parallel()

	number := builtinFormatter(t, "number")
	en := messageformat.Context{Locale: "en"}

	tests := []struct {
		name     string
		value    any
		style    string
		ctx      messageformat.Context
		expected string
	}{
		{"grouped decimal", 1234567, "", en, "1,234,567"},
		{"small integer", 5, "", en, "5"},
		{"fractional", 1234.5, "", en, "1,234.5"},
		{"integer style truncates", 1234.9, "integer", en, "1,235"},
		{"percent", 0.42, "percent", en, "42%"},
		{"percent fractional", 0.1234, "percent", en, "12.34%"},
		{"currency default usd", 1234.5, "currency", en, "$1,234.50"},
		{"currency explicit", 99.9, "currency", messageformat.Context{Locale: "en", Currency: "GBP"}, "£99.90"},
		{"currency symbol after", 10, "currency", messageformat.Context{Locale: "en", Currency: "PLN"}, "10.00 zł"},
		{"currency zero decimals", 1234, "currency", messageformat.Context{Locale: "en", Currency: "JPY"}, "¥1,234"},
		{"currency negative", -5, "currency", en, "-$5.00"},
		{"currency unknown code falls back", 5, "currency", messageformat.Context{Locale: "en", Currency: "XQZ"}, "$5.00"},
		{"non-numeric value stringified", "abc", "", en, "abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, number.Format(tt.value, tt.style, tt.ctx))
		})
	}
}

func TestNumberFormatterAcceptsAllNumericKinds(t *testing.T) {
	t.Parallel()

	number := builtinFormatter(t, "number")
	en := messageformat.Context{Locale: "en"}

	for _, v := range []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7), float32(7), float64(7)} {
		assert.Equal(t, "7", number.Format(v, "", en), "%T", v)
	}
}

func TestDateFormatter(t *testing.T) {
	t.Parallel()

	date := builtinFormatter(t, "date")
	when := time.Date(2024, time.March, 5, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		style    string
		locale   string
		expected string
	}{
		{"short", "short", "en", "3/5/24"},
		{"medium", "medium", "en", "Mar 5, 2024"},
		{"long", "long", "en", "March 5, 2024"},
		{"full", "full", "en", "Tuesday, March 5, 2024"},
		{"default is medium", "", "en", "Mar 5, 2024"},
		{"british short", "short", "en-GB", "05/03/2024"},
		{"german short", "short", "de", "05.03.24"},
		{"japanese long", "long", "ja", "2024年3月5日"},
		{"unknown locale falls back", "medium", "tlh", "Mar 5, 2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := date.Format(when, tt.style, messageformat.Context{Locale: tt.locale})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeFormatter(t *testing.T) {
	t.Parallel()

	tf := builtinFormatter(t, "time")
	when := time.Date(2024, time.March, 5, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, "2:30 PM", tf.Format(when, "short", messageformat.Context{Locale: "en"}))
	assert.Equal(t, "2:30:45 PM", tf.Format(when, "medium", messageformat.Context{Locale: "en"}))
	assert.Equal(t, "14:30", tf.Format(when, "short", messageformat.Context{Locale: "de"}))
}

func TestDateFormatterValueConversions(t *testing.T) {
	t.Parallel()

	date := builtinFormatter(t, "date")
	en := messageformat.Context{Locale: "en"}
	when := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 5, 2024", date.Format(when, "medium", en))
	assert.Equal(t, "Mar 5, 2024", date.Format(&when, "medium", en))
	assert.Equal(t, "Mar 5, 2024", date.Format("2024-03-05", "medium", en))
	assert.Equal(t, "Mar 5, 2024", date.Format("2024-03-05T00:00:00Z", "medium", en))

	// Not a date at all: plain stringification.
	assert.Equal(t, "soon", date.Format("soon", "medium", en))
	var nilTime *time.Time
	assert.Equal(t, "<nil>", date.Format(nilTime, "medium", en))
}

func TestPluralFormatters(t *testing.T) {
	t.Parallel()

	plural := builtinFormatter(t, "plural")
	ordinal := builtinFormatter(t, "selectordinal")

	assert.Equal(t, "one", plural.Format(1, "", messageformat.Context{Locale: "en"}))
	assert.Equal(t, "few", plural.Format(3, "", messageformat.Context{Locale: "ru"}))
	assert.Equal(t, "other", plural.Format("n/a", "", messageformat.Context{Locale: "en"}))

	assert.Equal(t, "few", ordinal.Format(3, "", messageformat.Context{Locale: "en"}))
	assert.Equal(t, "other", ordinal.Format(4, "", messageformat.Context{Locale: "en"}))
	assert.Equal(t, "other", ordinal.Format(nil, "", messageformat.Context{Locale: "en"}))
}

type stubID int

func (s stubID) String() string { return "id-42" }

func TestSelectFormatterStringifies(t *testing.T) {
	t.Parallel()

	sel := builtinFormatter(t, "select")

	assert.Equal(t, "female", sel.Format("female", "", messageformat.Context{}))
	assert.Equal(t, "id-42", sel.Format(stubID(0), "", messageformat.Context{}))
	assert.Equal(t, "3", sel.Format(3, "", messageformat.Context{}))
}
