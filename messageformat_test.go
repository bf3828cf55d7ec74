package messageformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/messageformat"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New()
	require.NoError(t, err)

	en := messageformat.Context{Locale: "en"}

	tests := []struct {
		name     string
		template string
		values   messageformat.Values
		ctx      messageformat.Context
		expected string
	}{
		{
			name:     "interpolation",
			template: "Hello {name}!",
			values:   messageformat.Values{"name": "Alice"},
			ctx:      en,
			expected: "Hello Alice!",
		},
		{
			name:     "missing value stays visible",
			template: "Hello {name}!",
			values:   messageformat.Values{},
			ctx:      en,
			expected: "Hello {name}!",
		},
		{
			name:     "plural one",
			template: "{count, plural, one {# item} other {# items}}",
			values:   messageformat.Values{"count": 1},
			ctx:      en,
			expected: "1 item",
		},
		{
			name:     "plural grouped",
			template: "{count, plural, one {# item} other {# items}}",
			values:   messageformat.Values{"count": 1234},
			ctx:      en,
			expected: "1,234 items",
		},
		{
			name:     "select",
			template: "{gender, select, female {her} male {his} other {their}} profile",
			values:   messageformat.Values{"gender": "male"},
			ctx:      en,
			expected: "his profile",
		},
		{
			name:     "number style",
			template: "{pct, number, percent} done",
			values:   messageformat.Values{"pct": 0.75},
			ctx:      en,
			expected: "75% done",
		},
		{
			name:     "currency from context",
			template: "Pay {total, number, currency}",
			values:   messageformat.Values{"total": 42},
			ctx:      messageformat.Context{Locale: "en", Currency: "GBP"},
			expected: "Pay £42.00",
		},
		{
			name:     "russian plural",
			template: "{n, plural, one {# файл} few {# файла} many {# файлов} other {# файла}}",
			values:   messageformat.Values{"n": 5},
			ctx:      messageformat.Context{Locale: "ru"},
			expected: "5 файлов",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := mf.Format(tt.template, tt.values, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatOrdinals(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New()
	require.NoError(t, err)

	template := "{n, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}"

	expected := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		42: "42nd",
	}

	for n, want := range expected {
		out, err := mf.Format(template, messageformat.Values{"n": n}, messageformat.Context{Locale: "en"})
		require.NoError(t, err)
		assert.Equal(t, want, out, "n=%d", n)
	}
}

func TestFormatParseError(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New()
	require.NoError(t, err)

	_, err = mf.Format("{count, plural, one {x}", nil, messageformat.Context{Locale: "en"})
	require.Error(t, err)

	var parseErr *messageformat.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New()
	require.NoError(t, err)

	_, err = mf.Format("{count, plural, one {# item}}", messageformat.Values{"count": 1}, messageformat.Context{Locale: "en"})
	require.ErrorIs(t, err, messageformat.ErrMissingOtherCase)
}

func TestFormatWithoutOtherRequirement(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New(messageformat.WithoutOtherRequirement())
	require.NoError(t, err)

	out, err := mf.Format("{count, plural, one {# item}}", messageformat.Values{"count": 1}, messageformat.Context{Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "1 item", out)
}

func TestFormatWithCustomFormatter(t *testing.T) {
	t.Parallel()

	upper := messageformat.FormatterFunc(func(value any, _ string, _ messageformat.Context) string {
		return strings.ToUpper(value.(string))
	})

	t.Run("via option", func(t *testing.T) {
		t.Parallel()

		mf, err := messageformat.New(messageformat.WithFormatter("upper", upper))
		require.NoError(t, err)

		out, err := mf.Format("{name, upper}", messageformat.Values{"name": "alice"}, messageformat.Context{Locale: "en"})
		require.NoError(t, err)
		assert.Equal(t, "ALICE", out)
	})

	t.Run("via register", func(t *testing.T) {
		t.Parallel()

		mf, err := messageformat.New()
		require.NoError(t, err)
		mf.Register("upper", upper)

		out, err := mf.Format("{name, upper}", messageformat.Values{"name": "bob"}, messageformat.Context{Locale: "en"})
		require.NoError(t, err)
		assert.Equal(t, "BOB", out)
	})
}

func TestNewOptionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     messageformat.Option
		wantErr error
	}{
		{"zero depth", messageformat.WithMaxDepth(0), messageformat.ErrInvalidMaxDepth},
		{"negative depth", messageformat.WithMaxDepth(-1), messageformat.ErrInvalidMaxDepth},
		{"zero length", messageformat.WithMaxLength(0), messageformat.ErrInvalidMaxLength},
		{"zero capacity", messageformat.WithCacheCapacity(0), messageformat.ErrInvalidCacheCapacity},
		{"empty formatter name", messageformat.WithFormatter("", nil), messageformat.ErrEmptyFormatterName},
		{"nil formatter", messageformat.WithFormatter("x", nil), messageformat.ErrNilFormatter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := messageformat.New(tt.opt)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatMaxLengthOption(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New(messageformat.WithMaxLength(10))
	require.NoError(t, err)

	out, err := mf.Format("0123456789", nil, messageformat.Context{Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "0123456789", out)

	_, err = mf.Format("0123456789x", nil, messageformat.Context{Locale: "en"})
	require.ErrorIs(t, err, messageformat.ErrTemplateTooLong)
}

func TestFormatValidateCompileRoundTrip(t *testing.T) {
	t.Parallel()

	mf, err := messageformat.New()
	require.NoError(t, err)

	msg, err := mf.Parse("{count, plural, one {# item} other {# items}}")
	require.NoError(t, err)
	require.NoError(t, mf.Validate(msg))

	ct := mf.Compile(msg)
	out := ct.Execute(messageformat.Values{"count": 2}, messageformat.Context{Locale: "en"})
	assert.Equal(t, "2 items", out)
}
