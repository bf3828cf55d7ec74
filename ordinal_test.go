package messageformat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/messageformat"
)

func TestOrdinalCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   string
		n        float64
		expected string
	}{
		// English ordinal suffixes: 1st, 2nd, 3rd, 4th, 11th..13th, 21st.
		{"en", 1, "one"},
		{"en", 2, "two"},
		{"en", 3, "few"},
		{"en", 4, "other"},
		{"en", 11, "other"},
		{"en", 12, "other"},
		{"en", 13, "other"},
		{"en", 21, "one"},
		{"en", 22, "two"},
		{"en", 23, "few"},
		{"en", 101, "one"},
		{"en", 111, "other"},
		{"en", 0, "other"},
		{"en", 1.5, "other"},
		{"en-GB", 3, "few"},

		// Welsh ordinals.
		{"cy", 0, "zero"},
		{"cy", 1, "one"},
		{"cy", 2, "two"},
		{"cy", 3, "few"},
		{"cy", 5, "many"},
		{"cy", 7, "zero"},
		{"cy", 10, "other"},

		// Languages without ordinal distinctions.
		{"ja", 1, "other"},
		{"ru", 1, "other"},
		{"fr", 1, "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, messageformat.OrdinalCategory(tt.locale, tt.n),
			"OrdinalCategory(%q, %v)", tt.locale, tt.n)
	}
}

func TestOrdinalCategoryNonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "other", messageformat.OrdinalCategory("en", math.NaN()))
	assert.Equal(t, "other", messageformat.OrdinalCategory("en", math.Inf(1)))
	assert.Equal(t, "one", messageformat.OrdinalCategory("en", -21))
}
