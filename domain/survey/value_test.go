package survey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain decimal", "0.5", 0.5},
		{"decimal comma", "0,5", 0.5},
		{"negative decimal comma", "-2,25", -2.25},
		{"thousands comma with period", "1,234.5", 1234.5},
		{"internal spaces", "1 234.5", 1234.5},
		{"integer", "42", 42},
		{"surrounding whitespace", "  3.14  ", 3.14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseNumber(tt.raw), 1e-12)
		})
	}
}

func TestParseNumber_MissingValues(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12x", "Inf", "-Inf", "--5"} {
		assert.True(t, math.IsNaN(ParseNumber(raw)), "expected NaN for %q", raw)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "", FormatNumber(math.NaN()))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "-2.25", FormatNumber(-2.25))
	assert.Equal(t, "42", FormatNumber(42))
}

func TestFormatNumber_StableUnderReparse(t *testing.T) {
	for _, raw := range []string{"0.5", "0,5", "-1.25", "", "garbage", "1 000,5"} {
		once := FormatNumber(ParseNumber(raw))
		twice := FormatNumber(ParseNumber(once))
		assert.Equal(t, once, twice, "round-trip changed for %q", raw)
	}
}
