package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "USD", Normalize(" usd "))
	assert.Equal(t, "ZAR", Normalize("ZaR"))
	assert.Equal(t, "", Normalize("  "))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{" 2.5 ", 2.5, true},
		{"-3", -3, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTimeIndicator(t *testing.T) {
	assert.Equal(t, Latest, TimeIndicator(""))
	assert.Equal(t, "2019-11-22", TimeIndicator(" 2019-11-22 "))
}
