package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "500", 500},
		{"decimal", "75.50", 75.5},
		{"surrounding whitespace", "  120 ", 120},
		{"empty", "", 0},
		{"non-numeric", "a lot", 0},
		{"currency sign is not numeric", "$100", 0},
		{"negative passes through", "-10", -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.in))
		})
	}
}

func TestTotal(t *testing.T) {
	base, addons, total := Total("100", "50")
	assert.Equal(t, 100.0, base)
	assert.Equal(t, 50.0, addons)
	assert.Equal(t, 150.0, total)
}

func TestTotalZeroSubstitution(t *testing.T) {
	// A non-numeric base contributes zero instead of failing, so the total
	// resolves to the add-on sum alone.
	_, _, total := Total("not a number", "75")
	assert.Equal(t, 75.0, total)

	_, _, total = Total("500", "???")
	assert.Equal(t, 500.0, total)
}
