package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// area codes up to 27 use the extra mobile digit
		{"rio landline gets ninth digit", "(21) 3333-4444", "5521933334444"},
		{"sao paulo mobile unchanged", "(11) 98765-4321", "5511987654321"},
		{"southeast overlong keeps last nine", "21 5 98765-4321", "5521987654321"},
		// area codes above 27 use eight digits
		{"recife mobile drops ninth digit", "(81) 93333-4444", "558133334444"},
		{"recife landline unchanged", "(81) 3333-4444", "558133334444"},
		{"south overlong keeps last eight", "(51) 123456789012", "555156789012"},
		// too short to parse: digits returned as-is
		{"nine digits returned raw", "123456789", "123456789"},
		{"empty", "", ""},
		{"punctuation only", "() -", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
