package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"5", "5"},
		{"529", "529"},
		{"5299", "529.9"},
		{"529982", "529.982"},
		{"5299822", "529.982.2"},
		{"529982247", "529.982.247"},
		{"5299822472", "529.982.247-2"},
		{"52998224725", "529.982.247-25"},
		{"52998224725999", "529.982.247-25"},
		{"529.982.247-25", "529.982.247-25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CPF(tt.in), "input %q", tt.in)
	}
}

func TestCPFIdempotent(t *testing.T) {
	for _, in := range []string{"5", "5299822", "52998224725", "529.982.247-25"} {
		once := CPF(in)
		assert.Equal(t, once, CPF(once))
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2", "2"},
		{"21", "21"},
		{"213", "(21) 3"},
		{"213333", "(21) 3333"},
		{"2133334", "(21) 3333-4"},
		{"2133334444", "(21) 3333-4444"},
		{"21933334444", "(21) 93333-4444"},
		{"219333344445", "(21) 93333-4444"},
		{"(21) 3333-4444", "(21) 3333-4444"},
		{"(21) 93333-4444", "(21) 93333-4444"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Phone(tt.in), "input %q", tt.in)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0,00"},
		{"1", "0,01"},
		{"50", "0,50"},
		{"1000", "10,00"},
		{"10000", "100,00"},
		{"123456", "1.234,56"},
		{"10,00", "10,00"},
		{"1.234,56", "1.234,56"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "input %q", tt.in)
	}
}
