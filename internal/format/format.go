// Package format holds the live input masks the web client applies on
// every keystroke. All transforms are pure and idempotent: feeding a
// masked value back in yields the same mask, and partial input is
// always safe.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// CPF masks a digit string as ###.###.###-##, truncating past 11 digits.
func CPF(value string) string {
	d := digits(value)
	if len(d) > 11 {
		d = d[:11]
	}
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// Phone masks as (##) ####-#### for up to 10 digits and
// (##) #####-#### for 11, truncating anything longer.
func Phone(value string) string {
	d := digits(value)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}
	split := 4
	if len(d) == 11 {
		split = 5
	}
	rest := d[2:]
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(d[:2])
	b.WriteString(") ")
	if len(rest) <= split {
		b.WriteString(rest)
		return b.String()
	}
	b.WriteString(rest[:split])
	b.WriteByte('-')
	b.WriteString(rest[split:])
	return b.String()
}

// Currency reads the digit string as centavos and renders the amount in
// reais with two decimals and pt-BR grouping: "123456" -> "1.234,56".
func Currency(value string) string {
	d := strings.TrimLeft(digits(value), "0")
	if len(d) > 15 {
		d = d[:15]
	}
	var cents int64
	for i := 0; i < len(d); i++ {
		cents = cents*10 + int64(d[i]-'0')
	}
	return ptBR.Sprintf("%v", number.Decimal(float64(cents)/100,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
