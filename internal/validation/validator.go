package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Amount bounds in centavos: charges must stay within (0, R$100,00].
const (
	MinAmountCents = 1
	MaxAmountCents = 10000
)

var ErrInvalidAmount = errors.New("amount out of range or not a number")

// New returns a configured validator with the Brazilian-specific field
// rules registered: cpf, br_phone and brl_amount.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("cpf", func(fl validatorv10.FieldLevel) bool {
		return ValidateCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("br_phone", func(fl validatorv10.FieldLevel) bool {
		return len(digitsOnly(fl.Field().String())) >= 10
	})
	_ = v.RegisterValidation("brl_amount", func(fl validatorv10.FieldLevel) bool {
		_, err := ParseAmount(fl.Field().String())
		return err == nil
	})

	return v
}

// ValidateCPF checks the 11-digit CPF checksum. Formatting is ignored;
// strings of one repeated digit pass the arithmetic but are invalid.
func ValidateCPF(raw string) bool {
	cpf := digitsOnly(raw)
	if len(cpf) != 11 || allSameDigit(cpf) {
		return false
	}
	if cpfCheckDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return cpfCheckDigit(cpf, 10) == int(cpf[10]-'0')
}

// cpfCheckDigit computes the verifier for the first n digits, weighted
// n+1 down to 2, with 11-(sum%11) collapsing to 0 when it reaches 10.
func cpfCheckDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	d := 11 - sum%11
	if d >= 10 {
		d = 0
	}
	return d
}

// ParseAmount converts a user-typed price ("12,50" or "12.50") into
// centavos, rejecting anything outside (0, 100] reais.
func ParseAmount(raw string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrInvalidAmount)
	}
	cents := int64(math.Round(v * 100))
	if cents < MinAmountCents || cents > MaxAmountCents {
		return 0, fmt.Errorf("%d centavos: %w", cents, ErrInvalidAmount)
	}
	return cents, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
