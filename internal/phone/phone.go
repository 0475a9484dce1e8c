// Package phone normalizes Brazilian phone numbers into the
// digits-only international form 55<ddd><number> used for the WhatsApp
// confirmation handoff.
package phone

import (
	"strconv"
	"strings"
)

// Area codes 11..27 (São Paulo through Espírito Santo) use nine-digit
// mobile numbers with a leading 9; every higher area code keeps eight.
const lastNinthDigitAreaCode = 27

// Normalize strips formatting and returns 55<ddd><number>. Inputs with
// fewer than 10 digits are returned as bare digits; rejecting them is
// the caller's job.
func Normalize(raw string) string {
	d := digits(raw)
	if len(d) < 10 {
		return d
	}

	ddd := d[:2]
	num := d[2:]
	area, _ := strconv.Atoi(ddd)

	if area >= 11 && area <= lastNinthDigitAreaCode {
		if len(num) == 8 {
			num = "9" + num
		} else if len(num) > 9 {
			num = num[len(num)-9:]
		}
	} else if area > lastNinthDigitAreaCode {
		if len(num) == 9 && num[0] == '9' {
			num = num[1:]
		} else if len(num) > 8 {
			num = num[len(num)-8:]
		}
	}

	return "55" + ddd + num
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
