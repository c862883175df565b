package calculator

import (
	"fmt"
	"strings"
)

// amountScale is the number of Amount units in one currency unit. Four
// fractional places keep amount*percent/100 exact for any two-place amount.
const amountScale = 10000

// Amount is a fixed-point decimal value in ten-thousandths.
type Amount int64

// IsZero reports whether the amount is exactly zero
func (a Amount) IsZero() bool {
	return a == 0
}

// String renders the amount with FormatFixed2
func (a Amount) String() string {
	return FormatFixed2(a)
}

// Percent returns pct percent of the amount, truncated toward zero.
func (a Amount) Percent(pct int) Amount {
	return a * Amount(pct) / 100
}

// ParseDecimal interprets an optional leading '-', digits, an optional single
// '.', and more digits. Input is expected to be well formed; characters other
// than digits are skipped and fractional digits past the fourth are dropped.
func ParseDecimal(s string) Amount {
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var v int64
	for i := 0; i < len(whole); i++ {
		if c := whole[i]; c >= '0' && c <= '9' {
			v = v*10 + int64(c-'0')
		}
	}
	v *= amountScale

	place := int64(amountScale / 10)
	for i := 0; i < len(frac) && place > 0; i++ {
		if c := frac[i]; c >= '0' && c <= '9' {
			v += int64(c-'0') * place
			place /= 10
		}
	}

	if negative {
		v = -v
	}
	return Amount(v)
}

// FormatFixed2 renders a with exactly two fractional digits, truncating any
// further places. No thousands separators are added.
func FormatFixed2(a Amount) string {
	v := int64(a)
	sign := ""
	if v < 0 {
		v = -v
		sign = "-"
	}

	cents := v / (amountScale / 100)
	if cents == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
