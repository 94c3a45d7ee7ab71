package lead

import (
	"strings"
)

// phoneDigits is the length of a complete Russian number including the
// leading country code.
const phoneDigits = 11

// Digits strips formatting from raw and normalises the country code: a
// leading 8 becomes 7 and a missing 7 is prepended.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if d == "" {
		return ""
	}
	if d[0] == '8' {
		d = "7" + d[1:]
	}
	if d[0] != '7' {
		d = "7" + d
	}
	return d
}

// NormalizePhone renders raw as +7 (XXX) XXX-XX-XX. Partial input is
// formatted progressively and digits past the eleventh are dropped.
func NormalizePhone(raw string) string {
	d := Digits(raw)
	if d == "" {
		return ""
	}
	if len(d) > phoneDigits {
		d = d[:phoneDigits]
	}
	var b strings.Builder
	b.WriteString("+7")
	if len(d) > 1 {
		b.WriteString(" (")
		b.WriteString(d[1:min(len(d), 4)])
	}
	if len(d) > 4 {
		b.WriteString(") ")
		b.WriteString(d[4:min(len(d), 7)])
	}
	if len(d) > 7 {
		b.WriteString("-")
		b.WriteString(d[7:min(len(d), 9)])
	}
	if len(d) > 9 {
		b.WriteString("-")
		b.WriteString(d[9:])
	}
	return b.String()
}

// ValidPhone reports whether raw normalises to a complete number.
func ValidPhone(raw string) bool {
	return len(Digits(raw)) == phoneDigits
}
