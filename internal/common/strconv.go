package common

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNumberOutOfRange is returned for numbers whose digits or exponent are
// too large to be a plausible form value.
var ErrNumberOutOfRange = errors.New("number out of range")

const (
	maxNumberLength   = 64
	maxDecimalDigits  = 24
	maxDecimalExpSize = 12
)

// ParseDecimal parses a form number, accepting a comma as the decimal
// separator. Input longer than 64 bytes, with more than 24 significant
// digits, or with an exponent beyond ±12 fails with ErrNumberOutOfRange
// before any arithmetic touches it.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if len(value) > maxNumberLength {
		return decimal.Zero, ErrNumberOutOfRange
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	exp := parsed.Exponent()
	if exp > maxDecimalExpSize || exp < -maxDecimalExpSize || parsed.NumDigits() > maxDecimalDigits {
		return decimal.Zero, ErrNumberOutOfRange
	}
	return parsed, nil
}

// DecimalOrZero is ParseDecimal for lenient form fields: blank or malformed
// input yields zero. Out-of-range input is still reported.
func DecimalOrZero(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	parsed, err := ParseDecimal(value)
	if errors.Is(err, ErrNumberOutOfRange) {
		return decimal.Zero, err
	}
	if err != nil {
		return decimal.Zero, nil
	}
	return parsed, nil
}
