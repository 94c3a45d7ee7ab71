package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceTier selects delivery speed and the price multiplier applied to the
// base price. The zero value is Standard.
type ServiceTier uint8

const (
	Standard ServiceTier = iota
	Express
	Economy
)

type tierInfo struct {
	key        string
	multiplier decimal.Decimal
	minDays    int
	maxDays    int
}

var tierTable = [...]tierInfo{
	Standard: {key: "standard", multiplier: decimal.NewFromInt(1), minDays: 3, maxDays: 5},
	Express:  {key: "express", multiplier: decimal.RequireFromString("1.5"), minDays: 1, maxDays: 2},
	Economy:  {key: "economy", multiplier: decimal.RequireFromString("0.8"), minDays: 5, maxDays: 7},
}

// Tiers lists every service tier in display order.
func Tiers() []ServiceTier {
	return []ServiceTier{Standard, Express, Economy}
}

// ParseTier resolves a form key such as "express" into a ServiceTier.
func ParseTier(value string) (ServiceTier, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	for i, info := range tierTable {
		if info.key == key {
			return ServiceTier(i), nil
		}
	}
	return Standard, fmt.Errorf("%w: %q", ErrUnknownServiceTier, value)
}

// Valid reports whether t is a declared tier.
func (t ServiceTier) Valid() bool { return int(t) < len(tierTable) }

func (t ServiceTier) info() tierInfo {
	if !t.Valid() {
		return tierTable[Standard]
	}
	return tierTable[t]
}

// String returns the stable key of the tier.
func (t ServiceTier) String() string { return t.info().key }

// Multiplier returns the factor applied to the floored base price.
func (t ServiceTier) Multiplier() decimal.Decimal { return t.info().multiplier }

// TransitDays returns the estimated delivery window in days.
func (t ServiceTier) TransitDays() (minDays, maxDays int) {
	s := t.info()
	return s.minDays, s.maxDays
}

// MarshalText implements encoding.TextMarshaler.
func (t ServiceTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ServiceTier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
