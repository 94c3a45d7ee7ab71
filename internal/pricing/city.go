package pricing

import (
	"fmt"
	"slices"
	"strings"
)

// CityCode identifies one of the cities served by the calculator.
type CityCode string

const (
	Moscow          CityCode = "moscow"
	SaintPetersburg CityCode = "spb"
	Kazan           CityCode = "kazan"
	Yekaterinburg   CityCode = "ekb"
	Novosibirsk     CityCode = "novosibirsk"
	NizhnyNovgorod  CityCode = "nnov"
	Samara          CityCode = "samara"
	Rostov          CityCode = "rostov"
	Krasnodar       CityCode = "krasnodar"
	Voronezh        CityCode = "voronezh"
)

var cities = []CityCode{
	Moscow,
	SaintPetersburg,
	Kazan,
	Yekaterinburg,
	Novosibirsk,
	NizhnyNovgorod,
	Samara,
	Rostov,
	Krasnodar,
	Voronezh,
}

// Cities returns the supported cities in display order.
func Cities() []CityCode {
	return slices.Clone(cities)
}

// Valid reports whether c is one of the supported cities.
func (c CityCode) Valid() bool {
	return slices.Contains(cities, c)
}

func (c CityCode) String() string { return string(c) }

// ParseCity converts a form token into a CityCode.
func ParseCity(value string) (CityCode, error) {
	code := CityCode(strings.ToLower(strings.TrimSpace(value)))
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, value)
	}
	return code, nil
}
