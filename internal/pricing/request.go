package pricing

import (
	"github.com/shopspring/decimal"
)

var cubicCmPerM3 = decimal.NewFromInt(1_000_000)

// Upper bounds for a single consignment. They keep every rounded amount
// well inside int64.
var (
	MaxWeightKg = decimal.NewFromInt(1_000_000)
	MaxVolumeM3 = decimal.NewFromInt(10_000)
	MaxSideCm   = decimal.NewFromInt(100_000)
)

// ExtraKind enumerates optional add-on services.
type ExtraKind uint8

const (
	Insurance ExtraKind = iota
	Packaging
	Loading
	DoorToDoor
)

var extraKeys = [...]string{
	Insurance:  "insurance",
	Packaging:  "packaging",
	Loading:    "loading",
	DoorToDoor: "doorToDoor",
}

// ExtraKinds lists add-ons in the order they are priced and reported.
func ExtraKinds() []ExtraKind {
	return []ExtraKind{Insurance, Packaging, Loading, DoorToDoor}
}

func (k ExtraKind) String() string {
	if int(k) >= len(extraKeys) {
		return "unknown"
	}
	return extraKeys[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ExtraKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Extras holds the add-on flags selected on the form.
type Extras struct {
	Insurance  bool
	Packaging  bool
	Loading    bool
	DoorToDoor bool
}

// Has reports whether the add-on k is selected.
func (e Extras) Has(k ExtraKind) bool {
	switch k {
	case Insurance:
		return e.Insurance
	case Packaging:
		return e.Packaging
	case Loading:
		return e.Loading
	case DoorToDoor:
		return e.DoorToDoor
	default:
		return false
	}
}

// ShipmentRequest is the calculator input.
type ShipmentRequest struct {
	From     CityCode
	To       CityCode
	WeightKg decimal.Decimal
	VolumeM3 decimal.Decimal
	Tier     ServiceTier
	Extras   Extras
}

// Validate performs the caller-side checks required before quoting.
func (r ShipmentRequest) Validate() error {
	if !r.From.Valid() || !r.To.Valid() {
		return ErrUnknownCity
	}
	if r.From == r.To {
		return ErrInvalidRoute
	}
	if !r.Tier.Valid() {
		return ErrUnknownServiceTier
	}
	if r.WeightKg.IsNegative() || r.VolumeM3.IsNegative() {
		return ErrNegativeMeasure
	}
	if r.WeightKg.GreaterThan(MaxWeightKg) || r.VolumeM3.GreaterThan(MaxVolumeM3) {
		return ErrMeasureOutOfRange
	}
	return nil
}

// Dimensions are parcel sides in centimetres.
type Dimensions struct {
	LengthCm decimal.Decimal
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal
}

// Validate rejects negative or oversized sides.
func (d Dimensions) Validate() error {
	sides := []decimal.Decimal{d.LengthCm, d.WidthCm, d.HeightCm}
	for _, side := range sides {
		if side.IsNegative() {
			return ErrNegativeMeasure
		}
	}
	for _, side := range sides {
		if side.GreaterThan(MaxSideCm) {
			return ErrMeasureOutOfRange
		}
	}
	return nil
}

// VolumeM3 converts the sides into cubic metres rounded to two places, the
// precision shown on the form. It is zero unless every side is positive.
func (d Dimensions) VolumeM3() decimal.Decimal {
	if !d.LengthCm.IsPositive() || !d.WidthCm.IsPositive() || !d.HeightCm.IsPositive() {
		return decimal.Zero
	}
	return d.LengthCm.Mul(d.WidthCm).Mul(d.HeightCm).Div(cubicCmPerM3).Round(2)
}
