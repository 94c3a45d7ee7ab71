package quote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// Measure is a numeric form field. It accepts JSON numbers and the raw
// strings a browser form submits; blank strings and null leave it unset.
type Measure struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler. Numbers with an absurd digit
// count or exponent fail with pricing.ErrMeasureOutOfRange.
func (m *Measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Measure{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*m = Measure{}
			return nil
		}
		v, err := common.DecimalOrZero(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", pricing.ErrMeasureOutOfRange, err)
		}
		*m = Measure{Value: v, Set: true}
		return nil
	}
	v, err := common.ParseDecimal(string(data))
	if errors.Is(err, common.ErrNumberOutOfRange) {
		return fmt.Errorf("%w: %w", pricing.ErrMeasureOutOfRange, err)
	}
	if err != nil {
		return err
	}
	*m = Measure{Value: v, Set: true}
	return nil
}

// Request is the JSON body accepted by POST /api/calculator.
type Request struct {
	CityFrom    string  `json:"cityFrom"`
	CityTo      string  `json:"cityTo"`
	Weight      Measure `json:"weight"`
	Volume      Measure `json:"volume"`
	Length      Measure `json:"length"`
	Width       Measure `json:"width"`
	Height      Measure `json:"height"`
	ServiceType string  `json:"serviceType"`
	Insurance   bool    `json:"insurance"`
	Packaging   bool    `json:"packaging"`
	Loading     bool    `json:"loading"`
	DoorToDoor  bool    `json:"doorToDoor"`
}

// Shipment converts the form into a validated pricing request. A blank
// serviceType selects the standard tier, and a missing volume is derived
// from the parcel dimensions.
func (r Request) Shipment() (pricing.ShipmentRequest, error) {
	from, err := pricing.ParseCity(r.CityFrom)
	if err != nil {
		return pricing.ShipmentRequest{}, err
	}
	to, err := pricing.ParseCity(r.CityTo)
	if err != nil {
		return pricing.ShipmentRequest{}, err
	}
	tier := pricing.Standard
	if strings.TrimSpace(r.ServiceType) != "" {
		if tier, err = pricing.ParseTier(r.ServiceType); err != nil {
			return pricing.ShipmentRequest{}, err
		}
	}

	volume := r.Volume.Value
	if !r.Volume.Set {
		dims := pricing.Dimensions{LengthCm: r.Length.Value, WidthCm: r.Width.Value, HeightCm: r.Height.Value}
		if err := dims.Validate(); err != nil {
			return pricing.ShipmentRequest{}, err
		}
		volume = dims.VolumeM3()
	}

	req := pricing.ShipmentRequest{
		From:     from,
		To:       to,
		WeightKg: r.Weight.Value,
		VolumeM3: volume,
		Tier:     tier,
		Extras: pricing.Extras{
			Insurance:  r.Insurance,
			Packaging:  r.Packaging,
			Loading:    r.Loading,
			DoorToDoor: r.DoorToDoor,
		},
	}
	if err := req.Validate(); err != nil {
		return pricing.ShipmentRequest{}, err
	}
	return req, nil
}
