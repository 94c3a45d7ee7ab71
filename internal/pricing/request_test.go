package pricing_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/logistikpro/internal/pricing"
)

func TestParseCity(t *testing.T) {
	t.Parallel()

	city, err := pricing.ParseCity(" Moscow ")
	require.NoError(t, err)
	assert.Equal(t, pricing.Moscow, city)

	_, err = pricing.ParseCity("paris")
	require.ErrorIs(t, err, pricing.ErrUnknownCity)
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	for _, tier := range pricing.Tiers() {
		parsed, err := pricing.ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}

	_, err := pricing.ParseTier("overnight")
	require.ErrorIs(t, err, pricing.ErrUnknownServiceTier)

	minDays, maxDays := pricing.Express.TransitDays()
	assert.Equal(t, 1, minDays)
	assert.Equal(t, 2, maxDays)
	assert.True(t, pricing.Economy.Multiplier().Equal(dec("0.8")))
}

func TestServiceTierJSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		Tier pricing.ServiceTier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"economy"}`), &payload))
	assert.Equal(t, pricing.Economy, payload.Tier)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"economy"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"tier":"rocket"}`), &payload))
}

func TestShipmentRequestValidate(t *testing.T) {
	t.Parallel()

	valid := pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.Kazan, WeightKg: dec("1")}
	require.NoError(t, valid.Validate())

	same := valid
	same.To = pricing.Moscow
	require.ErrorIs(t, same.Validate(), pricing.ErrInvalidRoute)

	unknown := valid
	unknown.From = "paris"
	require.ErrorIs(t, unknown.Validate(), pricing.ErrUnknownCity)

	negative := valid
	negative.VolumeM3 = dec("-0.5")
	require.ErrorIs(t, negative.Validate(), pricing.ErrNegativeMeasure)

	badTier := valid
	badTier.Tier = pricing.ServiceTier(9)
	require.ErrorIs(t, badTier.Validate(), pricing.ErrUnknownServiceTier)
}

func TestDimensionsVolume(t *testing.T) {
	t.Parallel()

	d := pricing.Dimensions{LengthCm: dec("120"), WidthCm: dec("80"), HeightCm: dec("100")}
	assert.True(t, d.VolumeM3().Equal(dec("0.96")), "got %s", d.VolumeM3())

	small := pricing.Dimensions{LengthCm: dec("33"), WidthCm: dec("21"), HeightCm: dec("17")}
	assert.True(t, small.VolumeM3().Equal(dec("0.01")), "got %s", small.VolumeM3())

	missing := pricing.Dimensions{LengthCm: dec("120"), WidthCm: dec("80")}
	assert.True(t, missing.VolumeM3().Equal(decimal.Zero))

	require.ErrorIs(t, pricing.Dimensions{HeightCm: dec("-1")}.Validate(), pricing.ErrNegativeMeasure)
}

func TestShipmentRequestRejectsOversizedMeasures(t *testing.T) {
	t.Parallel()

	base := pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.SaintPetersburg, Tier: pricing.Standard}

	req := base
	req.WeightKg = pricing.MaxWeightKg
	req.VolumeM3 = pricing.MaxVolumeM3
	require.NoError(t, req.Validate())

	req.WeightKg = dec("1e20")
	require.ErrorIs(t, req.Validate(), pricing.ErrMeasureOutOfRange)

	req = base
	req.VolumeM3 = pricing.MaxVolumeM3.Add(dec("0.01"))
	require.ErrorIs(t, req.Validate(), pricing.ErrMeasureOutOfRange)

	dims := pricing.Dimensions{LengthCm: dec("100"), WidthCm: dec("1e6"), HeightCm: dec("10")}
	require.ErrorIs(t, dims.Validate(), pricing.ErrMeasureOutOfRange)

	dims.WidthCm = dec("-1")
	require.ErrorIs(t, dims.Validate(), pricing.ErrNegativeMeasure)
}

func TestQuoteAtUpperBoundsKeepsTotalConsistent(t *testing.T) {
	t.Parallel()

	q := pricing.Default().Quote(pricing.ShipmentRequest{
		From:     pricing.SaintPetersburg,
		To:       pricing.Novosibirsk,
		WeightKg: pricing.MaxWeightKg,
		VolumeM3: pricing.MaxVolumeM3,
		Tier:     pricing.Express,
		Extras:   pricing.Extras{Insurance: true, Packaging: true, Loading: true, DoorToDoor: true},
	})
	require.True(t, q.TotalPrice > 0)
	assert.Equal(t, q.BasePrice.Round(0).Add(q.ExtrasTotal.Round(0)).IntPart(), q.TotalPrice)
	assert.Equal(t, q.BasePriceRounded()+q.ExtrasTotalRounded(), q.TotalPrice)
}
