package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/logistikpro/internal/pricing"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestQuoteScenarios(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()

	tests := []struct {
		name       string
		req        pricing.ShipmentRequest
		distance   int64
		billable   string
		base       int64
		extras     int64
		total      int64
		extraKinds []pricing.ExtraKind
	}{
		{
			name:     "standard heavy shipment above floor",
			req:      pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.SaintPetersburg, WeightKg: dec("500"), Tier: pricing.Standard},
			distance: 700,
			billable: "500",
			base:     52500,
			total:    52500,
		},
		{
			name:     "economy light shipment floored before multiplier",
			req:      pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.SaintPetersburg, WeightKg: dec("10"), Tier: pricing.Economy},
			distance: 700,
			billable: "10",
			base:     1200,
			total:    1200,
		},
		{
			name: "express volumetric with insurance and door to door",
			req: pricing.ShipmentRequest{
				From: pricing.Moscow, To: pricing.Kazan,
				WeightKg: decimal.Zero, VolumeM3: dec("2"),
				Tier:   pricing.Express,
				Extras: pricing.Extras{Insurance: true, DoorToDoor: true},
			},
			distance:   800,
			billable:   "500",
			base:       90000,
			extras:     3000,
			total:      93000,
			extraKinds: []pricing.ExtraKind{pricing.Insurance, pricing.DoorToDoor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := calc.Quote(tt.req)
			require.Equal(t, tt.distance, q.DistanceKm)
			require.True(t, q.BillableWeightKg.Equal(dec(tt.billable)), "billable %s", q.BillableWeightKg)
			require.Equal(t, tt.base, q.BasePriceRounded())
			require.Equal(t, tt.extras, q.ExtrasTotalRounded())
			require.Equal(t, tt.total, q.TotalPrice)
			require.Equal(t, tt.req.Tier, q.Tier)
			kinds := make([]pricing.ExtraKind, 0, len(q.Extras))
			for _, e := range q.Extras {
				kinds = append(kinds, e.Kind)
			}
			if tt.extraKinds == nil {
				require.Empty(t, kinds)
			} else {
				require.Equal(t, tt.extraKinds, kinds)
			}
		})
	}
}

func TestQuoteExtraAmounts(t *testing.T) {
	t.Parallel()

	q := pricing.Default().Quote(pricing.ShipmentRequest{
		From: pricing.Moscow, To: pricing.Kazan,
		VolumeM3: dec("2"),
		Tier:     pricing.Express,
		Extras:   pricing.Extras{Insurance: true, DoorToDoor: true},
	})
	require.True(t, q.BasePrice.Equal(dec("90000")))
	require.Len(t, q.Extras, 2)
	require.True(t, q.Extras[0].Amount.Equal(dec("1800")), "insurance %s", q.Extras[0].Amount)
	require.True(t, q.Extras[1].Amount.Equal(dec("1200")), "door %s", q.Extras[1].Amount)
	require.True(t, q.ExtrasTotal.Equal(dec("3000")))
}

func TestQuotePackagingAndLoadingUseDeclaredWeight(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()
	light := calc.Quote(pricing.ShipmentRequest{
		From: pricing.Kazan, To: pricing.Samara,
		WeightKg: dec("20"), VolumeM3: dec("3"),
		Extras: pricing.Extras{Packaging: true, Loading: true},
	})
	require.Len(t, light.Extras, 2)
	require.True(t, light.Extras[0].Amount.Equal(dec("500")), "packaging minimum")
	require.True(t, light.Extras[1].Amount.Equal(dec("1000")), "loading minimum")

	heavy := calc.Quote(pricing.ShipmentRequest{
		From: pricing.Kazan, To: pricing.Samara,
		WeightKg: dec("400"),
		Extras:   pricing.Extras{Packaging: true, Loading: true},
	})
	require.True(t, heavy.Extras[0].Amount.Equal(dec("4000")))
	require.True(t, heavy.Extras[1].Amount.Equal(dec("2000")))
}

func TestQuoteFloorDependsOnTier(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()
	for _, tier := range pricing.Tiers() {
		q := calc.Quote(pricing.ShipmentRequest{From: pricing.Rostov, To: pricing.Krasnodar, WeightKg: dec("1"), Tier: tier})
		want := dec("1500").Mul(tier.Multiplier())
		require.True(t, q.BasePrice.Equal(want), "tier %s base %s", tier, q.BasePrice)
	}
}

func TestQuoteTotalIsSumOfRoundedParts(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()
	weights := []string{"0", "0.7", "13.3", "101.25", "999.99"}
	volumes := []string{"0", "0.01", "0.37", "1.5"}
	for _, w := range weights {
		for _, v := range volumes {
			for mask := 0; mask < 16; mask++ {
				req := pricing.ShipmentRequest{
					From: pricing.SaintPetersburg, To: pricing.Krasnodar,
					WeightKg: dec(w), VolumeM3: dec(v),
					Tier: pricing.Express,
					Extras: pricing.Extras{
						Insurance:  mask&1 != 0,
						Packaging:  mask&2 != 0,
						Loading:    mask&4 != 0,
						DoorToDoor: mask&8 != 0,
					},
				}
				q := calc.Quote(req)
				require.Equal(t, q.BasePriceRounded()+q.ExtrasTotalRounded(), q.TotalPrice)

				sum := decimal.Zero
				for _, e := range q.Extras {
					sum = sum.Add(e.Amount)
				}
				require.True(t, sum.Equal(q.ExtrasTotal))
				require.True(t, q.BillableWeightKg.Equal(decimal.Max(dec(w), dec(v).Mul(dec("250")))))
			}
		}
	}
}

func TestQuoteReverseRouteIsIdentical(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()
	req := pricing.ShipmentRequest{
		From: pricing.Moscow, To: pricing.Kazan,
		VolumeM3: dec("2"), Tier: pricing.Express,
		Extras: pricing.Extras{Insurance: true, DoorToDoor: true},
	}
	forward := calc.Quote(req)
	req.From, req.To = req.To, req.From
	reverse := calc.Quote(req)

	require.Equal(t, int64(800), reverse.DistanceKm)
	require.Equal(t, forward.TotalPrice, reverse.TotalPrice)
	require.True(t, forward.BasePrice.Equal(reverse.BasePrice))
	require.True(t, forward.ExtrasTotal.Equal(reverse.ExtrasTotal))
}

func TestQuoteWithCustomRates(t *testing.T) {
	t.Parallel()

	rates := pricing.DefaultRates()
	rates.MinimumPrice = dec("3000")
	calc := pricing.NewCalculator(nil, rates)
	q := calc.Quote(pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.Voronezh, WeightKg: dec("1"), Tier: pricing.Economy})
	require.Equal(t, int64(2400), q.BasePriceRounded())
	require.Equal(t, int64(2400), q.TotalPrice)
}
