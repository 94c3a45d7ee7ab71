package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/logistikpro/internal/pricing"
)

func TestDefaultDistancesSymmetric(t *testing.T) {
	t.Parallel()

	table := pricing.DefaultDistances()
	cities := pricing.Cities()
	require.Equal(t, len(cities)*(len(cities)-1)/2, table.Len())

	for _, a := range cities {
		for _, b := range cities {
			if a == b {
				assert.Zero(t, table.Lookup(a, b), "%s to itself", a)
				continue
			}
			ab := table.Lookup(a, b)
			assert.Equal(t, ab, table.Lookup(b, a), "%s <-> %s", a, b)
			assert.Positive(t, ab)
		}
	}
}

func TestDistanceKnownPairs(t *testing.T) {
	t.Parallel()

	calc := pricing.Default()
	assert.Equal(t, int64(700), calc.Distance(pricing.Moscow, pricing.SaintPetersburg))
	assert.Equal(t, int64(800), calc.Distance(pricing.Kazan, pricing.Moscow))
	assert.Equal(t, int64(270), calc.Distance(pricing.Krasnodar, pricing.Rostov))
}

func TestDistanceFallback(t *testing.T) {
	t.Parallel()

	table := pricing.NewDistanceTable([]pricing.Leg{
		{From: pricing.Moscow, To: pricing.SaintPetersburg, Km: 700},
		{From: pricing.Kazan, To: pricing.Samara, Km: 0},
		{From: pricing.Rostov, To: pricing.Rostov, Km: 5},
	}, 0)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, int64(pricing.DefaultDistanceKm), table.Lookup(pricing.Kazan, pricing.Samara))
	assert.Equal(t, int64(1000), table.Lookup(pricing.Moscow, pricing.Voronezh))
	assert.Equal(t, int64(1000), table.Lookup("unknown", pricing.Moscow))
	assert.Equal(t, int64(700), table.Lookup(pricing.SaintPetersburg, pricing.Moscow))
	assert.Zero(t, table.Lookup(pricing.Rostov, pricing.Rostov))

	custom := pricing.NewDistanceTable(nil, 1234)
	assert.Equal(t, int64(1234), custom.Lookup(pricing.Moscow, pricing.Kazan))
}

func TestQuoteUnknownPairUsesFallback(t *testing.T) {
	t.Parallel()

	calc := pricing.NewCalculator(pricing.NewDistanceTable(nil, 0), pricing.DefaultRates())
	q := calc.Quote(pricing.ShipmentRequest{From: pricing.Moscow, To: pricing.Kazan, WeightKg: dec("100")})
	require.Equal(t, int64(1000), q.DistanceKm)
	require.Equal(t, int64(15000), q.TotalPrice)
}

func TestDefaultLegsIsACopy(t *testing.T) {
	t.Parallel()

	legs := pricing.DefaultLegs()
	require.Len(t, legs, 45)
	legs[0].Km = 1
	require.EqualValues(t, 700, pricing.DefaultDistances().Lookup(pricing.Moscow, pricing.SaintPetersburg))
	require.EqualValues(t, 700, pricing.DefaultLegs()[0].Km)
}
