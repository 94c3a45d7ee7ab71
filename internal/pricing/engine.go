package pricing

import "github.com/shopspring/decimal"

var hundredKm = decimal.NewFromInt(100)

// Rates holds the tariff constants used by the calculator. Amounts are in
// the site currency; distances in kilometres.
type Rates struct {
	PerKgPer100Km      decimal.Decimal
	MinimumPrice       decimal.Decimal
	VolumetricDensity  decimal.Decimal
	InsuranceRate      decimal.Decimal
	PackagingMinimum   decimal.Decimal
	PackagingPerKg     decimal.Decimal
	LoadingMinimum     decimal.Decimal
	LoadingPerKg       decimal.Decimal
	DoorToDoorBase     decimal.Decimal
	DoorToDoorPer100Km decimal.Decimal
}

// DefaultRates returns the published tariff.
func DefaultRates() Rates {
	return Rates{
		PerKgPer100Km:      decimal.NewFromInt(15),
		MinimumPrice:       decimal.NewFromInt(1500),
		VolumetricDensity:  decimal.NewFromInt(250),
		InsuranceRate:      decimal.RequireFromString("0.02"),
		PackagingMinimum:   decimal.NewFromInt(500),
		PackagingPerKg:     decimal.NewFromInt(10),
		LoadingMinimum:     decimal.NewFromInt(1000),
		LoadingPerKg:       decimal.NewFromInt(5),
		DoorToDoorBase:     decimal.NewFromInt(800),
		DoorToDoorPer100Km: decimal.NewFromInt(50),
	}
}

// ExtraCharge is the unrounded price of one selected add-on.
type ExtraCharge struct {
	Kind   ExtraKind
	Amount decimal.Decimal
}

// Quote is the priced result for a ShipmentRequest.
type Quote struct {
	DistanceKm         int64
	WeightKg           decimal.Decimal
	VolumeM3           decimal.Decimal
	VolumetricWeightKg decimal.Decimal
	BillableWeightKg   decimal.Decimal
	// BasePrice and ExtrasTotal are unrounded; TotalPrice is the sum of
	// their rounded values.
	BasePrice   decimal.Decimal
	ExtrasTotal decimal.Decimal
	TotalPrice  int64
	Extras      []ExtraCharge
	Tier        ServiceTier
}

// BasePriceRounded returns the base price in whole currency units.
func (q Quote) BasePriceRounded() int64 { return roundUnits(q.BasePrice) }

// ExtrasTotalRounded returns the add-on sum in whole currency units.
func (q Quote) ExtrasTotalRounded() int64 { return roundUnits(q.ExtrasTotal) }

// Calculator prices shipments against a distance table and tariff. It holds
// no mutable state.
type Calculator struct {
	table *DistanceTable
	rates Rates
}

// NewCalculator constructs a Calculator. A nil table uses DefaultDistances.
func NewCalculator(table *DistanceTable, rates Rates) *Calculator {
	if table == nil {
		table = defaultTable
	}
	return &Calculator{table: table, rates: rates}
}

// Default returns a calculator with the built-in table and tariff.
func Default() *Calculator {
	return NewCalculator(defaultTable, DefaultRates())
}

// Rates exposes the tariff in use.
func (c *Calculator) Rates() Rates { return c.rates }

// Distance resolves the road distance between two cities.
func (c *Calculator) Distance(from, to CityCode) int64 {
	return c.table.Lookup(from, to)
}

// Quote prices the request. It never fails; callers validate beforehand.
func (c *Calculator) Quote(req ShipmentRequest) Quote {
	r := c.rates
	distance := c.Distance(req.From, req.To)
	hundreds := decimal.NewFromInt(distance).Div(hundredKm)

	volumetric := req.VolumeM3.Mul(r.VolumetricDensity)
	billable := decimal.Max(req.WeightKg, volumetric)

	base := billable.Mul(hundreds).Mul(r.PerKgPer100Km)
	base = decimal.Max(base, r.MinimumPrice)
	base = base.Mul(req.Tier.Multiplier())

	extras := make([]ExtraCharge, 0, len(extraKeys))
	total := decimal.Zero
	for _, kind := range ExtraKinds() {
		if !req.Extras.Has(kind) {
			continue
		}
		var amount decimal.Decimal
		switch kind {
		case Insurance:
			amount = base.Mul(r.InsuranceRate)
		case Packaging:
			amount = decimal.Max(r.PackagingMinimum, req.WeightKg.Mul(r.PackagingPerKg))
		case Loading:
			amount = decimal.Max(r.LoadingMinimum, req.WeightKg.Mul(r.LoadingPerKg))
		case DoorToDoor:
			amount = r.DoorToDoorBase.Add(hundreds.Mul(r.DoorToDoorPer100Km))
		}
		total = total.Add(amount)
		extras = append(extras, ExtraCharge{Kind: kind, Amount: amount})
	}

	return Quote{
		DistanceKm:         distance,
		WeightKg:           req.WeightKg,
		VolumeM3:           req.VolumeM3,
		VolumetricWeightKg: volumetric,
		BillableWeightKg:   billable,
		BasePrice:          base,
		ExtrasTotal:        total,
		TotalPrice:         roundUnits(base) + roundUnits(total),
		Extras:             extras,
		Tier:               req.Tier,
	}
}

func roundUnits(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
