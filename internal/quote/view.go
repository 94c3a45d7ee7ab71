package quote

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// Place is a city with its localised name.
type Place struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RouteView describes the priced leg.
type RouteView struct {
	From       Place  `json:"from"`
	To         Place  `json:"to"`
	DistanceKm int64  `json:"distanceKm"`
	Distance   string `json:"distance"`
}

// TierView is a service tier rendered for display.
type TierView struct {
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	Days       string      `json:"days"`
	Multiplier json.Number `json:"multiplier"`
}

// ExtraView is one priced add-on. Amount is the exact, unrounded charge.
type ExtraView struct {
	Kind      string      `json:"kind"`
	Label     string      `json:"label"`
	Amount    json.Number `json:"amount"`
	Formatted string      `json:"formatted"`
}

// View is the localised calculator result.
type View struct {
	Locale             i18n.Locale `json:"locale"`
	Route              RouteView   `json:"route"`
	WeightKg           json.Number `json:"weightKg"`
	VolumeM3           json.Number `json:"volumeM3"`
	VolumetricWeightKg json.Number `json:"volumetricWeightKg"`
	BillableWeightKg   json.Number `json:"billableWeightKg"`
	Weight             string      `json:"weight"`
	Volume             string      `json:"volume"`
	Tier               TierView    `json:"service"`
	Extras             []ExtraView `json:"extras"`

	BasePrice            int64  `json:"basePrice"`
	ExtrasPrice          int64  `json:"extrasPrice"`
	TotalPrice           int64  `json:"totalPrice"`
	BasePriceFormatted   string `json:"basePriceFormatted"`
	ExtrasPriceFormatted string `json:"extrasPriceFormatted"`
	TotalPriceFormatted  string `json:"totalPriceFormatted"`
}

// Option is a selectable form value with its label.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TierOption extends Option with the transit time.
type TierOption struct {
	Option
	Days       string      `json:"days"`
	Multiplier json.Number `json:"multiplier"`
}

// Options lists the values the calculator form offers.
type Options struct {
	Locale i18n.Locale  `json:"locale"`
	Cities []Option     `json:"cities"`
	Tiers  []TierOption `json:"serviceTypes"`
	Extras []Option     `json:"extras"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.Round(2).String())
}

func render(cat *i18n.Catalog, loc i18n.Locale, q pricing.Quote, from, to pricing.CityCode) View {
	extras := make([]ExtraView, 0, len(q.Extras))
	for _, e := range q.Extras {
		extras = append(extras, ExtraView{
			Kind:      e.Kind.String(),
			Label:     cat.Label(loc, "extra."+e.Kind.String()),
			Amount:    json.Number(e.Amount.String()),
			Formatted: cat.FormatMoney(loc, e.Amount),
		})
	}
	base := q.BasePriceRounded()
	extrasTotal := q.ExtrasTotalRounded()
	return View{
		Locale: loc,
		Route: RouteView{
			From:       place(cat, loc, from),
			To:         place(cat, loc, to),
			DistanceKm: q.DistanceKm,
			Distance:   i18n.FormatNumber(loc, decimal.NewFromInt(q.DistanceKm)) + " " + cat.Label(loc, "unit.km"),
		},
		WeightKg:           number(q.WeightKg),
		VolumeM3:           number(q.VolumeM3),
		VolumetricWeightKg: number(q.VolumetricWeightKg),
		BillableWeightKg:   number(q.BillableWeightKg),
		Weight:             i18n.FormatNumber(loc, q.WeightKg) + " " + cat.Label(loc, "unit.kg"),
		Volume:             i18n.FormatNumber(loc, q.VolumeM3) + " " + cat.Label(loc, "unit.m3"),
		Tier:               tierView(cat, loc, q.Tier),
		Extras:             extras,

		BasePrice:            base,
		ExtrasPrice:          extrasTotal,
		TotalPrice:           q.TotalPrice,
		BasePriceFormatted:   cat.FormatUnits(loc, base),
		ExtrasPriceFormatted: cat.FormatUnits(loc, extrasTotal),
		TotalPriceFormatted:  cat.FormatUnits(loc, q.TotalPrice),
	}
}

func place(cat *i18n.Catalog, loc i18n.Locale, c pricing.CityCode) Place {
	return Place{Code: c.String(), Name: cat.Label(loc, "city."+c.String())}
}

func tierView(cat *i18n.Catalog, loc i18n.Locale, t pricing.ServiceTier) TierView {
	key := t.String()
	return TierView{
		Key:        key,
		Name:       cat.Label(loc, "tier."+key),
		Days:       cat.Label(loc, "tier."+key+".days"),
		Multiplier: json.Number(t.Multiplier().String()),
	}
}

func options(cat *i18n.Catalog, loc i18n.Locale) Options {
	out := Options{Locale: loc}
	for _, c := range pricing.Cities() {
		out.Cities = append(out.Cities, Option{Key: c.String(), Label: cat.Label(loc, "city."+c.String())})
	}
	for _, t := range pricing.Tiers() {
		tv := tierView(cat, loc, t)
		out.Tiers = append(out.Tiers, TierOption{
			Option:     Option{Key: tv.Key, Label: tv.Name},
			Days:       tv.Days,
			Multiplier: tv.Multiplier,
		})
	}
	for _, k := range pricing.ExtraKinds() {
		out.Extras = append(out.Extras, Option{Key: k.String(), Label: cat.Label(loc, "extra."+k.String())})
	}
	return out
}
