// Package ratecard exports the tariff as a spreadsheet price list.
package ratecard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// DistanceSheet is the name of the city-to-city matrix sheet.
const DistanceSheet = "km"

// ParseWeights reads a comma-separated list of positive weights in kg.
func ParseWeights(csv string) ([]decimal.Decimal, error) {
	var out []decimal.Decimal
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := common.ParseDecimal(part)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", part, err)
		}
		if !w.IsPositive() {
			return nil, fmt.Errorf("weight %q must be positive", part)
		}
		if w.GreaterThan(pricing.MaxWeightKg) {
			return nil, fmt.Errorf("weight %q: %w", part, pricing.ErrMeasureOutOfRange)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one weight is required")
	}
	return out, nil
}

// Build renders a workbook with a distance matrix and one sheet per
// service tier listing base prices (no extras) for every city pair at the
// given reference weights.
func Build(calc *pricing.Calculator, cat *i18n.Catalog, loc i18n.Locale, weights []decimal.Decimal) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := xl.SetSheetName(xl.GetSheetName(0), DistanceSheet); err != nil {
		_ = xl.Close()
		return nil, err
	}
	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = xl.Close()
		return nil, err
	}

	cities := pricing.Cities()
	cityName := func(c pricing.CityCode) string { return cat.Label(loc, "city."+c.String()) }

	header := make([]any, 0, len(cities)+1)
	header = append(header, "")
	for _, c := range cities {
		header = append(header, cityName(c))
	}
	if err := xl.SetSheetRow(DistanceSheet, "A1", &header); err != nil {
		_ = xl.Close()
		return nil, err
	}
	for i, from := range cities {
		row := make([]any, 0, len(cities)+1)
		row = append(row, cityName(from))
		for _, to := range cities {
			row = append(row, calc.Distance(from, to))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := xl.SetSheetRow(DistanceSheet, cell, &row); err != nil {
			_ = xl.Close()
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(cities) + 1)
	_ = xl.SetCellStyle(DistanceSheet, "A1", lastCol+"1", bold)
	_ = xl.SetColWidth(DistanceSheet, "A", lastCol, 18)

	kgUnit := cat.Label(loc, "unit.kg")
	for _, tier := range pricing.Tiers() {
		sheet := cat.Label(loc, "tier."+tier.String())
		if _, err := xl.NewSheet(sheet); err != nil {
			_ = xl.Close()
			return nil, err
		}
		header := []any{
			cat.Label(loc, "ratecard.from"),
			cat.Label(loc, "ratecard.to"),
			cat.Label(loc, "unit.km"),
		}
		for _, w := range weights {
			header = append(header, w.String()+" "+kgUnit)
		}
		if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
			_ = xl.Close()
			return nil, err
		}

		rowIdx := 2
		for i, from := range cities {
			for _, to := range cities[i+1:] {
				row := []any{cityName(from), cityName(to), calc.Distance(from, to)}
				for _, w := range weights {
					q := calc.Quote(pricing.ShipmentRequest{From: from, To: to, WeightKg: w, Tier: tier})
					row = append(row, q.TotalPrice)
				}
				cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
				if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
					_ = xl.Close()
					return nil, err
				}
				rowIdx++
			}
		}
		last, _ := excelize.ColumnNumberToName(len(header))
		_ = xl.SetCellStyle(sheet, "A1", last+"1", bold)
		_ = xl.SetColWidth(sheet, "A", "B", 20)
	}
	return xl, nil
}
