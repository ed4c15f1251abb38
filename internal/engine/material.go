package engine

import "math"

// MaterialUsage is what a cut list consumes in raw material. Sheets are whole:
// a partial sheet still has to be bought.
type MaterialUsage struct {
	PlywoodSheets float64 `json:"plywood_sheets"`
	EdgeM         float64 `json:"edge_m"`
}

// CalculateMaterialUsage converts aggregate area and edge meters into sheet
// count via the configured sheet size. No nesting: this is a ceiling estimate,
// not a cut layout.
func CalculateMaterialUsage(totalAreaM2, edgeBandM float64, settings Settings) MaterialUsage {
	sheetSize := ResolveSheetSizeM2(settings)

	var sheets float64
	if totalAreaM2 > 0 {
		sheets = math.Ceil(totalAreaM2 / sheetSize)
	}

	return MaterialUsage{
		PlywoodSheets: sheets,
		EdgeM:         edgeBandM,
	}
}

// CostBreakdown is the derived cost of a material usage. Terms degrade to
// zero when their price key is missing from settings.
type CostBreakdown struct {
	MaterialCost float64 `json:"material_cost"`
	EdgeBandCost float64 `json:"edge_band_cost"`
	TotalCost    float64 `json:"total_cost"`
}

func sheetPrice(s Settings) (float64, error) {
	if mat, ok := s.Materials[MaterialPlywoodSheet]; ok && mat.PricePerSheet > 0 {
		return mat.PricePerSheet, nil
	}
	return 0, &MissingConfigurationError{Key: MaterialPlywoodSheet}
}

func edgeBandPrice(s Settings) (float64, error) {
	if mat, ok := s.Materials[MaterialEdgeBand]; ok && mat.PricePerMeter > 0 {
		return mat.PricePerMeter, nil
	}
	return 0, &MissingConfigurationError{Key: MaterialEdgeBand}
}

// CalculateCost prices a material usage against the settings snapshot.
func CalculateCost(usage MaterialUsage, settings Settings) CostBreakdown {
	var cost CostBreakdown

	if price, err := sheetPrice(settings); err == nil {
		cost.MaterialCost = usage.PlywoodSheets * price
	}
	if price, err := edgeBandPrice(settings); err == nil {
		cost.EdgeBandCost = usage.EdgeM * price
	}
	cost.TotalCost = cost.MaterialCost + cost.EdgeBandCost

	return cost
}
