package engine

import (
	"fmt"
	"time"
)

// SummaryItem is one line of the merged report, uniform for base and interior
// parts.
type SummaryItem struct {
	PartName    string  `json:"part_name"`
	Description string  `json:"description"`
	WidthMM     int     `json:"width_mm"`
	HeightMM    int     `json:"height_mm"`
	DepthMM     int     `json:"depth_mm,omitempty"`
	Qty         int     `json:"qty"`
	AreaM2      float64 `json:"area_m2,omitempty"`
	EdgeBandM   float64 `json:"edge_band_m,omitempty"`
}

type SummaryTotals struct {
	TotalAreaM2    float64 `json:"total_area_m2"`
	TotalEdgeBandM float64 `json:"total_edge_band_m"`
	TotalParts     int     `json:"total_parts"`
	TotalQty       int     `json:"total_qty"`
}

// Summary is the final cross-cutting report for one unit. UnitID is assigned
// by the persistence layer after the fact; the engine leaves it empty.
type Summary struct {
	UnitID        string        `json:"unit_id,omitempty"`
	Items         []SummaryItem `json:"items"`
	Totals        SummaryTotals `json:"totals"`
	MaterialUsage MaterialUsage `json:"material_usage"`
	Costs         CostBreakdown `json:"costs"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

func partToSummaryItem(p Part) SummaryItem {
	return SummaryItem{
		PartName:    p.Name,
		Description: fmt.Sprintf("%s - %dmm × %dmm", p.Name, p.WidthMM, p.HeightMM),
		WidthMM:     p.WidthMM,
		HeightMM:    p.HeightMM,
		DepthMM:     p.DepthMM,
		Qty:         p.Qty,
		AreaM2:      p.AreaM2,
		EdgeBandM:   p.EdgeBandM,
	}
}

func internalPartToSummaryItem(p InternalPart) SummaryItem {
	return SummaryItem{
		PartName:    p.Name,
		Description: fmt.Sprintf("%s - %dmm × %dmm", p.Name, p.WidthMM, p.HeightMM),
		WidthMM:     p.WidthMM,
		HeightMM:    p.HeightMM,
		DepthMM:     p.DepthMM,
		Qty:         p.Qty,
		AreaM2:      p.AreaM2,
		EdgeBandM:   p.EdgeBandM,
	}
}

// SummaryFromParts merges an already calculated part list and optional
// interior fit-out into one itemized report. Item values stay per instance;
// the totals apply qty here, once. Material usage and the cost are computed
// over the merged totals so the sheet ceiling is taken once, not per section.
func SummaryFromParts(parts []Part, internalParts []InternalPart, settings Settings) *Summary {
	items := make([]SummaryItem, 0, len(parts)+len(internalParts))
	for _, p := range parts {
		items = append(items, partToSummaryItem(p))
	}
	for _, p := range internalParts {
		items = append(items, internalPartToSummaryItem(p))
	}

	totalAreaM2 := TotalAreaM2(parts) + InternalTotalAreaM2(internalParts)
	totalEdgeBandM := TotalEdgeBandM(parts) + InternalTotalEdgeBandM(internalParts)

	totalQty := 0
	for _, item := range items {
		totalQty += item.Qty
	}

	usage := CalculateMaterialUsage(totalAreaM2, totalEdgeBandM, settings)

	return &Summary{
		Items: items,
		Totals: SummaryTotals{
			TotalAreaM2:    totalAreaM2,
			TotalEdgeBandM: totalEdgeBandM,
			TotalParts:     len(items),
			TotalQty:       totalQty,
		},
		MaterialUsage: usage,
		Costs:         CalculateCost(usage, settings),
		GeneratedAt:   time.Now().UTC(),
	}
}

// GenerateSummary runs the unit calculator, optionally the internal counter
// calculator (internalOpts != nil), and merges both into one report.
func GenerateSummary(unit UnitSpec, internalOpts *InternalCounterOptions, settings Settings) (*Summary, error) {
	parts, err := CalculateUnitParts(unit, settings)
	if err != nil {
		return nil, err
	}

	var internalParts []InternalPart
	if internalOpts != nil {
		internalParts, err = CalculateInternalCounterParts(unit, *internalOpts, settings)
		if err != nil {
			return nil, err
		}
	}

	return SummaryFromParts(parts, internalParts, settings), nil
}
