package storage

import (
	"time"

	"kitchen-calc/internal/engine"
)

// UnitDocument is a calculated cabinet unit as persisted. Parts and the
// internal fit-out are stored as JSON documents next to the request
// parameters, so a saved calculation can be re-read without re-running
// the calculators against possibly newer settings.
type UnitDocument struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	WidthMM    int    `json:"width_mm"`
	HeightMM   int    `json:"height_mm"`
	DepthMM    int    `json:"depth_mm"`
	ShelfCount int    `json:"shelf_count"`

	Parts         []engine.Part        `json:"parts"`
	TotalAreaM2   float64              `json:"total_area_m2"`
	EdgeBandM     float64              `json:"edge_band_m"`
	MaterialUsage engine.MaterialUsage `json:"material_usage"`
	PriceEstimate engine.CostBreakdown `json:"price_estimate"`

	InternalParts     []engine.InternalPart `json:"internal_parts,omitempty"`
	InternalAreaM2    float64               `json:"internal_area_m2,omitempty"`
	InternalEdgeBandM float64               `json:"internal_edge_band_m,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
