package engine

// UnitType selects the structural composition of a cabinet unit. The shared
// panel formulas are identical for every type; only the composition differs.
type UnitType string

const (
	UnitGround     UnitType = "ground"
	UnitWall       UnitType = "wall"
	UnitTall       UnitType = "tall"
	UnitDoubleDoor UnitType = "double_door"
	UnitSinkGround UnitType = "sink_ground"
)

// composition maps a unit type to the parts it emits on top of the shared
// side/top/bottom/shelf/back set.
type composition struct {
	doorFronts     int
	shelfDrop      int // shelves removed (sink units lose the bottom shelf)
	sinkCutout     bool
	plumbingCutout bool
}

var unitCompositions = map[UnitType]composition{
	UnitGround:     {},
	UnitWall:       {},
	UnitTall:       {},
	UnitDoubleDoor: {doorFronts: 2},
	UnitSinkGround: {shelfDrop: 1, sinkCutout: true, plumbingCutout: true},
}

// UnitSpec describes one cabinet unit to calculate. DepthMM may be zero, in
// which case the per-type default depth from settings applies.
type UnitSpec struct {
	Type       UnitType `json:"type"`
	WidthMM    int      `json:"width_mm"`
	HeightMM   int      `json:"height_mm"`
	DepthMM    int      `json:"depth_mm"`
	ShelfCount int      `json:"shelf_count"`
	Options    *Options `json:"options,omitempty"`
}

// Part is one physical board of the cut list. AreaM2 and EdgeBandM are for a
// single instance; aggregations multiply by Qty exactly once.
type Part struct {
	Name      string  `json:"name"`
	WidthMM   int     `json:"width_mm"`
	HeightMM  int     `json:"height_mm"`
	DepthMM   int     `json:"depth_mm,omitempty"`
	Qty       int     `json:"qty"`
	AreaM2    float64 `json:"area_m2,omitempty"`
	EdgeBandM float64 `json:"edge_band_m,omitempty"`
}

func mm2ToM2(areaMM2 int) float64 {
	return float64(areaMM2) / 1_000_000
}

// ResolveDepth applies the depth chain: explicit spec value wins, then the
// per-type default from settings. Neither means the unit cannot be built.
func ResolveDepth(unit UnitSpec, s Settings) (int, error) {
	if unit.DepthMM > 0 {
		return unit.DepthMM, nil
	}
	if d, ok := s.DefaultUnitDepthByType[string(unit.Type)]; ok && d > 0 {
		return d, nil
	}
	return 0, &InvalidDimensionError{Part: "unit", Dimension: "depth", ValueMM: unit.DepthMM}
}

// CalculateUnitParts derives the base cut list for a unit. The result is
// deterministic for identical (unit, settings): same parts, same order, same
// numbers.
func CalculateUnitParts(unit UnitSpec, settings Settings) ([]Part, error) {
	comp, ok := unitCompositions[unit.Type]
	if !ok {
		return nil, &UnknownUnitTypeError{Type: unit.Type}
	}

	if unit.WidthMM <= 0 {
		return nil, &InvalidDimensionError{Part: "unit", Dimension: "width", ValueMM: unit.WidthMM}
	}
	if unit.HeightMM <= 0 {
		return nil, &InvalidDimensionError{Part: "unit", Dimension: "height", ValueMM: unit.HeightMM}
	}
	depth, err := ResolveDepth(unit, settings)
	if err != nil {
		return nil, err
	}

	r := resolveOptions(unit.Options, settings)

	parts := make([]Part, 0, 6)

	// 1. Side panels: width = unit depth, full unit height.
	side := Part{
		Name:     "side_panel",
		WidthMM:  depth,
		HeightMM: unit.HeightMM,
		Qty:      2,
	}
	side.AreaM2 = mm2ToM2(side.WidthMM * side.HeightMM)
	side.EdgeBandM = pieceEdgeMeters(side.Name, side.WidthMM, side.HeightMM, settings)
	parts = append(parts, side)

	// 2. Top and bottom: sit between the sides.
	topBottomWidth := unit.WidthMM - 2*r.boardThicknessMM
	if topBottomWidth <= 0 {
		return nil, &InvalidDimensionError{Part: "top_panel", Dimension: "width", ValueMM: topBottomWidth}
	}

	top := Part{
		Name:     "top_panel",
		WidthMM:  topBottomWidth,
		HeightMM: depth,
		Qty:      1,
	}
	top.AreaM2 = mm2ToM2(top.WidthMM * top.HeightMM)
	if comp.sinkCutout {
		// Sink units lose the sink opening from the top panel. The cutout is
		// capped at the panel size so a small unit never goes negative.
		top.Name = "top_panel_sink"
		cutW := min(r.sinkCutoutWidthMM, topBottomWidth)
		cutD := min(r.sinkCutoutDepthMM, depth)
		top.AreaM2 = mm2ToM2(max(0, topBottomWidth*depth-cutW*cutD))
	}
	top.EdgeBandM = pieceEdgeMeters(top.Name, top.WidthMM, top.HeightMM, settings)
	parts = append(parts, top)

	bottom := Part{
		Name:     "bottom_panel",
		WidthMM:  topBottomWidth,
		HeightMM: depth,
		Qty:      1,
	}
	bottom.AreaM2 = mm2ToM2(bottom.WidthMM * bottom.HeightMM)
	bottom.EdgeBandM = pieceEdgeMeters(bottom.Name, bottom.WidthMM, bottom.HeightMM, settings)
	parts = append(parts, bottom)

	// 3. Shelves. Zero shelves is a valid configuration, not an error.
	shelfCount := unit.ShelfCount - comp.shelfDrop
	if shelfCount > 0 {
		shelfDepth := depth - r.backClearanceMM
		if shelfDepth <= 0 {
			return nil, &InvalidDimensionError{Part: "shelf", Dimension: "depth", ValueMM: shelfDepth}
		}
		shelf := Part{
			Name:     "shelf",
			WidthMM:  topBottomWidth,
			HeightMM: shelfDepth,
			Qty:      shelfCount,
		}
		shelf.AreaM2 = mm2ToM2(shelf.WidthMM * shelf.HeightMM)
		shelf.EdgeBandM = pieceEdgeMeters(shelf.Name, shelf.WidthMM, shelf.HeightMM, settings)
		parts = append(parts, shelf)
	}

	// 4. Back panel. Thickness is carried for material accounting only.
	backWidth := unit.WidthMM - 2*r.sideOverlapMM
	backHeight := unit.HeightMM - r.topClearanceMM - r.bottomClearanceMM
	if backWidth <= 0 {
		return nil, &InvalidDimensionError{Part: "back_panel", Dimension: "width", ValueMM: backWidth}
	}
	if backHeight <= 0 {
		return nil, &InvalidDimensionError{Part: "back_panel", Dimension: "height", ValueMM: backHeight}
	}
	back := Part{
		Name:     "back_panel",
		WidthMM:  backWidth,
		HeightMM: backHeight,
		DepthMM:  r.backPanelThicknessMM,
		Qty:      1,
	}
	back.AreaM2 = mm2ToM2(back.WidthMM * back.HeightMM)
	if comp.plumbingCutout {
		back.Name = "back_panel_sink"
		cutW := min(r.plumbingCutoutWidthMM, backWidth)
		cutH := min(r.plumbingCutoutHeightMM, backHeight)
		back.AreaM2 = mm2ToM2(max(0, backWidth*backHeight-cutW*cutH))
	}
	back.EdgeBandM = pieceEdgeMeters(back.Name, back.WidthMM, back.HeightMM, settings)
	parts = append(parts, back)

	// 5. Door fronts, double-door units only.
	if comp.doorFronts > 0 {
		doorWidth := unit.WidthMM / comp.doorFronts
		doorHeight := unit.HeightMM - r.handleRecessMM
		if doorWidth <= 0 {
			return nil, &InvalidDimensionError{Part: "door_panel", Dimension: "width", ValueMM: doorWidth}
		}
		if doorHeight <= 0 {
			return nil, &InvalidDimensionError{Part: "door_panel", Dimension: "height", ValueMM: doorHeight}
		}
		door := Part{
			Name:     "door_panel",
			WidthMM:  doorWidth,
			HeightMM: doorHeight,
			Qty:      comp.doorFronts,
		}
		door.AreaM2 = mm2ToM2(door.WidthMM * door.HeightMM)
		door.EdgeBandM = pieceEdgeMeters(door.Name, door.WidthMM, door.HeightMM, settings)
		parts = append(parts, door)
	}

	return parts, nil
}

// TotalAreaM2 sums part areas across instances (qty applied here, once).
func TotalAreaM2(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.AreaM2 * float64(p.Qty)
	}
	return total
}

// TotalEdgeBandM sums banded edge meters across instances.
func TotalEdgeBandM(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.EdgeBandM * float64(p.Qty)
	}
	return total
}
