package engine

import "fmt"

// InternalCounterOptions selects the interior sub-assembly of a unit.
// BackClearanceMM and ExpansionGapMM override the settings value and the
// engineering default respectively.
type InternalCounterOptions struct {
	AddBase          bool `json:"add_base"`
	AddMirror        bool `json:"add_mirror"`
	AddInternalShelf bool `json:"add_internal_shelf"`
	DrawerCount      int  `json:"drawer_count"`
	BackClearanceMM  *int `json:"back_clearance_mm,omitempty"`
	ExpansionGapMM   *int `json:"expansion_gap_mm,omitempty"`
}

// InternalPart is one interior board. Same qty convention as Part: AreaM2 and
// EdgeBandM are per instance.
type InternalPart struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	WidthMM   int     `json:"width_mm"`
	HeightMM  int     `json:"height_mm"`
	DepthMM   int     `json:"depth_mm,omitempty"`
	Qty       int     `json:"qty"`
	AreaM2    float64 `json:"area_m2,omitempty"`
	EdgeBandM float64 `json:"edge_band_m,omitempty"`
}

// cavity is the usable interior of a unit. Interior parts size against this,
// not against the base-part formulas: the cavity subtracts the side boards and
// an expansion gap so the parts actually slide in.
type cavity struct {
	widthMM  int
	depthMM  int
	heightMM int
}

func internalCavity(unit UnitSpec, depthMM int, opts InternalCounterOptions, s Settings) (cavity, error) {
	board := s.DefaultBoardThicknessMM
	backClearance := resolveMM(opts.BackClearanceMM, s.BackClearanceMM)
	gap := resolveMM(opts.ExpansionGapMM, DefaultExpansionGapMM)

	c := cavity{
		widthMM:  unit.WidthMM - 2*board - 2*gap,
		depthMM:  depthMM - backClearance - gap,
		heightMM: unit.HeightMM - 2*board - gap,
	}
	if c.widthMM <= 0 {
		return cavity{}, &InvalidDimensionError{Part: "internal_cavity", Dimension: "width", ValueMM: c.widthMM}
	}
	if c.depthMM <= 0 {
		return cavity{}, &InvalidDimensionError{Part: "internal_cavity", Dimension: "depth", ValueMM: c.depthMM}
	}
	if c.heightMM <= 0 {
		return cavity{}, &InvalidDimensionError{Part: "internal_cavity", Dimension: "height", ValueMM: c.heightMM}
	}
	return c, nil
}

func newInternalPart(name, partType string, widthMM, heightMM, qty int, settings Settings) InternalPart {
	p := InternalPart{
		Name:     name,
		Type:     partType,
		WidthMM:  widthMM,
		HeightMM: heightMM,
		Qty:      qty,
	}
	p.AreaM2 = mm2ToM2(widthMM * heightMM)
	p.EdgeBandM = pieceEdgeMeters(name, widthMM, heightMM, settings)
	return p
}

// CalculateInternalCounterParts derives the interior sub-assembly: base,
// mirror, internal shelf and drawer stacks, all conditional on options. An
// empty option set yields an empty cut list, which is valid.
func CalculateInternalCounterParts(unit UnitSpec, opts InternalCounterOptions, settings Settings) ([]InternalPart, error) {
	if _, ok := unitCompositions[unit.Type]; !ok {
		return nil, &UnknownUnitTypeError{Type: unit.Type}
	}
	if opts.DrawerCount < 0 {
		return nil, &InvalidDimensionError{Part: "drawer", Dimension: "count", ValueMM: opts.DrawerCount}
	}

	// Nothing requested: skip cavity checks so a summary without internals
	// works for any unit size.
	if !opts.AddBase && !opts.AddMirror && !opts.AddInternalShelf && opts.DrawerCount == 0 {
		return []InternalPart{}, nil
	}

	depth, err := ResolveDepth(unit, settings)
	if err != nil {
		return nil, err
	}
	c, err := internalCavity(unit, depth, opts, settings)
	if err != nil {
		return nil, err
	}
	gap := resolveMM(opts.ExpansionGapMM, DefaultExpansionGapMM)

	var parts []InternalPart

	if opts.AddBase {
		parts = append(parts, newInternalPart("internal_base", "base", c.widthMM, c.depthMM, 1, settings))
	}

	if opts.AddMirror {
		mirror := newInternalPart("mirror_front", "mirror", c.widthMM, c.heightMM, 1, settings)
		mirror.DepthMM = MirrorThicknessMM
		parts = append(parts, mirror)
	}

	if opts.AddInternalShelf {
		parts = append(parts, newInternalPart("internal_shelf", "shelf", c.widthMM, c.depthMM, 1, settings))
	}

	for i := 1; i <= opts.DrawerCount; i++ {
		bottomW := c.widthMM - 2*gap
		bottomD := c.depthMM - 2*gap
		if bottomW <= 0 || bottomD <= 0 {
			return nil, &InvalidDimensionError{
				Part: fmt.Sprintf("drawer_%d_bottom", i), Dimension: "width", ValueMM: min(bottomW, bottomD),
			}
		}

		parts = append(parts,
			newInternalPart(fmt.Sprintf("drawer_%d_bottom", i), "drawer", bottomW, bottomD, 1, settings),
			newInternalPart(fmt.Sprintf("drawer_%d_side", i), "drawer", c.depthMM-gap, DrawerSideHeightMM, 2, settings),
			newInternalPart(fmt.Sprintf("drawer_%d_front", i), "drawer", bottomW, DrawerFrontHeightMM, 1, settings),
		)
	}

	return parts, nil
}

// InternalTotalAreaM2 sums interior part areas across instances.
func InternalTotalAreaM2(parts []InternalPart) float64 {
	var total float64
	for _, p := range parts {
		total += p.AreaM2 * float64(p.Qty)
	}
	return total
}

// InternalTotalEdgeBandM sums interior banded edge meters across instances.
func InternalTotalEdgeBandM(parts []InternalPart) float64 {
	var total float64
	for _, p := range parts {
		total += p.EdgeBandM * float64(p.Qty)
	}
	return total
}
