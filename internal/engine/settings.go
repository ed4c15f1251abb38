package engine

// Material keys the cost formulas look up in Settings.Materials.
const (
	MaterialPlywoodSheet = "plywood_sheet"
	MaterialEdgeBand     = "edge_band_per_meter"
)

// Engineering defaults. These are deliberately NOT settings fields: they are
// shop constants that only change when the workshop changes its hardware, and
// each one can still be overridden per call through Options or the internal
// counter options.
const (
	FallbackSheetSizeM2 = 2.4

	MirrorThicknessMM   = 3
	DrawerSideHeightMM  = 100
	DrawerFrontHeightMM = 150

	DefaultExpansionGapMM = 3

	DefaultSinkCutoutWidthMM      = 500
	DefaultSinkCutoutDepthMM      = 400
	DefaultPlumbingCutoutWidthMM  = 200
	DefaultPlumbingCutoutHeightMM = 100
)

type MaterialPrice struct {
	PricePerSheet float64 `json:"price_per_sheet,omitempty"`
	PricePerMeter float64 `json:"price_per_meter,omitempty"`
	SheetSizeM2   float64 `json:"sheet_size_m2,omitempty"`
}

// Settings is the configuration snapshot a single calculation sees. The engine
// never mutates it and never fetches it; the caller passes it by value so a
// concurrent settings update cannot change a calculation mid-flight.
type Settings struct {
	AssemblyMethod          string                   `json:"assembly_method"`
	HandleType              string                   `json:"handle_type"`
	HandleRecessHeightMM    int                      `json:"handle_recess_height_mm"`
	DefaultBoardThicknessMM int                      `json:"default_board_thickness_mm"`
	BackPanelThicknessMM    int                      `json:"back_panel_thickness_mm"`
	EdgeOverlapMM           int                      `json:"edge_overlap_mm"`
	BackClearanceMM         int                      `json:"back_clearance_mm"`
	TopClearanceMM          int                      `json:"top_clearance_mm"`
	BottomClearanceMM       int                      `json:"bottom_clearance_mm"`
	SideOverlapMM           int                      `json:"side_overlap_mm"`
	SheetSizeM2             float64                  `json:"sheet_size_m2"`
	Materials               map[string]MaterialPrice `json:"materials"`
	EdgeTypes               map[string]string        `json:"edge_types"`
	DefaultUnitDepthByType  map[string]int           `json:"default_unit_depth_by_type"`
}

// DefaultSettings returns the factory configuration the settings store is
// seeded with on first read.
func DefaultSettings() Settings {
	return Settings{
		AssemblyMethod:          "bolt",
		HandleType:              "built-in",
		HandleRecessHeightMM:    30,
		DefaultBoardThicknessMM: 16,
		BackPanelThicknessMM:    3,
		EdgeOverlapMM:           2,
		BackClearanceMM:         3,
		TopClearanceMM:          5,
		BottomClearanceMM:       5,
		SideOverlapMM:           0,
		SheetSizeM2:             2.4,
		Materials: map[string]MaterialPrice{
			MaterialPlywoodSheet: {PricePerSheet: 400, SheetSizeM2: 2.4},
			MaterialEdgeBand:     {PricePerMeter: 20},
		},
		EdgeTypes: map[string]string{
			"pvc":     "PVC",
			"wood":    "Wood",
			"no_edge": "No edge band",
		},
		DefaultUnitDepthByType: map[string]int{
			"ground":      300,
			"wall":        250,
			"tall":        350,
			"sink_ground": 320,
			"double_door": 300,
		},
	}
}

// Options are per-call overrides of the settings fields a calculation reads.
// A nil pointer means "use the settings value".
type Options struct {
	BoardThicknessMM     *int `json:"board_thickness_mm,omitempty"`
	BackPanelThicknessMM *int `json:"back_panel_thickness_mm,omitempty"`
	BackClearanceMM      *int `json:"back_clearance_mm,omitempty"`
	TopClearanceMM       *int `json:"top_clearance_mm,omitempty"`
	BottomClearanceMM    *int `json:"bottom_clearance_mm,omitempty"`
	SideOverlapMM        *int `json:"side_overlap_mm,omitempty"`
	HandleRecessHeightMM *int `json:"handle_recess_height_mm,omitempty"`

	SinkCutoutWidthMM      *int `json:"sink_cutout_width_mm,omitempty"`
	SinkCutoutDepthMM      *int `json:"sink_cutout_depth_mm,omitempty"`
	PlumbingCutoutWidthMM  *int `json:"plumbing_cutout_width_mm,omitempty"`
	PlumbingCutoutHeightMM *int `json:"plumbing_cutout_height_mm,omitempty"`
}

// resolveMM is the single fallback rule for dimensional knobs:
// explicit per-call override wins, otherwise the settings value.
func resolveMM(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}

// resolved holds every knob CalculateUnitParts reads, after applying the
// override chain once. Keeping this in one place stops inline fallbacks from
// spreading through the formulas.
type resolved struct {
	boardThicknessMM     int
	backPanelThicknessMM int
	backClearanceMM      int
	topClearanceMM       int
	bottomClearanceMM    int
	sideOverlapMM        int
	handleRecessMM       int

	sinkCutoutWidthMM      int
	sinkCutoutDepthMM      int
	plumbingCutoutWidthMM  int
	plumbingCutoutHeightMM int
}

func resolveOptions(opts *Options, s Settings) resolved {
	if opts == nil {
		opts = &Options{}
	}
	return resolved{
		boardThicknessMM:     resolveMM(opts.BoardThicknessMM, s.DefaultBoardThicknessMM),
		backPanelThicknessMM: resolveMM(opts.BackPanelThicknessMM, s.BackPanelThicknessMM),
		backClearanceMM:      resolveMM(opts.BackClearanceMM, s.BackClearanceMM),
		topClearanceMM:       resolveMM(opts.TopClearanceMM, s.TopClearanceMM),
		bottomClearanceMM:    resolveMM(opts.BottomClearanceMM, s.BottomClearanceMM),
		sideOverlapMM:        resolveMM(opts.SideOverlapMM, s.SideOverlapMM),
		handleRecessMM:       resolveMM(opts.HandleRecessHeightMM, s.HandleRecessHeightMM),

		sinkCutoutWidthMM:      resolveMM(opts.SinkCutoutWidthMM, DefaultSinkCutoutWidthMM),
		sinkCutoutDepthMM:      resolveMM(opts.SinkCutoutDepthMM, DefaultSinkCutoutDepthMM),
		plumbingCutoutWidthMM:  resolveMM(opts.PlumbingCutoutWidthMM, DefaultPlumbingCutoutWidthMM),
		plumbingCutoutHeightMM: resolveMM(opts.PlumbingCutoutHeightMM, DefaultPlumbingCutoutHeightMM),
	}
}

// ResolveSheetSizeM2 picks the sheet size for material usage. The order is
// fixed: the global settings value, then the per-material size on
// "plywood_sheet", then the engineering fallback. Older installations only
// have the per-material size, so the chain must stay exactly like this.
func ResolveSheetSizeM2(s Settings) float64 {
	sheetSize := s.SheetSizeM2
	if mat, ok := s.Materials[MaterialPlywoodSheet]; ok && mat.SheetSizeM2 > 0 {
		sheetSize = mat.SheetSizeM2
	}
	if sheetSize <= 0 {
		sheetSize = FallbackSheetSizeM2
	}
	return sheetSize
}
