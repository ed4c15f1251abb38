package engine

import "strings"

// EdgeType is the banding material applied to an exposed edge.
type EdgeType string

const (
	EdgePVC  EdgeType = "pvc"
	EdgeWood EdgeType = "wood"
	EdgeNone EdgeType = "no_edge"
)

// ParseEdgeType validates a caller-supplied edge type string.
func ParseEdgeType(s string) (EdgeType, bool) {
	switch EdgeType(strings.ToLower(s)) {
	case EdgePVC:
		return EdgePVC, true
	case EdgeWood:
		return EdgeWood, true
	case EdgeNone:
		return EdgeNone, true
	}
	return "", false
}

type edgeSet struct {
	top, bottom, left, right bool
}

var allEdges = edgeSet{top: true, bottom: true, left: true, right: true}
var noEdges = edgeSet{}

// edgePolicy is the banding policy per part: exposed edges get band, edges
// hidden in a joint or against the wall do not. Shelves keep the bottom edge
// raw because it sits on the shelf pins.
var edgePolicy = map[string]edgeSet{
	"side_panel":      allEdges,
	"top_panel":       allEdges,
	"top_panel_sink":  allEdges,
	"bottom_panel":    allEdges,
	"shelf":           {top: true, left: true, right: true},
	"back_panel":      noEdges,
	"back_panel_sink": noEdges,
	"door_panel":      allEdges,

	"internal_base":  allEdges,
	"internal_shelf": {top: true, left: true, right: true},
	"mirror_front":   noEdges,
	"drawer_bottom":  {top: true, left: true, right: true},
	"drawer_side":    allEdges,
	"drawer_front":   allEdges,
}

// edgesFor resolves the policy entry for a part name. Numbered drawer parts
// (drawer_2_side, drawer_1_bottom, ...) collapse to their per-kind entry.
// Unknown parts band all four edges.
func edgesFor(name string) edgeSet {
	if set, ok := edgePolicy[name]; ok {
		return set
	}
	if strings.HasPrefix(name, "drawer_") {
		switch {
		case strings.HasSuffix(name, "_bottom"):
			return edgePolicy["drawer_bottom"]
		case strings.HasSuffix(name, "_side"):
			return edgePolicy["drawer_side"]
		case strings.HasSuffix(name, "_front"):
			return edgePolicy["drawer_front"]
		}
	}
	return allEdges
}

// pieceEdgeMeters is the shared formula behind both the unit and internal
// counter calculators: banded edges only, each edge the relevant dimension
// plus the glue overlap, for a single instance of the part.
func pieceEdgeMeters(name string, widthMM, heightMM int, s Settings) float64 {
	set := edgesFor(name)
	totalMM := 0
	if set.top {
		totalMM += widthMM + s.EdgeOverlapMM
	}
	if set.bottom {
		totalMM += widthMM + s.EdgeOverlapMM
	}
	if set.left {
		totalMM += heightMM + s.EdgeOverlapMM
	}
	if set.right {
		totalMM += heightMM + s.EdgeOverlapMM
	}
	return float64(totalMM) / 1000
}

// CalculatePieceEdgeMeters returns the edge band meters one instance of the
// part needs.
func CalculatePieceEdgeMeters(part Part, settings Settings) float64 {
	return pieceEdgeMeters(part.Name, part.WidthMM, part.HeightMM, settings)
}

// EdgeDetail describes one of the four edges of a part.
type EdgeDetail struct {
	Edge     string   `json:"edge"`
	LengthMM int      `json:"length_mm"`
	LengthM  float64  `json:"length_m"`
	EdgeType EdgeType `json:"edge_type"`
	HasEdge  bool     `json:"has_edge"`
}

// EdgeBandPart is the per-part edge breakdown. TotalEdgeM covers every
// instance (qty applied), matching how the other aggregates are reported.
type EdgeBandPart struct {
	PartName   string       `json:"part_name"`
	Qty        int          `json:"qty"`
	Edges      []EdgeDetail `json:"edges"`
	TotalEdgeM float64      `json:"total_edge_m"`
	EdgeType   EdgeType     `json:"edge_type"`
}

func edgeDetail(edge string, dimensionMM int, banded bool, edgeType EdgeType, s Settings) EdgeDetail {
	lengthMM := dimensionMM
	if banded {
		lengthMM += s.EdgeOverlapMM
	}
	return EdgeDetail{
		Edge:     edge,
		LengthMM: lengthMM,
		LengthM:  float64(lengthMM) / 1000,
		EdgeType: edgeType,
		HasEdge:  banded,
	}
}

// CalculateEdgeBreakdownForPart lists all four edges of a part with lengths
// and the banding decision from the policy table. Unbanded edges are included
// for documentation but do not count toward the total.
func CalculateEdgeBreakdownForPart(part Part, settings Settings, edgeType EdgeType) EdgeBandPart {
	set := edgesFor(part.Name)

	edges := []EdgeDetail{
		edgeDetail("top", part.WidthMM, set.top, edgeType, settings),
		edgeDetail("bottom", part.WidthMM, set.bottom, edgeType, settings),
		edgeDetail("left", part.HeightMM, set.left, edgeType, settings),
		edgeDetail("right", part.HeightMM, set.right, edgeType, settings),
	}

	totalMM := 0
	for _, e := range edges {
		if e.HasEdge {
			totalMM += e.LengthMM
		}
	}

	return EdgeBandPart{
		PartName:   part.Name,
		Qty:        part.Qty,
		Edges:      edges,
		TotalEdgeM: float64(totalMM) / 1000 * float64(part.Qty),
		EdgeType:   edgeType,
	}
}

// CalculateEdgeBreakdown runs the per-part breakdown over a whole cut list.
// selectedEdgeType defaults to PVC when empty.
func CalculateEdgeBreakdown(parts []Part, settings Settings, selectedEdgeType EdgeType) []EdgeBandPart {
	if selectedEdgeType == "" {
		selectedEdgeType = EdgePVC
	}
	breakdown := make([]EdgeBandPart, 0, len(parts))
	for _, part := range parts {
		breakdown = append(breakdown, CalculateEdgeBreakdownForPart(part, settings, selectedEdgeType))
	}
	return breakdown
}

// CalculateTotalEdgeMeters sums the breakdown totals.
func CalculateTotalEdgeMeters(breakdown []EdgeBandPart) float64 {
	var total float64
	for _, p := range breakdown {
		total += p.TotalEdgeM
	}
	return total
}

// EdgeCost is the edge band cost grouped by edge type.
type EdgeCost struct {
	CostBreakdown map[string]float64 `json:"cost_breakdown"`
	TotalCost     float64            `json:"total_cost"`
}

// edgeBandPriceFor looks up the per-meter price for an edge type: the typed
// key first (edge_band_pvc_per_meter), then the generic one.
func edgeBandPriceFor(edgeType EdgeType, s Settings) (float64, error) {
	typedKey := "edge_band_" + string(edgeType) + "_per_meter"
	if mat, ok := s.Materials[typedKey]; ok && mat.PricePerMeter > 0 {
		return mat.PricePerMeter, nil
	}
	if mat, ok := s.Materials[MaterialEdgeBand]; ok && mat.PricePerMeter > 0 {
		return mat.PricePerMeter, nil
	}
	return 0, &MissingConfigurationError{Key: MaterialEdgeBand}
}

// CalculateEdgeCost prices the breakdown per edge type. A missing price key
// is not an error here: the affected type simply contributes zero.
func CalculateEdgeCost(breakdown []EdgeBandPart, settings Settings) EdgeCost {
	metersByType := map[EdgeType]float64{}
	for _, p := range breakdown {
		metersByType[p.EdgeType] += p.TotalEdgeM
	}

	cost := EdgeCost{CostBreakdown: map[string]float64{}}
	for edgeType, meters := range metersByType {
		if edgeType == EdgeNone {
			continue
		}
		price, err := edgeBandPriceFor(edgeType, settings)
		if err != nil {
			continue
		}
		cost.CostBreakdown[string(edgeType)] = meters * price
		cost.TotalCost += meters * price
	}
	return cost
}
