package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePieceEdgeMeters_Overlap(t *testing.T) {
	settings := DefaultSettings()
	settings.EdgeOverlapMM = 2

	// a 300mm edge carries 302mm of band
	part := Part{Name: "bottom_panel", WidthMM: 300, HeightMM: 300, Qty: 1}
	assert.InDelta(t, 4*0.302, CalculatePieceEdgeMeters(part, settings), 1e-9)
}

func TestCalculateEdgeBreakdownForPart_PolicyTable(t *testing.T) {
	settings := DefaultSettings()

	shelf := Part{Name: "shelf", WidthMM: 768, HeightMM: 297, Qty: 2}
	breakdown := CalculateEdgeBreakdownForPart(shelf, settings, EdgePVC)

	assert.Equal(t, "shelf", breakdown.PartName)
	assert.Equal(t, 2, breakdown.Qty)
	require.Len(t, breakdown.Edges, 4)

	byEdge := map[string]EdgeDetail{}
	for _, e := range breakdown.Edges {
		byEdge[e.Edge] = e
	}

	// shelves keep the bottom edge raw
	assert.True(t, byEdge["top"].HasEdge)
	assert.True(t, byEdge["left"].HasEdge)
	assert.True(t, byEdge["right"].HasEdge)
	assert.False(t, byEdge["bottom"].HasEdge)

	// banded edges include the overlap, raw edges do not
	assert.Equal(t, 770, byEdge["top"].LengthMM)
	assert.Equal(t, 768, byEdge["bottom"].LengthMM)
	assert.Equal(t, 299, byEdge["left"].LengthMM)
	assert.InDelta(t, 0.299, byEdge["left"].LengthM, 1e-9)

	// total counts banded edges only, times qty
	assert.InDelta(t, (0.770+0.299+0.299)*2, breakdown.TotalEdgeM, 1e-9)
}

func TestCalculateEdgeBreakdownForPart_BackPanelUnbanded(t *testing.T) {
	breakdown := CalculateEdgeBreakdownForPart(
		Part{Name: "back_panel", WidthMM: 800, HeightMM: 710, Qty: 1},
		DefaultSettings(),
		EdgePVC,
	)

	assert.Zero(t, breakdown.TotalEdgeM)
	for _, e := range breakdown.Edges {
		assert.False(t, e.HasEdge)
	}
}

func TestEdgesFor_DrawerNamesCollapse(t *testing.T) {
	assert.Equal(t, edgePolicy["drawer_bottom"], edgesFor("drawer_3_bottom"))
	assert.Equal(t, edgePolicy["drawer_side"], edgesFor("drawer_1_side"))
	assert.Equal(t, edgePolicy["drawer_front"], edgesFor("drawer_2_front"))

	// unknown parts band all four edges
	assert.Equal(t, allEdges, edgesFor("plinth"))
}

func TestCalculateEdgeBreakdown_DefaultsToPVC(t *testing.T) {
	parts := []Part{{Name: "side_panel", WidthMM: 300, HeightMM: 720, Qty: 2}}

	breakdown := CalculateEdgeBreakdown(parts, DefaultSettings(), "")
	require.Len(t, breakdown, 1)
	assert.Equal(t, EdgePVC, breakdown[0].EdgeType)
}

func TestCalculateEdgeCost_TypedPriceWinsOverGeneric(t *testing.T) {
	settings := DefaultSettings()
	settings.Materials["edge_band_wood_per_meter"] = MaterialPrice{PricePerMeter: 35}

	parts := []Part{{Name: "side_panel", WidthMM: 300, HeightMM: 720, Qty: 1}}

	woodCost := CalculateEdgeCost(CalculateEdgeBreakdown(parts, settings, EdgeWood), settings)
	pvcCost := CalculateEdgeCost(CalculateEdgeBreakdown(parts, settings, EdgePVC), settings)

	assert.InDelta(t, 2.048*35, woodCost.TotalCost, 1e-9)
	// pvc has no typed key, falls back to the generic price
	assert.InDelta(t, 2.048*20, pvcCost.TotalCost, 1e-9)
	assert.Contains(t, woodCost.CostBreakdown, "wood")
}

func TestCalculateEdgeCost_MissingPriceIsZeroNotError(t *testing.T) {
	settings := DefaultSettings()
	delete(settings.Materials, MaterialEdgeBand)

	parts := []Part{{Name: "side_panel", WidthMM: 300, HeightMM: 720, Qty: 1}}
	cost := CalculateEdgeCost(CalculateEdgeBreakdown(parts, settings, EdgePVC), settings)

	assert.Zero(t, cost.TotalCost)
	assert.Empty(t, cost.CostBreakdown)
}

func TestParseEdgeType(t *testing.T) {
	et, ok := ParseEdgeType("PVC")
	assert.True(t, ok)
	assert.Equal(t, EdgePVC, et)

	_, ok = ParseEdgeType("granite")
	assert.False(t, ok)
}
