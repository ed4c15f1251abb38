package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func internalPartByName(t *testing.T, parts []InternalPart, name string) InternalPart {
	t.Helper()
	for _, p := range parts {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("internal part %q not found", name)
	return InternalPart{}
}

func TestCalculateInternalCounterParts_Empty(t *testing.T) {
	unit := UnitSpec{Type: UnitGround, WidthMM: 800, HeightMM: 720, DepthMM: 300}

	parts, err := CalculateInternalCounterParts(unit, InternalCounterOptions{}, DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, parts)

	usage := CalculateMaterialUsage(InternalTotalAreaM2(parts), InternalTotalEdgeBandM(parts), DefaultSettings())
	assert.Zero(t, usage.PlywoodSheets)
	assert.Zero(t, usage.EdgeM)
}

func TestCalculateInternalCounterParts_Cavity(t *testing.T) {
	settings := DefaultSettings()
	unit := UnitSpec{Type: UnitGround, WidthMM: 800, HeightMM: 720, DepthMM: 300}

	parts, err := CalculateInternalCounterParts(unit, InternalCounterOptions{
		AddBase:          true,
		AddMirror:        true,
		AddInternalShelf: true,
	}, settings)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	// cavity: 800 - 2*16 - 2*3 = 762 wide, 300 - 3 - 3 = 294 deep,
	// 720 - 2*16 - 3 = 685 high
	base := internalPartByName(t, parts, "internal_base")
	assert.Equal(t, "base", base.Type)
	assert.Equal(t, 762, base.WidthMM)
	assert.Equal(t, 294, base.HeightMM)
	assert.InDelta(t, 0.224028, base.AreaM2, 1e-9)
	assert.InDelta(t, 2.12, base.EdgeBandM, 1e-9)

	mirror := internalPartByName(t, parts, "mirror_front")
	assert.Equal(t, "mirror", mirror.Type)
	assert.Equal(t, 685, mirror.HeightMM)
	assert.Equal(t, MirrorThicknessMM, mirror.DepthMM)
	assert.Zero(t, mirror.EdgeBandM)

	shelf := internalPartByName(t, parts, "internal_shelf")
	assert.Equal(t, "shelf", shelf.Type)
	// no band on the bottom edge: 764 + 296 + 296
	assert.InDelta(t, 1.356, shelf.EdgeBandM, 1e-9)
}

func TestCalculateInternalCounterParts_Drawers(t *testing.T) {
	settings := DefaultSettings()
	unit := UnitSpec{Type: UnitGround, WidthMM: 800, HeightMM: 720, DepthMM: 300}

	parts, err := CalculateInternalCounterParts(unit, InternalCounterOptions{DrawerCount: 2}, settings)
	require.NoError(t, err)
	// bottom + side + front per drawer
	require.Len(t, parts, 6)

	bottom := internalPartByName(t, parts, "drawer_1_bottom")
	assert.Equal(t, "drawer", bottom.Type)
	assert.Equal(t, 762-2*3, bottom.WidthMM)
	assert.Equal(t, 294-2*3, bottom.HeightMM)

	side := internalPartByName(t, parts, "drawer_1_side")
	assert.Equal(t, 2, side.Qty)
	assert.Equal(t, 294-3, side.WidthMM)
	assert.Equal(t, DrawerSideHeightMM, side.HeightMM)

	front := internalPartByName(t, parts, "drawer_2_front")
	assert.Equal(t, DrawerFrontHeightMM, front.HeightMM)
	assert.Equal(t, 1, front.Qty)
}

func TestCalculateInternalCounterParts_OptionOverrides(t *testing.T) {
	settings := DefaultSettings()
	unit := UnitSpec{Type: UnitGround, WidthMM: 800, HeightMM: 720, DepthMM: 300}

	parts, err := CalculateInternalCounterParts(unit, InternalCounterOptions{
		AddBase:         true,
		BackClearanceMM: intPtr(10),
		ExpansionGapMM:  intPtr(5),
	}, settings)
	require.NoError(t, err)

	base := internalPartByName(t, parts, "internal_base")
	assert.Equal(t, 800-2*16-2*5, base.WidthMM)
	assert.Equal(t, 300-10-5, base.HeightMM)
}

func TestCalculateInternalCounterParts_CavityTooSmall(t *testing.T) {
	unit := UnitSpec{Type: UnitGround, WidthMM: 40, HeightMM: 720, DepthMM: 300}

	_, err := CalculateInternalCounterParts(unit, InternalCounterOptions{AddBase: true}, DefaultSettings())

	var dimErr *InvalidDimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, "internal_cavity", dimErr.Part)
}

func TestCalculateInternalCounterParts_UnknownType(t *testing.T) {
	unit := UnitSpec{Type: "larder", WidthMM: 800, HeightMM: 720, DepthMM: 300}

	_, err := CalculateInternalCounterParts(unit, InternalCounterOptions{AddBase: true}, DefaultSettings())

	var typeErr *UnknownUnitTypeError
	assert.ErrorAs(t, err, &typeErr)
}
