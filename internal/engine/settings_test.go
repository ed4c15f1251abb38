package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMM(t *testing.T) {
	assert.Equal(t, 16, resolveMM(nil, 16))
	assert.Equal(t, 18, resolveMM(intPtr(18), 16))
	// an explicit zero is still an override
	assert.Equal(t, 0, resolveMM(intPtr(0), 16))
}

func TestResolveOptions_NilOptions(t *testing.T) {
	s := DefaultSettings()

	r := resolveOptions(nil, s)

	assert.Equal(t, s.DefaultBoardThicknessMM, r.boardThicknessMM)
	assert.Equal(t, s.BackClearanceMM, r.backClearanceMM)
	assert.Equal(t, DefaultSinkCutoutWidthMM, r.sinkCutoutWidthMM)
}

func TestResolveOptions_PartialOverride(t *testing.T) {
	s := DefaultSettings()
	opts := &Options{
		BoardThicknessMM: intPtr(18),
		SideOverlapMM:    intPtr(4),
	}

	r := resolveOptions(opts, s)

	assert.Equal(t, 18, r.boardThicknessMM)
	assert.Equal(t, 4, r.sideOverlapMM)
	// untouched knobs keep their settings value
	assert.Equal(t, s.TopClearanceMM, r.topClearanceMM)
	assert.Equal(t, s.BackPanelThicknessMM, r.backPanelThicknessMM)
}

func TestDefaultSettings_CostKeysPresent(t *testing.T) {
	s := DefaultSettings()

	assert.Contains(t, s.Materials, MaterialPlywoodSheet)
	assert.Contains(t, s.Materials, MaterialEdgeBand)
	assert.Positive(t, s.SheetSizeM2)
	assert.Contains(t, s.DefaultUnitDepthByType, string(UnitGround))
}
