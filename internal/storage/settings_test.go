package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchen-calc/internal/engine"
)

func intPtr(v int) *int { return &v }

func TestSettingsUpdate_ApplyScalars(t *testing.T) {
	base := engine.DefaultSettings()
	thickness := 18
	method := "glue"

	merged := SettingsUpdate{
		DefaultBoardThicknessMM: &thickness,
		AssemblyMethod:          &method,
	}.Apply(base)

	assert.Equal(t, 18, merged.DefaultBoardThicknessMM)
	assert.Equal(t, "glue", merged.AssemblyMethod)
	// untouched fields survive the merge
	assert.Equal(t, base.BackPanelThicknessMM, merged.BackPanelThicknessMM)
	assert.Equal(t, base.HandleType, merged.HandleType)
}

func TestSettingsUpdate_ApplyMergesMapsByKey(t *testing.T) {
	base := engine.DefaultSettings()

	merged := SettingsUpdate{
		Materials: map[string]engine.MaterialPrice{
			"edge_band_wood_per_meter": {PricePerMeter: 35},
		},
		DefaultUnitDepthByType: map[string]int{"wall": 280},
	}.Apply(base)

	assert.Equal(t, 35.0, merged.Materials["edge_band_wood_per_meter"].PricePerMeter)
	// existing material entries are preserved
	assert.Equal(t, 400.0, merged.Materials[engine.MaterialPlywoodSheet].PricePerSheet)
	assert.Equal(t, 280, merged.DefaultUnitDepthByType["wall"])
	assert.Equal(t, 300, merged.DefaultUnitDepthByType["ground"])
}

func TestSettingsUpdate_ApplyDoesNotAliasInputMaps(t *testing.T) {
	base := engine.DefaultSettings()

	merged := SettingsUpdate{
		Materials: map[string]engine.MaterialPrice{
			engine.MaterialPlywoodSheet: {PricePerSheet: 999},
		},
		EdgeTypes:              map[string]string{"pvc": "PVC 2mm"},
		DefaultUnitDepthByType: map[string]int{"ground": 999},
	}.Apply(base)

	// the snapshot the caller passed in keeps its values
	assert.Equal(t, 400.0, base.Materials[engine.MaterialPlywoodSheet].PricePerSheet)
	assert.Equal(t, "PVC", base.EdgeTypes["pvc"])
	assert.Equal(t, 300, base.DefaultUnitDepthByType["ground"])

	assert.Equal(t, 999.0, merged.Materials[engine.MaterialPlywoodSheet].PricePerSheet)

	// and writes to the merged maps do not leak back either
	merged.DefaultUnitDepthByType["wall"] = 1
	assert.Equal(t, 250, base.DefaultUnitDepthByType["wall"])
}

func TestSettingsUpdate_EmptyUpdateIsIdentity(t *testing.T) {
	base := engine.DefaultSettings()

	merged := SettingsUpdate{}.Apply(base)

	assert.Equal(t, base, merged)
}

func TestSettingsUpdate_ApplyOnEmptySettings(t *testing.T) {
	merged := SettingsUpdate{
		Materials: map[string]engine.MaterialPrice{
			engine.MaterialPlywoodSheet: {PricePerSheet: 500},
		},
		SideOverlapMM: intPtr(2),
	}.Apply(engine.Settings{})

	assert.Equal(t, 500.0, merged.Materials[engine.MaterialPlywoodSheet].PricePerSheet)
	assert.Equal(t, 2, merged.SideOverlapMM)
}
