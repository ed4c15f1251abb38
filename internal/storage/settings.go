package storage

import (
	"time"

	"kitchen-calc/internal/engine"
)

// SettingsDocument wraps the engine settings with the persistence
// bookkeeping the admin endpoints report back.
type SettingsDocument struct {
	engine.Settings
	LastUpdated time.Time `json:"last_updated"`
}

// SettingsUpdate is a partial update of the global settings. Nil fields
// keep their stored value, so an admin can change one knob without
// resending the whole document.
type SettingsUpdate struct {
	AssemblyMethod          *string                         `json:"assembly_method,omitempty"`
	HandleType              *string                         `json:"handle_type,omitempty"`
	HandleRecessHeightMM    *int                            `json:"handle_recess_height_mm,omitempty"`
	DefaultBoardThicknessMM *int                            `json:"default_board_thickness_mm,omitempty"`
	BackPanelThicknessMM    *int                            `json:"back_panel_thickness_mm,omitempty"`
	EdgeOverlapMM           *int                            `json:"edge_overlap_mm,omitempty"`
	BackClearanceMM         *int                            `json:"back_clearance_mm,omitempty"`
	TopClearanceMM          *int                            `json:"top_clearance_mm,omitempty"`
	BottomClearanceMM       *int                            `json:"bottom_clearance_mm,omitempty"`
	SideOverlapMM           *int                            `json:"side_overlap_mm,omitempty"`
	SheetSizeM2             *float64                        `json:"sheet_size_m2,omitempty"`
	Materials               map[string]engine.MaterialPrice `json:"materials,omitempty"`
	EdgeTypes               map[string]string               `json:"edge_types,omitempty"`
	DefaultUnitDepthByType  map[string]int                  `json:"default_unit_depth_by_type,omitempty"`
}

// Apply merges the update into a settings snapshot. Maps replace
// whole entries by key rather than the whole map, so updating one
// material price leaves the others alone. The input maps are copied,
// not written through: the snapshot the caller holds stays untouched.
func (u SettingsUpdate) Apply(s engine.Settings) engine.Settings {
	if u.AssemblyMethod != nil {
		s.AssemblyMethod = *u.AssemblyMethod
	}
	if u.HandleType != nil {
		s.HandleType = *u.HandleType
	}
	if u.HandleRecessHeightMM != nil {
		s.HandleRecessHeightMM = *u.HandleRecessHeightMM
	}
	if u.DefaultBoardThicknessMM != nil {
		s.DefaultBoardThicknessMM = *u.DefaultBoardThicknessMM
	}
	if u.BackPanelThicknessMM != nil {
		s.BackPanelThicknessMM = *u.BackPanelThicknessMM
	}
	if u.EdgeOverlapMM != nil {
		s.EdgeOverlapMM = *u.EdgeOverlapMM
	}
	if u.BackClearanceMM != nil {
		s.BackClearanceMM = *u.BackClearanceMM
	}
	if u.TopClearanceMM != nil {
		s.TopClearanceMM = *u.TopClearanceMM
	}
	if u.BottomClearanceMM != nil {
		s.BottomClearanceMM = *u.BottomClearanceMM
	}
	if u.SideOverlapMM != nil {
		s.SideOverlapMM = *u.SideOverlapMM
	}
	if u.SheetSizeM2 != nil {
		s.SheetSizeM2 = *u.SheetSizeM2
	}
	if len(u.Materials) > 0 {
		merged := make(map[string]engine.MaterialPrice, len(s.Materials)+len(u.Materials))
		for key, price := range s.Materials {
			merged[key] = price
		}
		for key, price := range u.Materials {
			merged[key] = price
		}
		s.Materials = merged
	}
	if len(u.EdgeTypes) > 0 {
		merged := make(map[string]string, len(s.EdgeTypes)+len(u.EdgeTypes))
		for key, label := range s.EdgeTypes {
			merged[key] = label
		}
		for key, label := range u.EdgeTypes {
			merged[key] = label
		}
		s.EdgeTypes = merged
	}
	if len(u.DefaultUnitDepthByType) > 0 {
		merged := make(map[string]int, len(s.DefaultUnitDepthByType)+len(u.DefaultUnitDepthByType))
		for unitType, depth := range s.DefaultUnitDepthByType {
			merged[unitType] = depth
		}
		for unitType, depth := range u.DefaultUnitDepthByType {
			merged[unitType] = depth
		}
		s.DefaultUnitDepthByType = merged
	}
	return s
}
