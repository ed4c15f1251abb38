package storage

import (
	"time"

	"kitchen-calc/internal/engine"
)

// SummaryDocument is a generated cut-list summary keyed by the unit it
// was built from. Regenerating a summary for the same unit replaces the
// previous one.
type SummaryDocument struct {
	ID      string         `json:"id"`
	UnitID  string         `json:"unit_id"`
	Summary engine.Summary `json:"summary"`

	CreatedAt time.Time `json:"created_at"`
}
