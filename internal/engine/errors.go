package engine

import "fmt"

// InvalidDimensionError means a derived panel dimension came out non-positive,
// e.g. board thickness larger than half the unit width. The calculation is
// aborted; clamping to zero would silently produce an uncuttable part.
type InvalidDimensionError struct {
	Part      string
	Dimension string
	ValueMM   int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: %s %s = %dmm", e.Part, e.Dimension, e.ValueMM)
}

// UnknownUnitTypeError is returned for a unit type with no composition entry.
type UnknownUnitTypeError struct {
	Type UnitType
}

func (e *UnknownUnitTypeError) Error() string {
	return fmt.Sprintf("unknown unit type: %q", string(e.Type))
}

// MissingConfigurationError marks a price or material key absent from the
// settings snapshot. Cost calculators absorb it: the affected cost term
// becomes zero and the geometric result is still returned.
type MissingConfigurationError struct {
	Key string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: materials[%q]", e.Key)
}
