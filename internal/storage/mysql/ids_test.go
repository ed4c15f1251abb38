package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnitID(t *testing.T) {
	id := newUnitID()

	assert.Len(t, id, len("unit_")+8)
	assert.Regexp(t, `^unit_[0-9a-f]{8}$`, id)
	assert.NotEqual(t, id, newUnitID())
}

func TestNewSummaryID(t *testing.T) {
	assert.Regexp(t, `^summary_[0-9a-f]{8}$`, newSummaryID())
}
