package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSector_EveryValueHasLabel(t *testing.T) {
	assert.Len(t, Sectors(), 7)
	for _, s := range Sectors() {
		assert.True(t, s.IsValid(), s)
		assert.NotEqual(t, Sector("x").Label(), s.Label(), s)
	}
}

func TestParseSector(t *testing.T) {
	assert.Equal(t, SectorFinancial, ParseSector("financeiro"))
	assert.Equal(t, SectorLegal, ParseSector("marketing"))
	assert.Equal(t, SectorLegal, ParseSector(""))
}

func TestStatuses_EveryValueHasLabel(t *testing.T) {
	for _, s := range OrganizationStatuses() {
		assert.True(t, s.IsValid(), s)
		assert.NotEqual(t, OrganizationStatus("x").Label(), s.Label(), s)
	}
	for _, s := range BatchStatuses() {
		assert.True(t, s.IsValid(), s)
		assert.NotEqual(t, BatchStatus("x").Label(), s.Label(), s)
	}
	assert.False(t, BatchStatusRunning.IsFinal())
	assert.True(t, BatchStatusFailed.IsFinal())
}
