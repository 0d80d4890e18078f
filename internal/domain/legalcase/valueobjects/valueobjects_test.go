package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseStatus_EveryValueHasLabel(t *testing.T) {
	for _, s := range CaseStatuses() {
		assert.True(t, s.IsValid(), s)
		assert.NotEqual(t, CaseStatus("bogus").Label(), s.Label(), s)
	}
	assert.True(t, CaseStatusAwaitingResponse.IsOpen())
	assert.False(t, CaseStatusArchived.IsOpen())
}

func TestLegalArea_EveryValueHasLabel(t *testing.T) {
	assert.Len(t, LegalAreas(), 9)
	for _, a := range LegalAreas() {
		assert.True(t, a.IsValid(), a)
		assert.NotEqual(t, LegalArea("bogus").Label(), a.Label(), a)
	}

	_, err := NewLegalArea("maritimo")
	assert.Error(t, err)
}
