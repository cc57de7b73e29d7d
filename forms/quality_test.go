package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(value bool) *bool {
	return &value
}

func TestQualityQueryDefaultsToAll(t *testing.T) {
	query := QualityQuery{All: true}
	assert.True(t, query.WantsSections())
	assert.True(t, query.WantsSubsections())
	assert.True(t, query.WantsUnits())
	assert.True(t, query.WantsVideos())

	query = QualityQuery{}
	assert.False(t, query.WantsSections())
	assert.False(t, query.WantsVideos())
}

func TestQualityQueryExplicitParamWins(t *testing.T) {
	query := QualityQuery{All: true, Videos: boolPtr(false)}
	assert.True(t, query.WantsSections())
	assert.False(t, query.WantsVideos())

	query = QualityQuery{Sections: boolPtr(true)}
	assert.True(t, query.WantsSections())
	assert.False(t, query.WantsSubsections())
}

func TestValidationQueryExplicitParamWins(t *testing.T) {
	query := ValidationQuery{All: true, Updates: boolPtr(false)}
	assert.True(t, query.WantsDates())
	assert.True(t, query.WantsGrades())
	assert.False(t, query.WantsUpdates())
}
