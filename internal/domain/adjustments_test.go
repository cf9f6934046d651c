package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAdjustments_Valid(t *testing.T) {
	adj := DefaultAdjustments()
	assert.Empty(t, adj.Shading)
	assert.Equal(t, "none", adj.Coaching.DLStunt)
	assert.Equal(t, "0", adj.Coaching.ZoneDrop)
	assert.NoError(t, adj.Validate())
}

func TestCoaching_Set(t *testing.T) {
	c := DefaultCoaching()
	require.NoError(t, c.Set("dl_stunt", "texas"))
	assert.Equal(t, "texas", c.DLStunt)

	assert.ErrorIs(t, c.Set("dl_stunt", "loop"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("nickel_depth", "deep"), ErrInvalidValue)
	assert.Equal(t, "texas", c.DLStunt)
}

func TestCoaching_WithDefaults(t *testing.T) {
	c := Coaching{CBAlignment: "press"}.WithDefaults()
	assert.Equal(t, "press", c.CBAlignment)
	assert.Equal(t, "normal", c.SafetyWidth)
	assert.Equal(t, "qb", c.OptionKey)
}

func TestDefensiveAdjustments_ValidateRejectsUnknownOption(t *testing.T) {
	adj := DefaultAdjustments()
	adj.Coaching.CoverageShell = "cover9"
	assert.ErrorIs(t, adj.Validate(), ErrInvalidValue)
}

func TestTaxonomy(t *testing.T) {
	all, ok := LookupSituation(SituationAll)
	require.True(t, ok)
	assert.False(t, all.Assignable())

	rz, ok := LookupSituation("red-zone")
	require.True(t, ok)
	assert.True(t, rz.Assignable())
	assert.Equal(t, "red zone", rz.Tag)

	for _, s := range Situations {
		if s.Assignable() {
			_, ok := LookupSituationTag(s.Tag)
			assert.True(t, ok, "situation %s tag %q should be in the tag catalog", s.ID, s.Tag)
		}
	}
}
