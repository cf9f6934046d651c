package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagSet_SuppressesDuplicates(t *testing.T) {
	s := NewTagSet("money", "red zone", "money", " red zone ", "")
	assert.Equal(t, []string{"money", "red zone"}, s.Slice())
	assert.Equal(t, 2, s.Len())
}

func TestTagSet_AddIsIdempotent(t *testing.T) {
	s := NewTagSet().Add("blitz").Add("blitz")
	assert.Equal(t, []string{"blitz"}, s.Slice())
}

func TestTagSet_ValueSemantics(t *testing.T) {
	base := NewTagSet("money")
	grown := base.Add("opener")

	assert.Equal(t, []string{"money"}, base.Slice(), "Add must not mutate the receiver")
	assert.Equal(t, []string{"money", "opener"}, grown.Slice())

	shrunk := grown.Remove("money")
	assert.Equal(t, []string{"money", "opener"}, grown.Slice(), "Remove must not mutate the receiver")
	assert.Equal(t, []string{"opener"}, shrunk.Slice())
}

func TestTagSet_Union(t *testing.T) {
	a := NewTagSet("money", "red zone")
	b := NewTagSet("red zone", "2 min")

	assert.Equal(t, []string{"money", "red zone", "2 min"}, a.Union(b).Slice())
	assert.True(t, a.Union(a).Equal(a))
}

func TestTagSet_Toggle(t *testing.T) {
	s := NewTagSet("money")
	s = s.Toggle("money")
	assert.Equal(t, 0, s.Len())
	s = s.Toggle("money")
	assert.True(t, s.Contains("money"))
}

func TestTagSet_JSON(t *testing.T) {
	data, err := json.Marshal(TagSet{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "empty set must encode as [] not null")

	var s TagSet
	require.NoError(t, json.Unmarshal([]byte(`["a","b","a"]`), &s))
	assert.Equal(t, []string{"a", "b"}, s.Slice())

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, 0, s.Len())
}
