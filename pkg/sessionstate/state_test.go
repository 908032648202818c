package sessionstate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmptyObject(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	assert.NotNil(t, s)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestAccessors(t *testing.T) {
	s := New()

	assert.Equal(t, "", s.Phase())
	assert.Equal(t, 0, s.Iteration())
	assert.Nil(t, s.Slots())

	s.SetPhase("intake")
	s.SetIteration(3)
	s.SetSlot("mood", "anxious")
	s.SetSlot("goal", "sleep")

	assert.Equal(t, "intake", s.Phase())
	assert.Equal(t, 3, s.Iteration())
	assert.Equal(t, "anxious", s.Slots()["mood"])
	assert.Equal(t, "sleep", s.Slots()["goal"])
}

func TestIterationSurvivesJSONRoundTrip(t *testing.T) {
	s := New()
	s.SetIteration(7)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(raw, &back))

	// json.Unmarshal decodes numbers as float64
	assert.Equal(t, 7, back.Iteration())
}

func TestUnknownKeysPreserved(t *testing.T) {
	var s State
	require.NoError(t, json.Unmarshal([]byte(`{
		"slots": {"mood": "anxious"},
		"phase": "intake",
		"iteration": 1,
		"experimental_flag": true,
		"nested": {"a": [1, 2, 3]}
	}`), &s))

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, true, back["experimental_flag"])
	assert.Equal(t, s["nested"], back["nested"])
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.SetPhase("intake")
	s.SetSlot("mood", "anxious")
	s["custom"] = map[string]any{"k": "v"}

	c := s.Clone()
	c.SetPhase("intervention")
	c.SetSlot("mood", "calm")
	c["custom"].(map[string]any)["k"] = "changed"

	assert.Equal(t, "intake", s.Phase())
	assert.Equal(t, "anxious", s.Slots()["mood"])
	assert.Equal(t, "v", s["custom"].(map[string]any)["k"])
}

func TestCloneNil(t *testing.T) {
	var s State
	c := s.Clone()
	assert.NotNil(t, c)
	assert.True(t, c.IsEmpty())
}
