package strategy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_SortedAndComplete(t *testing.T) {
	keys := Keys()
	assert.True(t, sort.StringsAreSorted(keys))
	for _, k := range []string{
		"always-cooperate", "always-defect", "tit-for-tat", "grudger",
		"suspicious-tit-for-tat", "reverse-tit-for-tat", "random", "random-defect", "neural",
	} {
		assert.Contains(t, keys, k)
		assert.True(t, IsValid(k))
	}
}

func TestNew_BuildsNamedStrategies(t *testing.T) {
	tests := []struct {
		key  string
		name string
	}{
		{"always-cooperate", "Always Cooperate"},
		{"always-defect", "Always Defect"},
		{"tit-for-tat", "Tit for Tat"},
		{"grudger", "Grudger"},
		{"suspicious-tit-for-tat", "Suspicious Tit for Tat"},
		{"reverse-tit-for-tat", "Reverse Tit for Tat"},
		{"neural", "Neural Network"},
		{"random-defect", "Random Defect"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, err := New(tt.key, Options{RandomDefectOdds: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.Name())
		})
	}
}

func TestNew_UnknownKey(t *testing.T) {
	_, err := New("always-maybe", Options{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.False(t, IsValid("always-maybe"))
}

func TestNew_NeuralMissingGenomeFile(t *testing.T) {
	_, err := New("neural", Options{GenomePath: "does/not/exist.genome"})
	assert.Error(t, err)
}

func TestNew_NeuralWithoutGenomeBuildsRandomNetwork(t *testing.T) {
	// GIVEN no genome file configured
	s, err := New("neural", Options{Seed: 11})

	// THEN the registry falls back to a random network that can play
	require.NoError(t, err)
	h, _, _ := play(s, AlwaysDefect{}, 15)
	assert.Len(t, h, 15)
}
