package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/plot-engine/pkg/plot"
)

func TestThemeBubbleData(t *testing.T) {
	themes := []plot.Theme{
		{
			ID:        "t1",
			SceneIDs:  []string{"s1", "s2"},
			Intensity: map[string]int{"s1": 8}, // s2 has no entry, defaults to 5
		},
		{
			ID:       "t2",
			SceneIDs: []string{"s2", "ghost"}, // ghost resolves to no scene
		},
	}
	scenes := []plot.Scene{
		{ID: "s1", Percentage: 10},
		{ID: "s2", Percentage: 60},
	}

	bubbles := ThemeBubbleData(themes, scenes)
	require.Len(t, bubbles, 3, "unknown scene IDs are skipped")

	assert.Equal(t, "t1", bubbles[0].ThemeID)
	assert.Equal(t, "s1", bubbles[0].SceneID)
	assert.Equal(t, 8, bubbles[0].Intensity)
	assert.Equal(t, 10.0, bubbles[0].X)
	assert.Equal(t, 0, bubbles[0].Y)
	assert.Equal(t, 29.0, bubbles[0].Radius) // 8*3 + 5

	assert.Equal(t, "s2", bubbles[1].SceneID)
	assert.Equal(t, plot.DefaultThemeIntensity, bubbles[1].Intensity)
	assert.Equal(t, 60.0, bubbles[1].X)
	assert.Equal(t, 20.0, bubbles[1].Radius) // 5*3 + 5

	assert.Equal(t, "t2", bubbles[2].ThemeID)
	assert.Equal(t, 1, bubbles[2].Y, "Y is the theme's index in the given order")
}

func TestThemeBubbleData_Empty(t *testing.T) {
	assert.Empty(t, ThemeBubbleData(nil, nil))
	assert.Empty(t, ThemeBubbleData([]plot.Theme{{ID: "t1"}}, []plot.Scene{{ID: "s1"}}))
}

func TestRadarVector(t *testing.T) {
	dims := []string{"Confidence", "Fear", "Hope"}

	point := &plot.CharacterArcPoint{
		BeatID:         "b1",
		EmotionalState: map[string]int{"Hope": 7, "Fear": 2, "Rage": 9}, // Rage is not an axis
	}

	vec := RadarVector(point, dims)
	assert.Equal(t, []float64{0, 2, 7}, vec)
}

func TestRadarVector_NilPoint(t *testing.T) {
	vec := RadarVector(nil, plot.DefaultArcDimensions)
	require.Len(t, vec, len(plot.DefaultArcDimensions), "axes stay aligned even with no data")
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestRadarVector_NilEmotionalState(t *testing.T) {
	vec := RadarVector(&plot.CharacterArcPoint{BeatID: "b1"}, []string{"Hope", "Fear"})
	assert.Equal(t, []float64{0, 0}, vec)
}
