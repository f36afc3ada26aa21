package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetWords(t *testing.T) {
	tests := []struct {
		name       string
		target     int
		percentage float64
		expected   int
	}{
		{"opening image", 80000, 0, 0},
		{"theme stated", 80000, 5, 4000},
		{"midpoint", 80000, 50, 40000},
		{"final image", 80000, 100, 80000},
		{"rounds half up", 1000, 0.05, 1},
		{"rounds down", 1000, 0.04, 0},
		{"odd target", 77777, 15, 11667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetWords(tt.target, tt.percentage)
			if got != tt.expected {
				t.Errorf("TargetWords(%d, %v) = %d, want %d", tt.target, tt.percentage, got, tt.expected)
			}
		})
	}
}

func TestWithTargetWordCount(t *testing.T) {
	ps := PlotStructure{
		TargetWordCount: 80000,
		Beats: []Beat{
			{ID: "b1", Percentage: 0, WordCount: 0},
			{ID: "b2", Percentage: 50, WordCount: 40000},
			{ID: "b3", Percentage: 100, WordCount: 80000},
		},
	}

	next := ps.WithTargetWordCount(100000)

	assert.Equal(t, 100000, next.TargetWordCount)
	assert.Equal(t, 0, next.Beats[0].WordCount)
	assert.Equal(t, 50000, next.Beats[1].WordCount)
	assert.Equal(t, 100000, next.Beats[2].WordCount)

	// Original is untouched
	assert.Equal(t, 80000, ps.TargetWordCount)
	assert.Equal(t, 40000, ps.Beats[1].WordCount)
}

func TestWithBeat(t *testing.T) {
	ps := PlotStructure{
		Beats: []Beat{
			{ID: "b1", Name: "Setup"},
			{ID: "b2", Name: "Catalyst"},
		},
	}

	next := ps.WithBeat(Beat{ID: "b2", Name: "Catalyst", IsCompleted: true})
	assert.True(t, next.Beats[1].IsCompleted)
	assert.False(t, ps.Beats[1].IsCompleted, "original should not be mutated")

	// Unknown ID leaves the structure unchanged
	same := ps.WithBeat(Beat{ID: "missing"})
	assert.Equal(t, ps.Beats, same.Beats)
}

func TestThemeSceneLinks(t *testing.T) {
	theme := Theme{ID: "t1", Name: "Redemption"}

	theme = theme.WithScene("s1", 8)
	theme = theme.WithScene("s2", 6)

	assert.Equal(t, 8, theme.IntensityFor("s1"))
	assert.Equal(t, 6, theme.IntensityFor("s2"))
	assert.Equal(t, DefaultThemeIntensity, theme.IntensityFor("unlinked"))

	// Relinking only updates the intensity entry
	theme = theme.WithScene("s1", 9)
	assert.Equal(t, 9, theme.IntensityFor("s1"))
	assert.Len(t, theme.SceneIDs, 2)

	// Removal drops both the link and the intensity entry
	theme = theme.WithoutScene("s1")
	assert.NotContains(t, theme.SceneIDs, "s1")
	_, ok := theme.Intensity["s1"]
	assert.False(t, ok, "intensity entry should be removed with the scene link")
	assert.Contains(t, theme.SceneIDs, "s2")
}

func TestConflictBaseline(t *testing.T) {
	c := Conflict{Type: ConflictInternal}
	if c.Baseline() != float64(DefaultConflictIntensity) {
		t.Errorf("expected default baseline %d, got %v", DefaultConflictIntensity, c.Baseline())
	}

	c.Intensity = 8
	if c.Baseline() != 8 {
		t.Errorf("expected baseline 8, got %v", c.Baseline())
	}
}

func TestApplyBeatUpdate(t *testing.T) {
	b := Beat{ID: "b1", Name: "Setup", Content: "draft", WordCount: 4000}

	name := "Setup Revised"
	done := true
	updated := ApplyBeatUpdate(b, BeatUpdate{Name: &name, IsCompleted: &done})

	assert.Equal(t, "Setup Revised", updated.Name)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "draft", updated.Content, "nil fields should not change")
	assert.Equal(t, 4000, updated.WordCount)

	// Empty update is a no-op
	assert.Equal(t, b, ApplyBeatUpdate(b, BeatUpdate{}))
}

func TestApplyConflictUpdate(t *testing.T) {
	c := Conflict{ID: "c1", Type: ConflictInternal, Intensity: 5}

	typ := ConflictExternal
	intensity := 9
	updated := ApplyConflictUpdate(c, ConflictUpdate{Type: &typ, Intensity: &intensity})

	assert.Equal(t, ConflictExternal, updated.Type)
	assert.Equal(t, 9, updated.Intensity)
	assert.Equal(t, ConflictInternal, c.Type, "original should not be mutated")
}

func TestApplyBStoryUpdate(t *testing.T) {
	b := BStory{ID: "bs1", Name: "The mentor's debt", SceneIDs: []string{"s1"}}

	desc := "Pays off at the midpoint"
	impact := map[string]string{"t1": "echoes the main theme"}
	updated := ApplyBStoryUpdate(b, BStoryUpdate{Description: &desc, ThematicImpact: &impact})

	assert.Equal(t, "Pays off at the midpoint", updated.Description)
	assert.Equal(t, "echoes the main theme", updated.ThematicImpact["t1"])
	assert.Equal(t, "The mentor's debt", updated.Name)
	assert.Empty(t, b.ThematicImpact, "original should not be mutated")

	// The applied map is a copy, not an alias
	impact["t1"] = "changed"
	assert.Equal(t, "echoes the main theme", updated.ThematicImpact["t1"])
}

func TestCharacterArc(t *testing.T) {
	c := Character{ID: "hero", Name: "Mara"}

	c = c.WithArcPoint(CharacterArcPoint{BeatID: "b1", EmotionalState: map[string]int{"Hope": 3}})
	c = c.WithArcPoint(CharacterArcPoint{BeatID: "b2", EmotionalState: map[string]int{"Hope": 7}})

	// Replacing an existing beat's point does not grow the arc
	c = c.WithArcPoint(CharacterArcPoint{BeatID: "b1", EmotionalState: map[string]int{"Hope": 4}})
	assert.Len(t, c.Arc, 2)

	byBeat := c.ArcByBeatID()
	assert.Equal(t, 4, byBeat["b1"].EmotionalState["Hope"])
	assert.Equal(t, 7, byBeat["b2"].EmotionalState["Hope"])
}
