package analytics

import "github.com/jwebster45206/plot-engine/pkg/plot"

// ThemeBubbleData projects theme-scene links into bubble chart points.
// Only scenes a theme actually references are emitted; a link without
// an intensity entry defaults to 5. Ordering is stable: themes in
// given order, and within a theme its scene IDs in given order. Scene
// IDs that resolve to no known scene are skipped silently (the user
// may be mid-edit).
func ThemeBubbleData(themes []plot.Theme, scenes []plot.Scene) []ThemeBubble {
	byID := make(map[string]plot.Scene, len(scenes))
	for _, s := range scenes {
		byID[s.ID] = s
	}

	var bubbles []ThemeBubble
	for themeIdx, t := range themes {
		for _, sceneID := range t.SceneIDs {
			scene, ok := byID[sceneID]
			if !ok {
				continue
			}
			intensity := t.IntensityFor(sceneID)
			bubbles = append(bubbles, ThemeBubble{
				ThemeID:   t.ID,
				SceneID:   sceneID,
				Intensity: intensity,
				X:         scene.Percentage,
				Y:         themeIdx,
				Radius:    float64(intensity)*3 + 5,
			})
		}
	}
	return bubbles
}

// RadarVector maps an arc point onto a fixed dimension order for radar
// charting. Missing dimensions read as zero, and a nil point yields an
// all-zero vector; the length always equals len(dimensionOrder) so
// chart axes stay aligned no matter how incomplete the data entry is.
func RadarVector(point *plot.CharacterArcPoint, dimensionOrder []string) []float64 {
	vec := make([]float64, len(dimensionOrder))
	if point == nil {
		return vec
	}
	for i, dim := range dimensionOrder {
		vec[i] = float64(point.EmotionalState[dim])
	}
	return vec
}
