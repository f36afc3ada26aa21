package plot

// Theme is a thematic thread tracked across scenes. Intensity is a
// per-scene 1-10 weight; its keys must stay a subset of SceneIDs, so
// scene removal goes through WithoutScene rather than direct edits.
type Theme struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	SceneIDs    []string       `json:"scene_ids,omitempty"`
	Intensity   map[string]int `json:"intensity,omitempty"` // scene ID -> 1-10
}

// DefaultThemeIntensity is assumed for scenes linked to a theme without
// an explicit intensity entry.
const DefaultThemeIntensity = 5

// IntensityFor returns the theme's intensity in a scene, falling back
// to DefaultThemeIntensity when no entry exists.
func (t Theme) IntensityFor(sceneID string) int {
	if v, ok := t.Intensity[sceneID]; ok {
		return v
	}
	return DefaultThemeIntensity
}

// WithScene returns a copy of the theme linked to the scene at the
// given intensity. Linking an already-linked scene only updates the
// intensity entry.
func (t Theme) WithScene(sceneID string, intensity int) Theme {
	next := t
	next.SceneIDs = make([]string, len(t.SceneIDs))
	copy(next.SceneIDs, t.SceneIDs)

	found := false
	for _, id := range next.SceneIDs {
		if id == sceneID {
			found = true
			break
		}
	}
	if !found {
		next.SceneIDs = append(next.SceneIDs, sceneID)
	}

	next.Intensity = make(map[string]int, len(t.Intensity)+1)
	for k, v := range t.Intensity {
		next.Intensity[k] = v
	}
	next.Intensity[sceneID] = intensity
	return next
}

// WithoutScene returns a copy of the theme with the scene link and its
// intensity entry both removed. The paired removal keeps the
// intensity-keys-subset-of-scenes invariant.
func (t Theme) WithoutScene(sceneID string) Theme {
	next := t
	next.SceneIDs = make([]string, 0, len(t.SceneIDs))
	for _, id := range t.SceneIDs {
		if id != sceneID {
			next.SceneIDs = append(next.SceneIDs, id)
		}
	}
	next.Intensity = make(map[string]int, len(t.Intensity))
	for k, v := range t.Intensity {
		if k != sceneID {
			next.Intensity[k] = v
		}
	}
	return next
}
