package plot

import "math"

// Beat is a named structural point in a story, positioned as a
// percentage of total length rather than an absolute word offset.
type Beat struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Percentage  float64  `json:"percentage"`            // 0-100 position along the story
	Description string   `json:"description,omitempty"` // what this beat is for, from the template
	Content     string   `json:"content,omitempty"`     // the writer's draft material for this beat
	WordCount   int      `json:"word_count"`            // target words, derived at generation time
	SceneIDs    []string `json:"scene_ids,omitempty"`
	IsCompleted bool     `json:"is_completed"`
}

// TargetWords computes the word budget for a beat position against a
// total target. Beats store this at generation time; it is not kept in
// sync when the structure's target changes. Recomputing is the caller's
// job (see PlotStructure.WithTargetWordCount).
func TargetWords(targetWordCount int, percentage float64) int {
	return int(math.Round(float64(targetWordCount) * percentage / 100.0))
}

// HasScene reports whether the beat references the given scene.
func (b Beat) HasScene(sceneID string) bool {
	for _, id := range b.SceneIDs {
		if id == sceneID {
			return true
		}
	}
	return false
}
