package plot

// BStory is a subplot, usually carried by a secondary character, that
// comments on the main story's theme.
type BStory struct {
	ID             string            `json:"id"`
	CharacterID    string            `json:"character_id,omitempty"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	SceneIDs       []string          `json:"scene_ids,omitempty"`
	ThematicImpact map[string]string `json:"thematic_impact,omitempty"` // theme ID -> note
}
