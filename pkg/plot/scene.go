package plot

// Scene is the minimal scene shape the analytics layer needs: an
// identity and a story-percentage position. The full scene document
// (prose, metadata) lives with the editor, not here.
type Scene struct {
	ID         string  `json:"id"`
	Title      string  `json:"title,omitempty"`
	Percentage float64 `json:"percentage"` // 0-100 position along the story
}

// WorldEvent is a timeline event in the story world, used by the world
// analytics summary.
type WorldEvent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Date         string   `json:"date,omitempty"` // in-world date, free-form
	Type         string   `json:"type,omitempty"`
	Importance   int      `json:"importance,omitempty"` // 1-10
	LocationIDs  []string `json:"location_ids,omitempty"`
	CharacterIDs []string `json:"character_ids,omitempty"`
	Description  string   `json:"description,omitempty"`
}
