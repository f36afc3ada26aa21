package plot

// DefaultArcDimensions is the standard emotional vocabulary for
// character arc tracking. Engine functions take the dimension order as
// an argument, so callers can substitute their own vocabulary; this is
// the default the UI and API use.
var DefaultArcDimensions = []string{
	"Confidence",
	"Fear",
	"Hope",
	"Courage",
	"Selflessness",
	"Trust",
	"Determination",
	"Wisdom",
}

// CharacterArcPoint records a character's emotional state at one beat.
// There is at most one point per (character, beat) pair. Missing
// dimensions read as zero; a point with all-zero values still counts
// as "present" for arc completion.
type CharacterArcPoint struct {
	BeatID         string         `json:"beat_id"`
	EmotionalState map[string]int `json:"emotional_state,omitempty"` // dimension -> 0-10
	Notes          string         `json:"notes,omitempty"`
}

// Character is a story character with an optional emotional arc across
// the beat sheet.
type Character struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Traits      []string            `json:"traits,omitempty"`
	Arc         []CharacterArcPoint `json:"arc,omitempty"`
}

// ArcByBeatID indexes the character's arc points by beat ID. Later
// points win when a beat appears twice (last write from the editor).
func (c Character) ArcByBeatID() map[string]CharacterArcPoint {
	byBeat := make(map[string]CharacterArcPoint, len(c.Arc))
	for _, p := range c.Arc {
		byBeat[p.BeatID] = p
	}
	return byBeat
}

// WithArcPoint returns a copy of the character with the arc point for
// that beat replaced, or appended if the beat had none.
func (c Character) WithArcPoint(p CharacterArcPoint) Character {
	next := c
	next.Arc = make([]CharacterArcPoint, len(c.Arc))
	copy(next.Arc, c.Arc)
	for i := range next.Arc {
		if next.Arc[i].BeatID == p.BeatID {
			next.Arc[i] = p
			return next
		}
	}
	next.Arc = append(next.Arc, p)
	return next
}

// Relationship is a directed link between two characters, used by the
// network analytics. Strength is 0-100.
type Relationship struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"` // e.g. "ally", "rival", "mentor"
	Strength float64 `json:"strength"`
}
