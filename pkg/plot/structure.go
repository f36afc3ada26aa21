package plot

import "time"

// PlotStructure is the complete structural skeleton of one project's
// story: its beat sheet plus the themes, conflicts and subplots hung
// off it. A structure owns its children by value; update operations
// return a new structure rather than mutating in place.
type PlotStructure struct {
	ID              string     `json:"id"`
	TargetWordCount int        `json:"target_word_count"`
	Beats           []Beat     `json:"beats"` // ordered by percentage; ties are allowed
	Themes          []Theme    `json:"themes,omitempty"`
	Conflicts       []Conflict `json:"conflicts,omitempty"`
	BStories        []BStory   `json:"b_stories,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeatByID returns the beat with the given ID, or false when absent.
// Absence is not an error; callers render empty state instead.
func (ps PlotStructure) BeatByID(id string) (Beat, bool) {
	for _, b := range ps.Beats {
		if b.ID == id {
			return b, true
		}
	}
	return Beat{}, false
}

// BeatIDs returns the IDs of all beats in structure order.
func (ps PlotStructure) BeatIDs() []string {
	ids := make([]string, len(ps.Beats))
	for i, b := range ps.Beats {
		ids[i] = b.ID
	}
	return ids
}

// WithTargetWordCount returns a copy of the structure with a new word
// target and every beat's word budget recomputed from its percentage.
func (ps PlotStructure) WithTargetWordCount(target int) PlotStructure {
	next := ps
	next.TargetWordCount = target
	next.Beats = make([]Beat, len(ps.Beats))
	for i, b := range ps.Beats {
		b.WordCount = TargetWords(target, b.Percentage)
		next.Beats[i] = b
	}
	next.UpdatedAt = time.Now().UTC()
	return next
}

// WithBeat returns a copy of the structure with the beat matching
// b.ID replaced. Unknown IDs leave the structure unchanged.
func (ps PlotStructure) WithBeat(b Beat) PlotStructure {
	next := ps
	next.Beats = make([]Beat, len(ps.Beats))
	copy(next.Beats, ps.Beats)
	for i := range next.Beats {
		if next.Beats[i].ID == b.ID {
			next.Beats[i] = b
			next.UpdatedAt = time.Now().UTC()
			break
		}
	}
	return next
}
