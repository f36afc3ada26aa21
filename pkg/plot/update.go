package plot

// Partial updates are explicit: each entity has an Update record whose
// nil fields mean "leave as is", and an Apply function that returns a
// new value. Nothing here mutates the input.

// BeatUpdate is a partial update to a Beat.
type BeatUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Percentage  *float64  `json:"percentage,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	WordCount   *int      `json:"word_count,omitempty"`
	SceneIDs    *[]string `json:"scene_ids,omitempty"`
	IsCompleted *bool     `json:"is_completed,omitempty"`
}

// ApplyBeatUpdate returns a new Beat with the non-nil fields of u
// applied to b.
func ApplyBeatUpdate(b Beat, u BeatUpdate) Beat {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Percentage != nil {
		b.Percentage = *u.Percentage
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
	if u.WordCount != nil {
		b.WordCount = *u.WordCount
	}
	if u.SceneIDs != nil {
		ids := make([]string, len(*u.SceneIDs))
		copy(ids, *u.SceneIDs)
		b.SceneIDs = ids
	}
	if u.IsCompleted != nil {
		b.IsCompleted = *u.IsCompleted
	}
	return b
}

// ThemeUpdate is a partial update to a Theme. Scene links and their
// intensities move together through WithScene/WithoutScene, so this
// record only covers the scalar fields.
type ThemeUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ApplyThemeUpdate returns a new Theme with the non-nil fields of u
// applied to t.
func ApplyThemeUpdate(t Theme, u ThemeUpdate) Theme {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	return t
}

// BStoryUpdate is a partial update to a BStory.
type BStoryUpdate struct {
	CharacterID    *string            `json:"character_id,omitempty"`
	Name           *string            `json:"name,omitempty"`
	Description    *string            `json:"description,omitempty"`
	SceneIDs       *[]string          `json:"scene_ids,omitempty"`
	ThematicImpact *map[string]string `json:"thematic_impact,omitempty"`
}

// ApplyBStoryUpdate returns a new BStory with the non-nil fields of u
// applied to b.
func ApplyBStoryUpdate(b BStory, u BStoryUpdate) BStory {
	if u.CharacterID != nil {
		b.CharacterID = *u.CharacterID
	}
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.SceneIDs != nil {
		ids := make([]string, len(*u.SceneIDs))
		copy(ids, *u.SceneIDs)
		b.SceneIDs = ids
	}
	if u.ThematicImpact != nil {
		impact := make(map[string]string, len(*u.ThematicImpact))
		for k, v := range *u.ThematicImpact {
			impact[k] = v
		}
		b.ThematicImpact = impact
	}
	return b
}

// ConflictUpdate is a partial update to a Conflict.
type ConflictUpdate struct {
	Type        *ConflictType `json:"type,omitempty"`
	Description *string       `json:"description,omitempty"`
	Intensity   *int          `json:"intensity,omitempty"`
	SceneIDs    *[]string     `json:"scene_ids,omitempty"`
}

// ApplyConflictUpdate returns a new Conflict with the non-nil fields
// of u applied to c.
func ApplyConflictUpdate(c Conflict, u ConflictUpdate) Conflict {
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Intensity != nil {
		c.Intensity = *u.Intensity
	}
	if u.SceneIDs != nil {
		ids := make([]string, len(*u.SceneIDs))
		copy(ids, *u.SceneIDs)
		c.SceneIDs = ids
	}
	return c
}
