package plot

// ConflictType distinguishes inner struggles from outer obstacles.
// The two types escalate on different curves (see pkg/analytics).
type ConflictType string

const (
	ConflictInternal ConflictType = "internal"
	ConflictExternal ConflictType = "external"
)

// DefaultConflictIntensity is the assumed baseline when a conflict's
// intensity is unset (zero).
const DefaultConflictIntensity = 5

// Conflict is a dramatic tension tracked across scenes, with a 1-10
// baseline intensity that the curve engine scales by story position.
type Conflict struct {
	ID          string       `json:"id"`
	Type        ConflictType `json:"type"`
	Description string       `json:"description,omitempty"`
	Intensity   int          `json:"intensity,omitempty"` // 1-10 baseline
	SceneIDs    []string     `json:"scene_ids,omitempty"`
}

// Baseline returns the conflict's intensity, substituting the default
// when unset.
func (c Conflict) Baseline() float64 {
	if c.Intensity == 0 {
		return DefaultConflictIntensity
	}
	return float64(c.Intensity)
}
