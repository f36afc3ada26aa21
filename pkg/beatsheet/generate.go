package beatsheet

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// beatNamespace salts the UUIDv5 derivation of beat and structure IDs.
var beatNamespace = uuid.MustParse("8f9e6b3a-4d2c-4e8f-9a1b-7c5d3e2f1a0b")

// Generate instantiates a PlotStructure from a named template. IDs are
// derived deterministically from (projectID, templateName, index), so
// regenerating for the same inputs yields the same identities while
// resetting content and completion. Unknown template names fall back
// to the default sheet; Generate never fails.
func (r *Registry) Generate(templateName, projectID string, targetWordCount int) plot.PlotStructure {
	t := r.Lookup(templateName)
	now := time.Now().UTC()

	beats := make([]plot.Beat, len(t.Beats))
	for i, tb := range t.Beats {
		beats[i] = plot.Beat{
			ID:          beatID(projectID, t.Name, i),
			Name:        tb.Name,
			Percentage:  tb.Percentage,
			Description: tb.Description,
			WordCount:   plot.TargetWords(targetWordCount, tb.Percentage),
			SceneIDs:    []string{},
		}
	}

	return plot.PlotStructure{
		ID:              uuid.NewSHA1(beatNamespace, []byte(projectID+"/"+t.Name)).String(),
		TargetWordCount: targetWordCount,
		Beats:           beats,
		Themes:          []plot.Theme{},
		Conflicts:       []plot.Conflict{},
		BStories:        []plot.BStory{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func beatID(projectID, templateName string, index int) string {
	return uuid.NewSHA1(beatNamespace, []byte(fmt.Sprintf("%s/%s/%d", projectID, templateName, index))).String()
}

// Generate is the package-level convenience over the built-in
// registry.
func Generate(templateName, projectID string, targetWordCount int) plot.PlotStructure {
	return NewRegistry().Generate(templateName, projectID, targetWordCount)
}
