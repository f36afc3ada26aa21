package services

import (
	"context"

	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// Analyzer is the remote deep-analysis collaborator: one awaited call
// per analytics kind, which may fail. The local heuristics in
// pkg/analytics cover the same kinds when it does (see
// TieredAnalyzer).
type Analyzer interface {
	// AnalyzeText performs deep text analysis, optionally with
	// character context for arc detection.
	AnalyzeText(ctx context.Context, text string, characters []plot.Character) (*analytics.AdvancedTextAnalytics, error)

	// AnalyzeResearch scores a research collection.
	AnalyzeResearch(ctx context.Context, items []research.Item, facts []research.FactCheck) (*analytics.ResearchAnalytics, error)

	// AnalyzeCollaboration summarizes an edit log.
	AnalyzeCollaboration(ctx context.Context, edits []analytics.EditEvent) (*analytics.CollaborationMetrics, error)
}
