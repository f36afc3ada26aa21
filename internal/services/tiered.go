package services

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// TieredAnalyzer tries the remote analyzer first and falls back to the
// local heuristics on any failure. Its methods never return an error:
// analytics reads must stay fail-soft so the UI never blocks on the
// remote collaborator being down. Each invocation independently tries
// remote then local; there is no retry and no circuit state.
type TieredAnalyzer struct {
	remote Analyzer // nil means local-only
	logger *slog.Logger
}

// NewTieredAnalyzer wraps the remote analyzer. Pass nil to run
// local-only.
func NewTieredAnalyzer(remote Analyzer, logger *slog.Logger) *TieredAnalyzer {
	return &TieredAnalyzer{remote: remote, logger: logger}
}

func (t *TieredAnalyzer) AnalyzeText(ctx context.Context, text string, characters []plot.Character) analytics.AdvancedTextAnalytics {
	if t.remote != nil {
		if res, err := t.remote.AnalyzeText(ctx, text, characters); err == nil {
			return *res
		} else {
			t.logger.Warn("Remote text analysis failed, using local heuristics", "error", err)
		}
	}
	return analytics.AdvancedHeuristic(text)
}

func (t *TieredAnalyzer) AnalyzeResearch(ctx context.Context, items []research.Item, facts []research.FactCheck) analytics.ResearchAnalytics {
	if t.remote != nil {
		if res, err := t.remote.AnalyzeResearch(ctx, items, facts); err == nil {
			return *res
		} else {
			t.logger.Warn("Remote research analysis failed, using local heuristics", "error", err)
		}
	}
	return analytics.AnalyzeResearch(items, facts)
}

func (t *TieredAnalyzer) AnalyzeCollaboration(ctx context.Context, edits []analytics.EditEvent) analytics.CollaborationMetrics {
	if t.remote != nil {
		if res, err := t.remote.AnalyzeCollaboration(ctx, edits); err == nil {
			return *res
		} else {
			t.logger.Warn("Remote collaboration analysis failed, using local heuristics", "error", err)
		}
	}
	return analytics.AnalyzeCollaboration(edits)
}
