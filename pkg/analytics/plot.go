package analytics

import "github.com/jwebster45206/plot-engine/pkg/plot"

// AnalyzePlot summarizes a structure's completion and pacing for the
// progress dashboard. The pacing verdict and adjustment notes are
// advisory heuristics over act completion, not prose analysis.
func AnalyzePlot(ps plot.PlotStructure) PlotAnalytics {
	acts := ActProgress(ps.Beats)
	completion := BeatCompletionPercent(ps.Beats)

	dist := make([]int, len(ps.Beats))
	for i, b := range ps.Beats {
		dist[i] = b.WordCount
	}

	return PlotAnalytics{
		TotalBeats:            len(ps.Beats),
		CompletionPercent:     completion,
		Acts:                  acts,
		WordCountDistribution: dist,
		Pacing:                pacingFor(acts, completion),
		ActBalance:            actBalance(acts),
	}
}

func pacingFor(acts []ActSummary, completion int) PacingAnalysis {
	p := PacingAnalysis{OverallPace: "needs attention"}
	if completion > 50 {
		p.OverallPace = "good progress"
	}
	for _, a := range acts {
		if a.Total == 0 {
			continue
		}
		switch {
		case a.Percent < 25:
			p.SlowSections = append(p.SlowSections, a.Act)
		case a.Percent > 75:
			p.FastSections = append(p.FastSections, a.Act)
		}
	}
	if len(p.SlowSections) > 0 {
		p.RecommendedAdjustments = append(p.RecommendedAdjustments,
			"Focus drafting on the acts furthest behind")
	}
	return p
}

// actBalance is each act's share of total beats (0-1), keyed by act
// name.
func actBalance(acts []ActSummary) map[string]float64 {
	total := 0
	for _, a := range acts {
		total += a.Total
	}
	balance := make(map[string]float64, len(acts))
	for _, a := range acts {
		if total > 0 {
			balance[a.Act] = float64(a.Total) / float64(total)
		} else {
			balance[a.Act] = 0
		}
	}
	return balance
}
