package analytics

import (
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// AnalyzeResearch aggregates reliability and verification statistics
// over a project's research collection. All divisions are zero-safe:
// empty inputs produce zeroed counts, never NaN. The research gaps
// list is advisory output from simple thresholds, not a completeness
// guarantee.
func AnalyzeResearch(items []research.Item, facts []research.FactCheck) ResearchAnalytics {
	out := ResearchAnalytics{
		Provider:        ProviderHeuristic,
		TotalItems:      len(items),
		ResearchByTag:   make(map[string]int),
		SourceBreakdown: make(map[string]int),
	}

	for _, f := range facts {
		switch f.VerificationStatus {
		case research.StatusVerified:
			out.VerifiedFacts++
		case research.StatusDisputed:
			out.DisputedFacts++
		default:
			out.UnknownFacts++
		}
	}
	if len(facts) > 0 {
		out.FactVerificationRate = 100 * float64(out.VerifiedFacts) / float64(len(facts))
	}

	if len(items) > 0 {
		sum := 0
		uniqueSources := make(map[string]struct{})
		for _, item := range items {
			sum += item.ReliabilityScore
			for _, tag := range item.Tags {
				out.ResearchByTag[tag]++
			}
			if item.Source != "" {
				out.SourceBreakdown[item.Source]++
			}
			uniqueSources[item.Source] = struct{}{}
		}
		out.AverageReliability = float64(sum) / float64(len(items))
		out.SourceDiversityScore = 100 * float64(len(uniqueSources)) / float64(len(items))
	}

	out.ResearchGaps = researchGaps(out, len(facts))
	return out
}

func researchGaps(r ResearchAnalytics, totalFacts int) []string {
	var gaps []string
	if r.ResearchByTag["historical"] < 3 {
		gaps = append(gaps, "Need more historical research")
	}
	if r.ResearchByTag["technical"] < 2 {
		gaps = append(gaps, "Technical details need more sources")
	}
	if totalFacts > 0 && r.VerifiedFacts < totalFacts/2 {
		gaps = append(gaps, "Many facts need verification")
	}
	if r.TotalItems > 0 && r.AverageReliability < 5 {
		gaps = append(gaps, "Overall source reliability is low")
	}
	return gaps
}
