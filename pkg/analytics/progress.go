package analytics

import (
	"math"

	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// BeatCompletionPercent is the share of beats marked complete, rounded
// to the nearest whole percent. An empty beat list is 0, never a
// division error.
func BeatCompletionPercent(beats []plot.Beat) int {
	if len(beats) == 0 {
		return 0
	}
	completed := 0
	for _, b := range beats {
		if b.IsCompleted {
			completed++
		}
	}
	return roundPercent(completed, len(beats))
}

// ActProgress splits beats into the three acts and reports completion
// per act. Band edges follow dramatic convention: Act I is [0,20],
// Act II (20,80], Act III (80,100], so a beat at exactly 20% or 80%
// belongs to the lower act.
func ActProgress(beats []plot.Beat) []ActSummary {
	acts := []ActSummary{
		{Act: "Act I"},
		{Act: "Act II"},
		{Act: "Act III"},
	}
	for _, b := range beats {
		var i int
		switch {
		case b.Percentage <= 20:
			i = 0
		case b.Percentage <= 80:
			i = 1
		default:
			i = 2
		}
		acts[i].Total++
		if b.IsCompleted {
			acts[i].Completed++
		}
	}
	for i := range acts {
		if acts[i].Total > 0 {
			acts[i].Percent = roundPercent(acts[i].Completed, acts[i].Total)
		}
	}
	return acts
}

// ArcCompletionPercent is the share of expected beats for which a
// character arc point exists. A point with all-zero emotional values
// still counts as present; only absence of the record matters.
func ArcCompletionPercent(arcByBeatID map[string]plot.CharacterArcPoint, expectedBeatIDs []string) int {
	if len(expectedBeatIDs) == 0 {
		return 0
	}
	present := 0
	for _, id := range expectedBeatIDs {
		if _, ok := arcByBeatID[id]; ok {
			present++
		}
	}
	return roundPercent(present, len(expectedBeatIDs))
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}
