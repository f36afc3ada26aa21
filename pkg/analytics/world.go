package analytics

import (
	"sort"
	"strings"

	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// AnalyzeWorld summarizes the world-building timeline: counts by event
// type, the importance distribution in event order, and event density
// relative to the number of known locations.
func AnalyzeWorld(events []plot.WorldEvent, locationCount int) WorldAnalytics {
	out := WorldAnalytics{
		TotalEvents: len(events),
		EventTypes:  make(map[string]int),
	}

	for _, e := range events {
		if e.Type != "" {
			out.EventTypes[e.Type]++
		}
		if e.Importance >= 8 {
			out.MajorEvents++
		}
		out.ImportanceDistribution = append(out.ImportanceDistribution, e.Importance)
	}

	if locationCount > 0 {
		out.EventDensity = float64(len(events)) / float64(locationCount)
	}
	return out
}

// FilterAndSortEvents narrows a timeline to events whose type or
// description contains filterBy (empty keeps everything), then orders
// the result: "date" and "type" ascend, "importance" descends. Unknown
// sort keys leave the filtered order as given. The input slice is
// never modified.
func FilterAndSortEvents(events []plot.WorldEvent, sortBy, filterBy string) []plot.WorldEvent {
	out := make([]plot.WorldEvent, 0, len(events))
	for _, e := range events {
		if filterBy == "" ||
			strings.Contains(e.Type, filterBy) ||
			strings.Contains(e.Description, filterBy) {
			out = append(out, e)
		}
	}

	switch sortBy {
	case "date":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case "type":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	case "importance":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Importance > out[j].Importance })
	}
	return out
}
