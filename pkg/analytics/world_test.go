package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/plot-engine/pkg/plot"
)

func TestAnalyzeWorld(t *testing.T) {
	events := []plot.WorldEvent{
		{ID: "e1", Type: "war", Importance: 9},
		{ID: "e2", Type: "war", Importance: 4},
		{ID: "e3", Type: "treaty", Importance: 8},
		{ID: "e4", Importance: 2}, // untyped
	}

	out := AnalyzeWorld(events, 2)

	assert.Equal(t, 4, out.TotalEvents)
	assert.Equal(t, 2, out.MajorEvents, "importance >= 8 counts as major")
	assert.Equal(t, 2, out.EventTypes["war"])
	assert.Equal(t, 1, out.EventTypes["treaty"])
	assert.NotContains(t, out.EventTypes, "")
	assert.Equal(t, []int{9, 4, 8, 2}, out.ImportanceDistribution)
	assert.InDelta(t, 2.0, out.EventDensity, 1e-9)
}

func TestAnalyzeWorld_NoLocations(t *testing.T) {
	out := AnalyzeWorld([]plot.WorldEvent{{ID: "e1"}}, 0)
	assert.Zero(t, out.EventDensity, "zero locations must not divide by zero")
}

func TestFilterAndSortEvents(t *testing.T) {
	events := []plot.WorldEvent{
		{ID: "e1", Name: "The Fall", Type: "war", Date: "0312", Importance: 9},
		{ID: "e2", Name: "The Accord", Type: "treaty", Date: "0305", Importance: 8, Description: "ended the border war"},
		{ID: "e3", Name: "The Drought", Type: "disaster", Date: "0299", Importance: 5},
	}

	byDate := FilterAndSortEvents(events, "date", "")
	assert.Equal(t, []string{"e3", "e2", "e1"}, eventIDs(byDate))

	byType := FilterAndSortEvents(events, "type", "")
	assert.Equal(t, []string{"e3", "e2", "e1"}, eventIDs(byType))

	byImportance := FilterAndSortEvents(events, "importance", "")
	assert.Equal(t, []string{"e1", "e2", "e3"}, eventIDs(byImportance), "importance sorts descending")

	// Filter matches type or description substrings
	warEvents := FilterAndSortEvents(events, "importance", "war")
	assert.Equal(t, []string{"e1", "e2"}, eventIDs(warEvents))

	// Unknown sort key keeps the filtered order as given
	unsorted := FilterAndSortEvents(events, "alphabet", "")
	assert.Equal(t, []string{"e1", "e2", "e3"}, eventIDs(unsorted))

	// Input order is untouched
	assert.Equal(t, "e1", events[0].ID)
}

func TestFilterAndSortEvents_StableOnTies(t *testing.T) {
	events := []plot.WorldEvent{
		{ID: "e1", Importance: 7},
		{ID: "e2", Importance: 7},
		{ID: "e3", Importance: 9},
	}
	out := FilterAndSortEvents(events, "importance", "")
	assert.Equal(t, []string{"e3", "e1", "e2"}, eventIDs(out), "tied events keep their given order")
}

func eventIDs(events []plot.WorldEvent) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestAnalyzeWorld_Empty(t *testing.T) {
	out := AnalyzeWorld(nil, 5)
	assert.Zero(t, out.TotalEvents)
	assert.Zero(t, out.EventDensity)
	assert.Empty(t, out.ImportanceDistribution)
}
