package analytics

import (
	"sort"

	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// AnalyzeCharacters summarizes the relationship network: density
// against the maximum possible pairing, the most-connected characters,
// characters with no relationships at all, and the distribution of
// relationship types.
func AnalyzeCharacters(characters []plot.Character, relationships []plot.Relationship) CharacterAnalytics {
	out := CharacterAnalytics{
		TotalCharacters:   len(characters),
		RelationshipCount: len(relationships),
		RelationshipTypes: make(map[string]int),
	}

	connections := make(map[string]int)
	for _, r := range relationships {
		connections[r.From]++
		connections[r.To]++
		out.RelationshipTypes[r.Type]++
	}

	if len(characters) > 1 {
		maxPossible := len(characters) * (len(characters) - 1) / 2
		out.NetworkDensity = 100 * float64(len(relationships)) / float64(maxPossible)
	}

	nameByID := make(map[string]string, len(characters))
	for _, c := range characters {
		nameByID[c.ID] = c.Name
		if connections[c.ID] == 0 {
			out.IsolatedCharacters = append(out.IsolatedCharacters, c.Name)
		}
	}

	if len(relationships) > 0 {
		for id, count := range connections {
			name := nameByID[id]
			if name == "" {
				name = id
			}
			out.CentralCharacters = append(out.CentralCharacters, CentralCharacter{
				CharacterID:     id,
				Name:            name,
				CentralityScore: float64(count) / float64(len(relationships)),
				ConnectionCount: count,
			})
		}
		sort.Slice(out.CentralCharacters, func(i, j int) bool {
			a, b := out.CentralCharacters[i], out.CentralCharacters[j]
			if a.ConnectionCount != b.ConnectionCount {
				return a.ConnectionCount > b.ConnectionCount
			}
			return a.CharacterID < b.CharacterID
		})
	}

	return out
}

// BuildForceGraph projects the character network into force-directed
// chart data. Node size grows with connection count (capped), link
// weight is normalized strength. Plain data only; colors and layout
// belong to the presentation layer.
func BuildForceGraph(characters []plot.Character, relationships []plot.Relationship) ForceGraph {
	connections := make(map[string]int)
	for _, r := range relationships {
		connections[r.From]++
		connections[r.To]++
	}

	nodes := make([]GraphNode, len(characters))
	for i, c := range characters {
		n := connections[c.ID]
		size := 20 + float64(n)*3
		if size > 35 {
			size = 35
		}
		nodes[i] = GraphNode{
			ID:          c.ID,
			Name:        c.Name,
			Group:       i % 5,
			Size:        size,
			Connections: n,
		}
	}

	links := make([]GraphLink, len(relationships))
	for i, r := range relationships {
		links[i] = GraphLink{
			Source: r.From,
			Target: r.To,
			Type:   r.Type,
			Weight: r.Strength / 100,
		}
	}

	graph := ForceGraph{Nodes: nodes, Links: links}
	if len(nodes) > 1 {
		graph.Density = 2 * float64(len(links)) / (float64(len(nodes)) * float64(len(nodes)-1))
	}
	if len(nodes) > 0 {
		graph.AverageDegree = 2 * float64(len(links)) / float64(len(nodes))
	}
	return graph
}
