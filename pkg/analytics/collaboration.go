package analytics

import "sort"

// AnalyzeCollaboration summarizes a project's edit log: per-user edit
// frequency, contribution balance, and the most contested documents.
// Words contributed uses the logged word deltas when present and a
// flat 50-words-per-edit estimate otherwise.
func AnalyzeCollaboration(edits []EditEvent) CollaborationMetrics {
	out := CollaborationMetrics{
		Provider:      ProviderHeuristic,
		EditFrequency: make(map[string]int),
	}

	words := make(map[string]int)
	sections := make(map[string]*EditedSection)
	editors := make(map[string]map[string]struct{})

	for _, e := range edits {
		out.EditFrequency[e.UserID]++
		if e.WordsDelta != 0 {
			words[e.UserID] += e.WordsDelta
		} else {
			words[e.UserID] += 50
		}

		s, ok := sections[e.DocumentID]
		if !ok {
			s = &EditedSection{SectionID: e.DocumentID}
			sections[e.DocumentID] = s
			editors[e.DocumentID] = make(map[string]struct{})
		}
		s.EditCount++
		if e.Timestamp.After(s.LastEdit) {
			s.LastEdit = e.Timestamp
		}
		editors[e.DocumentID][e.UserID] = struct{}{}
	}

	out.TotalCollaborators = len(out.EditFrequency)

	for userID, count := range out.EditFrequency {
		out.ContributionBalance = append(out.ContributionBalance, UserContribution{
			UserID:           userID,
			TotalEdits:       count,
			WordsContributed: words[userID],
		})
	}
	sort.Slice(out.ContributionBalance, func(i, j int) bool {
		a, b := out.ContributionBalance[i], out.ContributionBalance[j]
		if a.TotalEdits != b.TotalEdits {
			return a.TotalEdits > b.TotalEdits
		}
		return a.UserID < b.UserID
	})

	for docID, s := range sections {
		names := make([]string, 0, len(editors[docID]))
		for user := range editors[docID] {
			names = append(names, user)
		}
		sort.Strings(names)
		s.Editors = names
		out.MostEditedSections = append(out.MostEditedSections, *s)
	}
	sort.Slice(out.MostEditedSections, func(i, j int) bool {
		a, b := out.MostEditedSections[i], out.MostEditedSections[j]
		if a.EditCount != b.EditCount {
			return a.EditCount > b.EditCount
		}
		return a.SectionID < b.SectionID
	})

	return out
}
