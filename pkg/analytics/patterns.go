package analytics

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	actionWords      = []string{"ran", "jumped", "fought", "moved", "rushed", "grabbed"}
	descriptiveWords = []string{"beautiful", "dark", "bright", "cold", "warm", "large", "small"}
	fillerWords      = []string{"very", "really", "quite", "just", "that"}

	titleCaser = cases.Title(language.English)
)

// DetectNarrativePatterns counts occurrences of the requested pattern
// kinds in text: dialogue segments (quote pairs), action sequences and
// descriptive passages via keyword lists. Unknown kinds report zero
// rather than erroring.
func DetectNarrativePatterns(text string, kinds []string) map[string]int {
	lower := strings.ToLower(text)
	patterns := make(map[string]int, len(kinds))

	for _, kind := range kinds {
		switch kind {
		case "dialogue":
			patterns["dialogue_segments"] = strings.Count(text, `"`) / 2
		case "action":
			patterns["action_sequences"] = countOccurrences(lower, actionWords)
		case "description":
			patterns["descriptive_passages"] = countOccurrences(lower, descriptiveWords)
		default:
			patterns[kind+"_patterns"] = 0
		}
	}
	return patterns
}

// WritingSuggestions produces rule-based advice for the requested
// suggestion kinds. Purely heuristic and advisory.
func WritingSuggestions(text string, kinds []string) []string {
	var suggestions []string
	lower := strings.ToLower(text)

	for _, kind := range kinds {
		switch kind {
		case "sentence_variety":
			words := len(strings.Fields(text))
			sentences := countSplits(text, ".!?")
			if sentences == 0 {
				continue
			}
			avg := words / sentences
			if avg < 8 {
				suggestions = append(suggestions, "Your sentences are quite short on average. Try combining some ideas into longer, more complex sentences.")
			} else if avg > 25 {
				suggestions = append(suggestions, "Your sentences are quite long on average. Consider breaking some into shorter, more digestible ones.")
			}
		case "word_choice":
			var overused []string
			for _, w := range fillerWords {
				if strings.Count(lower, w) > 5 {
					overused = append(overused, w)
				}
			}
			if len(overused) > 0 {
				suggestions = append(suggestions,
					fmt.Sprintf("Consider reducing the use of these common words: %s. Try more specific alternatives.", strings.Join(overused, ", ")))
			}
		case "dialogue_tags":
			dialogue := strings.Count(text, `"`) / 2
			said := strings.Count(lower, " said")
			if dialogue > 0 && float64(said)/float64(dialogue) > 0.7 {
				suggestions = append(suggestions, "Consider varying your dialogue tags. Occasionally try alternatives like 'whispered', 'exclaimed', or 'replied'.")
			}
		default:
			suggestions = append(suggestions,
				fmt.Sprintf("No suggestions available for: %s", titleCaser.String(strings.ReplaceAll(kind, "_", " "))))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your writing looks good! Keep up the great work.")
	}
	return suggestions
}

// OptimizeText rewrites text toward one optimization goal:
// "readability" splits overlong sentences, "conciseness" replaces
// redundant phrases. Unknown goals return the text unchanged.
func OptimizeText(text, goal string) string {
	switch goal {
	case "readability":
		sentences := strings.FieldsFunc(text, func(r rune) bool {
			return r == '.' || r == '!' || r == '?'
		})
		out := make([]string, 0, len(sentences))
		for _, s := range sentences {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			words := strings.Fields(s)
			if len(words) > 20 {
				mid := len(words) / 2
				out = append(out, strings.Join(words[:mid], " "), strings.Join(words[mid:], " "))
			} else {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return text
		}
		return strings.Join(out, ". ") + "."
	case "conciseness":
		replacements := [][2]string{
			{"in order to", "to"},
			{"due to the fact that", "because"},
			{"at this point in time", "now"},
			{"for the purpose of", "for"},
		}
		for _, r := range replacements {
			text = strings.ReplaceAll(text, r[0], r[1])
		}
		return text
	default:
		return text
	}
}

func countOccurrences(lower string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(lower, w)
	}
	return total
}
