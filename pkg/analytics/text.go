package analytics

import (
	"sort"
	"strings"
	"unicode"
)

// fallbackTensionCurve is the fixed illustrative curve the local tier
// reports when the remote analyzer is unavailable. Six samples, rising
// toward a late peak then resolving.
var fallbackTensionCurve = []float64{2, 3, 5, 6, 8, 3}

// AnalyzeText computes the locally-measurable text statistics: word,
// character, sentence and paragraph counts, a Flesch-style readability
// score, and a top-words list. Sentiment is a fixed neutral 0.5; real
// sentiment comes from the remote analyzer.
func AnalyzeText(text string) TextStats {
	words := strings.Fields(text)
	sentences := countSplits(text, ".!?")
	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	avgSentenceLen := 0.0
	if sentences > 0 {
		avgSentenceLen = float64(len(words)) / float64(sentences)
	}
	readability := 206.835 - 1.015*avgSentenceLen
	if readability < 0 {
		readability = 0
	} else if readability > 100 {
		readability = 100
	}

	return TextStats{
		WordCount:        len(words),
		CharacterCount:   len([]rune(text)),
		SentenceCount:    sentences,
		ParagraphCount:   paragraphs,
		ReadabilityScore: readability,
		ComplexityScore:  avgSentenceLen,
		TopWords:         topWords(words, 10),
		SentimentScore:   0.5,
	}
}

// AdvancedHeuristic is the local fallback for deep text analysis. The
// basic stats are measured; the linguistic, thematic and style fields
// carry fixed illustrative defaults (a 6-point tension curve, medium
// pace, neutral tone). This is a documented degradation: the UI always
// receives a well-formed result, never an error.
func AdvancedHeuristic(text string) AdvancedTextAnalytics {
	stats := AnalyzeText(text)
	curve := make([]float64, len(fallbackTensionCurve))
	copy(curve, fallbackTensionCurve)

	return AdvancedTextAnalytics{
		Provider:   ProviderHeuristic,
		BasicStats: stats,
		Linguistic: LinguisticFeatures{
			AverageSentenceLength: stats.ComplexityScore,
			LexicalDiversity:      lexicalDiversity(text),
			DialogueRatio:         0.2,
		},
		Thematic: ThematicAnalysis{
			ThemeCoherence:    0.8,
			ThemeDistribution: map[string]float64{},
			EmotionalArc:      []EmotionalPoint{},
		},
		Style: StyleMetrics{
			FormalityScore:   0.6,
			Tone:             "neutral",
			VoiceConsistency: 0.7,
			Pace:             "medium",
			TensionCurve:     curve,
		},
	}
}

// StyleConsistency measures how uniform writing style is across a set
// of texts, from the variance of average sentence length and
// vocabulary size.
func StyleConsistency(texts []string) StyleConsistencyReport {
	if len(texts) == 0 {
		return StyleConsistencyReport{}
	}

	lengths := make([]float64, 0, len(texts))
	vocab := make([]int, 0, len(texts))
	for _, text := range texts {
		words := strings.Fields(text)
		sentences := countSplits(text, ".!?")
		avg := 0.0
		if sentences > 0 {
			avg = float64(len(words)) / float64(sentences)
		}
		lengths = append(lengths, avg)

		seen := make(map[string]struct{})
		for _, w := range words {
			if clean := cleanWord(w); clean != "" {
				seen[clean] = struct{}{}
			}
		}
		vocab = append(vocab, len(seen))
	}

	vocabFloats := make([]float64, len(vocab))
	for i, v := range vocab {
		vocabFloats[i] = float64(v)
	}
	lengthVar := variance(lengths)
	vocabVar := variance(vocabFloats)

	score := 100 - lengthVar - vocabVar
	if score < 0 {
		score = 0
	}

	return StyleConsistencyReport{
		ConsistencyScore:       score,
		AvgSentenceLengths:     lengths,
		VocabularySizes:        vocab,
		SentenceLengthVariance: lengthVar,
		VocabularyVariance:     vocabVar,
	}
}

func topWords(words []string, limit int) []WordFrequency {
	freq := make(map[string]int)
	for _, w := range words {
		if clean := cleanWord(w); clean != "" {
			freq[clean]++
		}
	}

	out := make([]WordFrequency, 0, len(freq))
	for word, count := range freq {
		out = append(out, WordFrequency{
			Word:      word,
			Count:     count,
			Frequency: float64(count) / float64(len(words)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func lexicalDiversity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]struct{})
	for _, w := range words {
		if clean := cleanWord(w); clean != "" {
			unique[clean] = struct{}{}
		}
	}
	return float64(len(unique)) / float64(len(words))
}

// countSplits counts non-empty segments of text split on any rune in
// seps.
func countSplits(text, seps string) int {
	count := 0
	for _, seg := range strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	}) {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}

func cleanWord(w string) string {
	return strings.TrimFunc(strings.ToLower(w), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := mean - v
		sum += d * d
	}
	return sum / float64(len(values))
}
