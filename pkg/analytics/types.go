// Package analytics derives chart-ready summaries from plot
// structures, research collections and raw text. Every function is a
// pure transformation of its inputs; results are recomputed on each
// call rather than incrementally maintained.
package analytics

import "time"

// Provider labels where an analytics result came from: the remote
// analysis service, or the local heuristics used when it is
// unavailable.
const (
	ProviderRemote    = "remote"
	ProviderHeuristic = "heuristic"
)

// ActSummary is per-act completion for the three-act bands
// [0,20] (20,80] (80,100].
type ActSummary struct {
	Act       string `json:"act"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
}

// CurvePoint is one sample of a conflict escalation curve.
type CurvePoint struct {
	Position  float64 `json:"position"`  // story percentage 0-100
	Intensity float64 `json:"intensity"` // baseline x band multiplier; not clamped
}

// ConflictCurve is a conflict's sampled escalation curve.
type ConflictCurve struct {
	ConflictID string       `json:"conflict_id"`
	Type       string       `json:"type"`
	Points     []CurvePoint `json:"points"`
}

// ThemeBubble is one point of the theme intensity map: a (theme,
// scene) pair positioned by scene percentage and theme index, sized by
// intensity.
type ThemeBubble struct {
	ThemeID   string  `json:"theme_id"`
	SceneID   string  `json:"scene_id"`
	Intensity int     `json:"intensity"` // 1-10
	X         float64 `json:"x"`         // scene story percentage
	Y         int     `json:"y"`         // theme index in given order
	Radius    float64 `json:"radius"`    // intensity*3 + 5
}

// PacingAnalysis is the advisory pacing summary inside PlotAnalytics.
type PacingAnalysis struct {
	OverallPace            string   `json:"overall_pace"`
	SlowSections           []string `json:"slow_sections,omitempty"`
	FastSections           []string `json:"fast_sections,omitempty"`
	RecommendedAdjustments []string `json:"recommended_adjustments,omitempty"`
}

// PlotAnalytics summarizes beat completion and pacing for a structure.
type PlotAnalytics struct {
	TotalBeats            int                `json:"total_beats"`
	CompletionPercent     int                `json:"completion_percent"`
	Acts                  []ActSummary       `json:"acts"`
	WordCountDistribution []int              `json:"word_count_distribution,omitempty"`
	Pacing                PacingAnalysis     `json:"pacing"`
	ActBalance            map[string]float64 `json:"act_balance,omitempty"`
}

// ResearchAnalytics aggregates reliability and verification statistics
// over a project's research items and fact checks.
type ResearchAnalytics struct {
	Provider             string         `json:"provider"`
	TotalItems           int            `json:"total_items"`
	VerifiedFacts        int            `json:"verified_facts"`
	DisputedFacts        int            `json:"disputed_facts"`
	UnknownFacts         int            `json:"unknown_facts"`
	AverageReliability   float64        `json:"average_reliability"`
	ResearchByTag        map[string]int `json:"research_by_tag,omitempty"`
	SourceBreakdown      map[string]int `json:"source_breakdown,omitempty"`
	FactVerificationRate float64        `json:"fact_verification_rate"` // 0-100
	SourceDiversityScore float64        `json:"source_diversity_score"` // 0-100, heuristic
	ResearchGaps         []string       `json:"research_gaps,omitempty"` // advisory, not exhaustive
}

// WordFrequency is one entry of a top-words list.
type WordFrequency struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// TextStats are the basic text measurements the local analyzer
// computes for real (counts and derived scores).
type TextStats struct {
	WordCount        int             `json:"word_count"`
	CharacterCount   int             `json:"character_count"`
	SentenceCount    int             `json:"sentence_count"`
	ParagraphCount   int             `json:"paragraph_count"`
	ReadabilityScore float64         `json:"readability_score"` // 0-100
	ComplexityScore  float64         `json:"complexity_score"`  // avg sentence length
	TopWords         []WordFrequency `json:"top_words,omitempty"`
	SentimentScore   float64         `json:"sentiment_score"` // 0-1
}

// LinguisticFeatures are deeper linguistic measurements. The local
// tier fills these with declared-approximate defaults.
type LinguisticFeatures struct {
	AverageSentenceLength float64 `json:"average_sentence_length"`
	LexicalDiversity      float64 `json:"lexical_diversity"` // 0-1
	DialogueRatio         float64 `json:"dialogue_ratio"`    // 0-1
}

// EmotionalPoint is one sample of a detected emotional arc.
type EmotionalPoint struct {
	Position        float64 `json:"position"` // 0-1
	Valence         float64 `json:"valence"`  // -1..1
	Arousal         float64 `json:"arousal"`  // 0-1
	DominantEmotion string  `json:"dominant_emotion,omitempty"`
}

// ThematicAnalysis summarizes theme detection over free text.
type ThematicAnalysis struct {
	ThemeCoherence    float64            `json:"theme_coherence"` // 0-1
	ThemeDistribution map[string]float64 `json:"theme_distribution,omitempty"`
	EmotionalArc      []EmotionalPoint   `json:"emotional_arc,omitempty"`
}

// StyleMetrics summarizes narrative style: tone, pace and the tension
// curve used by the pacing chart.
type StyleMetrics struct {
	FormalityScore   float64   `json:"formality_score"` // 0-1
	Tone             string    `json:"tone"`
	VoiceConsistency float64   `json:"voice_consistency"` // 0-1
	Pace             string    `json:"pace"`
	TensionCurve     []float64 `json:"tension_curve,omitempty"` // 0-10 samples
}

// AdvancedTextAnalytics is the composite deep-analysis result. When
// Provider is ProviderHeuristic, only BasicStats is genuinely
// measured; the rest carries illustrative defaults so the UI never
// renders an empty chart.
type AdvancedTextAnalytics struct {
	Provider   string             `json:"provider"`
	BasicStats TextStats          `json:"basic_stats"`
	Linguistic LinguisticFeatures `json:"linguistic_features"`
	Thematic   ThematicAnalysis   `json:"thematic_analysis"`
	Style      StyleMetrics       `json:"style_metrics"`
}

// CentralCharacter is a network-central character with its score.
type CentralCharacter struct {
	CharacterID     string  `json:"character_id"`
	Name            string  `json:"name"`
	CentralityScore float64 `json:"centrality_score"`
	ConnectionCount int     `json:"connection_count"`
}

// CharacterAnalytics summarizes the character relationship network.
type CharacterAnalytics struct {
	TotalCharacters    int                `json:"total_characters"`
	RelationshipCount  int                `json:"relationship_count"`
	NetworkDensity     float64            `json:"network_density"` // 0-100
	CentralCharacters  []CentralCharacter `json:"central_characters,omitempty"`
	IsolatedCharacters []string           `json:"isolated_characters,omitempty"`
	RelationshipTypes  map[string]int     `json:"relationship_types,omitempty"`
}

// GraphNode is a force-graph node; plain data, no drawing primitives.
type GraphNode struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Group       int     `json:"group"`
	Size        float64 `json:"size"`
	Connections int     `json:"connections"`
}

// GraphLink is a weighted force-graph edge.
type GraphLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"` // 0-1
}

// ForceGraph is the character network projected for a force-directed
// chart.
type ForceGraph struct {
	Nodes         []GraphNode `json:"nodes"`
	Links         []GraphLink `json:"links"`
	Density       float64     `json:"density"`
	AverageDegree float64     `json:"average_degree"`
}

// WorldAnalytics summarizes timeline events for the world-building
// dashboard.
type WorldAnalytics struct {
	TotalEvents            int            `json:"total_events"`
	MajorEvents            int            `json:"major_events"` // importance >= 8
	EventTypes             map[string]int `json:"event_types,omitempty"`
	ImportanceDistribution []int          `json:"importance_distribution,omitempty"`
	EventDensity           float64        `json:"event_density"` // events per location
}

// EditEvent is one entry of a collaboration edit log.
type EditEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	DocumentID string    `json:"document_id"`
	Action     string    `json:"action"` // "create", "update", "delete", "comment"
	Timestamp  time.Time `json:"timestamp"`
	WordsDelta int       `json:"words_delta,omitempty"`
}

// UserContribution is one collaborator's share of the work.
type UserContribution struct {
	UserID           string `json:"user_id"`
	TotalEdits       int    `json:"total_edits"`
	WordsContributed int    `json:"words_contributed"`
}

// EditedSection tracks how contested one document is.
type EditedSection struct {
	SectionID string    `json:"section_id"`
	EditCount int       `json:"edit_count"`
	Editors   []string  `json:"editors"`
	LastEdit  time.Time `json:"last_edit"`
}

// CollaborationMetrics summarizes a project's edit log.
type CollaborationMetrics struct {
	Provider            string             `json:"provider"`
	TotalCollaborators  int                `json:"total_collaborators"`
	EditFrequency       map[string]int     `json:"edit_frequency,omitempty"`
	ContributionBalance []UserContribution `json:"contribution_balance,omitempty"`
	MostEditedSections  []EditedSection    `json:"most_edited_sections,omitempty"`
}

// StyleConsistencyReport compares writing style across several texts.
type StyleConsistencyReport struct {
	ConsistencyScore       float64   `json:"consistency_score"` // 0-100
	AvgSentenceLengths     []float64 `json:"avg_sentence_lengths,omitempty"`
	VocabularySizes        []int     `json:"vocabulary_sizes,omitempty"`
	SentenceLengthVariance float64   `json:"sentence_length_variance"`
	VocabularyVariance     float64   `json:"vocabulary_variance"`
}
