// Package research holds the research-tracking entities: source
// material collected for a project and the fact checks written
// against it.
package research

import "time"

// Item is one piece of collected research material.
type Item struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Source            string    `json:"source,omitempty"`
	Content           string    `json:"content,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	ReliabilityScore  int       `json:"reliability_score"` // 1-10
	DateAdded         time.Time `json:"date_added"`
	RelatedCharacters []string  `json:"related_characters,omitempty"`
	RelatedLocations  []string  `json:"related_locations,omitempty"`
}

// VerificationStatus is the outcome of checking a statement.
type VerificationStatus string

const (
	StatusVerified VerificationStatus = "verified"
	StatusDisputed VerificationStatus = "disputed"
	StatusUnknown  VerificationStatus = "unknown"
)

// FactCheck records the verification state of a single statement.
type FactCheck struct {
	ID                 string             `json:"id"`
	Statement          string             `json:"statement"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Sources            []string           `json:"sources,omitempty"`
	ConfidenceScore    float64            `json:"confidence_score"` // 0-1
	RelatedResearchIDs []string           `json:"related_research_ids,omitempty"`
}
