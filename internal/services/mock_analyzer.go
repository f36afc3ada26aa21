package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// MockAnalyzer is a mock implementation of Analyzer for testing
type MockAnalyzer struct {
	AnalyzeTextFunc          func(ctx context.Context, text string, characters []plot.Character) (*analytics.AdvancedTextAnalytics, error)
	AnalyzeResearchFunc      func(ctx context.Context, items []research.Item, facts []research.FactCheck) (*analytics.ResearchAnalytics, error)
	AnalyzeCollaborationFunc func(ctx context.Context, edits []analytics.EditEvent) (*analytics.CollaborationMetrics, error)

	// Track calls for testing
	TextCalls          []string
	ResearchCalls      int
	CollaborationCalls int

	mu sync.Mutex // protects all fields above
}

var _ Analyzer = (*MockAnalyzer)(nil)

// NewMockAnalyzer creates a new mock analyzer
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{
		TextCalls: make([]string, 0),
	}
}

func (m *MockAnalyzer) AnalyzeText(ctx context.Context, text string, characters []plot.Character) (*analytics.AdvancedTextAnalytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextCalls = append(m.TextCalls, text)

	if m.AnalyzeTextFunc != nil {
		return m.AnalyzeTextFunc(ctx, text, characters)
	}
	return &analytics.AdvancedTextAnalytics{
		Provider:   analytics.ProviderRemote,
		BasicStats: analytics.TextStats{WordCount: len(text)},
		Style:      analytics.StyleMetrics{Tone: "mock", Pace: "medium"},
	}, nil
}

func (m *MockAnalyzer) AnalyzeResearch(ctx context.Context, items []research.Item, facts []research.FactCheck) (*analytics.ResearchAnalytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResearchCalls++

	if m.AnalyzeResearchFunc != nil {
		return m.AnalyzeResearchFunc(ctx, items, facts)
	}
	return &analytics.ResearchAnalytics{
		Provider:   analytics.ProviderRemote,
		TotalItems: len(items),
	}, nil
}

func (m *MockAnalyzer) AnalyzeCollaboration(ctx context.Context, edits []analytics.EditEvent) (*analytics.CollaborationMetrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CollaborationCalls++

	if m.AnalyzeCollaborationFunc != nil {
		return m.AnalyzeCollaborationFunc(ctx, edits)
	}
	return &analytics.CollaborationMetrics{
		Provider:           analytics.ProviderRemote,
		TotalCollaborators: 1,
	}, nil
}

// SetAnalyzeTextError sets up the mock to fail text analysis
func (m *MockAnalyzer) SetAnalyzeTextError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeTextFunc = func(ctx context.Context, text string, characters []plot.Character) (*analytics.AdvancedTextAnalytics, error) {
		return nil, err
	}
}

// SetAnalyzeResearchError sets up the mock to fail research analysis
func (m *MockAnalyzer) SetAnalyzeResearchError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeResearchFunc = func(ctx context.Context, items []research.Item, facts []research.FactCheck) (*analytics.ResearchAnalytics, error) {
		return nil, err
	}
}

// SetAnalyzeCollaborationError sets up the mock to fail collaboration analysis
func (m *MockAnalyzer) SetAnalyzeCollaborationError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeCollaborationFunc = func(ctx context.Context, edits []analytics.EditEvent) (*analytics.CollaborationMetrics, error) {
		return nil, err
	}
}

// Reset clears all call tracking
func (m *MockAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextCalls = make([]string, 0)
	m.ResearchCalls = 0
	m.CollaborationCalls = 0
}
