package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// RemoteAnalyzer implements Analyzer against the external analysis
// service's JSON API. Calls are rate limited; a single attempt per
// invocation, no retry — on failure the caller falls through to the
// local heuristics.
type RemoteAnalyzer struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Analyzer = (*RemoteAnalyzer)(nil)

// NewRemoteAnalyzer creates a client for the remote analysis service.
// rps bounds outbound request rate; zero or negative means 2/s.
func NewRemoteAnalyzer(baseURL, apiKey string, rps float64) *RemoteAnalyzer {
	if rps <= 0 {
		rps = 2
	}
	return &RemoteAnalyzer{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type textAnalysisRequest struct {
	Text       string           `json:"text"`
	Characters []plot.Character `json:"characters,omitempty"`
}

type researchAnalysisRequest struct {
	Items      []research.Item      `json:"items"`
	FactChecks []research.FactCheck `json:"fact_checks"`
}

type collaborationAnalysisRequest struct {
	Edits []analytics.EditEvent `json:"edits"`
}

func (a *RemoteAnalyzer) AnalyzeText(ctx context.Context, text string, characters []plot.Character) (*analytics.AdvancedTextAnalytics, error) {
	var out analytics.AdvancedTextAnalytics
	if err := a.post(ctx, "/v1/analyze/text", textAnalysisRequest{Text: text, Characters: characters}, &out); err != nil {
		return nil, err
	}
	out.Provider = analytics.ProviderRemote
	return &out, nil
}

func (a *RemoteAnalyzer) AnalyzeResearch(ctx context.Context, items []research.Item, facts []research.FactCheck) (*analytics.ResearchAnalytics, error) {
	var out analytics.ResearchAnalytics
	if err := a.post(ctx, "/v1/analyze/research", researchAnalysisRequest{Items: items, FactChecks: facts}, &out); err != nil {
		return nil, err
	}
	out.Provider = analytics.ProviderRemote
	return &out, nil
}

func (a *RemoteAnalyzer) AnalyzeCollaboration(ctx context.Context, edits []analytics.EditEvent) (*analytics.CollaborationMetrics, error) {
	var out analytics.CollaborationMetrics
	if err := a.post(ctx, "/v1/analyze/collaboration", collaborationAnalysisRequest{Edits: edits}, &out); err != nil {
		return nil, err
	}
	out.Provider = analytics.ProviderRemote
	return &out, nil
}

func (a *RemoteAnalyzer) post(ctx context.Context, path string, payload, out any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analysis service returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
