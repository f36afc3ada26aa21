package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jwebster45206/plot-engine/internal/services"
	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// TextRequest is the body for text analysis endpoints.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
	// ProjectID optionally pulls the project's characters in as
	// context for the remote analyzer.
	ProjectID string `json:"project_id,omitempty"`
}

// CollaborationRequest carries an edit log for summarization.
type CollaborationRequest struct {
	Edits []analytics.EditEvent `json:"edits"`
}

// NetworkRequest carries the character network to analyze. The
// relationship list lives with the editor, so the caller supplies it
// alongside the characters.
type NetworkRequest struct {
	Characters    []plot.Character    `json:"characters"`
	Relationships []plot.Relationship `json:"relationships"`
}

// WorldRequest carries timeline events for the world summary.
type WorldRequest struct {
	Events        []plot.WorldEvent `json:"events"`
	LocationCount int               `json:"location_count"`
}

// EventsRequest asks for a filtered, ordered view of a timeline.
type EventsRequest struct {
	Events   []plot.WorldEvent `json:"events"`
	SortBy   string            `json:"sort_by,omitempty"`   // "date", "type" or "importance"
	FilterBy string            `json:"filter_by,omitempty"` // substring match on type/description
}

// PatternsRequest asks for narrative pattern counts over text.
type PatternsRequest struct {
	Text  string   `json:"text" validate:"required"`
	Kinds []string `json:"kinds,omitempty"`
}

// OptimizeRequest asks for a rewritten text toward one goal.
type OptimizeRequest struct {
	Text string `json:"text" validate:"required"`
	Goal string `json:"goal" validate:"required,oneof=readability conciseness"`
}

// OptimizeResponse returns the rewritten text.
type OptimizeResponse struct {
	Original  string `json:"original"`
	Optimized string `json:"optimized"`
	Goal      string `json:"goal"`
}

// StyleRequest compares writing style across several texts.
type StyleRequest struct {
	Texts []string `json:"texts" validate:"required,min=2"`
}

// DashboardRequest is the body for the combined dashboard. Text is
// optional; when empty the text panel is omitted.
type DashboardRequest struct {
	Text string `json:"text,omitempty"`
}

// DashboardResponse aggregates the per-panel analytics for one
// project. Panels whose inputs are missing are nil rather than errors.
type DashboardResponse struct {
	Plot           *analytics.PlotAnalytics         `json:"plot,omitempty"`
	ConflictCurves []analytics.ConflictCurve        `json:"conflict_curves,omitempty"`
	Research       *analytics.ResearchAnalytics     `json:"research,omitempty"`
	Text           *analytics.AdvancedTextAnalytics `json:"text,omitempty"`
	CharacterCount int                              `json:"character_count"`
}

// AnalyticsHandler serves the stateless analysis endpoints and the
// combined project dashboard.
//
//	POST /v1/analytics/text                    deep text analysis
//	POST /v1/analytics/collaboration           edit log summary
//	POST /v1/analytics/characters              relationship network stats
//	POST /v1/analytics/graph                   force graph projection
//	POST /v1/analytics/world                   timeline event summary
//	POST /v1/analytics/world/events            filtered, ordered timeline
//	POST /v1/analytics/patterns                narrative pattern counts
//	POST /v1/analytics/suggestions             writing suggestions
//	POST /v1/analytics/optimize                goal-directed rewrite
//	POST /v1/analytics/style                   cross-text style consistency
//	POST /v1/analytics/dashboard/{projectID}   combined dashboard
type AnalyticsHandler struct {
	storage  storage.Storage
	analyzer *services.TieredAnalyzer
	logger   *slog.Logger
}

func NewAnalyticsHandler(s storage.Storage, analyzer *services.TieredAnalyzer, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		storage:  s,
		analyzer: analyzer,
		logger:   logger,
	}
}

func (h *AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/analytics/")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch parts[0] {
	case "text":
		h.text(w, r)
	case "collaboration":
		h.collaboration(w, r)
	case "characters":
		h.characters(w, r)
	case "graph":
		h.graph(w, r)
	case "world":
		if len(parts) == 2 && parts[1] == "events" {
			h.worldEvents(w, r)
			return
		}
		h.world(w, r)
	case "patterns":
		h.patterns(w, r)
	case "suggestions":
		h.suggestions(w, r)
	case "optimize":
		h.optimize(w, r)
	case "style":
		h.style(w, r)
	case "dashboard":
		if len(parts) != 2 || parts[1] == "" {
			writeError(w, http.StatusNotFound, "Project ID is required")
			return
		}
		h.dashboard(w, r, parts[1])
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *AnalyticsHandler) text(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var characters []plot.Character
	if req.ProjectID != "" {
		chars, err := h.storage.ListCharacters(r.Context(), req.ProjectID)
		if err != nil {
			h.logger.Warn("Failed to load characters for text analysis",
				"error", err, "project_id", req.ProjectID)
		} else {
			characters = chars
		}
	}
	writeJSON(w, http.StatusOK, h.analyzer.AnalyzeText(r.Context(), req.Text, characters))
}

func (h *AnalyticsHandler) collaboration(w http.ResponseWriter, r *http.Request) {
	var req CollaborationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.analyzer.AnalyzeCollaboration(r.Context(), req.Edits))
}

func (h *AnalyticsHandler) characters(w http.ResponseWriter, r *http.Request) {
	var req NetworkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.AnalyzeCharacters(req.Characters, req.Relationships))
}

func (h *AnalyticsHandler) graph(w http.ResponseWriter, r *http.Request) {
	var req NetworkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildForceGraph(req.Characters, req.Relationships))
}

func (h *AnalyticsHandler) world(w http.ResponseWriter, r *http.Request) {
	var req WorldRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.AnalyzeWorld(req.Events, req.LocationCount))
}

func (h *AnalyticsHandler) worldEvents(w http.ResponseWriter, r *http.Request) {
	var req EventsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.FilterAndSortEvents(req.Events, req.SortBy, req.FilterBy))
}

func (h *AnalyticsHandler) patterns(w http.ResponseWriter, r *http.Request) {
	var req PatternsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.DetectNarrativePatterns(req.Text, req.Kinds))
}

func (h *AnalyticsHandler) suggestions(w http.ResponseWriter, r *http.Request) {
	var req PatternsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.WritingSuggestions(req.Text, req.Kinds))
}

func (h *AnalyticsHandler) optimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, OptimizeResponse{
		Original:  req.Text,
		Optimized: analytics.OptimizeText(req.Text, req.Goal),
		Goal:      req.Goal,
	})
}

func (h *AnalyticsHandler) style(w http.ResponseWriter, r *http.Request) {
	var req StyleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, analytics.StyleConsistency(req.Texts))
}

// dashboard fans out the per-panel loads concurrently. A missing plot
// structure leaves that panel nil; storage failures other than
// not-found abort the request.
func (h *AnalyticsHandler) dashboard(w http.ResponseWriter, r *http.Request, projectID string) {
	var req DashboardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var resp DashboardResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		ps, err := h.storage.LoadStructure(ctx, projectID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}
		pa := analytics.AnalyzePlot(*ps)
		resp.Plot = &pa
		resp.ConflictCurves = analytics.ConflictCurves(*ps)
		return nil
	})

	g.Go(func() error {
		items, err := h.storage.ListResearchItems(ctx, projectID)
		if err != nil {
			return err
		}
		facts, err := h.storage.ListFactChecks(ctx, projectID)
		if err != nil {
			return err
		}
		ra := h.analyzer.AnalyzeResearch(ctx, items, facts)
		resp.Research = &ra
		return nil
	})

	g.Go(func() error {
		chars, err := h.storage.ListCharacters(ctx, projectID)
		if err != nil {
			return err
		}
		resp.CharacterCount = len(chars)
		if req.Text != "" {
			ta := h.analyzer.AnalyzeText(ctx, req.Text, chars)
			resp.Text = &ta
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		h.logger.Error("Dashboard aggregation failed", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
