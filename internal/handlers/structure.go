package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/beatsheet"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// GenerateRequest is the body for beat sheet generation.
type GenerateRequest struct {
	Template        string `json:"template"`
	TargetWordCount int    `json:"target_word_count" validate:"required,gt=0"`
}

// TargetRequest is the body for retargeting a structure's word count.
type TargetRequest struct {
	TargetWordCount int `json:"target_word_count" validate:"required,gt=0"`
}

// BubblesRequest carries the scene positions needed to place theme
// bubbles. Scenes live with the editor, so the caller supplies them.
type BubblesRequest struct {
	Scenes []plot.Scene `json:"scenes"`
}

// ProgressResponse is the beat completion summary for a structure.
type ProgressResponse struct {
	CompletionPercent int                    `json:"completion_percent"`
	Acts              []analytics.ActSummary `json:"acts"`
}

// StructureHandler serves a project's plot structure and the chart
// data derived from it.
//
//	GET    /v1/structures/{projectID}                    load
//	PUT    /v1/structures/{projectID}                    save
//	DELETE /v1/structures/{projectID}                    delete
//	POST   /v1/structures/{projectID}/generate           generate from template
//	PATCH  /v1/structures/{projectID}/target             retarget word count
//	GET    /v1/structures/{projectID}/progress           completion summary
//	GET    /v1/structures/{projectID}/analytics          full plot analytics
//	GET    /v1/structures/{projectID}/conflicts/curve    escalation curves
//	POST   /v1/structures/{projectID}/themes/bubbles     theme intensity map
//	PATCH  /v1/structures/{projectID}/beats/{beatID}     partial beat update
//	PATCH  /v1/structures/{projectID}/themes/{themeID}   partial theme update
//	PATCH  /v1/structures/{projectID}/conflicts/{id}     partial conflict update
//	PATCH  /v1/structures/{projectID}/bstories/{id}      partial B-story update
type StructureHandler struct {
	storage   storage.Storage
	templates *beatsheet.Registry
	logger    *slog.Logger
}

func NewStructureHandler(s storage.Storage, templates *beatsheet.Registry, logger *slog.Logger) *StructureHandler {
	return &StructureHandler{
		storage:   s,
		templates: templates,
		logger:    logger,
	}
}

func (h *StructureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/structures/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if parts[0] == "" {
		writeError(w, http.StatusNotFound, "Project ID is required")
		return
	}
	projectID := parts[0]

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getStructure(w, r, projectID)
		case http.MethodPut:
			h.putStructure(w, r, projectID)
		case http.MethodDelete:
			h.deleteStructure(w, r, projectID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	case len(parts) == 2 && parts[1] == "generate":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.generate(w, r, projectID)
	case len(parts) == 2 && parts[1] == "target":
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.retarget(w, r, projectID)
	case len(parts) == 2 && parts[1] == "progress":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.progress(w, r, projectID)
	case len(parts) == 2 && parts[1] == "analytics":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.plotAnalytics(w, r, projectID)
	case len(parts) == 3 && parts[1] == "conflicts" && parts[2] == "curve":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.conflictCurves(w, r, projectID)
	case len(parts) == 3 && parts[1] == "themes" && parts[2] == "bubbles":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.themeBubbles(w, r, projectID)
	case len(parts) == 3 && parts[1] == "beats":
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.patchBeat(w, r, projectID, parts[2])
	case len(parts) == 3 && parts[1] == "themes":
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.patchTheme(w, r, projectID, parts[2])
	case len(parts) == 3 && parts[1] == "conflicts":
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.patchConflict(w, r, projectID, parts[2])
	case len(parts) == 3 && parts[1] == "bstories":
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.patchBStory(w, r, projectID, parts[2])
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// load fetches the structure or writes the 404 response.
func (h *StructureHandler) load(w http.ResponseWriter, r *http.Request, projectID string) (*plot.PlotStructure, bool) {
	ps, err := h.storage.LoadStructure(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Plot structure not found")
			return nil, false
		}
		h.logger.Error("Failed to load plot structure", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to load plot structure")
		return nil, false
	}
	return ps, true
}

// save persists the structure or writes the 500 response.
func (h *StructureHandler) save(w http.ResponseWriter, r *http.Request, projectID string, ps *plot.PlotStructure) bool {
	if err := h.storage.SaveStructure(r.Context(), projectID, ps); err != nil {
		h.logger.Error("Failed to save plot structure", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to save plot structure")
		return false
	}
	return true
}

func (h *StructureHandler) getStructure(w http.ResponseWriter, r *http.Request, projectID string) {
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *StructureHandler) putStructure(w http.ResponseWriter, r *http.Request, projectID string) {
	var ps plot.PlotStructure
	if !decodeAndValidate(w, r, &ps) {
		return
	}
	if ps.ID == "" {
		ps.ID = projectID
	}
	ps.UpdatedAt = time.Now().UTC()
	if ps.CreatedAt.IsZero() {
		ps.CreatedAt = ps.UpdatedAt
	}
	if !h.save(w, r, projectID, &ps) {
		return
	}
	writeJSON(w, http.StatusOK, &ps)
}

func (h *StructureHandler) deleteStructure(w http.ResponseWriter, r *http.Request, projectID string) {
	if err := h.storage.DeleteStructure(r.Context(), projectID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Plot structure not found")
			return
		}
		h.logger.Error("Failed to delete plot structure", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to delete plot structure")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StructureHandler) generate(w http.ResponseWriter, r *http.Request, projectID string) {
	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ps := h.templates.Generate(req.Template, projectID, req.TargetWordCount)
	if !h.save(w, r, projectID, &ps) {
		return
	}
	h.logger.Info("Generated beat sheet", "project_id", projectID,
		"template", req.Template, "beats", len(ps.Beats))
	writeJSON(w, http.StatusCreated, &ps)
}

func (h *StructureHandler) retarget(w http.ResponseWriter, r *http.Request, projectID string) {
	var req TargetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	next := ps.WithTargetWordCount(req.TargetWordCount)
	if !h.save(w, r, projectID, &next) {
		return
	}
	writeJSON(w, http.StatusOK, &next)
}

func (h *StructureHandler) progress(w http.ResponseWriter, r *http.Request, projectID string) {
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ProgressResponse{
		CompletionPercent: analytics.BeatCompletionPercent(ps.Beats),
		Acts:              analytics.ActProgress(ps.Beats),
	})
}

func (h *StructureHandler) plotAnalytics(w http.ResponseWriter, r *http.Request, projectID string) {
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.AnalyzePlot(*ps))
}

func (h *StructureHandler) conflictCurves(w http.ResponseWriter, r *http.Request, projectID string) {
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.ConflictCurves(*ps))
}

func (h *StructureHandler) themeBubbles(w http.ResponseWriter, r *http.Request, projectID string) {
	var req BubblesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.ThemeBubbleData(ps.Themes, req.Scenes))
}

func (h *StructureHandler) patchBeat(w http.ResponseWriter, r *http.Request, projectID, beatID string) {
	var u plot.BeatUpdate
	if !decodeAndValidate(w, r, &u) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	b, found := ps.BeatByID(beatID)
	if !found {
		writeError(w, http.StatusNotFound, "Beat not found")
		return
	}
	next := ps.WithBeat(plot.ApplyBeatUpdate(b, u))
	if !h.save(w, r, projectID, &next) {
		return
	}
	writeJSON(w, http.StatusOK, &next)
}

func (h *StructureHandler) patchTheme(w http.ResponseWriter, r *http.Request, projectID, themeID string) {
	var u plot.ThemeUpdate
	if !decodeAndValidate(w, r, &u) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	found := false
	next := *ps
	next.Themes = make([]plot.Theme, len(ps.Themes))
	copy(next.Themes, ps.Themes)
	for i := range next.Themes {
		if next.Themes[i].ID == themeID {
			next.Themes[i] = plot.ApplyThemeUpdate(next.Themes[i], u)
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "Theme not found")
		return
	}
	next.UpdatedAt = time.Now().UTC()
	if !h.save(w, r, projectID, &next) {
		return
	}
	writeJSON(w, http.StatusOK, &next)
}

func (h *StructureHandler) patchBStory(w http.ResponseWriter, r *http.Request, projectID, bstoryID string) {
	var u plot.BStoryUpdate
	if !decodeAndValidate(w, r, &u) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	found := false
	next := *ps
	next.BStories = make([]plot.BStory, len(ps.BStories))
	copy(next.BStories, ps.BStories)
	for i := range next.BStories {
		if next.BStories[i].ID == bstoryID {
			next.BStories[i] = plot.ApplyBStoryUpdate(next.BStories[i], u)
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "B-story not found")
		return
	}
	next.UpdatedAt = time.Now().UTC()
	if !h.save(w, r, projectID, &next) {
		return
	}
	writeJSON(w, http.StatusOK, &next)
}

func (h *StructureHandler) patchConflict(w http.ResponseWriter, r *http.Request, projectID, conflictID string) {
	var u plot.ConflictUpdate
	if !decodeAndValidate(w, r, &u) {
		return
	}
	ps, ok := h.load(w, r, projectID)
	if !ok {
		return
	}
	found := false
	next := *ps
	next.Conflicts = make([]plot.Conflict, len(ps.Conflicts))
	copy(next.Conflicts, ps.Conflicts)
	for i := range next.Conflicts {
		if next.Conflicts[i].ID == conflictID {
			next.Conflicts[i] = plot.ApplyConflictUpdate(next.Conflicts[i], u)
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "Conflict not found")
		return
	}
	next.UpdatedAt = time.Now().UTC()
	if !h.save(w, r, projectID, &next) {
		return
	}
	writeJSON(w, http.StatusOK, &next)
}
