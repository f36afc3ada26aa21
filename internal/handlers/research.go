package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/plot-engine/internal/services"
	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// ResearchCollection is a project's research items and fact checks
// together.
type ResearchCollection struct {
	Items      []research.Item      `json:"items"`
	FactChecks []research.FactCheck `json:"fact_checks"`
}

// ResearchHandler serves research item and fact check CRUD plus the
// research analytics summary.
//
//	GET    /v1/research/{projectID}              full collection
//	PUT    /v1/research/{projectID}/items        save one item
//	DELETE /v1/research/{projectID}/items/{id}   delete item
//	PUT    /v1/research/{projectID}/facts        save one fact check
//	DELETE /v1/research/{projectID}/facts/{id}   delete fact check
//	GET    /v1/research/{projectID}/analytics    reliability summary
type ResearchHandler struct {
	storage  storage.Storage
	analyzer *services.TieredAnalyzer
	logger   *slog.Logger
}

func NewResearchHandler(s storage.Storage, analyzer *services.TieredAnalyzer, logger *slog.Logger) *ResearchHandler {
	return &ResearchHandler{
		storage:  s,
		analyzer: analyzer,
		logger:   logger,
	}
}

func (h *ResearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/research/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if parts[0] == "" {
		writeError(w, http.StatusNotFound, "Project ID is required")
		return
	}
	projectID := parts[0]

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.getCollection(w, r, projectID)
	case len(parts) == 2 && parts[1] == "analytics":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.analytics(w, r, projectID)
	case len(parts) == 2 && parts[1] == "items":
		if r.Method != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.putItem(w, r, projectID)
	case len(parts) == 3 && parts[1] == "items":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.deleteItem(w, r, projectID, parts[2])
	case len(parts) == 2 && parts[1] == "facts":
		if r.Method != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.putFact(w, r, projectID)
	case len(parts) == 3 && parts[1] == "facts":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.deleteFact(w, r, projectID, parts[2])
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// loadCollection lists items and fact checks or writes the error
// response. Empty projects yield empty slices.
func (h *ResearchHandler) loadCollection(w http.ResponseWriter, r *http.Request, projectID string) (*ResearchCollection, bool) {
	items, err := h.storage.ListResearchItems(r.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to list research items", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to list research items")
		return nil, false
	}
	facts, err := h.storage.ListFactChecks(r.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to list fact checks", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to list fact checks")
		return nil, false
	}
	return &ResearchCollection{Items: items, FactChecks: facts}, true
}

func (h *ResearchHandler) getCollection(w http.ResponseWriter, r *http.Request, projectID string) {
	col, ok := h.loadCollection(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, col)
}

func (h *ResearchHandler) analytics(w http.ResponseWriter, r *http.Request, projectID string) {
	col, ok := h.loadCollection(w, r, projectID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.analyzer.AnalyzeResearch(r.Context(), col.Items, col.FactChecks))
}

func (h *ResearchHandler) putItem(w http.ResponseWriter, r *http.Request, projectID string) {
	var item research.Item
	if !decodeAndValidate(w, r, &item) {
		return
	}
	if item.ID == "" {
		writeError(w, http.StatusBadRequest, "Research item ID is required")
		return
	}
	if err := h.storage.SaveResearchItem(r.Context(), projectID, &item); err != nil {
		h.logger.Error("Failed to save research item", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to save research item")
		return
	}
	writeJSON(w, http.StatusOK, &item)
}

func (h *ResearchHandler) deleteItem(w http.ResponseWriter, r *http.Request, projectID, itemID string) {
	if err := h.storage.DeleteResearchItem(r.Context(), projectID, itemID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Research item not found")
			return
		}
		h.logger.Error("Failed to delete research item", "error", err,
			"project_id", projectID, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "Failed to delete research item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ResearchHandler) putFact(w http.ResponseWriter, r *http.Request, projectID string) {
	var fc research.FactCheck
	if !decodeAndValidate(w, r, &fc) {
		return
	}
	if fc.ID == "" {
		writeError(w, http.StatusBadRequest, "Fact check ID is required")
		return
	}
	if err := h.storage.SaveFactCheck(r.Context(), projectID, &fc); err != nil {
		h.logger.Error("Failed to save fact check", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to save fact check")
		return
	}
	writeJSON(w, http.StatusOK, &fc)
}

func (h *ResearchHandler) deleteFact(w http.ResponseWriter, r *http.Request, projectID, factID string) {
	if err := h.storage.DeleteFactCheck(r.Context(), projectID, factID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Fact check not found")
			return
		}
		h.logger.Error("Failed to delete fact check", "error", err,
			"project_id", projectID, "fact_id", factID)
		writeError(w, http.StatusInternalServerError, "Failed to delete fact check")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
