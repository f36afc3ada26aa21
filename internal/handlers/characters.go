package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// RadarResponse is one arc point projected onto the radar chart axes.
type RadarResponse struct {
	CharacterID string    `json:"character_id"`
	BeatID      string    `json:"beat_id"`
	Dimensions  []string  `json:"dimensions"`
	Values      []float64 `json:"values"`
}

// ArcProgressResponse reports how much of the beat sheet a character's
// arc covers.
type ArcProgressResponse struct {
	CharacterID       string `json:"character_id"`
	CompletionPercent int    `json:"completion_percent"`
}

// CharactersHandler serves character CRUD and per-character arc charts.
//
//	GET    /v1/characters/{projectID}                      list
//	PUT    /v1/characters/{projectID}                      save one
//	GET    /v1/characters/{projectID}/{characterID}        get
//	DELETE /v1/characters/{projectID}/{characterID}        delete
//	GET    /v1/characters/{projectID}/{characterID}/radar?beat={beatID}
//	GET    /v1/characters/{projectID}/{characterID}/arc/progress
type CharactersHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewCharactersHandler(s storage.Storage, logger *slog.Logger) *CharactersHandler {
	return &CharactersHandler{
		storage: s,
		logger:  logger,
	}
}

func (h *CharactersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/characters/")
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
			h.list(w, r, projectID)
		case http.MethodPut:
			h.put(w, r, projectID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	case len(parts) == 2:
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, projectID, parts[1])
		case http.MethodDelete:
			h.delete(w, r, projectID, parts[1])
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	case len(parts) == 3 && parts[2] == "radar":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.radar(w, r, projectID, parts[1])
	case len(parts) == 4 && parts[2] == "arc" && parts[3] == "progress":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.arcProgress(w, r, projectID, parts[1])
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *CharactersHandler) list(w http.ResponseWriter, r *http.Request, projectID string) {
	chars, err := h.storage.ListCharacters(r.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to list characters", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to list characters")
		return
	}
	writeJSON(w, http.StatusOK, chars)
}

func (h *CharactersHandler) put(w http.ResponseWriter, r *http.Request, projectID string) {
	var c plot.Character
	if !decodeAndValidate(w, r, &c) {
		return
	}
	if c.ID == "" {
		writeError(w, http.StatusBadRequest, "Character ID is required")
		return
	}
	if err := h.storage.SaveCharacter(r.Context(), projectID, &c); err != nil {
		h.logger.Error("Failed to save character", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to save character")
		return
	}
	writeJSON(w, http.StatusOK, &c)
}

// loadCharacter fetches the character or writes the error response.
func (h *CharactersHandler) loadCharacter(w http.ResponseWriter, r *http.Request, projectID, characterID string) (*plot.Character, bool) {
	c, err := h.storage.GetCharacter(r.Context(), projectID, characterID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Character not found")
			return nil, false
		}
		h.logger.Error("Failed to get character", "error", err,
			"project_id", projectID, "character_id", characterID)
		writeError(w, http.StatusInternalServerError, "Failed to get character")
		return nil, false
	}
	return c, true
}

func (h *CharactersHandler) get(w http.ResponseWriter, r *http.Request, projectID, characterID string) {
	c, ok := h.loadCharacter(w, r, projectID, characterID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CharactersHandler) delete(w http.ResponseWriter, r *http.Request, projectID, characterID string) {
	if err := h.storage.DeleteCharacter(r.Context(), projectID, characterID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Character not found")
			return
		}
		h.logger.Error("Failed to delete character", "error", err,
			"project_id", projectID, "character_id", characterID)
		writeError(w, http.StatusInternalServerError, "Failed to delete character")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// radar projects the character's arc point at one beat onto the
// default emotional dimensions. A character with no point at that beat
// gets a zero vector, not an error.
func (h *CharactersHandler) radar(w http.ResponseWriter, r *http.Request, projectID, characterID string) {
	beatID := r.URL.Query().Get("beat")
	if beatID == "" {
		writeError(w, http.StatusBadRequest, "Query parameter 'beat' is required")
		return
	}
	c, ok := h.loadCharacter(w, r, projectID, characterID)
	if !ok {
		return
	}

	var point *plot.CharacterArcPoint
	if p, found := c.ArcByBeatID()[beatID]; found {
		point = &p
	}
	writeJSON(w, http.StatusOK, RadarResponse{
		CharacterID: characterID,
		BeatID:      beatID,
		Dimensions:  plot.DefaultArcDimensions,
		Values:      analytics.RadarVector(point, plot.DefaultArcDimensions),
	})
}

func (h *CharactersHandler) arcProgress(w http.ResponseWriter, r *http.Request, projectID, characterID string) {
	c, ok := h.loadCharacter(w, r, projectID, characterID)
	if !ok {
		return
	}
	ps, err := h.storage.LoadStructure(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Plot structure not found")
			return
		}
		h.logger.Error("Failed to load plot structure", "error", err, "project_id", projectID)
		writeError(w, http.StatusInternalServerError, "Failed to load plot structure")
		return
	}
	writeJSON(w, http.StatusOK, ArcProgressResponse{
		CharacterID:       characterID,
		CompletionPercent: analytics.ArcCompletionPercent(c.ArcByBeatID(), ps.BeatIDs()),
	})
}
