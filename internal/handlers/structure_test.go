package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/beatsheet"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

func newStructureHandler() (*StructureHandler, *storage.MockStorage) {
	mockStorage := storage.NewMockStorage()
	return NewStructureHandler(mockStorage, beatsheet.NewRegistry(), testLogger()), mockStorage
}

func TestStructureHandler_Generate(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	reqBody := `{"template":"default","target_word_count":80000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/structures/p1/generate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var ps plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ps))
	assert.Len(t, ps.Beats, 15)
	assert.Equal(t, 80000, ps.TargetWordCount)

	// Generation persists the structure
	saved, err := mockStorage.LoadStructure(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, ps.ID, saved.ID)
}

func TestStructureHandler_GenerateIsIdempotentOnIDs(t *testing.T) {
	handler, _ := newStructureHandler()

	generate := func() plot.PlotStructure {
		req := httptest.NewRequest(http.MethodPost, "/v1/structures/p1/generate",
			strings.NewReader(`{"template":"default","target_word_count":80000}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)
		var ps plot.PlotStructure
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&ps))
		return ps
	}

	first := generate()
	second := generate()
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Beats[0].ID, second.Beats[0].ID)
}

func TestStructureHandler_GenerateValidation(t *testing.T) {
	handler, _ := newStructureHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/structures/p1/generate",
		strings.NewReader(`{"template":"default"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code, "missing target_word_count should fail validation")
}

func TestStructureHandler_GetNotFound(t *testing.T) {
	handler, _ := newStructureHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/structures/ghost", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStructureHandler_PutAndGet(t *testing.T) {
	handler, _ := newStructureHandler()

	body := `{"id":"p1","target_word_count":50000,"beats":[{"id":"b1","name":"Setup","percentage":10}]}`
	req := httptest.NewRequest(http.MethodPut, "/v1/structures/p1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/v1/structures/p1", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var ps plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ps))
	assert.Equal(t, "Setup", ps.Beats[0].Name)
	assert.False(t, ps.UpdatedAt.IsZero())
}

func TestStructureHandler_Retarget(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := beatsheet.Generate("default", "p1", 80000)
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodPatch, "/v1/structures/p1/target",
		strings.NewReader(`{"target_word_count":100000}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var next plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&next))
	assert.Equal(t, 100000, next.TargetWordCount)
	assert.Equal(t, 50000, next.Beats[8].WordCount, "midpoint budget recomputed")
}

func TestStructureHandler_Progress(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID: "p1",
		Beats: []plot.Beat{
			{ID: "b1", Percentage: 10, IsCompleted: true},
			{ID: "b2", Percentage: 50, IsCompleted: false},
		},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodGet, "/v1/structures/p1/progress", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProgressResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 50, resp.CompletionPercent)
	require.Len(t, resp.Acts, 3)
	assert.Equal(t, 100, resp.Acts[0].Percent)
}

func TestStructureHandler_ConflictCurves(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID: "p1",
		Beats: []plot.Beat{
			{ID: "b1", Percentage: 0},
			{ID: "b2", Percentage: 80},
		},
		Conflicts: []plot.Conflict{
			{ID: "c1", Type: plot.ConflictInternal, Intensity: 10},
		},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodGet, "/v1/structures/p1/conflicts/curve", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var curves []analytics.ConflictCurve
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&curves))
	require.Len(t, curves, 1)
	assert.InDelta(t, 3.0, curves[0].Points[0].Intensity, 1e-9)
	assert.InDelta(t, 12.0, curves[0].Points[1].Intensity, 1e-9)
}

func TestStructureHandler_ThemeBubbles(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID: "p1",
		Themes: []plot.Theme{
			{ID: "t1", SceneIDs: []string{"s1", "s2"}, Intensity: map[string]int{"s1": 8}},
		},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	body := `{"scenes":[{"id":"s1","percentage":10},{"id":"s2","percentage":60}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/structures/p1/themes/bubbles", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var bubbles []analytics.ThemeBubble
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&bubbles))
	require.Len(t, bubbles, 2)
	assert.Equal(t, 29.0, bubbles[0].Radius)
	assert.Equal(t, 20.0, bubbles[1].Radius, "unscored scene defaults to intensity 5")
}

func TestStructureHandler_PatchBeat(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID:    "p1",
		Beats: []plot.Beat{{ID: "b1", Name: "Setup", Content: "draft"}},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodPatch, "/v1/structures/p1/beats/b1",
		strings.NewReader(`{"is_completed":true}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var next plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&next))
	assert.True(t, next.Beats[0].IsCompleted)
	assert.Equal(t, "draft", next.Beats[0].Content, "omitted fields are untouched")
}

func TestStructureHandler_PatchBeatNotFound(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{ID: "p1", Beats: []plot.Beat{{ID: "b1"}}}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodPatch, "/v1/structures/p1/beats/ghost",
		strings.NewReader(`{"is_completed":true}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStructureHandler_PatchConflict(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID:        "p1",
		Conflicts: []plot.Conflict{{ID: "c1", Type: plot.ConflictInternal, Intensity: 5}},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodPatch, "/v1/structures/p1/conflicts/c1",
		strings.NewReader(`{"intensity":9}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var next plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&next))
	assert.Equal(t, 9, next.Conflicts[0].Intensity)
	assert.Equal(t, plot.ConflictInternal, next.Conflicts[0].Type)
}

func TestStructureHandler_PatchBStory(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{
		ID:       "p1",
		BStories: []plot.BStory{{ID: "bs1", Name: "The mentor's debt", CharacterID: "mara"}},
	}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodPatch, "/v1/structures/p1/bstories/bs1",
		strings.NewReader(`{"description":"Pays off at the midpoint"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var next plot.PlotStructure
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&next))
	assert.Equal(t, "Pays off at the midpoint", next.BStories[0].Description)
	assert.Equal(t, "mara", next.BStories[0].CharacterID, "omitted fields are untouched")
}

func TestStructureHandler_Delete(t *testing.T) {
	handler, mockStorage := newStructureHandler()

	ps := plot.PlotStructure{ID: "p1"}
	require.NoError(t, mockStorage.SaveStructure(context.Background(), "p1", &ps))

	req := httptest.NewRequest(http.MethodDelete, "/v1/structures/p1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	_, err := mockStorage.LoadStructure(context.Background(), "p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStructureHandler_MethodNotAllowed(t *testing.T) {
	handler, _ := newStructureHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/structures/p1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestStructureHandler_MissingProjectID(t *testing.T) {
	handler, _ := newStructureHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/structures/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
