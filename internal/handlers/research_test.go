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

	"github.com/jwebster45206/plot-engine/internal/services"
	"github.com/jwebster45206/plot-engine/internal/storage"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

func newResearchHandler(remote services.Analyzer) (*ResearchHandler, *storage.MockStorage) {
	mockStorage := storage.NewMockStorage()
	tiered := services.NewTieredAnalyzer(remote, testLogger())
	return NewResearchHandler(mockStorage, tiered, testLogger()), mockStorage
}

func TestResearchHandler_PutItemAndGetCollection(t *testing.T) {
	handler, _ := newResearchHandler(nil)

	body := `{"id":"r1","title":"Harbor logs","source":"Archive","tags":["historical"],"reliability_score":9}`
	req := httptest.NewRequest(http.MethodPut, "/v1/research/p1/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())

	req = httptest.NewRequest(http.MethodPut, "/v1/research/p1/facts",
		strings.NewReader(`{"id":"f1","statement":"It froze","verification_status":"verified"}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/research/p1", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var col ResearchCollection
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&col))
	require.Len(t, col.Items, 1)
	require.Len(t, col.FactChecks, 1)
	assert.Equal(t, "Harbor logs", col.Items[0].Title)
	assert.Equal(t, research.StatusVerified, col.FactChecks[0].VerificationStatus)
}

func TestResearchHandler_EmptyCollection(t *testing.T) {
	handler, _ := newResearchHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/research/p1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, "an empty project is empty, not 404")

	var col ResearchCollection
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&col))
	assert.Empty(t, col.Items)
	assert.Empty(t, col.FactChecks)
}

func TestResearchHandler_Analytics(t *testing.T) {
	handler, mockStorage := newResearchHandler(nil)

	ctx := context.Background()
	require.NoError(t, mockStorage.SaveResearchItem(ctx, "p1", &research.Item{
		ID: "r1", Source: "Archive", ReliabilityScore: 8, Tags: []string{"historical"},
	}))
	require.NoError(t, mockStorage.SaveFactCheck(ctx, "p1", &research.FactCheck{
		ID: "f1", VerificationStatus: research.StatusVerified,
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/research/p1/analytics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var out analytics.ResearchAnalytics
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, analytics.ProviderHeuristic, out.Provider)
	assert.Equal(t, 1, out.TotalItems)
	assert.Equal(t, 1, out.VerifiedFacts)
}

func TestResearchHandler_AnalyticsPrefersRemote(t *testing.T) {
	mock := services.NewMockAnalyzer()
	handler, _ := newResearchHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/research/p1/analytics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var out analytics.ResearchAnalytics
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, analytics.ProviderRemote, out.Provider)
	assert.Equal(t, 1, mock.ResearchCalls)
}

func TestResearchHandler_DeleteItem(t *testing.T) {
	handler, mockStorage := newResearchHandler(nil)

	require.NoError(t, mockStorage.SaveResearchItem(context.Background(), "p1", &research.Item{ID: "r1"}))

	req := httptest.NewRequest(http.MethodDelete, "/v1/research/p1/items/r1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	items, err := mockStorage.ListResearchItems(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResearchHandler_PutItemRequiresID(t *testing.T) {
	handler, _ := newResearchHandler(nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/research/p1/items", strings.NewReader(`{"title":"No ID"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
