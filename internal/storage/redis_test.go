package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRedisStorage(mr.Addr(), logger), mr
}

func TestRedisStorage_StructureRoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	ps := &plot.PlotStructure{
		ID:              "struct-1",
		TargetWordCount: 80000,
		Beats: []plot.Beat{
			{ID: "b1", Name: "Opening Image", Percentage: 0},
			{ID: "b2", Name: "Midpoint", Percentage: 50, WordCount: 40000, IsCompleted: true},
		},
		Themes: []plot.Theme{
			{ID: "t1", Name: "Redemption", SceneIDs: []string{"s1"}, Intensity: map[string]int{"s1": 8}},
		},
		Conflicts: []plot.Conflict{
			{ID: "c1", Type: plot.ConflictInternal, Intensity: 7},
		},
	}

	require.NoError(t, store.SaveStructure(ctx, "project-1", ps))

	loaded, err := store.LoadStructure(ctx, "project-1")
	require.NoError(t, err)

	assert.Equal(t, ps.ID, loaded.ID)
	assert.Equal(t, ps.Beats, loaded.Beats)
	assert.Equal(t, ps.Themes, loaded.Themes)
	assert.Equal(t, ps.Conflicts, loaded.Conflicts)
	assert.False(t, loaded.UpdatedAt.IsZero(), "save should stamp UpdatedAt")

	require.NoError(t, store.DeleteStructure(ctx, "project-1"))
	_, err = store.LoadStructure(ctx, "project-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorage_LoadStructureMissing(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	_, err := store.LoadStructure(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorage_Characters(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	chars := []plot.Character{
		{ID: "zed", Name: "Zed"},
		{ID: "ana", Name: "Ana", Arc: []plot.CharacterArcPoint{
			{BeatID: "b1", EmotionalState: map[string]int{"Hope": 6}},
		}},
	}
	for i := range chars {
		require.NoError(t, store.SaveCharacter(ctx, "p1", &chars[i]))
	}

	listed, err := store.ListCharacters(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "ana", listed[0].ID, "list is sorted by ID")
	assert.Equal(t, 6, listed[0].Arc[0].EmotionalState["Hope"])

	got, err := store.GetCharacter(ctx, "p1", "zed")
	require.NoError(t, err)
	assert.Equal(t, "Zed", got.Name)

	_, err = store.GetCharacter(ctx, "p1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.DeleteCharacter(ctx, "p1", "zed"))
	listed, err = store.ListCharacters(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestRedisStorage_CharactersAreProjectScoped(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCharacter(ctx, "p1", &plot.Character{ID: "a"}))

	other, err := store.ListCharacters(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRedisStorage_SkipsMalformedRecords(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCharacter(ctx, "p1", &plot.Character{ID: "good", Name: "Good"}))
	mr.HSet("characters:p1", "bad", "{not json")

	listed, err := store.ListCharacters(ctx, "p1")
	require.NoError(t, err, "one corrupt record must not fail the whole list")
	require.Len(t, listed, 1)
	assert.Equal(t, "good", listed[0].ID)
}

func TestRedisStorage_ResearchAndFactChecks(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()

	item := &research.Item{
		ID:               "r1",
		Title:            "Harbor logs 1840",
		Source:           "City archive",
		Tags:             []string{"historical"},
		ReliabilityScore: 9,
	}
	require.NoError(t, store.SaveResearchItem(ctx, "p1", item))

	fc := &research.FactCheck{
		ID:                 "f1",
		Statement:          "The harbor froze in 1841",
		VerificationStatus: research.StatusVerified,
		ConfidenceScore:    0.9,
	}
	require.NoError(t, store.SaveFactCheck(ctx, "p1", fc))

	items, err := store.ListResearchItems(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Harbor logs 1840", items[0].Title)

	facts, err := store.ListFactChecks(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, research.StatusVerified, facts[0].VerificationStatus)

	require.NoError(t, store.DeleteResearchItem(ctx, "p1", "r1"))
	require.NoError(t, store.DeleteFactCheck(ctx, "p1", "f1"))

	items, err = store.ListResearchItems(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStorage_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
