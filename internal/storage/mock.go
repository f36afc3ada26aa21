package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu         sync.Mutex
	structures map[string]plot.PlotStructure
	characters map[string]map[string]plot.Character
	items      map[string]map[string]research.Item
	factChecks map[string]map[string]research.FactCheck

	PingErr error // when set, Ping fails
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		structures: make(map[string]plot.PlotStructure),
		characters: make(map[string]map[string]plot.Character),
		items:      make(map[string]map[string]research.Item),
		factChecks: make(map[string]map[string]research.FactCheck),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error { return m.PingErr }
func (m *MockStorage) Close() error                   { return nil }

func (m *MockStorage) SaveStructure(ctx context.Context, projectID string, ps *plot.PlotStructure) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structures[projectID] = *ps
	return nil
}

func (m *MockStorage) LoadStructure(ctx context.Context, projectID string) (*plot.PlotStructure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps, ok := m.structures[projectID]
	if !ok {
		return nil, ErrNotFound
	}
	return &ps, nil
}

func (m *MockStorage) DeleteStructure(ctx context.Context, projectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.structures, projectID)
	return nil
}

func (m *MockStorage) SaveCharacter(ctx context.Context, projectID string, c *plot.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.characters[projectID] == nil {
		m.characters[projectID] = make(map[string]plot.Character)
	}
	m.characters[projectID][c.ID] = *c
	return nil
}

func (m *MockStorage) ListCharacters(ctx context.Context, projectID string) ([]plot.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]plot.Character, 0, len(m.characters[projectID]))
	for _, c := range m.characters[projectID] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockStorage) GetCharacter(ctx context.Context, projectID, characterID string) (*plot.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.characters[projectID][characterID]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *MockStorage) DeleteCharacter(ctx context.Context, projectID, characterID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.characters[projectID], characterID)
	return nil
}

func (m *MockStorage) SaveResearchItem(ctx context.Context, projectID string, item *research.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items[projectID] == nil {
		m.items[projectID] = make(map[string]research.Item)
	}
	m.items[projectID][item.ID] = *item
	return nil
}

func (m *MockStorage) ListResearchItems(ctx context.Context, projectID string) ([]research.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]research.Item, 0, len(m.items[projectID]))
	for _, item := range m.items[projectID] {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockStorage) DeleteResearchItem(ctx context.Context, projectID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items[projectID], itemID)
	return nil
}

func (m *MockStorage) SaveFactCheck(ctx context.Context, projectID string, fc *research.FactCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.factChecks[projectID] == nil {
		m.factChecks[projectID] = make(map[string]research.FactCheck)
	}
	m.factChecks[projectID][fc.ID] = *fc
	return nil
}

func (m *MockStorage) ListFactChecks(ctx context.Context, projectID string) ([]research.FactCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]research.FactCheck, 0, len(m.factChecks[projectID]))
	for _, fc := range m.factChecks[projectID] {
		out = append(out, fc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockStorage) DeleteFactCheck(ctx context.Context, projectID, factCheckID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.factChecks[projectID], factCheckID)
	return nil
}
