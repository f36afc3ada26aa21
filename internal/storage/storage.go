// Package storage persists project entities. Plot structures own
// their themes, conflicts and b-stories by value, so one JSON document
// per project covers the whole structural model; characters, research
// items and fact checks are stored per entity under the project key.
package storage

import (
	"context"
	"errors"

	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// ErrNotFound is returned when a requested entity does not exist.
// Handlers translate it to an empty result or 404 as appropriate.
var ErrNotFound = errors.New("not found")

// Storage defines persistence for all project entities.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Plot structure (one per project)
	SaveStructure(ctx context.Context, projectID string, ps *plot.PlotStructure) error
	LoadStructure(ctx context.Context, projectID string) (*plot.PlotStructure, error)
	DeleteStructure(ctx context.Context, projectID string) error

	// Characters
	SaveCharacter(ctx context.Context, projectID string, c *plot.Character) error
	ListCharacters(ctx context.Context, projectID string) ([]plot.Character, error)
	GetCharacter(ctx context.Context, projectID, characterID string) (*plot.Character, error)
	DeleteCharacter(ctx context.Context, projectID, characterID string) error

	// Research
	SaveResearchItem(ctx context.Context, projectID string, item *research.Item) error
	ListResearchItems(ctx context.Context, projectID string) ([]research.Item, error)
	DeleteResearchItem(ctx context.Context, projectID, itemID string) error

	// Fact checks
	SaveFactCheck(ctx context.Context, projectID string, fc *research.FactCheck) error
	ListFactChecks(ctx context.Context, projectID string) ([]research.FactCheck, error)
	DeleteFactCheck(ctx context.Context, projectID, factCheckID string) error
}
