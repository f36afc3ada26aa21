package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/plot-engine/pkg/plot"
	"github.com/jwebster45206/plot-engine/pkg/research"
)

// RedisStorage implements Storage on Redis. Structures are one JSON
// document per project; characters, research items and fact checks
// are hash fields keyed by entity ID under the project key.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}
		r.logger.Info("Redis connection established")
		return nil
	}
	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Plot structure operations

func structureKey(projectID string) string { return "structure:" + projectID }

func (r *RedisStorage) SaveStructure(ctx context.Context, projectID string, ps *plot.PlotStructure) error {
	ps.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("failed to marshal structure: %w", err)
	}
	if err := r.client.Set(ctx, structureKey(projectID), data, 0).Err(); err != nil {
		r.logger.Error("Failed to save structure", "project_id", projectID, "error", err)
		return fmt.Errorf("failed to save structure: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadStructure(ctx context.Context, projectID string) (*plot.PlotStructure, error) {
	data, err := r.client.Get(ctx, structureKey(projectID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load structure: %w", err)
	}
	var ps plot.PlotStructure
	if err := json.Unmarshal([]byte(data), &ps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal structure: %w", err)
	}
	return &ps, nil
}

func (r *RedisStorage) DeleteStructure(ctx context.Context, projectID string) error {
	if err := r.client.Del(ctx, structureKey(projectID)).Err(); err != nil {
		return fmt.Errorf("failed to delete structure: %w", err)
	}
	return nil
}

// Character operations

func charactersKey(projectID string) string { return "characters:" + projectID }

func (r *RedisStorage) SaveCharacter(ctx context.Context, projectID string, c *plot.Character) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}
	if err := r.client.HSet(ctx, charactersKey(projectID), c.ID, data).Err(); err != nil {
		r.logger.Error("Failed to save character", "project_id", projectID, "character_id", c.ID, "error", err)
		return fmt.Errorf("failed to save character: %w", err)
	}
	return nil
}

func (r *RedisStorage) ListCharacters(ctx context.Context, projectID string) ([]plot.Character, error) {
	fields, err := r.client.HGetAll(ctx, charactersKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	characters := make([]plot.Character, 0, len(fields))
	for id, data := range fields {
		var c plot.Character
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			r.logger.Warn("Skipping malformed character record", "project_id", projectID, "character_id", id, "error", err)
			continue
		}
		characters = append(characters, c)
	}
	sort.Slice(characters, func(i, j int) bool { return characters[i].ID < characters[j].ID })
	return characters, nil
}

func (r *RedisStorage) GetCharacter(ctx context.Context, projectID, characterID string) (*plot.Character, error) {
	data, err := r.client.HGet(ctx, charactersKey(projectID), characterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	var c plot.Character
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &c, nil
}

func (r *RedisStorage) DeleteCharacter(ctx context.Context, projectID, characterID string) error {
	if err := r.client.HDel(ctx, charactersKey(projectID), characterID).Err(); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// Research operations

func researchKey(projectID string) string  { return "research:" + projectID }
func factCheckKey(projectID string) string { return "factchecks:" + projectID }

func (r *RedisStorage) SaveResearchItem(ctx context.Context, projectID string, item *research.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal research item: %w", err)
	}
	if err := r.client.HSet(ctx, researchKey(projectID), item.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save research item: %w", err)
	}
	return nil
}

func (r *RedisStorage) ListResearchItems(ctx context.Context, projectID string) ([]research.Item, error) {
	fields, err := r.client.HGetAll(ctx, researchKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list research items: %w", err)
	}
	items := make([]research.Item, 0, len(fields))
	for id, data := range fields {
		var item research.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			r.logger.Warn("Skipping malformed research record", "project_id", projectID, "item_id", id, "error", err)
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *RedisStorage) DeleteResearchItem(ctx context.Context, projectID, itemID string) error {
	if err := r.client.HDel(ctx, researchKey(projectID), itemID).Err(); err != nil {
		return fmt.Errorf("failed to delete research item: %w", err)
	}
	return nil
}

// Fact check operations

func (r *RedisStorage) SaveFactCheck(ctx context.Context, projectID string, fc *research.FactCheck) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal fact check: %w", err)
	}
	if err := r.client.HSet(ctx, factCheckKey(projectID), fc.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save fact check: %w", err)
	}
	return nil
}

func (r *RedisStorage) ListFactChecks(ctx context.Context, projectID string) ([]research.FactCheck, error) {
	fields, err := r.client.HGetAll(ctx, factCheckKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list fact checks: %w", err)
	}
	checks := make([]research.FactCheck, 0, len(fields))
	for id, data := range fields {
		var fc research.FactCheck
		if err := json.Unmarshal([]byte(data), &fc); err != nil {
			r.logger.Warn("Skipping malformed fact check record", "project_id", projectID, "fact_check_id", id, "error", err)
			continue
		}
		checks = append(checks, fc)
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].ID < checks[j].ID })
	return checks, nil
}

func (r *RedisStorage) DeleteFactCheck(ctx context.Context, projectID, factCheckID string) error {
	if err := r.client.HDel(ctx, factCheckKey(projectID), factCheckID).Err(); err != nil {
		return fmt.Errorf("failed to delete fact check: %w", err)
	}
	return nil
}
