package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

const (
	playerKeyPrefix = "player:"
	playerIndexKey  = "players"

	errClientNil = "redis client cannot be nil"

	// maxWatchAttempts bounds retries when another writer touches the key mid-save
	maxWatchAttempts = 3
)

// PlayerRepository implements repository.Player with one JSON document per
// player and a set indexing every stored id
type PlayerRepository struct {
	client Client
	now    func() time.Time
}

// Config contains configuration for the Redis player repository
type Config struct {
	Client Client
	Clock  func() time.Time
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil || cfg.Client == nil {
		return errors.New(errClientNil)
	}
	return nil
}

// NewPlayerRepository creates a Redis-backed player repository
func NewPlayerRepository(cfg *Config) (*PlayerRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &PlayerRepository{client: cfg.Client, now: now}, nil
}

func playerKey(id int64) string {
	return playerKeyPrefix + strconv.FormatInt(id, 10)
}

// GetPlayer loads a player record by id
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID int64) (*domain.PlayerRecord, error) {
	data, err := r.client.Get(ctx, playerKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to get player %d: %w", playerID, err)
	}

	var rec domain.PlayerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode player %d: %w", playerID, err)
	}
	return &rec, nil
}

// UpsertPlayer writes the record and indexes its id atomically. The first
// save's created_at is kept across later saves.
func (r *PlayerRepository) UpsertPlayer(ctx context.Context, rec *domain.PlayerRecord) error {
	key := playerKey(rec.ID)

	save := func(tx *redis.Tx) error {
		createdAt, err := storedCreatedAt(ctx, tx, key)
		if err != nil {
			return err
		}

		now := r.now().UTC()
		switch {
		case !createdAt.IsZero():
			rec.CreatedAt = createdAt
		case rec.CreatedAt.IsZero():
			rec.CreatedAt = now
		}
		rec.UpdatedAt = now
		if rec.Inventory == nil {
			rec.Inventory = []int{}
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode player %d: %w", rec.ID, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, playerIndexKey, rec.ID)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchAttempts; attempt++ {
		err := r.client.Watch(ctx, save, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to save player %d: %w", rec.ID, err)
		}
		return nil
	}
	return fmt.Errorf("failed to save player %d: %w", rec.ID, redis.TxFailedErr)
}

// storedCreatedAt returns the created_at of the document at key, or zero when
// there is none
func storedCreatedAt(ctx context.Context, tx *redis.Tx, key string) (time.Time, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var existing struct {
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(data, &existing); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return existing.CreatedAt, nil
}

// DeletePlayer removes the record and its index entry
func (r *PlayerRepository) DeletePlayer(ctx context.Context, playerID int64) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKey(playerID))
	pipe.SRem(ctx, playerIndexKey, playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player %d: %w", playerID, err)
	}
	return nil
}

// PlayerIDs lists every stored player id
func (r *PlayerRepository) PlayerIDs(ctx context.Context) ([]int64, error) {
	members, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt player index entry %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
