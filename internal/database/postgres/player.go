package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// PlayerRepository implements repository.Player for PostgreSQL.
// Inventory and equipment live in JSONB columns as item ids.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetPlayer loads a player record by id
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID int64) (*domain.PlayerRecord, error) {
	query := `
		SELECT player_id, username, health, max_health, experience, level, gold,
		       location_id, player_class, inventory, equipment, created_at, updated_at
		FROM players
		WHERE player_id = $1
	`
	var (
		rec       domain.PlayerRecord
		inventory []byte
		equipment []byte
	)
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&rec.ID, &rec.Username, &rec.Health, &rec.MaxHealth, &rec.Experience, &rec.Level, &rec.Gold,
		&rec.LocationID, &rec.Class, &inventory, &equipment, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}

	if err := json.Unmarshal(inventory, &rec.Inventory); err != nil {
		return nil, fmt.Errorf("%s: inventory: %w", ErrMsgFailedToDecodeRecord, err)
	}
	if err := json.Unmarshal(equipment, &rec.Equipment); err != nil {
		return nil, fmt.Errorf("%s: equipment: %w", ErrMsgFailedToDecodeRecord, err)
	}
	return &rec, nil
}

// UpsertPlayer inserts or fully overwrites a player record
func (r *PlayerRepository) UpsertPlayer(ctx context.Context, rec *domain.PlayerRecord) error {
	ids := rec.Inventory
	if ids == nil {
		ids = []int{}
	}
	inventory, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRecord, err)
	}
	equipment, err := json.Marshal(rec.Equipment)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRecord, err)
	}

	query := `
		INSERT INTO players (player_id, username, health, max_health, experience, level, gold,
		                     location_id, player_class, inventory, equipment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			username = EXCLUDED.username,
			health = EXCLUDED.health,
			max_health = EXCLUDED.max_health,
			experience = EXCLUDED.experience,
			level = EXCLUDED.level,
			gold = EXCLUDED.gold,
			location_id = EXCLUDED.location_id,
			player_class = EXCLUDED.player_class,
			inventory = EXCLUDED.inventory,
			equipment = EXCLUDED.equipment,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		rec.ID, rec.Username, rec.Health, rec.MaxHealth, rec.Experience, rec.Level, rec.Gold,
		rec.LocationID, rec.Class, inventory, equipment,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlayer, err)
	}
	return nil
}

// DeletePlayer removes a player record. Deleting a missing player is not an error.
func (r *PlayerRepository) DeletePlayer(ctx context.Context, playerID int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM players WHERE player_id = $1", playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlayer, err)
	}
	return nil
}
