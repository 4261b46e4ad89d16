package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/logger"
)

// WorldRepository implements repository.World over the catalog tables
type WorldRepository struct {
	db *pgxpool.Pool
}

// NewWorldRepository creates a new WorldRepository
func NewWorldRepository(db *pgxpool.Pool) *WorldRepository {
	return &WorldRepository{db: db}
}

// IsWorldEmpty reports whether no items or locations have been seeded yet
func (r *WorldRepository) IsWorldEmpty(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT (SELECT COUNT(*) FROM items) + (SELECT COUNT(*) FROM locations)").Scan(&n)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCountCatalog, err)
	}
	return n == 0, nil
}

// LoadWorld reads every catalog table
func (r *WorldRepository) LoadWorld(ctx context.Context) (domain.World, error) {
	var world domain.World

	items, err := r.db.Query(ctx, `SELECT item_id, name, kind, power, price, description FROM items ORDER BY item_id`)
	if err != nil {
		return world, fmt.Errorf("%s: items: %w", ErrMsgFailedToLoadWorld, err)
	}
	world.Items, err = pgx.CollectRows(items, func(row pgx.CollectableRow) (domain.Item, error) {
		var i domain.Item
		err := row.Scan(&i.ID, &i.Name, &i.Kind, &i.Power, &i.Price, &i.Description)
		return i, err
	})
	if err != nil {
		return world, fmt.Errorf("%s: items: %w", ErrMsgFailedToLoadWorld, err)
	}

	locs, err := r.db.Query(ctx, `
		SELECT location_id, name, kind, description, connections, required_level
		FROM locations ORDER BY location_id`)
	if err != nil {
		return world, fmt.Errorf("%s: locations: %w", ErrMsgFailedToLoadWorld, err)
	}
	world.Locations, err = pgx.CollectRows(locs, func(row pgx.CollectableRow) (domain.Location, error) {
		var l domain.Location
		err := row.Scan(&l.ID, &l.Name, &l.Kind, &l.Description, &l.Connections, &l.RequiredLevel)
		return l, err
	})
	if err != nil {
		return world, fmt.Errorf("%s: locations: %w", ErrMsgFailedToLoadWorld, err)
	}

	monsters, err := r.db.Query(ctx, `
		SELECT monster_id, name, level, health, damage, experience, location_id, description
		FROM monsters ORDER BY monster_id`)
	if err != nil {
		return world, fmt.Errorf("%s: monsters: %w", ErrMsgFailedToLoadWorld, err)
	}
	world.Monsters, err = pgx.CollectRows(monsters, func(row pgx.CollectableRow) (domain.MonsterTemplate, error) {
		var m domain.MonsterTemplate
		err := row.Scan(&m.ID, &m.Name, &m.Level, &m.Health, &m.Damage, &m.Experience, &m.LocationID, &m.Description)
		return m, err
	})
	if err != nil {
		return world, fmt.Errorf("%s: monsters: %w", ErrMsgFailedToLoadWorld, err)
	}

	loot, err := r.db.Query(ctx, `SELECT monster_id, item_id, drop_chance FROM monster_loot ORDER BY monster_id, position`)
	if err != nil {
		return world, fmt.Errorf("%s: loot: %w", ErrMsgFailedToLoadWorld, err)
	}
	defer loot.Close()

	byMonster := make(map[int]int, len(world.Monsters))
	for i, m := range world.Monsters {
		byMonster[m.ID] = i
	}
	for loot.Next() {
		var (
			monsterID int
			entry     domain.LootEntry
		)
		if err := loot.Scan(&monsterID, &entry.ItemID, &entry.DropChance); err != nil {
			return world, fmt.Errorf("%s: loot: %w", ErrMsgFailedToLoadWorld, err)
		}
		if i, ok := byMonster[monsterID]; ok {
			world.Monsters[i].Loot = append(world.Monsters[i].Loot, entry)
		}
	}
	if err := loot.Err(); err != nil {
		return world, fmt.Errorf("%s: loot: %w", ErrMsgFailedToLoadWorld, err)
	}

	return world, nil
}

// SeedWorld inserts world content in a single transaction. Existing rows win.
func (r *WorldRepository) SeedWorld(ctx context.Context, world domain.World) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, i := range world.Items {
		batch.Queue(`INSERT INTO items (item_id, name, kind, power, price, description)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (item_id) DO NOTHING`,
			i.ID, i.Name, string(i.Kind), i.Power, i.Price, i.Description)
	}
	for _, l := range world.Locations {
		conns := l.Connections
		if conns == nil {
			conns = []int{}
		}
		batch.Queue(`INSERT INTO locations (location_id, name, kind, description, connections, required_level)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (location_id) DO NOTHING`,
			l.ID, l.Name, string(l.Kind), l.Description, conns, l.RequiredLevel)
	}
	for _, m := range world.Monsters {
		batch.Queue(`INSERT INTO monsters (monster_id, name, level, health, damage, experience, location_id, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (monster_id) DO NOTHING`,
			m.ID, m.Name, m.Level, m.Health, m.Damage, m.Experience, m.LocationID, m.Description)
		for pos, l := range m.Loot {
			batch.Queue(`INSERT INTO monster_loot (monster_id, item_id, drop_chance, position)
				VALUES ($1, $2, $3, $4) ON CONFLICT (monster_id, item_id) DO NOTHING`,
				m.ID, l.ItemID, l.DropChance, pos)
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSeedWorld, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// rollback is deferred after Begin; once Commit succeeds it is a no-op
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}
