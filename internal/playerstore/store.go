// Package playerstore translates between live players and their persisted
// records, with retries and a read cache in front of the backend.
package playerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/logger"
	"github.com/osse101/QuestBot_Go/internal/metrics"
	"github.com/osse101/QuestBot_Go/internal/repository"
)

// Operation names used in logs and metrics
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpDelete = "delete"
)

// WorldSource resolves the catalog entries a stored player refers to
type WorldSource interface {
	Item(id int) (domain.Item, error)
	LocationInfo(id int) (domain.Location, error)
}

// Options tunes retries and caching
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
	CacheSize  int
	CacheTTL   time.Duration
}

// Store loads and saves players through a repository.Player backend
type Store struct {
	repo  repository.Player
	world WorldSource
	cache *recordCache
	opts  Options
}

// New creates a Store
func New(repo repository.Player, world WorldSource, opts Options) *Store {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Store{
		repo:  repo,
		world: world,
		cache: newRecordCache(opts.CacheSize, opts.CacheTTL),
		opts:  opts,
	}
}

// Load returns the stored player or domain.ErrPlayerNotFound
func (s *Store) Load(ctx context.Context, playerID int64) (*domain.Player, error) {
	if rec, ok := s.cache.Get(playerID); ok {
		return s.toPlayer(ctx, rec), nil
	}

	var rec *domain.PlayerRecord
	err := s.withRetry(ctx, OpLoad, playerID, func() error {
		var err error
		rec, err = s.repo.GetPlayer(ctx, playerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(*rec)
	return s.toPlayer(ctx, *rec), nil
}

// Save upserts the player's persistent fields. Combat state is never stored.
func (s *Store) Save(ctx context.Context, p *domain.Player) error {
	rec := p.ToRecord()
	err := s.withRetry(ctx, OpSave, p.ID, func() error {
		return s.repo.UpsertPlayer(ctx, &rec)
	})
	if err != nil {
		s.cache.Invalidate(p.ID)
		return err
	}
	s.cache.Set(rec)
	return nil
}

// Delete removes the stored player
func (s *Store) Delete(ctx context.Context, playerID int64) error {
	s.cache.Invalidate(playerID)
	return s.withRetry(ctx, OpDelete, playerID, func() error {
		return s.repo.DeletePlayer(ctx, playerID)
	})
}

// ItemByID resolves an item from the catalog
func (s *Store) ItemByID(id int) (domain.Item, error) {
	return s.world.Item(id)
}

// withRetry runs fn until it succeeds, fails with a not-found error, or the
// retry budget is spent. Backend errors come back wrapped as persistence failures.
func (s *Store) withRetry(ctx context.Context, op string, playerID int64, fn func() error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 0; attempt <= s.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			metrics.PersistRetries.WithLabelValues(op).Inc()
			delay := s.opts.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				metrics.PersistFailures.WithLabelValues(op).Inc()
				return domain.PersistenceError(op, errors.Join(err, ctx.Err()))
			case <-time.After(delay):
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				log.Info("Player store recovered after retry", "operation", op, logger.AttrKeyPlayerID, playerID, "attempt", attempt)
			}
			return nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		log.Warn("Player store operation failed", "operation", op, logger.AttrKeyPlayerID, playerID, "attempt", attempt, "error", err)
	}

	metrics.PersistFailures.WithLabelValues(op).Inc()
	return domain.PersistenceError(op, fmt.Errorf("after %d attempts: %w", s.opts.MaxRetries+1, err))
}

// toPlayer rehydrates item ids from the catalog. Ids the catalog no longer
// knows are dropped, and an unknown location sends the player back to the start.
func (s *Store) toPlayer(ctx context.Context, rec domain.PlayerRecord) *domain.Player {
	log := logger.FromContext(ctx)

	resolve := func(id int) (domain.Item, bool) {
		item, err := s.world.Item(id)
		if err != nil {
			log.Debug("Dropping unknown item from stored player", logger.AttrKeyPlayerID, rec.ID, "item_id", id)
			return domain.Item{}, false
		}
		return item, true
	}
	slot := func(id *int) *domain.Item {
		if id == nil {
			return nil
		}
		item, ok := resolve(*id)
		if !ok {
			return nil
		}
		return &item
	}

	p := &domain.Player{
		ID:         rec.ID,
		Username:   rec.Username,
		Health:     rec.Health,
		MaxHealth:  rec.MaxHealth,
		Experience: rec.Experience,
		Level:      rec.Level,
		Gold:       rec.Gold,
		LocationID: s.knownLocation(ctx, rec),
		Class:      domain.PlayerClass(rec.Class),
		Inventory:  make([]domain.Item, 0, len(rec.Inventory)),
		Equipment: domain.Equipment{
			Weapon:   slot(rec.Equipment.Weapon),
			Armor:    slot(rec.Equipment.Armor),
			Artifact: slot(rec.Equipment.Artifact),
		},
	}
	for _, id := range rec.Inventory {
		if item, ok := resolve(id); ok {
			p.Inventory = append(p.Inventory, item)
		}
	}
	return p
}

func (s *Store) knownLocation(ctx context.Context, rec domain.PlayerRecord) int {
	if _, err := s.world.LocationInfo(rec.LocationID); err != nil {
		logger.FromContext(ctx).Debug("Resetting unknown location of stored player",
			logger.AttrKeyPlayerID, rec.ID, "location_id", rec.LocationID)
		return domain.StartingLocationID
	}
	return rec.LocationID
}
