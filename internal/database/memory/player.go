// Package memory holds a process-local player repository used when no
// external store is configured and by tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// PlayerRepository keeps player records in a map. Records are copied on the
// way in and out so callers never share slices with the store.
type PlayerRepository struct {
	mu      sync.RWMutex
	records map[int64]domain.PlayerRecord
	failure error
}

// NewPlayerRepository creates an empty repository
func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{records: make(map[int64]domain.PlayerRecord)}
}

func copyRecord(rec domain.PlayerRecord) domain.PlayerRecord {
	rec.Inventory = slices.Clone(rec.Inventory)
	if rec.Inventory == nil {
		rec.Inventory = []int{}
	}
	ptr := func(p *int) *int {
		if p == nil {
			return nil
		}
		v := *p
		return &v
	}
	rec.Equipment = domain.EquipmentRecord{
		Weapon:   ptr(rec.Equipment.Weapon),
		Armor:    ptr(rec.Equipment.Armor),
		Artifact: ptr(rec.Equipment.Artifact),
	}
	return rec
}

// GetPlayer returns a copy of the stored record
func (r *PlayerRepository) GetPlayer(_ context.Context, playerID int64) (*domain.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.failure != nil {
		return nil, r.failure
	}
	rec, ok := r.records[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, playerID)
	}
	out := copyRecord(rec)
	return &out, nil
}

// UpsertPlayer stores a copy of rec
func (r *PlayerRepository) UpsertPlayer(_ context.Context, rec *domain.PlayerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	now := time.Now().UTC()
	if existing, ok := r.records[rec.ID]; ok {
		rec.CreatedAt = existing.CreatedAt
	} else if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	r.records[rec.ID] = copyRecord(*rec)
	return nil
}

// DeletePlayer removes the record if present
func (r *PlayerRepository) DeletePlayer(_ context.Context, playerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	delete(r.records, playerID)
	return nil
}

// SetFailure makes every subsequent call return err. Pass nil to recover.
func (r *PlayerRepository) SetFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure = err
}

// Len reports how many records are stored
func (r *PlayerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
