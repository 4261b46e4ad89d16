// Package session tracks which players are active and serializes every
// mutation of an active player behind its own lock.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/QuestBot_Go/internal/concurrency"
	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/logger"
	"github.com/osse101/QuestBot_Go/internal/metrics"
)

// Store is the persistence the registry needs
type Store interface {
	Load(ctx context.Context, playerID int64) (*domain.Player, error)
	Save(ctx context.Context, p *domain.Player) error
	Delete(ctx context.Context, playerID int64) error
}

type entry struct {
	player     *domain.Player // guarded by the player's lock
	lastActive atomic.Int64   // unix nanos
}

func (e *entry) touch(now time.Time) {
	e.lastActive.Store(now.UnixNano())
}

// Registry holds the live state of every active player
type Registry struct {
	store    Store
	locks    *concurrency.LockManager[int64]
	capacity int
	now      func() time.Time

	mu       sync.Mutex
	entries  map[int64]*entry
	reserved map[int64]struct{}
}

// NewRegistry creates a registry admitting at most capacity concurrent players
func NewRegistry(store Store, capacity int) *Registry {
	return &Registry{
		store:    store,
		locks:    concurrency.NewLockManager[int64](),
		capacity: capacity,
		now:      time.Now,
		entries:  make(map[int64]*entry),
		reserved: make(map[int64]struct{}),
	}
}

// Capacity returns the admission limit
func (r *Registry) Capacity() int {
	return r.capacity
}

// ActiveCount returns the number of active sessions
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) lookup(playerID int64) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[playerID]
	return e, ok
}

// Register activates a player. An already active player is returned as is.
// Otherwise a slot is reserved, the player is loaded (or created and saved on
// first contact) and the session is installed.
func (r *Registry) Register(ctx context.Context, playerID int64, displayName string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	r.mu.Lock()
	if e, ok := r.entries[playerID]; ok {
		r.mu.Unlock()
		e.touch(r.now())
		return e.player.Clone(), nil
	}
	if len(r.entries)+len(r.reserved) >= r.capacity {
		r.mu.Unlock()
		metrics.AdmissionsRejected.Inc()
		log.Info("Registration rejected, session limit reached", "capacity", r.capacity)
		return nil, fmt.Errorf("%w: limit %d", domain.ErrCapacityExceeded, r.capacity)
	}
	r.reserved[playerID] = struct{}{}
	r.mu.Unlock()

	p, err := r.loadOrCreate(ctx, playerID, displayName)

	r.mu.Lock()
	delete(r.reserved, playerID)
	if err == nil {
		e := &entry{player: p}
		e.touch(r.now())
		r.entries[playerID] = e
	}
	active := len(r.entries)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	metrics.ActiveSessions.Set(float64(active))
	log.Info("Session started", "active", active)
	return p.Clone(), nil
}

func (r *Registry) loadOrCreate(ctx context.Context, playerID int64, displayName string) (*domain.Player, error) {
	p, err := r.store.Load(ctx, playerID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	p = domain.NewPlayer(playerID, displayName)
	if err := r.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	logger.FromContext(ctx).Info("New player created", "username", displayName)
	return p, nil
}

// Get returns a snapshot of the active player
func (r *Registry) Get(playerID int64) (*domain.Player, bool) {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok {
		return nil, false
	}
	return e.player.Clone(), true
}

// Update runs fn on a copy of the active player, saves the copy and installs
// it. If fn or the save fails the session keeps its previous state.
func (r *Registry) Update(ctx context.Context, playerID int64, fn func(p *domain.Player) error) (*domain.Player, error) {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	next := e.player.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := r.store.Save(ctx, next); err != nil {
		return nil, err
	}

	e.player = next
	e.touch(r.now())
	return next.Clone(), nil
}

// View runs fn with the live player under its lock. fn must not modify p.
// A view counts as activity for idle eviction.
func (r *Registry) View(playerID int64, fn func(p *domain.Player) error) error {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.touch(r.now())
	return fn(e.player)
}

// Save checkpoints the active player
func (r *Registry) Save(ctx context.Context, playerID int64) error {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return r.store.Save(ctx, e.player)
}

// Unregister saves the player, drops any combat in progress and frees the
// slot. A failed save leaves the session active.
func (r *Registry) Unregister(ctx context.Context, playerID int64) error {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return r.endLocked(ctx, playerID, e)
}

// EvictIdle ends the session only if it has seen no activity after cutoff.
// It reports whether the session was ended.
func (r *Registry) EvictIdle(ctx context.Context, playerID int64, cutoff time.Time) (bool, error) {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	e, ok := r.lookup(playerID)
	if !ok || e.lastActive.Load() > cutoff.UnixNano() {
		return false, nil
	}
	if err := r.endLocked(ctx, playerID, e); err != nil {
		return false, err
	}
	return true, nil
}

// endLocked saves and removes the entry. Caller holds the player's lock.
func (r *Registry) endLocked(ctx context.Context, playerID int64, e *entry) error {
	if err := r.store.Save(ctx, e.player); err != nil {
		return fmt.Errorf("failed to save on unregister: %w", err)
	}

	r.mu.Lock()
	delete(r.entries, playerID)
	active := len(r.entries)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(active))
	logger.FromContext(ctx).Info("Session ended", "active", active)
	return nil
}

// Delete removes the stored player and ends its session if one is active.
// The session is kept when the store delete fails.
func (r *Registry) Delete(ctx context.Context, playerID int64) error {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	if err := r.store.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	r.mu.Lock()
	_, wasActive := r.entries[playerID]
	delete(r.entries, playerID)
	active := len(r.entries)
	r.mu.Unlock()

	if wasActive {
		metrics.ActiveSessions.Set(float64(active))
	}
	logger.FromContext(ctx).Info("Player deleted", "was_active", wasActive)
	return nil
}

// ActiveIDs lists the active player ids in ascending order
func (r *Registry) ActiveIDs() []int64 {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// IdleSince lists the ids of players with no activity after cutoff
func (r *Registry) IdleSince(cutoff time.Time) []int64 {
	threshold := cutoff.UnixNano()

	r.mu.Lock()
	var ids []int64
	for id, e := range r.entries {
		if e.lastActive.Load() <= threshold {
			ids = append(ids, id)
		}
	}
	r.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// UnregisterAll ends every session, saving each player. Sessions whose save
// fails stay registered and their errors are joined.
func (r *Registry) UnregisterAll(ctx context.Context) error {
	var errs []error
	for _, id := range r.ActiveIDs() {
		if err := r.Unregister(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			errs = append(errs, fmt.Errorf("player %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
