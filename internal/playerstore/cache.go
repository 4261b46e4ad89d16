package playerstore

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/metrics"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when PlayerRecord changes shape to invalidate old entries.
const CacheSchemaVersion = "1.0"

type cachedRecord struct {
	Version  string
	Record   domain.PlayerRecord
	CachedAt time.Time
}

// recordCache is an LRU of persisted player records with time-based expiry
type recordCache struct {
	lru *expirable.LRU[int64, *cachedRecord]
}

// newRecordCache returns nil when size is not positive, which disables caching
func newRecordCache(size int, ttl time.Duration) *recordCache {
	if size <= 0 {
		return nil
	}
	return &recordCache{lru: expirable.NewLRU[int64, *cachedRecord](size, nil, ttl)}
}

func (c *recordCache) Get(id int64) (domain.PlayerRecord, bool) {
	if c == nil {
		return domain.PlayerRecord{}, false
	}
	entry, found := c.lru.Get(id)
	if !found {
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return domain.PlayerRecord{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return domain.PlayerRecord{}, false
	}
	metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return entry.Record, true
}

func (c *recordCache) Set(rec domain.PlayerRecord) {
	if c == nil {
		return
	}
	c.lru.Add(rec.ID, &cachedRecord{
		Version:  CacheSchemaVersion,
		Record:   rec,
		CachedAt: time.Now(),
	})
}

func (c *recordCache) Invalidate(id int64) {
	if c == nil {
		return
	}
	c.lru.Remove(id)
}

func (c *recordCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
