package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the store needs; satisfied by
// *redis.Client and the cluster/failover clients
type Client interface {
	redis.UniversalClient
}

// Options configures the Redis connection
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
}

// NewClient creates a client for a single Redis instance and verifies it answers PING
func NewClient(ctx context.Context, addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return client, nil
}
