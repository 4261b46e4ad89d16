package repository

import (
	"context"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// Player defines the interface for player persistence.
// GetPlayer returns domain.ErrPlayerNotFound when no record exists.
type Player interface {
	GetPlayer(ctx context.Context, playerID int64) (*domain.PlayerRecord, error)
	UpsertPlayer(ctx context.Context, record *domain.PlayerRecord) error
	DeletePlayer(ctx context.Context, playerID int64) error
}

// World defines the interface for the static catalog tables
type World interface {
	LoadWorld(ctx context.Context) (domain.World, error)
	// SeedWorld writes world in one transaction. Rows already present are left alone.
	SeedWorld(ctx context.Context, world domain.World) error
	IsWorldEmpty(ctx context.Context) (bool, error)
}
