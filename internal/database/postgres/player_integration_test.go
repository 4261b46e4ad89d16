package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestPlayerRepository_RoundTrip(t *testing.T) {
	pool := requirePool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	rec := &domain.PlayerRecord{
		ID: 1001, Username: "Арагорн", Health: 80, MaxHealth: 120, Experience: 40, Level: 2, Gold: 75,
		LocationID: 2, Class: "warrior", Inventory: []int{4, 1, 4},
		Equipment: domain.EquipmentRecord{Weapon: intPtr(1), Armor: intPtr(2)},
	}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := repo.GetPlayer(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Арагорн", got.Username)
	assert.Equal(t, 80, got.Health)
	assert.Equal(t, 120, got.MaxHealth)
	assert.Equal(t, "warrior", got.Class)
	assert.Equal(t, []int{4, 1, 4}, got.Inventory)
	require.NotNil(t, got.Equipment.Weapon)
	assert.Equal(t, 1, *got.Equipment.Weapon)
	assert.Equal(t, 2, *got.Equipment.Armor)
	assert.Nil(t, got.Equipment.Artifact)
}

func TestPlayerRepository_UpsertOverwrites(t *testing.T) {
	pool := requirePool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	rec := &domain.PlayerRecord{ID: 1002, Username: "a", Health: 100, MaxHealth: 100, Level: 1, Gold: 50, LocationID: 1}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))

	rec.Gold = 10
	rec.Inventory = nil
	rec.Equipment = domain.EquipmentRecord{}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))

	got, err := repo.GetPlayer(ctx, 1002)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Gold)
	assert.Empty(t, got.Inventory)
}

func TestPlayerRepository_NotFoundAndDelete(t *testing.T) {
	pool := requirePool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	_, err := repo.GetPlayer(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	rec := &domain.PlayerRecord{ID: 1003, Health: 1, MaxHealth: 100, Level: 1, LocationID: 1}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))
	require.NoError(t, repo.DeletePlayer(ctx, 1003))
	require.NoError(t, repo.DeletePlayer(ctx, 1003), "deleting twice is fine")

	_, err = repo.GetPlayer(ctx, 1003)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestPlayerRepository_ConcurrentUpserts(t *testing.T) {
	pool := requirePool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(gold int) {
			defer wg.Done()
			rec := &domain.PlayerRecord{ID: 1004, Health: 100, MaxHealth: 100, Level: 1, Gold: gold, LocationID: 1}
			assert.NoError(t, repo.UpsertPlayer(ctx, rec))
		}(i)
	}
	wg.Wait()

	got, err := repo.GetPlayer(ctx, 1004)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Gold, 0)
	assert.Less(t, got.Gold, 20)
}
