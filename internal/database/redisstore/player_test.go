package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

func newTestRepo(t *testing.T) (*PlayerRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), mr.Addr(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo, err := NewPlayerRepository(&Config{Client: client, Clock: func() time.Time { return fixed }})
	require.NoError(t, err)
	return repo, mr
}

func intPtr(v int) *int { return &v }

func TestNewPlayerRepository_Validation(t *testing.T) {
	_, err := NewPlayerRepository(nil)
	assert.EqualError(t, err, errClientNil)

	_, err = NewPlayerRepository(&Config{})
	assert.EqualError(t, err, errClientNil)
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), "", nil)
	assert.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = NewClient(ctx, "127.0.0.1:1", &Options{DialTimeout: 50 * time.Millisecond})
	assert.Error(t, err)
}

func TestPlayerRepository_RoundTrip(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	rec := &domain.PlayerRecord{
		ID: 42, Username: "Леголас", Health: 60, MaxHealth: 100, Level: 1, Gold: 12,
		LocationID: 2, Class: "archer", Inventory: []int{6, 4},
		Equipment: domain.EquipmentRecord{Artifact: intPtr(7)},
	}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))

	assert.True(t, mr.Exists("player:42"))
	members, err := mr.Members(playerIndexKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, members)

	got, err := repo.GetPlayer(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, rec.Username, got.Username)
	assert.Equal(t, []int{6, 4}, got.Inventory)
	require.NotNil(t, got.Equipment.Artifact)
	assert.Equal(t, 7, *got.Equipment.Artifact)
	assert.Nil(t, got.Equipment.Weapon)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got.CreatedAt)

	ids, err := repo.PlayerIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, ids)
}

func TestPlayerRepository_UpsertKeepsCreatedAt(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), mr.Addr(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo, err := NewPlayerRepository(&Config{Client: client, Clock: func() time.Time { return clock }})
	require.NoError(t, err)
	ctx := context.Background()

	p := domain.NewPlayer(9, "hero")
	p.Class = domain.ClassWarrior
	rec := p.ToRecord()
	require.NoError(t, repo.UpsertPlayer(ctx, &rec))
	first, err := repo.GetPlayer(ctx, 9)
	require.NoError(t, err)

	clock = clock.Add(48 * time.Hour)
	p.Gold += 10
	rec = p.ToRecord()
	require.NoError(t, repo.UpsertPlayer(ctx, &rec))
	second, err := repo.GetPlayer(ctx, 9)
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), second.CreatedAt)
	assert.Equal(t, clock, second.UpdatedAt)
	assert.Equal(t, p.Gold, second.Gold)
}

func TestPlayerRepository_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetPlayer(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestPlayerRepository_Delete(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertPlayer(ctx, &domain.PlayerRecord{ID: 5, Health: 1, MaxHealth: 100, Level: 1}))
	require.NoError(t, repo.DeletePlayer(ctx, 5))

	assert.False(t, mr.Exists("player:5"))
	_, err := repo.GetPlayer(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestPlayerRepository_CorruptDocument(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("player:9", "{not json"))

	_, err := repo.GetPlayer(context.Background(), 9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestPlayerRepository_BackendDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	err := repo.UpsertPlayer(context.Background(), &domain.PlayerRecord{ID: 1})
	assert.Error(t, err)
}
