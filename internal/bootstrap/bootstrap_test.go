package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/catalog"
	"github.com/osse101/QuestBot_Go/internal/config"
	"github.com/osse101/QuestBot_Go/internal/database/memory"
	"github.com/osse101/QuestBot_Go/internal/domain"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Port:                 0,
		APIKey:               "key",
		LogLevel:             "info",
		LogFormat:            "text",
		Environment:          "test",
		StoreBackend:         backend,
		MaxActivePlayers:     3,
		MaxRequestBytes:      1 << 20,
		SessionSweepInterval: time.Minute,
	}
}

type fakeWorldRepo struct {
	stored  *domain.World
	seeded  int
	loadErr error
}

func (f *fakeWorldRepo) IsWorldEmpty(context.Context) (bool, error) { return f.stored == nil, nil }

func (f *fakeWorldRepo) SeedWorld(_ context.Context, w domain.World) error {
	f.seeded++
	f.stored = &w
	return nil
}

func (f *fakeWorldRepo) LoadWorld(context.Context) (domain.World, error) {
	if f.loadErr != nil {
		return domain.World{}, f.loadErr
	}
	return *f.stored, nil
}

func TestSyncWorld(t *testing.T) {
	seed, err := catalog.DefaultWorld()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("seeds empty tables once", func(t *testing.T) {
		repo := &fakeWorldRepo{}

		world, err := SyncWorld(ctx, repo, seed)
		require.NoError(t, err)
		assert.Len(t, world.Items, len(seed.Items))

		_, err = SyncWorld(ctx, repo, seed)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.seeded)
	})

	t.Run("stored world wins over seed", func(t *testing.T) {
		stored := domain.World{Items: seed.Items[:1], Locations: seed.Locations, Monsters: seed.Monsters}
		repo := &fakeWorldRepo{stored: &stored}

		world, err := SyncWorld(ctx, repo, seed)
		require.NoError(t, err)
		assert.Len(t, world.Items, 1)
		assert.Zero(t, repo.seeded)
	})

	t.Run("load failure", func(t *testing.T) {
		repo := &fakeWorldRepo{stored: &seed, loadErr: errors.New("boom")}

		_, err := SyncWorld(ctx, repo, seed)
		assert.ErrorContains(t, err, ErrMsgFailedSyncWorld)
	})
}

func TestLoadSeedWorld(t *testing.T) {
	world, err := LoadSeedWorld("")
	require.NoError(t, err)
	assert.NotEmpty(t, world.Locations)

	_, err = LoadSeedWorld(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, ErrMsgFailedLoadSeedWorld)
}

func TestInitializeStorage_UnknownBackend(t *testing.T) {
	_, err := InitializeStorage(context.Background(), testConfig("cassandra"))
	assert.ErrorContains(t, err, ErrMsgUnknownBackend)
}

func TestInitializeStorage_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.BackendRedis)
	cfg.RedisAddr = mr.Addr()

	st, err := InitializeStorage(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, st.Dependencies, 1)
	assert.Equal(t, DependencyRedis, st.Dependencies[0].Name)
	assert.NoError(t, st.Dependencies[0].Pinger.Ping(context.Background()))

	require.NoError(t, st.Close())
	assert.NoError(t, st.Close(), "closing twice is harmless")
}

func TestInitializeStorage_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.BackendRedis)
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	_, err := InitializeStorage(context.Background(), cfg)
	assert.ErrorContains(t, err, ErrMsgFailedConnectRedis)
}

func TestStorageCloseJoinsErrors(t *testing.T) {
	var order []int
	st := &Storage{closers: []func() error{
		func() error { order = append(order, 1); return errors.New("first") },
		func() error { order = append(order, 2); return errors.New("second") },
	}}

	err := st.Close()
	assert.ErrorContains(t, err, "first")
	assert.ErrorContains(t, err, "second")
	assert.Equal(t, []int{2, 1}, order, "closed in reverse order")
}

func TestNewApp_MemoryShutdownSavesSessions(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPlayerRepository()
	seed, err := LoadSeedWorld("")
	require.NoError(t, err)

	app, err := newApp(testConfig(config.BackendMemory), &Storage{Players: repo, World: seed})
	require.NoError(t, err)
	assert.False(t, app.Reaper.Enabled())

	_, err = app.Game.RegisterPlayer(ctx, 1, "a")
	require.NoError(t, err)
	_, err = app.Game.ChooseClass(ctx, 1, domain.ClassMage)
	require.NoError(t, err)

	app.Shutdown(ctx)

	assert.Zero(t, app.Sessions.ActiveCount())
	rec, err := repo.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ClassMage), rec.Class)
}

func TestNewApp_RejectsBrokenWorld(t *testing.T) {
	broken := domain.World{Locations: []domain.Location{
		{ID: 1, Name: "Village", Kind: domain.LocationKindVillage, RequiredLevel: 1, Connections: []int{99}},
	}}
	_, err := newApp(testConfig(config.BackendMemory), &Storage{Players: memory.NewPlayerRepository(), World: broken})
	assert.ErrorContains(t, err, ErrMsgFailedBuildCatalog)
}

func TestRun_StopsOnCancel(t *testing.T) {
	seed, err := LoadSeedWorld("")
	require.NoError(t, err)
	app, err := newApp(testConfig(config.BackendMemory), &Storage{Players: memory.NewPlayerRepository(), World: seed})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < LogFileRetentionLimit+2; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	require.Len(t, logs, LogFileRetentionCount)
	assert.Equal(t, fmt.Sprintf(LogFileNamePattern, "2026-01-04_00-00-00"), logs[0], "oldest files removed first")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}
